package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/mnehpets/jsonrpc"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	target := os.Getenv("RPC_URL")
	if target == "" {
		target = "http://localhost:8080/rpc"
	}

	client := jsonrpc.NewClient(target)

	resp, err := client.Call(context.Background(), "echo", map[string]any{"message": "hello"})
	if err != nil {
		log.Fatalf("call failed: %v", err)
	}
	if err := resp.Err(); err != nil {
		log.Fatalf("rpc error: %v", err)
	}

	var message string
	if err := resp.DecodeResult(&message); err != nil {
		log.Fatalf("decode result: %v", err)
	}
	log.Printf("server said: %s", message)
}

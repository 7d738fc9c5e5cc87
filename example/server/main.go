package main

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/mnehpets/jsonrpc"
)

type echoParams struct {
	Message string `json:"message"`
}

// handleRPC plays the transport role: it decodes one request, dispatches by
// hand, and lets the library shape the response.
func handleRPC(w http.ResponseWriter, r *http.Request) {
	var req jsonrpc.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		parseErr := jsonrpc.StandardError(jsonrpc.ParseError, err.Error())
		if err := jsonrpc.WriteResponse(w, jsonrpc.ResultToResponse(nil, parseErr, nil)); err != nil {
			log.Printf("write response: %v", err)
		}
		return
	}

	result, err := dispatch(&req)
	if err := jsonrpc.WriteResponse(w, jsonrpc.ResultToResponse(result, err, req.ID)); err != nil {
		log.Printf("write response: %v", err)
	}
}

func dispatch(req *jsonrpc.Request) (any, error) {
	switch req.Method {
	case "echo":
		var params echoParams
		if err := jsonrpc.DecodeParams(req.Params, &params); err != nil {
			return nil, err
		}
		return params.Message, nil
	case "fail":
		return nil, jsonrpc.NewError(-1000, "this method always fails")
	default:
		return nil, jsonrpc.StandardError(jsonrpc.MethodNotFound, req.Method)
	}
}

func main() {
	http.HandleFunc("/rpc", handleRPC)

	log.Println("Starting server on :8080")
	log.Fatal(http.ListenAndServe(":8080", nil))
}

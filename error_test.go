package jsonrpc

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestStandardErrorCatalog(t *testing.T) {
	tests := []struct {
		kind        ErrorKind
		wantCode    int
		wantMessage string
	}{
		{ParseError, -32700, "Parse error"},
		{InvalidRequest, -32600, "Invalid Request"},
		{MethodNotFound, -32601, "Method not found"},
		{InvalidParams, -32602, "Invalid params"},
		{InternalError, -32603, "Internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := StandardError(tt.kind, nil)
			if err.Code != tt.wantCode {
				t.Errorf("got code %d, want %d", err.Code, tt.wantCode)
			}
			if err.Message != tt.wantMessage {
				t.Errorf("got message %q, want %q", err.Message, tt.wantMessage)
			}
			if err.Data != nil {
				t.Errorf("got data %v, want nil", err.Data)
			}
		})
	}
}

func TestStandardErrorDataPassThrough(t *testing.T) {
	payloads := []struct {
		name string
		data any
	}{
		{"Nil", nil},
		{"String", "details"},
		{"Map", map[string]any{"line": 7, "column": 12}},
		{"Slice", []any{1.0, "two", nil}},
	}
	kinds := []ErrorKind{ParseError, InvalidRequest, MethodNotFound, InvalidParams, InternalError}

	for _, tt := range payloads {
		t.Run(tt.name, func(t *testing.T) {
			for _, kind := range kinds {
				err := StandardError(kind, tt.data)
				if !reflect.DeepEqual(err.Data, tt.data) {
					t.Errorf("%v: got data %v, want %v", kind, err.Data, tt.data)
				}
				// The code/message pair must not depend on data.
				plain := StandardError(kind, nil)
				if err.Code != plain.Code || err.Message != plain.Message {
					t.Errorf("%v: code/message changed with data: got (%d, %q), want (%d, %q)",
						kind, err.Code, err.Message, plain.Code, plain.Message)
				}
			}
		})
	}
}

func TestStandardErrorUnknownKind(t *testing.T) {
	err := StandardError(ErrorKind(99), "extra")
	if err.Code != CodeInternalError {
		t.Errorf("got code %d, want %d", err.Code, CodeInternalError)
	}
	if err.Data != "extra" {
		t.Errorf("got data %v, want %q", err.Data, "extra")
	}
}

func TestErrorImplementsError(t *testing.T) {
	var err error = StandardError(ParseError, nil)
	if err.Error() != "Parse error" {
		t.Errorf("got %q, want %q", err.Error(), "Parse error")
	}
}

func TestNewErrorKeepsApplicationCode(t *testing.T) {
	err := NewError(-1000, "account frozen")
	if err.Code != -1000 {
		t.Errorf("got code %d, want -1000", err.Code)
	}
	if err.Message != "account frozen" {
		t.Errorf("got message %q, want %q", err.Message, "account frozen")
	}
	if err.Data != nil {
		t.Errorf("got data %v, want nil", err.Data)
	}
}

func TestErrorJSONOmitsAbsentData(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		wantData bool
	}{
		{"NoData", StandardError(ParseError, nil), false},
		{"WithData", StandardError(ParseError, "unexpected EOF"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.err)
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}
			var obj map[string]any
			if err := json.Unmarshal(raw, &obj); err != nil {
				t.Fatalf("failed to parse error object: %v", err)
			}
			if obj["code"].(float64) != -32700 {
				t.Errorf("got code %v, want -32700", obj["code"])
			}
			if obj["message"] != "Parse error" {
				t.Errorf("got message %v, want 'Parse error'", obj["message"])
			}
			if _, ok := obj["data"]; ok != tt.wantData {
				t.Errorf("data present = %v, want %v", ok, tt.wantData)
			}
		})
	}
}

func TestAsErrorFoldsForeignErrors(t *testing.T) {
	rpcErr := asError(errors.New("boom"))
	if rpcErr.Code != CodeInternalError {
		t.Errorf("got code %d, want %d", rpcErr.Code, CodeInternalError)
	}
	if rpcErr.Message != "boom" {
		t.Errorf("got message %q, want %q", rpcErr.Message, "boom")
	}

	custom := NewError(-1000, "custom error")
	if got := asError(custom); got != custom {
		t.Errorf("got %v, want the original *Error preserved", got)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{ParseError, "ParseError"},
		{InvalidRequest, "InvalidRequest"},
		{MethodNotFound, "MethodNotFound"},
		{InvalidParams, "InvalidParams"},
		{InternalError, "InternalError"},
		{ErrorKind(42), "ErrorKind(42)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

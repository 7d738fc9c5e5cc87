package jsonrpc

import "encoding/json"

// Request is a JSON-RPC request object. ID correlates a response with its
// request and is chosen by the caller; a nil ID marks a notification, for
// which no response is expected.
type Request struct {
	Method string `json:"method"`
	Params any    `json:"params,omitempty"`
	ID     any    `json:"id"`
}

// DecodeParams unmarshals a request's params into a typed value. Decoded
// params arrive as generic JSON values, so they are re-encoded and
// unmarshaled into v. Failures are reported as invalid-params errors with
// the cause attached as data.
func DecodeParams(params any, v any) error {
	raw, err := json.Marshal(params)
	if err != nil {
		return StandardError(InvalidParams, err.Error())
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return StandardError(InvalidParams, err.Error())
	}
	return nil
}

package jsonrpc

import (
	"encoding/json"
	"net/http"

	"github.com/fxamacker/cbor/v2"
)

// Response is the outcome of handling one request. Exactly one of Result and
// Error appears on the wire: a success carries the result member (even when
// null) and no error; a failure carries the error member and no result. ID
// echoes the request identifier verbatim.
type Response struct {
	Result any    `json:"result"`
	Error  *Error `json:"error,omitempty"`
	ID     any    `json:"id"`
}

// ResultToResponse shapes a handler outcome into a Response. A nil err means
// success and result becomes the payload; otherwise err is converted with
// the same rules as handler errors (an *Error keeps its code, anything else
// becomes an internal error). The id is passed through untouched.
func ResultToResponse(result any, err error, id any) Response {
	if err != nil {
		return Response{Error: asError(err), ID: id}
	}
	return Response{Result: result, ID: id}
}

// Err returns the protocol error carried by the response, or nil on
// success.
func (r Response) Err() error {
	if r.Error != nil {
		return r.Error
	}
	return nil
}

// DecodeResult unmarshals the result payload into v. It returns the
// embedded protocol error if the response is a failure.
func (r Response) DecodeResult(v any) error {
	if r.Error != nil {
		return r.Error
	}
	raw, err := json.Marshal(r.Result)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// successWire and errorWire pin the wire shape: the result member is present
// on success even when null, and the error member replaces it entirely on
// failure.
type successWire struct {
	Result any `json:"result"`
	ID     any `json:"id"`
}

type errorWire struct {
	Error *Error `json:"error"`
	ID    any    `json:"id"`
}

func (r Response) MarshalJSON() ([]byte, error) {
	if r.Error != nil {
		return json.Marshal(errorWire{Error: r.Error, ID: r.ID})
	}
	return json.Marshal(successWire{Result: r.Result, ID: r.ID})
}

func (r Response) MarshalCBOR() ([]byte, error) {
	if r.Error != nil {
		return cbor.Marshal(errorWire{Error: r.Error, ID: r.ID})
	}
	return cbor.Marshal(successWire{Result: r.Result, ID: r.ID})
}

// WriteResponse serializes resp to w as a JSON response body. It is the
// serialization half of the transport contract; the caller owns routing and
// connection handling.
func WriteResponse(w http.ResponseWriter, resp Response) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(resp)
}

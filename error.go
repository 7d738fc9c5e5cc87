package jsonrpc

import (
	"errors"
	"strconv"
)

// Standard error codes reserved by the JSON-RPC specification
// (https://www.jsonrpc.org/specification#error_object).
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// ErrorKind identifies one of the protocol-level failure conditions with a
// reserved code. The set is closed: the codes and messages are fixed by the
// specification. Application-defined errors use codes outside the reserved
// range and are built directly with NewError.
type ErrorKind int

const (
	// ParseError reports that invalid JSON was received by the server.
	ParseError ErrorKind = iota
	// InvalidRequest reports that the JSON sent is not a valid request object.
	InvalidRequest
	// MethodNotFound reports that the method does not exist or is not available.
	MethodNotFound
	// InvalidParams reports invalid method parameters.
	InvalidParams
	// InternalError reports an internal JSON-RPC error.
	InternalError
)

func (k ErrorKind) String() string {
	switch k {
	case ParseError:
		return "ParseError"
	case InvalidRequest:
		return "InvalidRequest"
	case MethodNotFound:
		return "MethodNotFound"
	case InvalidParams:
		return "InvalidParams"
	case InternalError:
		return "InternalError"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Error is a JSON-RPC error object. Code and Message are fixed per failure
// condition; Data carries optional caller-supplied diagnostic detail and is
// omitted from the wire when absent.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// NewError creates an Error with an application-defined code. Codes are not
// validated against the reserved range; servers and clients agree on their
// meaning out of band.
func NewError(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

// StandardError returns the canonical Error for kind. The code/message pair
// is constant per kind; data is attached verbatim and may be nil. The
// function cannot fail: unrecognized kinds degrade to the internal error
// pair.
func StandardError(kind ErrorKind, data any) *Error {
	switch kind {
	case ParseError:
		return &Error{Code: CodeParseError, Message: "Parse error", Data: data}
	case InvalidRequest:
		return &Error{Code: CodeInvalidRequest, Message: "Invalid Request", Data: data}
	case MethodNotFound:
		return &Error{Code: CodeMethodNotFound, Message: "Method not found", Data: data}
	case InvalidParams:
		return &Error{Code: CodeInvalidParams, Message: "Invalid params", Data: data}
	default:
		return &Error{Code: CodeInternalError, Message: "Internal error", Data: data}
	}
}

// asError converts any error to a JSON-RPC error object. Error values keep
// their code; other errors become internal errors with the message
// preserved.
func asError(err error) *Error {
	var rpcErr *Error
	if errors.As(err, &rpcErr) {
		return rpcErr
	}
	return &Error{Code: CodeInternalError, Message: err.Error()}
}

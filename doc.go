// Package jsonrpc provides the JSON-RPC wire types and an HTTP client.
//
// The package centers on two stateless operations. StandardError produces
// the canonical error object for each reserved protocol failure, and
// ResultToResponse shapes a handler outcome into a response whose result and
// error members are mutually exclusive:
//
//	err := jsonrpc.StandardError(jsonrpc.MethodNotFound, req.Method)
//	resp := jsonrpc.ResultToResponse(nil, err, req.ID)
//	jsonrpc.WriteResponse(w, resp)
//
// Both are pure value transformations, safe for concurrent use.
//
// # Errors
//
// The five reserved error conditions are enumerated by ErrorKind; their
// codes are also available as Code* constants. Application-defined errors
// use codes outside the reserved range and are built directly:
//
//	return nil, jsonrpc.NewError(-1000, "account frozen")
//
// Any other error returned by a handler is folded into an internal error
// with its message preserved.
//
// # Client
//
// Client calls methods over HTTP, assigning request ids and checking that
// the server echoes them back:
//
//	c := jsonrpc.NewClient("http://localhost:8080/rpc")
//	resp, err := c.Call(ctx, "echo", map[string]any{"message": "hi"})
//	if err != nil {
//	    // transport failure
//	}
//	if err := resp.Err(); err != nil {
//	    // protocol error from the server
//	}
//
// Ids auto-increment by default; WithUUIDRequestIDs switches to random
// string ids.
//
// # Codecs
//
// The wire shape is JSON by default. A Codec can swap the encoding while
// keeping the same field layout; CBORCodec is provided for binary
// transports:
//
//	c := jsonrpc.NewClient(target, jsonrpc.WithCodec(jsonrpc.CBORCodec))
//
// Request routing, batch requests, retries, and authentication are out of
// scope: they belong to the transport and dispatch layers that call into
// this package.
package jsonrpc

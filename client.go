package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/google/uuid"
)

// ErrIDMismatch is returned by Do when the response id does not echo the
// request id.
var ErrIDMismatch = errors.New("jsonrpc: response id does not match request id")

type clientOptions struct {
	httpClient *http.Client
	codec      Codec
	uuidIDs    bool
}

// ClientOption configures a Client.
type ClientOption func(*clientOptions)

// WithHTTPClient sets the underlying HTTP client. http.DefaultClient is
// used otherwise.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

// WithCodec sets the wire codec. JSONCodec is the default.
func WithCodec(c Codec) ClientOption {
	return func(o *clientOptions) {
		o.codec = c
	}
}

// WithUUIDRequestIDs makes the client assign random UUID string ids instead
// of auto-incrementing numeric ids.
func WithUUIDRequestIDs() ClientOption {
	return func(o *clientOptions) {
		o.uuidIDs = true
	}
}

// Client calls JSON-RPC methods over HTTP. It is safe for concurrent use.
type Client struct {
	target string
	nonce  atomic.Uint64
	opts   clientOptions
}

// NewClient creates a client for the given target URL.
func NewClient(target string, opts ...ClientOption) *Client {
	c := &Client{target: target}
	for _, opt := range opts {
		opt(&c.opts)
	}
	if c.opts.httpClient == nil {
		c.opts.httpClient = http.DefaultClient
	}
	if c.opts.codec == nil {
		c.opts.codec = JSONCodec
	}
	return c
}

func (c *Client) nextID() any {
	if c.opts.uuidIDs {
		return uuid.NewString()
	}
	return c.nonce.Add(1)
}

// BuildRequest creates a request for method carrying the next request id.
func (c *Client) BuildRequest(method string, params any) Request {
	return Request{Method: method, Params: params, ID: c.nextID()}
}

// Call builds a request for method and sends it.
func (c *Client) Call(ctx context.Context, method string, params any) (Response, error) {
	return c.Do(ctx, c.BuildRequest(method, params))
}

// Do sends req and decodes the response. A transport failure, a non-200
// status, or a response whose id does not echo the request id is reported
// as an error; a protocol error from the server is carried inside the
// returned Response.
func (c *Client) Do(ctx context.Context, req Request) (Response, error) {
	body, err := c.opts.codec.Marshal(req)
	if err != nil {
		return Response{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.target, bytes.NewReader(body))
	if err != nil {
		return Response{}, err
	}
	httpReq.Header.Set("Content-Type", c.opts.codec.ContentType())

	httpResp, err := c.opts.httpClient.Do(httpReq)
	if err != nil {
		return Response{}, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return Response{}, errors.New("jsonrpc: " + httpResp.Status)
	}

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return Response{}, err
	}

	var resp Response
	if err := c.opts.codec.Unmarshal(data, &resp); err != nil {
		return Response{}, err
	}
	if !idsEqual(resp.ID, req.ID) {
		return Response{}, ErrIDMismatch
	}
	return resp, nil
}

// idsEqual compares two id values by their JSON encoding: decoding turns
// numeric ids into float64, so a direct comparison would miss.
func idsEqual(a, b any) bool {
	ab, err := json.Marshal(a)
	if err != nil {
		return false
	}
	bb, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(ab, bb)
}

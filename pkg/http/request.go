package http

import (
	"context"
	"net/http"
	"net/url"
)

// Request is a fluent builder over Client for one call.
type Request struct {
	requestClient      *Client
	requestMethod      string
	requestPath        string
	requestQueryParams url.Values
	requestBody        any
	requestSuccessResp any
}

// NewHttpClientRequest creates a new Request object with the given client.
func NewHttpClientRequest(client *Client) *Request {
	return &Request{
		requestClient: client,
		requestMethod: http.MethodGet,
		requestPath:   "/",
	}
}

// WithMethod sets the HTTP method for the request.
func (r *Request) WithMethod(method string) *Request {
	r.requestMethod = method
	return r
}

// WithPath sets the path for the request.
func (r *Request) WithPath(path string) *Request {
	r.requestPath = path
	return r
}

// WithQueryParams sets the query parameters for the request.
func (r *Request) WithQueryParams(params url.Values) *Request {
	r.requestQueryParams = params
	return r
}

// WithBody sets the body for the request.
func (r *Request) WithBody(body any) *Request {
	r.requestBody = body
	return r
}

// WithSuccessResp sets the value a 2xx response is decoded into.
func (r *Request) WithSuccessResp(successResp any) *Request {
	r.requestSuccessResp = successResp
	return r
}

// Send executes the request and returns the status code.
func (r *Request) Send(ctx context.Context) (int, error) {
	return r.requestClient.doRequest(ctx, r.requestMethod, r.requestPath, r.requestQueryParams, r.requestBody, r.requestSuccessResp)
}

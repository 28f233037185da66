// Package http holds the HTTP response an application service returns to
// the host.
package http

import (
	"strings"

	"golang.org/x/net/http/httpguts"

	"github.com/wippyai/linera-bridge/errors"
)

const (
	StatusOK           uint16 = 200
	StatusUnauthorized uint16 = 401
)

// Header is a single validated HTTP header.
type Header struct {
	Name  string `yaml:"name"`
	Value []byte `yaml:"value"`
}

// NewHeader validates name as an RFC 7230 token and value as a field
// value. The returned error is an *errors.Error of kind invalid_header.
func NewHeader(name string, value []byte) (Header, error) {
	if name == "" {
		return Header{}, errors.InvalidHeader(name, "empty name")
	}
	if !httpguts.ValidHeaderFieldName(name) {
		return Header{}, errors.InvalidHeader(name, "name is not a valid token")
	}
	if !httpguts.ValidHeaderFieldValue(string(value)) {
		return Header{}, errors.InvalidHeader(name, "value contains control characters")
	}
	return Header{Name: name, Value: value}, nil
}

// Response is a status code, ordered headers and a raw body.
type Response struct {
	Status  uint16   `yaml:"status"`
	Headers []Header `yaml:"headers"`
	Body    []byte   `yaml:"body"`
}

// NewResponse returns a response with the given status and no headers or body.
func NewResponse(status uint16) Response {
	return Response{Status: status}
}

// Ok returns a 200 response carrying body.
func Ok(body []byte) Response {
	return Response{Status: StatusOK, Body: body}
}

// Unauthorized returns an empty 401 response.
func Unauthorized() Response {
	return NewResponse(StatusUnauthorized)
}

// WithHeader appends a header, keeping earlier headers first.
func (r Response) WithHeader(name string, value []byte) (Response, error) {
	h, err := NewHeader(name, value)
	if err != nil {
		return r, err
	}
	r.Headers = append(r.Headers[:len(r.Headers):len(r.Headers)], h)
	return r, nil
}

// WithBody replaces the body.
func (r Response) WithBody(body []byte) Response {
	r.Body = body
	return r
}

// HeaderValue returns the value of the first header named name, compared
// case-insensitively.
func (r Response) HeaderValue(name string) ([]byte, bool) {
	for _, h := range r.Headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value, true
		}
	}
	return nil, false
}

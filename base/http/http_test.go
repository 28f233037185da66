package http

import (
	"testing"

	"github.com/wippyai/linera-bridge/errors"
)

func TestNewHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		value   string
		wantErr bool
	}{
		{"plain", "Content-Type", "application/json", false},
		{"empty value", "X-Empty", "", false},
		{"empty name", "", "v", true},
		{"space in name", "Bad Name", "v", true},
		{"colon in name", "a:b", "v", true},
		{"newline in value", "X-Split", "a\r\nInjected: 1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHeader(tt.header, []byte(tt.value))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewHeader(%q, %q) succeeded", tt.header, tt.value)
				}
				e, ok := err.(*errors.Error)
				if !ok || e.Kind != errors.KindInvalidHeader {
					t.Errorf("error = %v, want invalid_header", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewHeader: %v", err)
			}
			if h.Name != tt.header || string(h.Value) != tt.value {
				t.Errorf("header = %+v", h)
			}
		})
	}
}

func TestResponseBuilders(t *testing.T) {
	r, err := Ok([]byte("hi")).WithHeader("a", []byte("1"))
	if err != nil {
		t.Fatal(err)
	}
	r, err = r.WithHeader("b", []byte("2"))
	if err != nil {
		t.Fatal(err)
	}
	if r.Status != StatusOK || string(r.Body) != "hi" {
		t.Errorf("response = %+v", r)
	}
	if len(r.Headers) != 2 || r.Headers[0].Name != "a" || r.Headers[1].Name != "b" {
		t.Errorf("headers = %+v", r.Headers)
	}
	if v, ok := r.HeaderValue("B"); !ok || string(v) != "2" {
		t.Errorf("HeaderValue(B) = %q, %v", v, ok)
	}
	if _, ok := r.HeaderValue("c"); ok {
		t.Error("HeaderValue(c) found a header")
	}

	if _, err := r.WithHeader("bad name", nil); err == nil {
		t.Error("WithHeader accepted an invalid name")
	}

	u := Unauthorized().WithBody([]byte("no"))
	if u.Status != StatusUnauthorized || string(u.Body) != "no" || len(u.Headers) != 0 {
		t.Errorf("unauthorized = %+v", u)
	}
}

func TestWithHeaderDoesNotAlias(t *testing.T) {
	base, _ := NewResponse(StatusOK).WithHeader("a", []byte("1"))
	left, _ := base.WithHeader("left", nil)
	right, _ := base.WithHeader("right", nil)
	if left.Headers[1].Name != "left" || right.Headers[1].Name != "right" {
		t.Errorf("left = %+v, right = %+v", left.Headers, right.Headers)
	}
}

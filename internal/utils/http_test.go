package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type testResponse struct {
	Value int `json:"value"`
}

// TestDoPostSync_Success verifies that a 200 response with valid JSON is
// decoded into the output struct.
func TestDoPostSync_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"value":42}`)
	}))
	defer server.Close()

	_, result, err := DoPostSync[testResponse](context.Background(), server.Client(), server.URL, nil, map[string]string{"q": "test"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result == nil || result.Value != 42 {
		t.Errorf("expected Value=42, got %+v", result)
	}
}

// TestDoPostSync_CustomHeaders verifies that caller headers reach the server.
func TestDoPostSync_CustomHeaders(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("apiKey")
		fmt.Fprint(w, `{"value":1}`)
	}))
	defer server.Close()

	headers := http.Header{}
	headers.Set("apiKey", "secret")

	if _, _, err := DoPostSync[testResponse](context.Background(), server.Client(), server.URL, headers, struct{}{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey != "secret" {
		t.Errorf("apiKey header = %q, want %q", gotKey, "secret")
	}
}

// TestDoPostSync_Non2xxStatus verifies that a non-2xx status yields an
// *HTTPError carrying the code and body.
func TestDoPostSync_Non2xxStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, "bad request")
	}))
	defer server.Close()

	res, _, err := DoPostSync[testResponse](context.Background(), server.Client(), server.URL, nil, struct{}{})
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *HTTPError, got %v", err)
	}
	if httpErr.StatusCode != http.StatusBadRequest || httpErr.Body != "bad request" {
		t.Errorf("unexpected HTTPError: %+v", httpErr)
	}
	if res == nil || res.StatusCode != http.StatusBadRequest {
		t.Error("expected response to be returned alongside the error")
	}
}

// TestDoPostSync_UnmarshalError verifies that an undecodable body returns an
// error mentioning "unmarshal".
func TestDoPostSync_UnmarshalError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `"not an object"`)
	}))
	defer server.Close()

	_, _, err := DoPostSync[testResponse](context.Background(), server.Client(), server.URL, nil, struct{}{})
	if err == nil || !strings.Contains(err.Error(), "unmarshal") {
		t.Errorf("expected unmarshal error, got %v", err)
	}
}

// TestDoPostSync_MarshalError verifies that an unencodable body fails before
// any request is made.
func TestDoPostSync_MarshalError(t *testing.T) {
	_, _, err := DoPostSync[testResponse](context.Background(), nil, "http://127.0.0.1:0", nil, make(chan int))
	if err == nil || !strings.Contains(err.Error(), "marshaling") {
		t.Errorf("expected marshaling error, got %v", err)
	}
}

// TestDoPostSync_ContextDeadline verifies that a context deadline aborts the
// request and is reported through errors.Is.
func TestDoPostSync_ContextDeadline(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, _, err := DoPostSync[testResponse](ctx, server.Client(), server.URL, nil, struct{}{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context.DeadlineExceeded, got %v", err)
	}
}

package testutil

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/bytedance/sonic"
)

// Serve executes a request against the provided handler and returns the recorder.
func Serve(h http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// ServeRequest executes the given request against the handler.
func ServeRequest(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// AssertStatus verifies the response status code.
func AssertStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if err := statusError(rr, want); err != nil {
		t.Fatal(err)
	}
}

// DecodeJSON decodes the recorder body into dest, failing the test on error.
func DecodeJSON(t *testing.T, rr *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if err := decodeJSONBody(rr, dest); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

func statusError(rr *httptest.ResponseRecorder, want int) error {
	if rr.Code == want {
		return nil
	}
	body := rr.Body.String()
	if len(body) > 256 {
		body = body[:256] + "..."
	}
	return fmt.Errorf("expected status %d, got %d body=%s", want, rr.Code, body)
}

func decodeJSONBody(rr *httptest.ResponseRecorder, dest any) error {
	return sonic.Unmarshal(rr.Body.Bytes(), dest)
}

// RoundTripperFunc adapts a function into an http.RoundTripper.
type RoundTripperFunc func(req *http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// JSONResponse builds an upstream response with the given status and body.
func JSONResponse(status int, body string) *http.Response {
	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     header,
	}
}

// Route is a canned upstream response.
type Route struct {
	Status int
	Body   string
}

// StubUpstream answers requests by URL path and remembers what it was asked.
// Unknown paths get a 404.
type StubUpstream struct {
	Routes map[string]Route

	mu       sync.Mutex
	requests []*http.Request
}

// Client returns an http.Client whose transport is served by the stub.
func (s *StubUpstream) Client() *http.Client {
	return &http.Client{Transport: RoundTripperFunc(s.roundTrip)}
}

// Requests returns every request seen so far, in order.
func (s *StubUpstream) Requests() []*http.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*http.Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Paths returns the URL path of every request seen so far.
func (s *StubUpstream) Paths() []string {
	reqs := s.Requests()
	out := make([]string, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, r.URL.Path)
	}
	return out
}

func (s *StubUpstream) roundTrip(req *http.Request) (*http.Response, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	route, ok := s.Routes[req.URL.Path]
	if !ok {
		return JSONResponse(http.StatusNotFound, `{"message":"not found"}`), nil
	}
	status := route.Status
	if status == 0 {
		status = http.StatusOK
	}
	return JSONResponse(status, route.Body), nil
}

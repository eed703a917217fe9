package httpclient

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
)

// HTTPExecutor performs a single HTTP round trip. It is the only seam between the client and the network.
type HTTPExecutor interface {
	Do(req *http.Request) (*http.Response, error)
}

// Production

// ProdExecutor sends requests with a net/http client configured by BuildClient.
type ProdExecutor struct {
	*http.Client
}

// Mocking

// MockResponse is one canned reply replayed by MockExecutor. A non-nil Err is returned instead of a response.
type MockResponse struct {
	StatusCode  int
	ContentType string
	Body        string
	Err         error
}

// JSONResponse builds a 200 MockResponse with a JSON content type.
func JSONResponse(body string) MockResponse {
	return MockResponse{
		StatusCode:  http.StatusOK,
		ContentType: "application/json",
		Body:        body,
	}
}

// RecordedRequest is what MockExecutor captured from a request. Form holds the POST body values or the
// GET query values.
type RecordedRequest struct {
	Method string
	URL    *url.URL
	Header http.Header
	Form   url.Values
}

// MockExecutor replays queued responses in order and records every request it receives.
type MockExecutor struct {
	mu        sync.Mutex
	responses []MockResponse
	requests  []RecordedRequest
}

// NewMockExecutor creates a MockExecutor with the given responses queued.
func NewMockExecutor(responses ...MockResponse) *MockExecutor {
	return &MockExecutor{responses: responses}
}

// Enqueue appends responses to the replay queue.
func (m *MockExecutor) Enqueue(responses ...MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, responses...)
}

func (m *MockExecutor) Do(req *http.Request) (*http.Response, error) {
	recorded, err := recordRequest(req)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.requests = append(m.requests, recorded)
	if len(m.responses) == 0 {
		m.mu.Unlock()
		return nil, fmt.Errorf("mock executor: no response queued for %s %s", req.Method, req.URL.Path)
	}
	next := m.responses[0]
	m.responses = m.responses[1:]
	m.mu.Unlock()

	if next.Err != nil {
		return nil, next.Err
	}

	statusCode := next.StatusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}

	header := make(http.Header)
	if next.ContentType != "" {
		header.Set("Content-Type", next.ContentType)
	}

	return &http.Response{
		StatusCode: statusCode,
		Status:     fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode)),
		Header:     header,
		Body:       io.NopCloser(bytes.NewBufferString(next.Body)),
		Request:    req,
	}, nil
}

// CallCount returns the number of requests received.
func (m *MockExecutor) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// Requests returns a copy of every recorded request in order.
func (m *MockExecutor) Requests() []RecordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]RecordedRequest(nil), m.requests...)
}

// LastRequest returns the most recent request, or false when none was made.
func (m *MockExecutor) LastRequest() (RecordedRequest, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return RecordedRequest{}, false
	}
	return m.requests[len(m.requests)-1], true
}

func recordRequest(req *http.Request) (RecordedRequest, error) {
	recorded := RecordedRequest{
		Method: req.Method,
		URL:    req.URL,
		Header: req.Header.Clone(),
		Form:   req.URL.Query(),
	}

	if req.Body != nil {
		body, err := io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return RecordedRequest{}, fmt.Errorf("mock executor: reading request body: %w", err)
		}
		if len(body) > 0 {
			form, err := url.ParseQuery(string(body))
			if err != nil {
				return RecordedRequest{}, fmt.Errorf("mock executor: parsing form body: %w", err)
			}
			recorded.Form = form
		}
	}

	return recorded, nil
}

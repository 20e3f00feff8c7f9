package feed

import (
	"context"
	"net/http"
	"sync"
	"time"

	"feedloader/core/interfaces"
)

// httpClientSpy records requests and lets the test deliver each one by hand
type httpClientSpy struct {
	mu       sync.Mutex
	messages []spyMessage
}

type spyMessage struct {
	ctx        context.Context
	url        string
	completion func(interfaces.HTTPClientResult)
}

func (s *httpClientSpy) Get(ctx context.Context, url string, completion func(interfaces.HTTPClientResult)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, spyMessage{ctx: ctx, url: url, completion: completion})
}

func (s *httpClientSpy) requestedURLs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	urls := make([]string, 0, len(s.messages))
	for _, m := range s.messages {
		urls = append(urls, m.url)
	}
	return urls
}

func (s *httpClientSpy) message(index int) spyMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.messages[index]
}

func (s *httpClientSpy) completeWithError(err error, index int) {
	s.message(index).completion(interfaces.NewHTTPFailure(err))
}

func (s *httpClientSpy) completeWithStatus(code int, data []byte, index int) {
	m := s.message(index)
	m.completion(interfaces.NewHTTPSuccess(data, &mockResponse{statusCode: code, url: m.url}))
}

// mockHTTPClient is a func-field mock of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string, completion func(interfaces.HTTPClientResult))
}

func (m *mockHTTPClient) Get(ctx context.Context, url string, completion func(interfaces.HTTPClientResult)) {
	if m.getFunc != nil {
		m.getFunc(ctx, url, completion)
	}
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	url        string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) URL() string {
	return m.url
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[http.CanonicalHeaderKey(key)]
	}
	return ""
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	debugFunc func(msg string, fields map[string]interface{})
	infoFunc  func(msg string, fields map[string]interface{})
	warnFunc  func(msg string, fields map[string]interface{})
	errorFunc func(msg string, fields map[string]interface{})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {
	if m.debugFunc != nil {
		m.debugFunc(msg, fields)
	}
}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {
	if m.infoFunc != nil {
		m.infoFunc(msg, fields)
	}
}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	if m.warnFunc != nil {
		m.warnFunc(msg, fields)
	}
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	if m.errorFunc != nil {
		m.errorFunc(msg, fields)
	}
}

// mockMetrics records observed outcomes
type mockMetrics struct {
	mu        sync.Mutex
	outcomes  []string
	onObserve func(outcome string)
}

func (m *mockMetrics) ObserveLoad(outcome string, _ time.Duration) {
	m.mu.Lock()
	m.outcomes = append(m.outcomes, outcome)
	m.mu.Unlock()

	if m.onObserve != nil {
		m.onObserve(outcome)
	}
}

func (m *mockMetrics) observed() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.outcomes...)
}

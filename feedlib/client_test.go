package feedlib

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	coreerrors "feedloader/core/errors"
	"feedloader/core/interfaces"
	"feedloader/infrastructure/http/breaker"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// neverCompletingClient issues nothing and never calls back
type neverCompletingClient struct{}

func (neverCompletingClient) Get(context.Context, string, func(interfaces.HTTPClientResult)) {}

func serve(t *testing.T, status int, body string) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, &hits
}

func TestLoad_DeliversItemsFromServer(t *testing.T) {
	id1, id2 := uuid.New(), uuid.New()
	body, err := json.Marshal(map[string]interface{}{
		"items": []map[string]interface{}{
			{"id": id1.String(), "image_url": "https://a-url.com/1.png"},
			{"id": id2.String(), "description": "a description", "location": "a location", "image_url": "https://a-url.com/2.png"},
		},
	})
	require.NoError(t, err)

	server, hits := serve(t, http.StatusOK, string(body))

	loader, err := NewLoader(server.URL, WithTimeout(time.Second), WithUserAgent("FeedLoaderTest/1.0"))
	require.NoError(t, err)
	defer loader.Close()

	items, err := Load(context.Background(), loader)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, id1, items[0].ID)
	assert.Nil(t, items[0].Description)
	assert.Equal(t, id2, items[1].ID)
	require.NotNil(t, items[1].Location)
	assert.Equal(t, "a location", *items[1].Location)
	assert.Equal(t, "https://a-url.com/2.png", items[1].ImageURL.String())
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestLoad_EmptyListIsSuccess(t *testing.T) {
	server, _ := serve(t, http.StatusOK, `{"items": []}`)

	loader, err := NewLoader(server.URL)
	require.NoError(t, err)
	defer loader.Close()

	items, err := Load(context.Background(), loader)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestLoad_Non200IsInvalidData(t *testing.T) {
	server, _ := serve(t, http.StatusInternalServerError, `{"items": []}`)

	loader, err := NewLoader(server.URL)
	require.NoError(t, err)
	defer loader.Close()

	items, err := Load(context.Background(), loader)
	assert.Nil(t, items)
	assert.ErrorIs(t, err, coreerrors.ErrInvalidData)
}

func TestLoad_MalformedBodyIsInvalidData(t *testing.T) {
	server, _ := serve(t, http.StatusOK, "invalid json")

	loader, err := NewLoader(server.URL)
	require.NoError(t, err)
	defer loader.Close()

	_, err = Load(context.Background(), loader)
	assert.ErrorIs(t, err, coreerrors.ErrInvalidData)
}

func TestLoad_UnreachableServerIsConnectivity(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	loader, err := NewLoader(url, WithTimeout(time.Second))
	require.NoError(t, err)
	defer loader.Close()

	_, err = Load(context.Background(), loader)
	assert.ErrorIs(t, err, coreerrors.ErrConnectivity)
}

func TestLoad_ReturnsWhenContextEnds(t *testing.T) {
	loader, err := NewLoader("https://a-url.com", WithHTTPClient(neverCompletingClient{}))
	require.NoError(t, err)
	defer loader.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	items, err := Load(ctx, loader)
	assert.Nil(t, items)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLoad_ClosedLoaderReturnsImmediately(t *testing.T) {
	loader, err := NewLoader("https://a-url.com", WithHTTPClient(neverCompletingClient{}))
	require.NoError(t, err)
	require.NoError(t, loader.Close())

	items, err := Load(context.Background(), loader)
	assert.Nil(t, items)
	assert.ErrorIs(t, err, ErrLoaderClosed)
}

func TestLoad_ReturnsWhenLoaderClosedDuringLoad(t *testing.T) {
	loader, err := NewLoader("https://a-url.com", WithHTTPClient(neverCompletingClient{}))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := Load(context.Background(), loader)
		done <- err
	}()

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, loader.Close())

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrLoaderClosed)
	case <-time.After(time.Second):
		t.Fatal("Load did not return after Close")
	}
}

func TestLoad_CircuitBreakerFailsFastOnceOpen(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	loader, err := NewLoader(url,
		WithTimeout(time.Second),
		WithCircuitBreaker(breaker.Config{FailureThreshold: 1, OpenTimeout: time.Minute}),
	)
	require.NoError(t, err)
	defer loader.Close()

	_, err = Load(context.Background(), loader)
	require.ErrorIs(t, err, coreerrors.ErrConnectivity)

	// The open circuit still surfaces as connectivity
	_, err = Load(context.Background(), loader)
	assert.ErrorIs(t, err, coreerrors.ErrConnectivity)
}

func TestNewLoader_OptionErrors(t *testing.T) {
	tests := []struct {
		name   string
		option Option
	}{
		{name: "nil HTTP client", option: WithHTTPClient(nil)},
		{name: "zero timeout", option: WithTimeout(0)},
		{name: "negative rate", option: WithRateLimit(-1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, err := NewLoader("https://a-url.com", tt.option)
			assert.Nil(t, loader)
			assert.True(t, IsValidationError(err), "got %v", err)
		})
	}
}

func TestNewLoader_InvalidURLIsConfigurationError(t *testing.T) {
	for _, raw := range []string{"", "://missing-scheme"} {
		loader, err := NewLoader(raw)

		assert.Nil(t, loader, "url %q", raw)
		assert.True(t, IsConfigurationError(err), "url %q: got %v", raw, err)
		assert.True(t, coreerrors.IsValidation(err), "url %q: cause should be kept", raw)
	}
}

func TestNewLoader_WithMetricsObservesOutcome(t *testing.T) {
	server, _ := serve(t, http.StatusOK, `{"items": []}`)

	metrics := &recordingMetrics{}
	loader, err := NewLoader(server.URL, WithMetrics(metrics))
	require.NoError(t, err)
	defer loader.Close()

	_, err = Load(context.Background(), loader)
	require.NoError(t, err)
	assert.Equal(t, []string{interfaces.OutcomeSuccess}, metrics.outcomes())
}

func TestError_Format(t *testing.T) {
	err := NewError(ErrorTypeConfiguration, "cannot create feed loader")
	assert.Equal(t, "configuration: cannot create feed loader", err.Error())

	cause := fmt.Errorf("boom")
	err = err.WithCause(cause).WithContext("url", "https://a-url.com")
	assert.Equal(t, "configuration: cannot create feed loader (caused by: boom)", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "https://a-url.com", err.Context["url"])
}

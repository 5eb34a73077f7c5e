package integrations

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_GetDecodesEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/telegram/status", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"connected":true},"message":"ok"}`))
	}))
	defer server.Close()

	client := NewClient(Options{Name: "test", BaseURL: server.URL + "/"}, discardLogger())

	envelope, err := client.Get(context.Background(), "/api/telegram/status")
	require.NoError(t, err)
	assert.True(t, envelope.Success)
	assert.Equal(t, "ok", envelope.Message)
	assert.JSONEq(t, `{"connected":true}`, string(envelope.Data))
}

func TestClient_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(Options{Name: "test", BaseURL: server.URL}, discardLogger())

	_, err := client.Get(context.Background(), "/api/health")
	assert.ErrorContains(t, err, "status 503")
}

func TestClient_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(Options{
		Name:        "test",
		BaseURL:     server.URL,
		MaxFailures: 2,
		OpenTimeout: time.Minute,
	}, discardLogger())

	for range 2 {
		_, err := client.Get(context.Background(), "/api/health")
		require.Error(t, err)
	}

	_, err := client.Get(context.Background(), "/api/health")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_MissingBaseURL(t *testing.T) {
	client := NewClient(Options{Name: "test"}, discardLogger())

	_, err := client.Get(context.Background(), "/api/health")
	assert.Error(t, err)
}

package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/incident_board/internal/config"
	"github.com/shenikar/incident_board/internal/models"
	"github.com/shenikar/incident_board/internal/projection"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(cfg *config.Config) *WebhookWorker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewWebhookWorker(nil, logger, cfg)
}

func testEvent(t *testing.T) (BoardEvent, string) {
	event := BoardEvent{
		Action:     ActionVerify,
		IncidentID: uuid.New(),
		Filter:     models.FilterAll,
		Summary:    projection.Summary{Total: 1, VerifiedCount: 1, Text: "1 incidents · 1 verified"},
		Timestamp:  time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	raw, err := json.Marshal(event)
	require.NoError(t, err)
	return event, string(raw)
}

func TestProcessBoardEvent_DeliversWithSignature(t *testing.T) {
	event, raw := testEvent(t)
	var received atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received.Add(1)
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, raw, string(body))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, generateHMACSHA256(raw, "secret"), r.Header.Get("X-Webhook-Signature"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	w := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookSecret:     "secret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	assert.True(t, w.processBoardEvent(context.Background(), event, raw))
	assert.Equal(t, int32(1), received.Load())
}

func TestProcessBoardEvent_RetriesUntilSuccess(t *testing.T) {
	event, raw := testEvent(t)
	var attempts atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("X-Webhook-Signature"))
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	assert.True(t, w.processBoardEvent(context.Background(), event, raw))
	assert.Equal(t, int32(3), attempts.Load())
}

func TestProcessBoardEvent_GivesUp(t *testing.T) {
	event, raw := testEvent(t)
	var attempts atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	w := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 2,
		WebhookBaseDelay:  time.Millisecond,
	})

	assert.False(t, w.processBoardEvent(context.Background(), event, raw))
	assert.Equal(t, int32(2), attempts.Load())
}

func TestProcessBoardEvent_NoURL(t *testing.T) {
	event, raw := testEvent(t)
	w := newTestWorker(&config.Config{WebhookMaxRetries: 3})

	assert.False(t, w.processBoardEvent(context.Background(), event, raw))
}

func TestProcessBoardEvent_ContextCancelled(t *testing.T) {
	event, raw := testEvent(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	w := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 5,
		WebhookBaseDelay:  time.Hour,
	})

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	start := time.Now()
	assert.False(t, w.processBoardEvent(ctx, event, raw))
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestGenerateHMACSHA256(t *testing.T) {
	// Известный вектор HMAC-SHA256
	got := generateHMACSHA256("The quick brown fox jumps over the lazy dog", "key")

	assert.Equal(t, "f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8", got)
}

func TestNopPublisher(t *testing.T) {
	var p WebhookPublisher = NopPublisher{}

	assert.NoError(t, p.Publish(context.Background(), BoardEvent{Action: ActionLoad}))
}

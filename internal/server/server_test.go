package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-wizard/internal/llm"
	"github.com/jonathan/resume-wizard/internal/server/ratelimit"
)

// fakeAI is a canned-response AI client for handler tests.
type fakeAI struct {
	reply   string
	err     error
	lastReq llm.Request
}

func (f *fakeAI) Chat(_ context.Context, req llm.Request) (string, error) {
	f.lastReq = req
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeAI) Close() error { return nil }

// newTestServer builds a server around a fake AI client with limiters high
// enough to stay out of the way.
func newTestServer(ai llm.Client) *Server {
	return &Server{
		ai:             ai,
		enhanceLimiter: ratelimit.NewLimiter(time.Minute, 1000),
		chatLimiter:    ratelimit.NewLimiter(time.Minute, 1000),
		parseLimiter:   ratelimit.NewLimiter(time.Minute, 1000),
	}
}

func TestHandleHealth(t *testing.T) {
	server := newTestServer(&fakeAI{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	server.handleHealth(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok"`)
}

func TestHandleMethodNotAllowed(t *testing.T) {
	server := newTestServer(&fakeAI{})

	req := httptest.NewRequest(http.MethodGet, "/api/enhance", nil)
	w := httptest.NewRecorder()

	server.handleMethodNotAllowed(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "POST", w.Header().Get("Allow"))
}

package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-wizard/internal/store"
)

func TestDraftTokenService_RoundTrip(t *testing.T) {
	service := NewDraftTokenService("test-secret", time.Hour)
	draftID := uuid.New()

	token, err := service.GenerateToken(draftID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, draftID, claims.DraftID)
}

func TestDraftTokenService_WrongSecret(t *testing.T) {
	issuer := NewDraftTokenService("secret-a", time.Hour)
	verifier := NewDraftTokenService("secret-b", time.Hour)

	token, err := issuer.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestDraftTokenService_Expired(t *testing.T) {
	service := NewDraftTokenService("test-secret", -time.Hour)

	token, err := service.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestDraftTokenService_EmptyToken(t *testing.T) {
	service := NewDraftTokenService("test-secret", time.Hour)

	_, err := service.ValidateToken("")
	assert.Error(t, err)
}

func TestHandleDrafts_NotConfigured(t *testing.T) {
	server := newTestServer(&fakeAI{})

	w := postJSON(t, server.handleCreateDraft, "/api/drafts", `{"name":"Ada"}`)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "Draft storage is not configured")
}

func TestAuthorizeDraft_TokenMismatch(t *testing.T) {
	server := newTestServer(&fakeAI{})
	server.drafts = &store.DraftStore{}
	server.draftTokens = NewDraftTokenService("test-secret", time.Hour)

	draftID := uuid.New()
	otherID := uuid.New()
	token, err := server.draftTokens.GenerateToken(otherID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/drafts/"+draftID.String(), nil)
	req.SetPathValue("id", draftID.String())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	_, ok := server.authorizeDraft(w, req)
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthorizeDraft_InvalidID(t *testing.T) {
	server := newTestServer(&fakeAI{})
	server.drafts = &store.DraftStore{}
	server.draftTokens = NewDraftTokenService("test-secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/api/drafts/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	_, ok := server.authorizeDraft(w, req)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-wizard/internal/builder"
	"github.com/jonathan/resume-wizard/internal/normalize"
	"github.com/jonathan/resume-wizard/internal/store"
)

// CreateDraftResponse is the success body of POST /api/drafts. The token is
// the only credential for the draft; it is returned once and never stored.
type CreateDraftResponse struct {
	ID    uuid.UUID `json:"id"`
	Token string    `json:"token"`
}

func (s *Server) handleCreateDraft(w http.ResponseWriter, r *http.Request) {
	if s.drafts == nil {
		err := &ErrNotConfigured{Feature: "Draft storage"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var raw any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	m, ok := raw.(map[string]any)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	snapshot := sanitizeDraftSnapshot(m)

	id, err := s.drafts.CreateDraft(r.Context(), snapshot)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	token, err := s.draftTokens.GenerateToken(id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to issue draft token")
		return
	}

	s.jsonResponse(w, http.StatusCreated, CreateDraftResponse{ID: id, Token: token})
}

func (s *Server) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	draftID, ok := s.authorizeDraft(w, r)
	if !ok {
		return
	}

	draft, err := s.drafts.GetDraft(r.Context(), draftID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if draft == nil {
		notFound := &ErrDraftNotFound{DraftID: draftID}
		s.errorResponse(w, HTTPStatus(notFound), "Draft not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, draft)
}

func (s *Server) handleDeleteDraft(w http.ResponseWriter, r *http.Request) {
	draftID, ok := s.authorizeDraft(w, r)
	if !ok {
		return
	}

	if err := s.drafts.DeleteDraft(r.Context(), draftID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Draft not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// sanitizeDraftSnapshot runs a client-supplied snapshot through the same
// caps the AI normalizer applies, so nothing unbounded reaches the database.
// Wizard bookkeeping outside the document shape is clamped to the known step
// range. Cap-only on purpose: unlike the chat path this must be idempotent
// across save and load, so no club reclassification here.
func sanitizeDraftSnapshot(m map[string]any) *store.PersistedState {
	ps := &store.PersistedState{
		Name:               normalize.CleanString(m["name"], 180),
		Contact:            normalize.Contact(m["contact"]),
		Objective:          normalize.CleanString(m["objective"], 600),
		Education:          normalize.Education(m["education"], 0),
		ExperienceSections: normalize.ExperienceSections(m["experienceSections"], 0, 0),
		Skills:             normalize.Skills(m["skills"], 0),
		AdditionalInfo:     normalize.StringArray(m["additionalInfo"], 10, 200),
	}
	if _, ok := m["template"]; ok {
		ps.Template = normalize.TemplateOf(m["template"])
	}
	if step, ok := m["currentStep"].(float64); ok {
		if v := int(step); v >= builder.StepTemplate && v <= builder.StepPreview {
			ps.CurrentStep = v
		}
	}
	if list, ok := m["completedSteps"].([]any); ok {
		for _, entry := range list {
			step, ok := entry.(float64)
			if !ok {
				continue
			}
			if v := int(step); v >= builder.StepTemplate && v <= builder.StepPreview {
				ps.CompletedSteps = append(ps.CompletedSteps, v)
			}
		}
	}
	return ps
}

// authorizeDraft parses the draft ID from the path and checks that the
// bearer token was issued for that draft.
func (s *Server) authorizeDraft(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	if s.drafts == nil {
		err := &ErrNotConfigured{Feature: "Draft storage"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return uuid.Nil, false
	}

	draftID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid draft ID")
		return uuid.Nil, false
	}

	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	claims, err := s.draftTokens.ValidateToken(token)
	if err != nil || claims.DraftID != draftID {
		invalid := &ErrInvalidToken{}
		s.errorResponse(w, HTTPStatus(invalid), invalid.Error())
		return uuid.Nil, false
	}

	return draftID, true
}

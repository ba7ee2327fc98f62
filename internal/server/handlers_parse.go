package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/resume-wizard/internal/llm"
	"github.com/jonathan/resume-wizard/internal/normalize"
	"github.com/jonathan/resume-wizard/internal/prompts"
	"github.com/jonathan/resume-wizard/internal/resume"
)

const maxResumeTextLen = 15000

// ParseResumeRequest is the body of POST /api/parse-resume.
type ParseResumeRequest struct {
	Text string `json:"text" validate:"required"`
}

// ParseResumeResponse is the success body of POST /api/parse-resume.
type ParseResumeResponse struct {
	Resume resume.Resume `json:"resume"`
}

func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	if s.limited(s.parseLimiter, w, r) {
		return
	}

	var req ParseResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		s.errorResponse(w, http.StatusBadRequest, "Resume text is required")
		return
	}
	if len(req.Text) > maxResumeTextLen {
		s.errorResponse(w, http.StatusBadRequest, "Resume text is too long (max 15,000 characters)")
		return
	}

	// Resumes pasted from a browser or word processor often arrive as HTML.
	text := strings.TrimSpace(stripHTML(req.Text))
	if text == "" {
		s.errorResponse(w, http.StatusBadRequest, "Resume text is required")
		return
	}

	raw, err := s.ai.Chat(r.Context(), llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: prompts.MustGet("parse.json", "system")},
			{Role: llm.RoleUser, Content: "Parse this resume:\n\n" + text},
		},
		Temperature: 0,
		MaxTokens:   4096,
		JSONOnly:    true,
	})
	if err != nil {
		var upstream *llm.UpstreamError
		if errors.As(err, &upstream) {
			log.Printf("Upstream error status: %d", upstream.Status)
			s.errorResponse(w, http.StatusBadGateway, upstream.Error())
			return
		}
		log.Printf("Parse resume error: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if raw == "" {
		s.errorResponse(w, http.StatusInternalServerError, "No response returned from AI")
		return
	}

	parsed := llm.ExtractJSON(raw)
	if _, ok := parsed.(map[string]any); !ok {
		s.errorResponse(w, http.StatusInternalServerError, "Could not parse AI response into structured data")
		return
	}

	doc := normalize.Resume(parsed, normalize.Limits{MaxSkills: 12, MaxAdditional: 10})
	s.jsonResponse(w, http.StatusOK, ParseResumeResponse{Resume: doc})
}

// htmlMarkers are tags whose presence means the paste is markup rather
// than plain text.
var htmlMarkers = []string{"<html", "<body", "<div", "<p>", "<p ", "<span", "<table", "<br"}

// stripHTML extracts the text content from pasted HTML. Plain text passes
// through untouched, as does anything goquery cannot parse.
func stripHTML(input string) string {
	lower := strings.ToLower(input)
	isHTML := false
	for _, marker := range htmlMarkers {
		if strings.Contains(lower, marker) {
			isHTML = true
			break
		}
	}
	if !isHTML {
		return input
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(input))
	if err != nil {
		return input
	}
	doc.Find("script, style").Remove()

	var sb strings.Builder
	doc.Find("body").Contents().Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(text)
	})
	if sb.Len() == 0 {
		return strings.TrimSpace(doc.Text())
	}
	return sb.String()
}

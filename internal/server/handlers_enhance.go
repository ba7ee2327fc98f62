package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"

	"github.com/jonathan/resume-wizard/internal/llm"
	"github.com/jonathan/resume-wizard/internal/prompts"
)

// EnhanceRequest is the body of POST /api/enhance. The text field is
// preferred; bullet is accepted for backwards compatibility with older
// clients that only sent bullets.
type EnhanceRequest struct {
	Text    string `json:"text"`
	Bullet  string `json:"bullet"`
	Context string `json:"context"`
	Type    string `json:"type" validate:"omitempty,oneof=bullet objective"`
}

// EnhanceResponse is the success body of POST /api/enhance.
type EnhanceResponse struct {
	Suggested string `json:"suggested"`
}

func (s *Server) handleEnhance(w http.ResponseWriter, r *http.Request) {
	if s.limited(s.enhanceLimiter, w, r) {
		return
	}

	var req EnhanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, `Invalid type: must be "bullet" or "objective"`)
		return
	}

	isObjective := req.Type == "objective"
	inputText := req.Text
	if inputText == "" {
		inputText = req.Bullet
	}

	maxLength := 500
	fieldName := "bullet"
	if isObjective {
		maxLength = 1000
		fieldName = "text"
	}

	if strings.TrimSpace(inputText) == "" {
		s.errorResponse(w, http.StatusBadRequest, fieldName+" is required")
		return
	}
	if len(inputText) > maxLength {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("%s must be %d characters or fewer", fieldName, maxLength))
		return
	}

	var systemPrompt string
	if isObjective {
		systemPrompt = prompts.MustGet("enhance.json", "objective_system")
	} else {
		systemPrompt = prompts.Format(prompts.MustGet("enhance.json", "bullet_system"), map[string]string{
			"Verbs": prompts.ActionVerbs(),
		})
	}

	userContent := inputText
	if req.Context != "" {
		userContent = inputText + "\n\nContext: " + req.Context
	}

	raw, err := s.ai.Chat(r.Context(), llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: systemPrompt},
			{Role: llm.RoleUser, Content: userContent},
		},
		Temperature: 0.3,
		MaxTokens:   200,
	})
	if err != nil {
		var upstream *llm.UpstreamError
		if errors.As(err, &upstream) {
			log.Printf("Upstream error status: %d", upstream.Status)
			s.errorResponse(w, http.StatusInternalServerError, "AI service returned an error")
			return
		}
		log.Printf("Enhance error: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if strings.TrimSpace(raw) == "" {
		s.errorResponse(w, http.StatusInternalServerError, "No suggestion returned from AI")
		return
	}

	suggested := ParseEnhanceResponse(raw)
	if suggested == "" {
		s.errorResponse(w, http.StatusInternalServerError, "Could not parse AI response")
		return
	}

	s.jsonResponse(w, http.StatusOK, EnhanceResponse{Suggested: suggested})
}

// Conversational wrappers the model adds around the enhanced text despite
// being told not to.
var enhancePrefixPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^here(?:'s| is) (?:the |an? |your )?(?:enhanced|improved|revised|updated|suggested|better)[\w\s]*?:\s*`),
	regexp.MustCompile(`(?i)^(?:enhanced|improved|revised|updated|suggested)[\w\s]*?:\s*`),
	regexp.MustCompile(`(?i)^sure[,!.]?\s*(?:here(?:'s| is)[\w\s]*?:\s*)?`),
	regexp.MustCompile(`(?i)^(?:certainly|absolutely|of course)[,!.]?\s*(?:here(?:'s| is)[\w\s]*?:\s*)?`),
}

var bulletGlyphPattern = regexp.MustCompile(`^[•\-*]\s*`)

// ParseEnhanceResponse extracts the enhanced text from a raw model reply.
// Models may wrap the text in quotes, add prefixes like "Here's the
// enhanced version:", lead with a bullet glyph, or append an explanation on
// later lines.
func ParseEnhanceResponse(raw string) string {
	text := strings.TrimSpace(raw)

	for _, pattern := range enhancePrefixPatterns {
		text = pattern.ReplaceAllString(text, "")
	}

	text = stripSurroundingQuotes(text, true)
	text = bulletGlyphPattern.ReplaceAllString(text, "")

	// Take the first non-empty line; the model may explain itself afterward.
	lines := []string{}
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	switch {
	case len(lines) > 1:
		// A first line ending with ":" is a label, not the content.
		if strings.HasSuffix(lines[0], ":") {
			text = lines[1]
		} else {
			text = lines[0]
		}
	case len(lines) == 1:
		text = lines[0]
	}

	text = stripSurroundingQuotes(text, false)
	return strings.TrimSpace(text)
}

// stripSurroundingQuotes removes one matched pair of surrounding quotes.
// Smart quotes are only recognized on the first pass, before line
// selection.
func stripSurroundingQuotes(text string, smart bool) string {
	if len(text) < 2 {
		return text
	}
	if (strings.HasPrefix(text, `"`) && strings.HasSuffix(text, `"`)) ||
		(strings.HasPrefix(text, "'") && strings.HasSuffix(text, "'")) {
		return text[1 : len(text)-1]
	}
	if smart && strings.HasPrefix(text, "“") && strings.HasSuffix(text, "”") {
		return strings.TrimSuffix(strings.TrimPrefix(text, "“"), "”")
	}
	return text
}

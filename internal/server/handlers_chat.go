package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/jonathan/resume-wizard/internal/llm"
	"github.com/jonathan/resume-wizard/internal/normalize"
	"github.com/jonathan/resume-wizard/internal/prompts"
	"github.com/jonathan/resume-wizard/internal/resume"
	"github.com/jonathan/resume-wizard/internal/schemas"
)

// Snapshot caps for the chat endpoint. The state echoed into the prompt is
// kept smaller than a full resume to leave token room for conversation.
const (
	maxChatMessages   = 12
	maxChatMessageLen = 1200
)

// ChatRequest is the body of POST /api/builder-chat. Both fields are
// untrusted and sanitized before use.
type ChatRequest struct {
	Messages any `json:"messages"`
	State    any `json:"state"`
}

// ChatReply is the normalized assistant reply: a follow-up question, or a
// completed resume.
type ChatReply struct {
	Type    string         `json:"type"`
	Message string         `json:"message"`
	Resume  *resume.Resume `json:"resume,omitempty"`
}

// ChatResponse is the success body of POST /api/builder-chat.
type ChatResponse struct {
	Reply ChatReply `json:"reply"`
}

func (s *Server) handleBuilderChat(w http.ResponseWriter, r *http.Request) {
	if s.limited(s.chatLimiter, w, r) {
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	messages := sanitizeMessages(req.Messages)
	if len(messages) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "At least one message is required.")
		return
	}

	snapshot := sanitizeStateSnapshot(req.State)
	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		log.Printf("Builder chat error: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	formatPrompt := prompts.Format(prompts.MustGet("chat.json", "format"), map[string]string{
		"State": string(snapshotJSON),
	})

	chatMessages := []llm.Message{
		{Role: llm.RoleSystem, Content: prompts.MustGet("chat.json", "system")},
		{Role: llm.RoleSystem, Content: formatPrompt},
	}
	chatMessages = append(chatMessages, messages...)

	raw, err := s.ai.Chat(r.Context(), llm.Request{
		Messages:    chatMessages,
		Temperature: 0,
		MaxTokens:   2048,
		JSONOnly:    true,
	})
	if err != nil {
		var upstream *llm.UpstreamError
		if errors.As(err, &upstream) {
			log.Printf("Upstream error status: %d", upstream.Status)
			s.errorResponse(w, http.StatusBadGateway, fmt.Sprintf("AI service error (%d)", upstream.Status))
			return
		}
		log.Printf("Builder chat error: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if raw == "" {
		s.errorResponse(w, http.StatusInternalServerError, "No response returned from AI")
		return
	}

	parsed := llm.ExtractJSON(raw)
	if parsed == nil {
		s.errorResponse(w, http.StatusInternalServerError, "AI reply did not match expected schema")
		return
	}
	if err := schemas.ValidateReply(parsed); err != nil {
		log.Printf("Builder chat reply rejected: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "AI reply did not match expected schema")
		return
	}

	reply, ok := normalizeReply(parsed)
	if !ok {
		s.errorResponse(w, http.StatusInternalServerError, "AI reply did not match expected schema")
		return
	}

	s.jsonResponse(w, http.StatusOK, ChatResponse{Reply: reply})
}

// sanitizeMessages coerces the untrusted message list into clean user and
// assistant turns, keeping only the most recent ones.
func sanitizeMessages(input any) []llm.Message {
	list, ok := input.([]any)
	if !ok {
		return nil
	}

	out := []llm.Message{}
	for _, entry := range list {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		role, _ := m["role"].(string)
		if role != llm.RoleUser && role != llm.RoleAssistant {
			continue
		}
		content := normalize.CleanString(m["content"], maxChatMessageLen)
		if content == "" {
			continue
		}
		out = append(out, llm.Message{Role: role, Content: content})
	}

	if len(out) > maxChatMessages {
		out = out[len(out)-maxChatMessages:]
	}
	return out
}

// sanitizeStateSnapshot shapes the client-reported wizard state into a
// bounded resume for echoing back to the model, with tighter list caps than
// the full document.
func sanitizeStateSnapshot(input any) resume.Resume {
	m, _ := input.(map[string]any)
	return resume.Resume{
		Template:           normalize.TemplateOf(m["template"]),
		Name:               normalize.CleanString(m["name"], 180),
		Contact:            normalize.Contact(m["contact"]),
		Objective:          normalize.CleanString(m["objective"], 600),
		Education:          normalize.Education(m["education"], 4),
		ExperienceSections: normalize.ExperienceSections(m["experienceSections"], 4, 4),
		Skills:             normalize.Skills(m["skills"], 10),
		AdditionalInfo:     normalize.StringArray(m["additionalInfo"], 8, 200),
	}
}

// normalizeReply maps the validated reply envelope onto a ChatReply,
// substituting default messages when the model left them blank.
func normalizeReply(raw any) (ChatReply, bool) {
	m, ok := raw.(map[string]any)
	if !ok {
		return ChatReply{}, false
	}

	message := normalize.CleanString(m["message"], 800)

	switch m["type"] {
	case "question":
		if message == "" {
			message = "What role and industry are you targeting?"
		}
		return ChatReply{Type: "question", Message: message}, true
	case "resume":
		if m["resume"] == nil {
			return ChatReply{}, false
		}
		if message == "" {
			message = "Drafted your resume."
		}
		doc := normalize.Resume(m["resume"], normalize.Limits{MaxSkills: 10, MaxAdditional: 8})
		return ChatReply{Type: "resume", Message: message, Resume: &doc}, true
	}
	return ChatReply{}, false
}

package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-wizard/internal/llm"
)

func TestHandleParseResume_Success(t *testing.T) {
	reply := `{"name":"Grace Hopper","contact":{"email":"grace@navy.mil"},"education":[{"institution":"Yale","degree":"PhD Mathematics","dates":"1930 to 1934"}],"experienceSections":[{"title":"Work Experience","items":[{"title":"Rear Admiral","organization":"US Navy","bullets":["Invented the compiler"]}]}]}`
	ai := &fakeAI{reply: reply}
	server := newTestServer(ai)

	w := postJSON(t, server.handleParseResume, "/api/parse-resume", `{"text":"Grace Hopper\ngrace@navy.mil\nYale PhD"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp ParseResumeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Grace Hopper", resp.Resume.Name)
	assert.Equal(t, "grace@navy.mil", resp.Resume.Contact.Email)
	require.Len(t, resp.Resume.Education, 1)
	assert.Equal(t, "1930 - 1934", resp.Resume.Education[0].Dates)
	require.Len(t, resp.Resume.ExperienceSections, 1)
	assert.Equal(t, []string{"Invented the compiler"}, resp.Resume.ExperienceSections[0].Items[0].Bullets)

	assert.Contains(t, ai.lastReq.Messages[1].Content, "Parse this resume:\n\nGrace Hopper")
}

func TestHandleParseResume_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		errPart string
	}{
		{
			name:    "missing text",
			body:    `{}`,
			errPart: "Resume text is required",
		},
		{
			name:    "whitespace only",
			body:    `{"text":"   "}`,
			errPart: "Resume text is required",
		},
		{
			name:    "too long",
			body:    `{"text":"` + strings.Repeat("a", 15001) + `"}`,
			errPart: "Resume text is too long (max 15,000 characters)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(&fakeAI{reply: "{}"})
			w := postJSON(t, server.handleParseResume, "/api/parse-resume", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.errPart)
		})
	}
}

func TestHandleParseResume_UpstreamDetail(t *testing.T) {
	server := newTestServer(&fakeAI{err: &llm.UpstreamError{Status: 402, Detail: "Insufficient credits"}})

	w := postJSON(t, server.handleParseResume, "/api/parse-resume", `{"text":"some resume"}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Insufficient credits")
}

func TestHandleParseResume_NonObjectReply(t *testing.T) {
	server := newTestServer(&fakeAI{reply: `["not","an","object"]`})

	w := postJSON(t, server.handleParseResume, "/api/parse-resume", `{"text":"some resume"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Could not parse AI response into structured data")
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text untouched",
			input: "Grace Hopper\nYale University",
			want:  "Grace Hopper\nYale University",
		},
		{
			name:  "angle brackets without markup untouched",
			input: "Skills: C++ templates like vector<int>",
			want:  "Skills: C++ templates like vector<int>",
		},
		{
			name:  "extracts text from markup",
			input: "<html><body><div>Grace Hopper</div><p>Yale University</p></body></html>",
			want:  "Grace Hopper\nYale University",
		},
		{
			name:  "drops script content",
			input: "<div>Grace Hopper</div><script>alert('x')</script>",
			want:  "Grace Hopper",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripHTML(tt.input))
		})
	}
}

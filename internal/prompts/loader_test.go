package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	for _, key := range []struct{ file, key string }{
		{"enhance.json", "bullet_system"},
		{"enhance.json", "objective_system"},
		{"chat.json", "system"},
		{"parse.json", "system"},
	} {
		prompt, err := Get(key.file, key.key)
		require.NoError(t, err, "%s %s", key.file, key.key)
		assert.NotEmpty(t, prompt)
	}
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("enhance.json", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("missing.json", "system")
	require.Error(t, err)
}

func TestMustGet_Panics(t *testing.T) {
	assert.Panics(t, func() { MustGet("missing.json", "system") })
	assert.NotEmpty(t, MustGet("chat.json", "system"))
}

func TestFormat(t *testing.T) {
	out := Format("Hello {{.Name}}, state: {{.State}}", map[string]string{
		"Name":  "Ada",
		"State": `{"step":1}`,
	})
	assert.Equal(t, `Hello Ada, state: {"step":1}`, out)

	// Unknown placeholders are left in place
	assert.Equal(t, "x {{.Gone}}", Format("x {{.Gone}}", nil))
}

func TestActionVerbs(t *testing.T) {
	verbs := ActionVerbs()
	list := strings.Split(verbs, ", ")

	seen := map[string]bool{}
	for _, v := range list {
		assert.False(t, seen[v], "duplicate verb %q", v)
		seen[v] = true
	}
	// Verbs shared across categories appear once
	assert.True(t, seen["Developed"])
	assert.True(t, seen["Spearheaded"])
}

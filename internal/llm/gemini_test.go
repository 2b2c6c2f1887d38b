package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(batchSchema().Definition)

	assert.Equal(t, genai.TypeObject, s.Type)
	assert.Equal(t, []string{"questions"}, s.Required)
	q := s.Properties["questions"]
	require.NotNil(t, q)
	assert.Equal(t, genai.TypeArray, q.Type)
	require.NotNil(t, q.MinItems)
	assert.Equal(t, int64(1), *q.MinItems)
	assert.Equal(t, []string{"eng-to-kor", "kor-to-eng", "fill-blank"}, q.Items.Properties["type"].Enum)
}

func TestGeminiSchema_GoBuiltLists(t *testing.T) {
	s := geminiSchema(map[string]any{
		"type":     "object",
		"required": []string{"question"},
		"properties": map[string]any{
			"question": map[string]any{"type": "string", "description": "문제"},
			"score":    map[string]any{"type": "mystery"},
		},
	})
	assert.Equal(t, []string{"question"}, s.Required)
	assert.Equal(t, "문제", s.Properties["question"].Description)
	assert.Equal(t, genai.TypeString, s.Properties["score"].Type)
}

func TestGeminiAliases(t *testing.T) {
	assert.Equal(t, "gemini-2.5-flash", modelAlias("gemini-flash", geminiAliases))
	assert.Equal(t, "gemini-2.5-flash-lite", modelAlias("gemini-flash-lite", geminiAliases))
	assert.Equal(t, "gemini-3-pro-preview", modelAlias("gemini-3-pro-preview", geminiAliases))
}

package tutor

import "github.com/aidu/english/internal/llm"

// ReplySchema wraps a chat answer.
var ReplySchema = &llm.Schema{
	Name:        "tutor-reply",
	Description: "The tutor's answer to the student's message",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"reply": map[string]any{
				"type":        "string",
				"description": "Answer in Korean, with English examples where useful",
			},
		},
		"required":             []any{"reply"},
		"additionalProperties": false,
	},
}

// ExplanationSchema defines a grammar explanation.
var ExplanationSchema = &llm.Schema{
	Name:        "grammar-explanation",
	Description: "An explanation of one grammar point with examples and study tips",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanation": map[string]any{
				"type":        "string",
				"description": "Concept explanation in Korean (3-4 sentences)",
			},
			"examples": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"description": "Three English example sentences, each followed by its Korean translation in parentheses",
			},
			"tips": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"description": "Two short study tips in Korean",
			},
		},
		"required":             []any{"explanation", "examples", "tips"},
		"additionalProperties": false,
	},
}

// ExampleSchema defines one example sentence.
var ExampleSchema = &llm.Schema{
	Name:        "example-sentence",
	Description: "One English sentence using the word, with a Korean translation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"sentence": map[string]any{
				"type":        "string",
				"description": "English sentence containing the word",
			},
			"translation": map[string]any{
				"type":        "string",
				"description": "Korean translation of the sentence",
			},
		},
		"required":             []any{"sentence", "translation"},
		"additionalProperties": false,
	},
}

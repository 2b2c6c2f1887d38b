package questions

import (
	"github.com/aidu/english/internal/curriculum"
	"github.com/aidu/english/internal/llm"
	"github.com/aidu/english/internal/quiz"
)

// allowedTypes lists the question types each activity may produce.
var allowedTypes = map[curriculum.Activity][]quiz.QuestionType{
	curriculum.ActivityVocabulary: {quiz.TypeEngToKor, quiz.TypeKorToEng, quiz.TypeFillBlank, quiz.TypeSpelling},
	curriculum.ActivityGrammar:    {quiz.TypeMultipleChoice, quiz.TypeFillBlank, quiz.TypeErrorCorrection},
	curriculum.ActivityReading:    {quiz.TypeComprehension, quiz.TypeInference, quiz.TypeVocabulary},
}

// questionSchema returns the response schema for an activity's batch.
func questionSchema(activity curriculum.Activity) *llm.Schema {
	types := allowedTypes[activity]
	enum := make([]any, len(types))
	for i, t := range types {
		enum[i] = string(t)
	}

	return &llm.Schema{
		Name:        string(activity) + "-questions",
		Description: "A batch of four-option English quiz questions for Korean students",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"type": map[string]any{
								"type":        "string",
								"enum":        enum,
								"description": "Question type",
							},
							"question": map[string]any{
								"type":        "string",
								"description": "The question text shown to the student",
							},
							"options": map[string]any{
								"type":        "array",
								"items":       map[string]any{"type": "string"},
								"description": "Exactly 4 distinct options, or none for spelling",
							},
							"correctAnswer": map[string]any{
								"type":        "string",
								"description": "The text of the correct option copied exactly, or the English word for spelling",
							},
							"explanation": map[string]any{
								"type":        "string",
								"description": "A short explanation in Korean",
							},
						},
						"required":             []any{"type", "question", "options", "correctAnswer", "explanation"},
						"additionalProperties": false,
					},
				},
			},
			"required":             []any{"questions"},
			"additionalProperties": false,
		},
	}
}

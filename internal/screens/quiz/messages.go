package quiz

import (
	qz "github.com/aidu/english/internal/quiz"
)

// questionsLoadedMsg is sent when the question source has answered.
type questionsLoadedMsg struct {
	owner     *QuizScreen
	Questions []qz.Question
	Err       error
}

// timerTickMsg is sent every second while the quiz runs.
type timerTickMsg struct {
	owner *QuizScreen
}

package tutor

import (
	"fmt"
	"strings"

	"github.com/aidu/english/internal/curriculum"
)

const chatSystemPrompt = `당신은 한국 중고등학생을 돕는 친절한 영어 학습 튜터입니다.
학생의 질문에 명확하고 이해하기 쉽게 답하세요.

- 문법 질문: 개념 설명과 예문
- 단어 질문: 뜻, 예문, 유의어
- 작문 첨삭: 고친 문장과 고친 이유
- 답은 항상 한국어로, 영어 예문은 영어로 씁니다.
- 영어 학습과 관계없는 요청은 정중히 거절하고 공부 이야기로 돌아옵니다.`

// chatSystem appends the learning context to the chat prompt.
func chatSystem(lc Context) string {
	if lc.IsZero() {
		return chatSystemPrompt
	}
	return chatSystemPrompt + "\n\n현재 학습 맥락:\n" + lc.String()
}

const explainSystemPrompt = `당신은 한국 중고등학생에게 영어 문법을 가르치는 선생님입니다. 어려운 용어 대신 쉬운 말로 설명합니다.`

func buildExplainMessage(gp curriculum.GrammarPoint) string {
	var b strings.Builder
	fmt.Fprintf(&b, "문법: %s", gp.Title)
	if gp.TitleKorean != "" {
		fmt.Fprintf(&b, " (%s)", gp.TitleKorean)
	}
	b.WriteString("\n")
	if gp.Explanation != "" {
		fmt.Fprintf(&b, "교재 설명: %s\n", gp.Explanation)
	}
	if len(gp.Examples) > 0 {
		b.WriteString("교재 예문:\n")
		for _, ex := range gp.Examples {
			fmt.Fprintf(&b, "- %s\n", ex.Sentence)
		}
	}
	b.WriteString(`
지시사항:
1. 학생이 쉽게 이해하도록 개념을 3-4문장으로 설명하세요.
2. 교재 예문과 다른 새 예문 3개를 쓰고, 각 예문 뒤 괄호 안에 한국어 번역을 붙이세요.
3. 학습 팁 2개를 짧게 쓰세요.`)
	return b.String()
}

const exampleSystemPrompt = `당신은 영어 단어 학습용 예문을 쓰는 선생님입니다.`

func buildExampleMessage(w curriculum.Word, d Difficulty) string {
	var b strings.Builder
	fmt.Fprintf(&b, "단어: %s", w.English)
	if w.Korean != "" {
		fmt.Fprintf(&b, " (%s)", w.Korean)
	}
	if w.PartOfSpeech != "" {
		fmt.Fprintf(&b, ", 품사: %s", w.PartOfSpeech)
	}
	fmt.Fprintf(&b, "\n\n이 단어를 그대로 포함한 %s 영어 예문 1개와 한국어 번역을 쓰세요.", d.guide())
	if w.Example != "" {
		fmt.Fprintf(&b, "\n교재 예문과 다른 문장으로 쓰세요: %s", w.Example)
	}
	return b.String()
}

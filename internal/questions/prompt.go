package questions

import (
	"fmt"
	"strings"

	"github.com/aidu/english/internal/quiz"
)

const systemPrompt = `당신은 한국 중고등학생을 가르치는 영어 교사입니다.

규칙:
- 학생의 학년 수준에 맞는 문제를 만듭니다.
- 모든 문제는 4개의 서로 다른 선택지를 가집니다.
- correctAnswer는 선택지 중 하나와 글자 그대로 일치해야 합니다.
- 설명(explanation)은 한국어로 짧게 씁니다.
- 같은 문제를 반복하지 않습니다.`

func buildUserMessage(req Request) string {
	var b strings.Builder
	n := req.count()

	switch {
	case req.Grammar != nil:
		gp := req.Grammar
		fmt.Fprintf(&b, "다음 문법 포인트에 대한 %d개의 테스트 문제를 생성해주세요.\n\n", n)
		fmt.Fprintf(&b, "문법 포인트: %s (%s)\n", gp.Title, gp.TitleKorean)
		fmt.Fprintf(&b, "설명: %s\n", gp.Explanation)
		b.WriteString("예문:\n")
		for _, ex := range gp.Examples {
			fmt.Fprintf(&b, "%s\n", ex.Sentence)
		}
		b.WriteString("\n문제 유형:\n")
		b.WriteString("- 객관식 (multiple-choice): 4개 선택지\n")
		b.WriteString("- 빈칸 채우기 (fill-blank)\n")
		b.WriteString("- 오류 찾기 (error-correction)\n")

	case req.Reading != nil:
		r := req.Reading
		fmt.Fprintf(&b, "다음 지문을 읽고 %d개의 독해 문제를 생성해주세요.\n\n", n)
		fmt.Fprintf(&b, "제목: %s\n\n%s\n\n", r.Title, r.Passage)
		b.WriteString("문제 유형:\n")
		b.WriteString("- 내용 이해 (comprehension)\n")
		b.WriteString("- 추론 (inference)\n")
		b.WriteString("- 어휘 (vocabulary)\n")

	default:
		fmt.Fprintf(&b, "다음 단어 목록을 사용하여 %d개의 영어 단어 테스트 문제를 생성해주세요.\n\n", n)
		b.WriteString("단어 목록:\n")
		for i, w := range req.Words {
			fmt.Fprintf(&b, "%d. %s - %s (예문: %s)\n", i+1, w.English, w.Korean, w.Example)
		}
		fmt.Fprintf(&b, "\n문제 유형: %s\n", vocabTypeLabel(req.Type))
		b.WriteString("\n요구사항:\n")
		b.WriteString("1. 각 문제는 4개의 선택지를 가져야 합니다\n")
		b.WriteString("2. 선택지는 제시된 단어 목록에서만 선택\n")
		if req.Type == quiz.TypeFillBlank {
			b.WriteString("3. 일부는 철자 쓰기 (spelling) 문제로: options는 빈 배열, correctAnswer는 영어 단어\n")
		}
	}

	b.WriteString("\nJSON만 반환하고 다른 텍스트는 포함하지 마세요.")
	return b.String()
}

func vocabTypeLabel(t quiz.QuestionType) string {
	switch t {
	case quiz.TypeEngToKor:
		return "영→한"
	case quiz.TypeKorToEng:
		return "한→영"
	case quiz.TypeFillBlank:
		return "예문 빈칸 채우기 (fill-blank)"
	default:
		return "영→한, 한→영, 빈칸 채우기 혼합"
	}
}

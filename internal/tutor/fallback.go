package tutor

import (
	"fmt"

	"github.com/aidu/english/internal/curriculum"
)

const (
	unavailableText = "AI 튜터를 지금은 사용할 수 없어요. API 키를 설정하면 질문에 답해 드릴게요."
	failedText      = "답변을 만드는 중에 문제가 생겼어요. 잠시 후 다시 물어봐 주세요."
)

var staticTips = []string{
	"예문을 소리 내어 읽으며 규칙이 어디에 쓰였는지 찾아보세요.",
	"틀린 문제의 해설을 다시 보고 비슷한 문장을 직접 만들어 보세요.",
}

// staticExplanation builds an explanation from the catalog entry.
func staticExplanation(gp curriculum.GrammarPoint) Explanation {
	ex := Explanation{Title: title(gp), Explanation: gp.Explanation, Tips: staticTips}
	if ex.Explanation == "" {
		ex.Explanation = fmt.Sprintf("%s에 대한 설명입니다.", ex.Title)
	}
	for _, e := range gp.Examples {
		line := e.Sentence
		if e.Translation != "" {
			line += " (" + e.Translation + ")"
		}
		ex.Examples = append(ex.Examples, line)
	}
	return ex
}

func staticExample(w curriculum.Word) Example {
	if w.Example != "" {
		return Example{Sentence: w.Example, Translation: w.ExampleKorean}
	}
	return Example{
		Sentence:    fmt.Sprintf("I use \"%s\" every day.", w.English),
		Translation: fmt.Sprintf("나는 매일 \"%s\"를 사용합니다.", w.English),
	}
}

func title(gp curriculum.GrammarPoint) string {
	if gp.TitleKorean != "" {
		return gp.TitleKorean
	}
	return gp.Title
}

package questions

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/aidu/english/internal/curriculum"
	"github.com/aidu/english/internal/quiz"
)

const blank = "_____"

// StaticSource builds questions without any network access. The same
// request always yields the same questions.
type StaticSource struct{}

// NewStaticSource returns the deterministic source.
func NewStaticSource() *StaticSource {
	return &StaticSource{}
}

func (s *StaticSource) Questions(_ context.Context, req Request) ([]quiz.Question, error) {
	if err := req.check(); err != nil {
		return nil, err
	}

	var qs []quiz.Question
	switch req.Activity {
	case curriculum.ActivityVocabulary:
		qs = vocabularyQuestions(req, newRand(req))
	case curriculum.ActivityGrammar:
		qs = fixedQuestions(grammarQuestions, req.count(), "")
	case curriculum.ActivityReading:
		qs = fixedQuestions(readingQuestions, req.count(), req.Reading.Passage)
	}
	if len(qs) == 0 {
		return nil, fmt.Errorf("%s: %w", req.SetID, ErrNoValidQuestions)
	}
	renumber(req.SetID, qs)
	return qs, nil
}

// newRand seeds a generator from the set id and the word ids.
func newRand(req Request) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(req.SetID))
	for _, w := range req.Words {
		h.Write([]byte{0})
		h.Write([]byte(w.ID))
	}
	seed := h.Sum64()
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func vocabularyQuestions(req Request, rng *rand.Rand) []quiz.Question {
	words := slices.Clone(req.Words)
	rng.Shuffle(len(words), func(i, j int) { words[i], words[j] = words[j], words[i] })
	words = words[:min(req.count(), len(words))]

	var out []quiz.Question
	for i, w := range words {
		kind := req.Type
		if kind == TypeMixed || kind == "" {
			kind = quiz.TypeEngToKor
			if i%2 == 1 {
				kind = quiz.TypeKorToEng
			}
		}

		// Every third fill-in is typed instead of picked.
		if kind == quiz.TypeFillBlank && i%3 == 2 {
			out = append(out, spellingQuestion(w))
			continue
		}

		q, ok := vocabularyQuestion(kind, w, req.Words, rng)
		if !ok && kind == quiz.TypeFillBlank {
			q, ok = vocabularyQuestion(quiz.TypeEngToKor, w, req.Words, rng)
		}
		if ok {
			out = append(out, q)
		}
	}
	return out
}

func vocabularyQuestion(kind quiz.QuestionType, w curriculum.Word, all []curriculum.Word, rng *rand.Rand) (quiz.Question, bool) {
	korean := func(x curriculum.Word) string { return x.Korean }
	english := func(x curriculum.Word) string { return x.English }

	q := quiz.Question{Type: kind}
	var field func(curriculum.Word) string
	switch kind {
	case quiz.TypeKorToEng:
		field = english
		q.Prompt = fmt.Sprintf("\"%s\"에 해당하는 영어 단어는?", w.Korean)
		q.Explanation = fmt.Sprintf("정답: %s", w.English)
	case quiz.TypeFillBlank:
		sentence, ok := blankOut(w.Example, w.English)
		if !ok {
			return quiz.Question{}, false
		}
		field = english
		q.Prompt = "빈칸에 들어갈 알맞은 단어는?"
		q.Passage = sentence
		q.Explanation = strings.TrimSpace(w.Example + " " + parenthesize(w.ExampleKorean))
	default:
		field = korean
		q.Type = quiz.TypeEngToKor
		q.Prompt = fmt.Sprintf("\"%s\"의 뜻으로 알맞은 것은?", w.English)
		q.Explanation = fmt.Sprintf("정답: %s", w.Korean)
	}

	answer := field(w)
	options := append(distractors(w, all, field, 3, rng), answer)
	if len(options) < 2 {
		return quiz.Question{}, false
	}
	rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })
	q.Options = options
	q.Answer = quiz.SingleAnswer(answer)
	return q, true
}

// spellingQuestion asks for w typed from its meaning, with the example
// sentence blanked out as a hint when one exists.
func spellingQuestion(w curriculum.Word) quiz.Question {
	q := quiz.Question{
		Type:        quiz.TypeSpelling,
		Prompt:      fmt.Sprintf("\"%s\"을(를) 영어로 입력하세요.", w.Korean),
		Answer:      quiz.SingleAnswer(w.English),
		Explanation: fmt.Sprintf("정답: %s", w.English),
	}
	if sentence, ok := blankOut(w.Example, w.English); ok {
		q.Passage = sentence
	}
	return q
}

// distractors picks up to n distinct wrong options from the other words.
func distractors(w curriculum.Word, all []curriculum.Word, field func(curriculum.Word) string, n int, rng *rand.Rand) []string {
	answer := field(w)
	var pool []string
	for _, o := range all {
		v := field(o)
		if o.ID == w.ID || v == "" || v == answer || slices.Contains(pool, v) {
			continue
		}
		pool = append(pool, v)
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return pool[:min(n, len(pool))]
}

// blankOut replaces the first case-insensitive occurrence of word in
// sentence with a blank.
func blankOut(sentence, word string) (string, bool) {
	if sentence == "" || word == "" {
		return "", false
	}
	haystack, needle := sentence, word
	if lower := strings.ToLower(sentence); len(lower) == len(sentence) {
		haystack, needle = lower, strings.ToLower(word)
	}
	i := strings.Index(haystack, needle)
	if i < 0 {
		return "", false
	}
	return sentence[:i] + blank + sentence[i+len(needle):], true
}

func parenthesize(s string) string {
	if s == "" {
		return ""
	}
	return "(" + s + ")"
}

func fixedQuestions(set []quiz.Question, n int, passage string) []quiz.Question {
	out := slices.Clone(set[:min(n, len(set))])
	for i := range out {
		out[i].Options = slices.Clone(out[i].Options)
		if passage != "" {
			out[i].Passage = passage
		}
	}
	return out
}

var grammarQuestions = []quiz.Question{
	{
		Type:   quiz.TypeMultipleChoice,
		Prompt: "다음 중 현재진행형으로 올바른 문장은?",
		Options: []string{
			"I am studying English now.",
			"I studying English now.",
			"I am study English now.",
			"I studies English now.",
		},
		Answer:      quiz.SingleAnswer("I am studying English now."),
		Explanation: "현재진행형은 \"be동사 + 동사ing\" 형태입니다.",
	},
	{
		Type:        quiz.TypeMultipleChoice,
		Prompt:      "빈칸에 들어갈 알맞은 말은? \"She ___ to school every day.\"",
		Options:     []string{"go", "goes", "going", "is go"},
		Answer:      quiz.SingleAnswer("goes"),
		Explanation: "3인칭 단수 현재형은 동사에 s/es를 붙입니다.",
	},
	{
		Type:        quiz.TypeMultipleChoice,
		Prompt:      "다음 문장의 시제는? \"I have lived here for 5 years.\"",
		Options:     []string{"현재시제", "과거시제", "현재완료", "미래시제"},
		Answer:      quiz.SingleAnswer("현재완료"),
		Explanation: "\"have + p.p\" 형태는 현재완료입니다.",
	},
	{
		Type:        quiz.TypeMultipleChoice,
		Prompt:      "빈칸에 들어갈 알맞은 말은? \"They ___ playing soccer now.\"",
		Options:     []string{"is", "am", "are", "be"},
		Answer:      quiz.SingleAnswer("are"),
		Explanation: "They는 복수이므로 are를 사용합니다.",
	},
	{
		Type:        quiz.TypeMultipleChoice,
		Prompt:      "과거형이 올바르지 않은 것은?",
		Options:     []string{"go - went", "eat - ate", "run - ran", "study - studyed"},
		Answer:      quiz.SingleAnswer("study - studyed"),
		Explanation: "study의 과거형은 studied입니다.",
	},
}

var readingQuestions = []quiz.Question{
	{
		Type:        quiz.TypeComprehension,
		Prompt:      "지문의 주제로 가장 적절한 것은?",
		Options:     []string{"일상생활", "여행 경험", "학교생활", "취미생활"},
		Answer:      quiz.SingleAnswer("일상생활"),
		Explanation: "전반적으로 일상적인 활동들을 설명하고 있습니다.",
	},
	{
		Type:        quiz.TypeComprehension,
		Prompt:      "글쓴이가 아침에 하는 일이 아닌 것은?",
		Options:     []string{"양치질", "아침식사", "숙제하기", "학교 가기"},
		Answer:      quiz.SingleAnswer("숙제하기"),
		Explanation: "숙제는 방과 후에 한다고 나와 있습니다.",
	},
	{
		Type:        quiz.TypeComprehension,
		Prompt:      "글쓴이의 점심시간은?",
		Options:     []string{"11:30", "12:00", "12:30", "13:00"},
		Answer:      quiz.SingleAnswer("12:30"),
		Explanation: "We have lunch at 12:30.",
	},
}

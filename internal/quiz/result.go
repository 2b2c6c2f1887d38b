package quiz

import (
	"net/url"
	"strconv"
	"strings"
)

// PassingScore is the lowest passing score.
const PassingScore = 70

// Result summarizes a finished quiz.
type Result struct {
	Score            int
	CorrectCount     int
	Total            int
	ElapsedSeconds   int
	WrongQuestionIDs []string
}

// Score returns 100*correct/total rounded half up.
func Score(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*correct + total) / (2 * total)
}

// Passed reports whether the score reaches PassingScore.
func (r Result) Passed() bool { return r.Score >= PassingScore }

type band struct {
	min     int
	letter  string
	message string
}

var bands = []band{
	{90, "A+", "완벽합니다!"},
	{80, "A", "훌륭해요!"},
	{70, "B+", "잘했어요!"},
	{60, "B", "좋아요!"},
	{50, "C", "조금만 더!"},
	{0, "D", "복습이 필요해요."},
}

func (r Result) band() band {
	for _, b := range bands {
		if r.Score >= b.min {
			return b
		}
	}
	return bands[len(bands)-1]
}

// Letter returns the grade band: A+, A, B+, B, C or D.
func (r Result) Letter() string { return r.band().letter }

// Message returns the encouragement shown with the letter.
func (r Result) Message() string { return r.band().message }

// Query encodes r for handing across a screen boundary.
func (r Result) Query() url.Values {
	v := url.Values{}
	v.Set("score", strconv.Itoa(r.Score))
	v.Set("correctCount", strconv.Itoa(r.CorrectCount))
	v.Set("total", strconv.Itoa(r.Total))
	v.Set("elapsedSeconds", strconv.Itoa(r.ElapsedSeconds))
	v.Set("wrongIds", strings.Join(r.WrongQuestionIDs, ","))
	return v
}

// ParseResult decodes what Query produced. Missing or malformed numbers
// read as zero and an empty wrongIds yields no ids.
func ParseResult(v url.Values) Result {
	r := Result{
		Score:          atoi(v.Get("score")),
		CorrectCount:   atoi(v.Get("correctCount")),
		Total:          atoi(v.Get("total")),
		ElapsedSeconds: atoi(v.Get("elapsedSeconds")),
	}
	for _, id := range strings.Split(v.Get("wrongIds"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			r.WrongQuestionIDs = append(r.WrongQuestionIDs, id)
		}
	}
	return r
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

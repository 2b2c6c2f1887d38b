package quiz

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLetterBands(t *testing.T) {
	tests := []struct {
		score   int
		letter  string
		message string
		passed  bool
	}{
		{100, "A+", "완벽합니다!", true},
		{90, "A+", "완벽합니다!", true},
		{89, "A", "훌륭해요!", true},
		{70, "B+", "잘했어요!", true},
		{69, "B", "좋아요!", false},
		{50, "C", "조금만 더!", false},
		{49, "D", "복습이 필요해요.", false},
		{0, "D", "복습이 필요해요.", false},
	}
	for _, tt := range tests {
		r := Result{Score: tt.score}
		assert.Equal(t, tt.letter, r.Letter(), "score %d", tt.score)
		assert.Equal(t, tt.message, r.Message(), "score %d", tt.score)
		assert.Equal(t, tt.passed, r.Passed(), "score %d", tt.score)
	}
}

func TestQueryRoundTrip(t *testing.T) {
	r := Result{Score: 60, CorrectCount: 6, Total: 10, ElapsedSeconds: 83, WrongQuestionIDs: []string{"a-q1", "a-q4"}}
	v := r.Query()
	assert.Equal(t, "a-q1,a-q4", v.Get("wrongIds"))
	assert.Equal(t, r, ParseResult(v))
}

func TestParseResult_Tolerant(t *testing.T) {
	v := url.Values{"score": {"abc"}, "total": {" 5 "}, "wrongIds": {""}}
	got := ParseResult(v)
	assert.Equal(t, Result{Total: 5}, got)
	assert.Nil(t, got.WrongQuestionIDs)

	assert.Equal(t, Result{}, ParseResult(url.Values{}))
	assert.Equal(t, []string{"x"}, ParseResult(url.Values{"wrongIds": {",x,,"}}).WrongQuestionIDs)
}

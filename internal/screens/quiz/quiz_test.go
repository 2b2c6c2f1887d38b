package quiz

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidu/english/internal/curriculum"
	"github.com/aidu/english/internal/progress"
	"github.com/aidu/english/internal/questions"
	qz "github.com/aidu/english/internal/quiz"
	"github.com/aidu/english/internal/router"
	"github.com/aidu/english/internal/screen"
	"github.com/aidu/english/internal/screens/result"
	"github.com/aidu/english/internal/store"
)

type memBackend struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (m *memBackend) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memBackend) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = map[string][]byte{}
	}
	m.data[key] = value
	return nil
}

func (m *memBackend) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

type fakeSource struct {
	qs    []qz.Question
	err   error
	calls int
	req   questions.Request
}

func (f *fakeSource) Questions(_ context.Context, req questions.Request) ([]qz.Question, error) {
	f.calls++
	f.req = req
	return f.qs, f.err
}

type attemptLog struct {
	attempts []store.Attempt
}

func (a *attemptLog) Record(_ context.Context, at store.Attempt) error {
	a.attempts = append(a.attempts, at)
	return nil
}

func (a *attemptLog) Recent(context.Context, store.QueryOpts) ([]store.Attempt, error) {
	return a.attempts, nil
}

func twoQuestions() []qz.Question {
	return []qz.Question{
		{ID: "vocab-set-a-q1", Type: qz.TypeEngToKor, Prompt: "'play'의 뜻은?", Options: []string{"먹다", "놀다", "자다", "읽다"}, Answer: qz.SingleAnswer("놀다")},
		{ID: "vocab-set-a-q2", Type: qz.TypeKorToEng, Prompt: "'읽다'를 영어로?", Options: []string{"read", "run", "sing", "swim"}, Answer: qz.SingleAnswer("read")},
	}
}

type fixture struct {
	screen   *QuizScreen
	source   *fakeSource
	progress *progress.Store
	attempts *attemptLog
}

func newFixture(t *testing.T, setID string, qs []qz.Question) fixture {
	t.Helper()
	catalog := curriculum.Default()
	unit, err := catalog.Unit("middle-1-lesson-1")
	require.NoError(t, err)
	set, ok := unit.Set(setID)
	require.True(t, ok)

	src := &fakeSource{qs: qs}
	ps := progress.NewStore(&memBackend{}, nil)
	log := &attemptLog{}
	s := New(screen.Deps{Catalog: catalog, Progress: ps, Questions: src, Attempts: log}, unit, set)
	return fixture{screen: s, source: src, progress: ps, attempts: log}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

// start runs the load command and delivers its result.
func start(t *testing.T, s *QuizScreen) {
	t.Helper()
	cmd := s.Init()
	require.NotNil(t, cmd)
	s.Update(cmd())
	require.NotNil(t, s.Session())
}

func TestLoad_SendsRequestForSet(t *testing.T) {
	f := newFixture(t, curriculum.SetVocabB, twoQuestions())
	start(t, f.screen)

	assert.Equal(t, curriculum.SetVocabB, f.source.req.SetID)
	assert.Equal(t, qz.TypeFillBlank, f.source.req.Type)
	assert.NotEmpty(t, f.source.req.Words)
	assert.True(t, f.screen.Session().Started())
	assert.False(t, f.screen.Loading())
}

func TestLoad_OnlyOneFetchPerScreen(t *testing.T) {
	f := newFixture(t, curriculum.SetVocabA, twoQuestions())
	cmd := f.screen.Init()
	require.NotNil(t, cmd)
	assert.True(t, f.screen.Loading())
	assert.Nil(t, f.screen.Init(), "second start while loading")

	f.screen.Update(cmd())
	assert.Nil(t, f.screen.Init(), "start after load")
	assert.Equal(t, 1, f.source.calls)
}

func TestLoad_ErrorShowsMessage(t *testing.T) {
	f := newFixture(t, curriculum.SetVocabA, nil)
	f.source.err = errors.New("boom")
	cmd := f.screen.Init()
	f.screen.Update(cmd())

	assert.Nil(t, f.screen.Session())
	assert.Contains(t, f.screen.View(80, 20), "문제를 불러오지 못했어요")
}

func TestLoad_EmptyResult(t *testing.T) {
	f := newFixture(t, curriculum.SetVocabA, nil)
	cmd := f.screen.Init()
	f.screen.Update(cmd())
	assert.Contains(t, f.screen.View(80, 20), "아직 문제가 없어요")
}

func TestLoadedMessageForOtherScreenIsIgnored(t *testing.T) {
	f := newFixture(t, curriculum.SetVocabA, twoQuestions())
	f.screen.Update(questionsLoadedMsg{owner: &QuizScreen{}, Questions: twoQuestions()})
	assert.Nil(t, f.screen.Session())
}

func TestLoadingView(t *testing.T) {
	f := newFixture(t, curriculum.SetVocabA, twoQuestions())
	f.screen.Init()
	assert.Contains(t, f.screen.View(80, 20), "문제를 준비하고 있어요")
}

func TestTimer(t *testing.T) {
	f := newFixture(t, curriculum.SetVocabA, twoQuestions())
	start(t, f.screen)

	_, cmd := f.screen.Update(timerTickMsg{owner: f.screen})
	assert.NotNil(t, cmd, "ticker keeps running")
	f.screen.Update(timerTickMsg{owner: f.screen})
	f.screen.Update(timerTickMsg{owner: &QuizScreen{}})
	assert.Equal(t, 2, f.screen.Session().ElapsedSeconds())
}

func TestPlayThrough_CommitsOnceAndShowsResult(t *testing.T) {
	f := newFixture(t, curriculum.SetVocabA, twoQuestions())
	start(t, f.screen)

	// Q1 correct via number key.
	f.screen.Update(keyPress('2'))
	f.screen.Update(enter())
	require.True(t, f.screen.Session().Answered())
	assert.True(t, f.screen.Session().LastCorrect())
	assert.Contains(t, f.screen.View(80, 30), "정답이에요!")

	_, cmd := f.screen.Update(enter())
	assert.Nil(t, cmd)
	assert.Equal(t, 1, f.screen.Session().Position())

	// Q2 wrong via arrows.
	f.screen.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	f.screen.Update(enter())
	assert.False(t, f.screen.Session().LastCorrect())
	assert.Contains(t, f.screen.View(80, 30), "정답: read")

	_, cmd = f.screen.Update(enter())
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	res, ok := msg.Screen.(*result.ResultScreen)
	require.True(t, ok)
	assert.Equal(t, 50, res.Result().Score)
	assert.Equal(t, []string{"vocab-set-a-q2"}, res.Result().WrongQuestionIDs)

	up := f.progress.UnitProgress(context.Background(), "middle-1-lesson-1")
	require.NotNil(t, up)
	assert.True(t, up.Completed(curriculum.SetVocabA))
	score, _ := up.Score(curriculum.SetVocabA)
	assert.Equal(t, 50, score)
	assert.Equal(t, []string{"vocab-set-a-q2"}, up.Vocabulary.WrongProblems)

	require.Len(t, f.attempts.attempts, 1)
	assert.Equal(t, 2, f.attempts.attempts[0].Total)

	// Another Enter after the result does not record again.
	f.screen.Update(enter())
	assert.Len(t, f.attempts.attempts, 1)
}

func TestSubmitWithoutSelectionDoesNothing(t *testing.T) {
	f := newFixture(t, curriculum.SetVocabA, twoQuestions())
	start(t, f.screen)
	f.screen.Update(enter())
	assert.False(t, f.screen.Session().Answered())
}

func TestTypedAnswer(t *testing.T) {
	qs := []qz.Question{{ID: "q1", Type: qz.TypeFillBlank, Prompt: "I _____ soccer.", Answer: qz.SingleAnswer("play")}}
	f := newFixture(t, curriculum.SetVocabA, qs)
	start(t, f.screen)

	for _, r := range "play" {
		f.screen.Update(keyPress(r))
	}
	f.screen.Update(enter())
	require.True(t, f.screen.Session().Answered())
	assert.True(t, f.screen.Session().LastCorrect())
}

func TestMultiBlankAnswer(t *testing.T) {
	qs := []qz.Question{{ID: "q1", Type: qz.TypeMultiBlank, Prompt: "I ___ up and ___ my teeth.", Answer: qz.MultiAnswer{"get", "brush"}}}
	f := newFixture(t, curriculum.SetVocabA, qs)
	start(t, f.screen)

	for _, r := range "get, brush" {
		f.screen.Update(keyPress(r))
	}
	f.screen.Update(enter())
	assert.True(t, f.screen.Session().LastCorrect())
}

func TestKeyHints(t *testing.T) {
	f := newFixture(t, curriculum.SetVocabA, twoQuestions())
	assert.Len(t, f.screen.KeyHints(), 1)
	start(t, f.screen)
	assert.Len(t, f.screen.KeyHints(), 3)
	f.screen.Update(keyPress('1'))
	f.screen.Update(enter())
	assert.Equal(t, "다음 문제", f.screen.KeyHints()[0].Description)
}

func TestSpellingIgnoresCase(t *testing.T) {
	qs := []qz.Question{{ID: "q1", Type: qz.TypeSpelling, Prompt: "\"학교\"을(를) 영어로 입력하세요.", Answer: qz.SingleAnswer("school")}}
	f := newFixture(t, curriculum.SetVocabB, qs)
	start(t, f.screen)

	for _, r := range "School" {
		f.screen.Update(keyPress(r))
	}
	f.screen.Update(enter())
	assert.True(t, f.screen.Session().LastCorrect())
}

func TestStaticSetB_TypesSpellingQuestions(t *testing.T) {
	catalog := curriculum.Default()
	unit, err := catalog.Unit("middle-1-lesson-1")
	require.NoError(t, err)
	set, ok := unit.Set(curriculum.SetVocabB)
	require.True(t, ok)
	s := New(screen.Deps{Catalog: catalog, Progress: progress.NewStore(&memBackend{}, nil), Questions: questions.NewStaticSource()}, unit, set)
	start(t, s)

	typed := 0
	for s.Session().Result() == nil {
		q := s.Session().Current()
		if q.HasOptions() {
			s.Update(keyPress('1'))
		} else {
			typed++
			for _, r := range q.Answer.String() {
				s.Update(keyPress(r))
			}
		}
		s.Update(enter())
		s.Update(enter())
	}
	assert.Positive(t, typed, "set B mixes in typed answers")
}

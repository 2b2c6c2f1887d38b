package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidu/english/internal/router"
	"github.com/aidu/english/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "홈" }

func newWelcome() (*WelcomeScreen, *int) {
	calls := 0
	return New(func() screen.Screen {
		calls++
		return &stubScreen{}
	}), &calls
}

func advance(w *WelcomeScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for range n {
		_, cmd = w.Update(frameMsg{})
	}
	return cmd
}

func TestTaglineTypesOut(t *testing.T) {
	w, _ := newWelcome()
	assert.Empty(t, w.typed())
	assert.NotContains(t, w.View(80, 24), "█████╗")

	advance(w, mascotFrames+2)
	assert.Equal(t, "영어", w.typed())
	assert.False(t, w.ready())
	assert.Contains(t, w.View(80, 24), "영어▌")

	advance(w, len([]rune(Tagline)))
	assert.True(t, w.ready())
	view := w.View(80, 24)
	assert.Contains(t, view, Tagline)
	assert.Contains(t, view, "██████╔╝")
	assert.Contains(t, view, "아무 키나 눌러 시작하세요")
}

func TestFrameCounterStops(t *testing.T) {
	w, calls := newWelcome()
	cmd := advance(w, readyFrame+40)
	assert.Equal(t, readyFrame, w.frame)
	assert.NotNil(t, cmd, "animation keeps ticking until a key")
	assert.Zero(t, *calls, "no transition without a key")
}

func TestAnyKeyTransitionsOnce(t *testing.T) {
	w, calls := newWelcome()
	advance(w, 2)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' ', Text: " "})
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.NotNil(t, msg.Screen)

	_, cmd = w.Update(tea.KeyPressMsg{Code: 'b', Text: "b"})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, *calls)

	assert.Nil(t, advance(w, 1), "frames stop after the transition")
}

func TestAlphabetStripScrolls(t *testing.T) {
	w, _ := newWelcome()
	first := w.strip(40)
	assert.True(t, strings.HasPrefix(first, "A B C"))
	advance(w, 2)
	assert.True(t, strings.HasPrefix(w.strip(40), "B C D"))
	assert.Len(t, strings.Fields(w.strip(400)), len(alphabet))
}

func TestBanner(t *testing.T) {
	assert.Equal(t, bannerCompact, strings.TrimSpace(stripANSI(RenderBanner(20))))
	assert.Contains(t, RenderBanner(80), "╚═╝")
	assert.Empty(t, New(nil).Title())
}

func stripANSI(s string) string {
	var b strings.Builder
	skip := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			skip = true
		case skip && (r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z'):
			skip = false
		case !skip:
			b.WriteRune(r)
		}
	}
	return b.String()
}

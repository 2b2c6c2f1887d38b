// Package welcome is the splash shown on startup: the mascot appears, the
// tagline types itself out, then the banner waits for a key.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aidu/english/internal/router"
	"github.com/aidu/english/internal/screen"
	"github.com/aidu/english/internal/ui/theme"
)

// Tagline is typed out under the mascot.
const Tagline = "영어, 오늘도 한 걸음!"

const (
	frameInterval = 80 * time.Millisecond
	// mascotFrames is how long the mascot stands alone before typing starts.
	mascotFrames = 6
	// readyFrame stops the frame counter; the strip keeps no state beyond it.
	readyFrame = 120
)

const mascotArt = `╭───────────╮
│  ┌─────┐  │
│  │ ◉ ◉ │  │
│  │  ▽  │  │
│  ├─────┤  │
│  │ ABC │  │
│  └─────┘  │
╰───────────╯`

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

type frameMsg struct{}

// WelcomeScreen animates until any key, then replaces itself with next().
type WelcomeScreen struct {
	next  func() screen.Screen
	frame int
	done  bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string { return "" }
func (w *WelcomeScreen) Init() tea.Cmd { return nextFrame() }

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case frameMsg:
		if w.done {
			return w, nil
		}
		if w.frame < readyFrame {
			w.frame++
		}
		return w, nextFrame()
	case tea.KeyPressMsg:
		if w.done {
			return w, nil
		}
		w.done = true
		return w, router.Swap(w.next())
	}
	return w, nil
}

// typed is the part of the tagline shown so far, one rune per frame.
func (w *WelcomeScreen) typed() string {
	n := w.frame - mascotFrames
	runes := []rune(Tagline)
	if n <= 0 {
		return ""
	}
	if n >= len(runes) {
		return Tagline
	}
	return string(runes[:n])
}

// ready reports whether the tagline is complete and the banner shows.
func (w *WelcomeScreen) ready() bool {
	return w.frame-mascotFrames >= len([]rune(Tagline))
}

// strip is a window onto the alphabet shifted one letter every other frame.
func (w *WelcomeScreen) strip(width int) string {
	n := min(max(width/4, 5), len(alphabet))
	off := (w.frame / 2) % len(alphabet)
	letters := make([]string, n)
	for i := range n {
		letters[i] = string(alphabet[(off+i)%len(alphabet)])
	}
	return strings.Join(letters, " ")
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(w.strip(width)),
		"",
		lipgloss.NewStyle().Foreground(theme.Primary).Render(mascotArt),
		"",
	}

	text := w.typed()
	if !w.ready() && w.frame >= mascotFrames {
		text += "▌"
	}
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(text))

	if w.ready() {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			theme.Hint.Render("아무 키나 눌러 시작하세요"),
		)
	}
	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

package home

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/aidu/english/internal/progress"
	"github.com/aidu/english/internal/ui/components"
	"github.com/aidu/english/internal/ui/theme"
)

const logoArt = `  █████╗ ██╗██████╗ ██╗   ██╗
 ██╔══██╗██║██╔══██╗██║   ██║
 ███████║██║██║  ██║██║   ██║
 ██╔══██║██║██║  ██║██║   ██║
 ██║  ██║██║██████╔╝╚██████╔╝
 ╚═╝  ╚═╝╚═╝╚═════╝  ╚═════╝`

const logoText = "A · I · D · U"

// menuButtonWidth fits the longest Korean label plus its note.
const menuButtonWidth = 22

func centered(cw int, s string) string {
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(s)
}

func renderLogo(cw int, compact bool) string {
	art := logoArt
	if compact {
		art = logoText
	}
	return centered(cw, lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(art))
}

func renderMascotBox(v MascotVariant, cw int) string {
	return centered(cw, RenderMascot(v))
}

// renderStatsBar shows streak, words, sets and average score on one line.
func renderStatsBar(s progress.TodayStats, cw int, compact bool) string {
	bold := func(c color.Color) lipgloss.Style { return lipgloss.NewStyle().Bold(true).Foreground(c) }

	avg := theme.Disabled.Render("평균 -")
	if s.AverageScore > 0 {
		avg = bold(theme.ArcadeCyan).Render(fmt.Sprintf("평균 %d점", s.AverageScore))
	}
	cells := []string{
		bold(theme.Accent).Render(fmt.Sprintf("🔥 %d일", s.StreakDays)),
		bold(theme.ArcadeYellow).Render(fmt.Sprintf("📚 %d단어", s.WordsLearned)),
		bold(theme.ArcadeCyan).Render(fmt.Sprintf("✓ 누적 %d세트", s.CompletedSets)),
		avg,
	}
	gap := "  "
	if compact {
		gap = " "
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Padding(0, 1).
		Width(cw - 2).
		Align(lipgloss.Center)
	return box.Render(strings.Join(cells, gap))
}

func renderRecommendation(text string, done bool, cw int) string {
	heading := theme.Subtitle.Render("오늘의 추천 학습")
	if done {
		heading = theme.Correct.Render("🎉 축하해요!")
	}
	return components.Card(heading+"\n"+theme.Body.Bold(true).Render(text), cw)
}

// renderMenu draws bordered buttons, or one line per item when space is
// short.
func renderMenu(menu components.Menu, cw int, lines bool) string {
	rows := make([]string, len(menu.Items))
	for i, item := range menu.Items {
		selected := i == menu.Selected && !item.Disabled
		if lines {
			rows[i] = menuLine(item, selected)
			continue
		}
		state := components.ButtonIdle
		if item.Disabled {
			state = components.ButtonDisabled
		} else if selected {
			state = components.ButtonSelected
		}
		rows[i] = components.Button(item.Label, state, menuButtonWidth)
	}
	return centered(cw, strings.Join(rows, "\n"))
}

func menuLine(item components.MenuItem, selected bool) string {
	label := item.Label
	if item.Note != "" {
		label = fmt.Sprintf("%s (%s)", label, item.Note)
	}
	switch {
	case item.Disabled:
		return theme.Disabled.Render("   " + label)
	case selected:
		return lipgloss.NewStyle().
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			Bold(true).
			Render(" ▸ " + label + " ")
	}
	return theme.Unselected.Render("   " + label)
}

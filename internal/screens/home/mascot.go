package home

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/aidu/english/internal/ui/theme"
)

// MascotVariant is the mood of the owl on the home screen.
type MascotVariant int

const (
	MascotIdle MascotVariant = iota
	MascotCelebrating
	MascotSleepy
)

type mascotArt struct {
	lines []string
	color color.Color
}

var mascots = map[MascotVariant]mascotArt{
	MascotIdle: {
		lines: []string{" ,___, ", " (o,o) ", " /)_)  ", "  \"\"   "},
		color: theme.Primary,
	},
	MascotCelebrating: {
		lines: []string{"\\,___,/", " (^,^) ", " /)_)  ", "  \"\"  ♪"},
		color: theme.ArcadeYellow,
	},
	MascotSleepy: {
		lines: []string{" ,___, z", " (-,-)  ", " /)_)   ", "  \"\"    "},
		color: theme.TextDim,
	},
}

// RenderMascot draws the owl for v; unknown variants fall back to idle.
func RenderMascot(v MascotVariant) string {
	art, ok := mascots[v]
	if !ok {
		art = mascots[MascotIdle]
	}
	return lipgloss.NewStyle().Foreground(art.color).Render(lipgloss.JoinVertical(lipgloss.Left, art.lines...))
}

// mascotFor celebrates any study today over a lost streak.
func mascotFor(streak, completedToday int, allDone bool) MascotVariant {
	if allDone || completedToday > 0 {
		return MascotCelebrating
	}
	if streak == 0 {
		return MascotSleepy
	}
	return MascotIdle
}

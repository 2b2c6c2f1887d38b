// Package layout draws the chrome around every screen: a header with the
// learner's streak, a footer of key hints, and the too-small notice.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/aidu/english/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// Header is what the top bar shows.
type Header struct {
	Title  string
	Streak int
	Words  int
	// SetsToday is hidden when zero.
	SetsToday int
}

func IsCompactWidth(width int) bool   { return width < CompactWidthThreshold }
func IsCompactHeight(height int) bool { return height < CompactHeightThreshold }
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

var barStyle = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border).
	Padding(0, 1)

// RenderMinSizeMessage asks the learner to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("터미널 창이 너무 작아요!\n\n최소 %d x %d 크기로 늘려 주세요\n(지금 %d x %d)",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(msg))
}

// RenderHeader lays the brand out on the left, the title centered and the
// stats on the right.
func RenderHeader(h Header, width int) string {
	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("AIDU")
	title := lipgloss.NewStyle().Foreground(theme.Text).Render(h.Title)

	stats := []string{
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("🔥 %d일", h.Streak)),
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(fmt.Sprintf("📚 %d단어", h.Words)),
	}
	if h.SetsToday > 0 {
		stats = append(stats, lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("✓ %d세트", h.SetsToday)))
	}
	right := strings.Join(stats, "  ")

	inner := max(width-barStyle.GetHorizontalFrameSize(), 0)
	side := max((inner-lipgloss.Width(title))/2, lipgloss.Width(brand)+1)
	left := lipgloss.NewStyle().Width(side).Render(brand)
	rest := max(inner-side-lipgloss.Width(title), 0)
	row := left + title + lipgloss.PlaceHorizontal(rest, lipgloss.Right, right)

	return barStyle.Width(width).Render(row)
}

// RenderFooter joins the hints into one bar.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return barStyle.Width(width).Render(strings.Join(parts, desc.Render("  ·  ")))
}

// RenderFrame stacks header, content and footer, padding the content to
// fill whatever height the bars leave.
func RenderFrame(header, content, footer string, width, height int) string {
	body := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Width(width).Height(body).Render(content),
		footer,
	)
}

package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/aidu/english/internal/ui/theme"
)

const bannerArt = ` █████╗ ██╗██████╗ ██╗   ██╗
██╔══██╗██║██╔══██╗██║   ██║
███████║██║██║  ██║██║   ██║
██╔══██║██║██║  ██║██║   ██║
██║  ██║██║██████╔╝╚██████╔╝
╚═╝  ╚═╝╚═╝╚═════╝  ╚═════╝`

const bannerCompact = "A I D U"

// bannerMinWidth is the narrowest terminal the block letters fit in.
const bannerMinWidth = 32

// RenderBanner draws AIDU in block letters, or spaced capitals when the
// terminal is narrower than bannerMinWidth.
func RenderBanner(width int) string {
	art := bannerArt
	if width < bannerMinWidth {
		art = bannerCompact
	}
	return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(art)
}

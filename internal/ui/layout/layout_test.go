package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestRenderHeader(t *testing.T) {
	out := RenderHeader(Header{Title: "홈", Streak: 3, Words: 12}, 90)
	assert.Contains(t, out, "AIDU")
	assert.Contains(t, out, "홈")
	assert.Contains(t, out, "🔥 3일")
	assert.Contains(t, out, "📚 12단어")
	assert.NotContains(t, out, "세트")

	out = RenderHeader(Header{Title: "홈", SetsToday: 2}, 90)
	assert.Contains(t, out, "✓ 2세트")
}

func TestRenderFooter(t *testing.T) {
	out := RenderFooter([]KeyHint{{Key: "Enter", Description: "선택"}, {Key: "Esc", Description: "뒤로"}}, 80)
	assert.Contains(t, out, "Enter")
	assert.Contains(t, out, "뒤로")
	assert.Contains(t, out, "·")
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := RenderHeader(Header{Title: "t"}, 80)
	footer := RenderFooter(nil, 80)
	out := RenderFrame(header, "body", footer, 80, 24)
	assert.Equal(t, 24, lipgloss.Height(out))
	assert.True(t, strings.Contains(out, "body"))
}

func TestSizes(t *testing.T) {
	assert.True(t, IsTooSmall(79, 30))
	assert.True(t, IsTooSmall(100, 23))
	assert.False(t, IsTooSmall(80, 24))
	assert.True(t, IsCompactWidth(99))
	assert.False(t, IsCompactHeight(30))
	assert.Contains(t, RenderMinSizeMessage(40, 10), "40 x 10")
}

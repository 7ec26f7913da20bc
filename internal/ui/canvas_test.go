package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swipelist/internal/deck"
	"swipelist/internal/domain"
	"swipelist/internal/listview"
)

func plainRows(c *Canvas) []string {
	return strings.Split(ansi.Strip(c.String()), "\n")
}

func TestCanvasClipsBlocks(t *testing.T) {
	c := NewCanvas(10, 3)
	c.Paint(-2, 0, "abcdef")
	c.Paint(7, 1, "abcdef")
	c.Paint(0, 2, "x\ny")
	c.Paint(20, 0, "hidden")
	c.Paint(0, -5, "hidden")

	assert.Equal(t, []string{
		"cdef      ",
		"       abc",
		"x         ",
	}, plainRows(c))
}

func TestCanvasPaintsAdjacentBlocks(t *testing.T) {
	c := NewCanvas(8, 1)
	c.Paint(-2, 0, "aaaaaa")
	c.Paint(4, 0, "bbbbbb")
	assert.Equal(t, []string{"aaaabbbb"}, plainRows(c))
}

func TestFit(t *testing.T) {
	assert.Equal(t, "hel\nwor\n   ", fit("hello\nworld", 3, 3))
	assert.Equal(t, "ab", fit("ab\ncd", 2, 1))
	assert.Equal(t, "", fit("x", 0, 4))
}

func TestPageCellRendersExactSize(t *testing.T) {
	styles := NewStyles()
	r := deck.NewRenderer("notty")
	frame := listview.Rect{Size: listview.Size{Width: 30, Height: 8}}

	c := newPageCell(0, frame).(*pageCell)
	c.SetPage(domain.Page{Title: "One", Body: "# One\n\nsome text that is long enough to wrap inside the card"}, "1/3")

	out := c.Render(r, styles)
	assert.Equal(t, 30, lipgloss.Width(out))
	assert.Equal(t, 8, lipgloss.Height(out))
	assert.Contains(t, out, "1/3")
	assert.Equal(t, out, c.Render(r, styles), "cached while nothing changes")

	c.SetSelected(true)
	selected := c.Render(r, styles)
	assert.NotEqual(t, out, selected)
	assert.Equal(t, 30, lipgloss.Width(selected))

	c.SetFrame(listview.Rect{Size: listview.Size{Width: 3, Height: 2}})
	tiny := c.Render(r, styles)
	assert.Equal(t, "   \n   ", tiny)
}

func TestPageCellPrepareForReuse(t *testing.T) {
	c := newPageCell(0, listview.Rect{Size: listview.Size{Width: 20, Height: 6}}).(*pageCell)
	c.SetPage(domain.Page{Title: "x", Body: "x"}, "1/1")
	require.NotEmpty(t, c.Render(deck.NewRenderer("notty"), NewStyles()))

	c.PrepareForReuse()
	assert.False(t, c.hasPage)
	assert.Empty(t, c.rendered)
	assert.Contains(t, c.Render(deck.NewRenderer("notty"), NewStyles()), "(empty)")
}

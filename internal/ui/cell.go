package ui

import (
	"log"
	"math"
	"strings"

	"swipelist/internal/deck"
	"swipelist/internal/domain"
	"swipelist/internal/listview"
)

// pageCell is a list cell that renders one deck page as a bordered card.
// The rendered card is cached until the cell is recycled or resized.
type pageCell struct {
	listview.BaseCell

	page             domain.Page
	label            string
	hasPage          bool
	rendered         string
	width            int
	height           int
	renderedSelected bool
	setups           int
}

func newPageCell(index int, frame listview.Rect) listview.Cell {
	return &pageCell{BaseCell: listview.NewBaseCell(index, frame)}
}

func (c *pageCell) Setup() { c.setups++ }

// PrepareForReuse drops the page and the rendered card
func (c *pageCell) PrepareForReuse() {
	c.page = domain.Page{}
	c.label = ""
	c.hasPage = false
	c.rendered = ""
}

// SetPage assigns the page shown by the cell and its position label
func (c *pageCell) SetPage(p domain.Page, label string) {
	c.page = p
	c.label = label
	c.hasPage = true
	c.rendered = ""
}

// Size returns the card size in terminal cells
func (c *pageCell) Size() (int, int) {
	f := c.Frame()
	return int(math.Round(f.Size.Width)), int(math.Round(f.Size.Height))
}

// Origin returns the card position in terminal cells
func (c *pageCell) Origin() (int, int) {
	f := c.Frame()
	return int(math.Round(f.Origin.X)), int(math.Round(f.Origin.Y))
}

// Render returns the card, re-rendering only when the size, page or
// selection changed
func (c *pageCell) Render(r *deck.Renderer, styles *Styles) string {
	w, h := c.Size()
	if c.rendered != "" && w == c.width && h == c.height && c.Selected() == c.renderedSelected {
		return c.rendered
	}
	c.width, c.height, c.renderedSelected = w, h, c.Selected()

	style := styles.Card
	if c.Selected() {
		style = styles.CardSelected
	}
	innerW := w - style.GetHorizontalFrameSize()
	innerH := h - style.GetVerticalFrameSize()
	if innerW <= 0 || innerH <= 0 {
		c.rendered = fit("", w, h)
		return c.rendered
	}

	var b strings.Builder
	if c.hasPage {
		b.WriteString(styles.CardTitle.Render(c.label))
		b.WriteString("\n\n")
		body, err := r.Render(c.page.Body, innerW)
		if err != nil {
			log.Printf("Failed to render page %d: %v", c.Index(), err)
		}
		b.WriteString(body)
	} else {
		b.WriteString(styles.Dim.Render("(empty)"))
	}

	c.rendered = style.Render(fit(b.String(), innerW, innerH))
	return c.rendered
}

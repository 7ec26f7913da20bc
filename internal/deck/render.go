package deck

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Renderer turns page markdown into styled terminal text. Renderers are
// cached per wrap width.
type Renderer struct {
	style string

	mu        sync.Mutex
	renderers map[int]*glamour.TermRenderer
}

// NewRenderer creates a renderer for a glamour standard style ("dark",
// "light", "notty", ...)
func NewRenderer(style string) *Renderer {
	if style == "" {
		style = "dark"
	}
	return &Renderer{style: style, renderers: make(map[int]*glamour.TermRenderer)}
}

// Render renders markdown wrapped to width. On renderer errors the raw
// markdown is returned along with the error.
func (r *Renderer) Render(md string, width int) (string, error) {
	md = strings.TrimSpace(md)
	if md == "" {
		return "", nil
	}
	if width < 10 {
		width = 10
	}

	tr, err := r.termRenderer(width)
	if err != nil {
		return md, err
	}
	out, err := tr.Render(md)
	if err != nil {
		return md, fmt.Errorf("failed to render markdown: %w", err)
	}
	return strings.Trim(out, "\n"), nil
}

func (r *Renderer) termRenderer(width int) (*glamour.TermRenderer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tr := r.renderers[width]; tr != nil {
		return tr, nil
	}
	// A fixed standard style avoids terminal background queries.
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	r.renderers[width] = tr
	return tr, nil
}

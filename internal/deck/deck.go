package deck

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"swipelist/internal/domain"
)

// Separator is a line on its own that starts a new page
const Separator = "---"

// Load reads a markdown deck from path
func Load(path string) (domain.Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Deck{}, fmt.Errorf("failed to open deck: %w", err)
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return domain.Deck{}, fmt.Errorf("failed to read deck %s: %w", path, err)
	}
	d.Name = path
	return d, nil
}

// Parse splits markdown into pages on separator lines outside code fences.
// Pages with no content are dropped.
func Parse(r io.Reader) (domain.Deck, error) {
	var (
		d       domain.Deck
		current []string
		fenced  bool
	)
	flush := func() {
		body := strings.TrimSpace(strings.Join(current, "\n"))
		current = current[:0]
		if body == "" {
			return
		}
		d.Pages = append(d.Pages, domain.Page{Title: titleOf(body), Body: body})
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			fenced = !fenced
		}
		if !fenced && trimmed == Separator {
			flush()
			continue
		}
		current = append(current, line)
	}
	if err := sc.Err(); err != nil {
		return domain.Deck{}, err
	}
	flush()
	return d, nil
}

// Placeholder builds a deck of n numbered pages
func Placeholder(n int) domain.Deck {
	d := domain.Deck{Pages: make([]domain.Page, 0, n)}
	for i := 0; i < n; i++ {
		title := fmt.Sprintf("Page %d", i+1)
		body := fmt.Sprintf("# %s\n\nPage %d of %d. Drag sideways or use the arrow keys to page.", title, i+1, n)
		d.Pages = append(d.Pages, domain.Page{Title: title, Body: body})
	}
	return d
}

// titleOf returns the first heading, or the first line when there is none
func titleOf(body string) string {
	first := ""
	for _, line := range strings.Split(body, "\n") {
		t := strings.TrimSpace(line)
		if t == "" {
			continue
		}
		if strings.HasPrefix(t, "#") {
			return strings.TrimSpace(strings.TrimLeft(t, "#"))
		}
		if first == "" {
			first = t
		}
	}
	return first
}

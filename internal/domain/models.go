package domain

// Page is one item of a deck
type Page struct {
	Title string
	Body  string // markdown source
}

// Deck is an ordered sequence of pages
type Deck struct {
	Name  string // file path, or "" for generated decks
	Pages []Page
}

// Len returns the number of pages
func (d Deck) Len() int { return len(d.Pages) }

// Page returns the page at index, or an empty page when out of range
func (d Deck) Page(index int) Page {
	if index < 0 || index >= len(d.Pages) {
		return Page{}
	}
	return d.Pages[index]
}

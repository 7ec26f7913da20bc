package listview

// DefaultItemCount is reported for a datasource that does not count items
const DefaultItemCount = 3

// The delegate and datasource are plain values. The list checks them for the
// capabilities below and skips any it does not find.

// ItemCounter reports the number of items in the list
type ItemCounter interface {
	NumberOfItems(l *ListView) int
}

// DisplayItemChanger is told when the current item changes
type DisplayItemChanger interface {
	DidChangeDisplayItem(l *ListView, index, offset int)
}

// CellDisplayer is told before a cell is shown for an item
type CellDisplayer interface {
	WillDisplay(l *ListView, cell Cell, index, offset int)
}

// ItemSelector is told around item selection
type ItemSelector interface {
	WillSelectItem(l *ListView, index, offset int)
	DidSelectItem(l *ListView, index, offset int)
}

// ItemDeselector is told around item deselection
type ItemDeselector interface {
	WillDeselectItem(l *ListView, index, offset int)
	DidDeselectItem(l *ListView, index, offset int)
}

// sink adapts an optional delegate to the window notifications
type sink struct {
	list     *ListView
	delegate any
}

func (s sink) willDisplay(cell Cell, index, offset int) {
	if d, ok := s.delegate.(CellDisplayer); ok {
		d.WillDisplay(s.list, cell, index, offset)
	}
}

func (s sink) didChangeDisplayItem(index, offset int) {
	if d, ok := s.delegate.(DisplayItemChanger); ok {
		d.DidChangeDisplayItem(s.list, index, offset)
	}
}

func (s sink) willSelect(index, offset int) {
	if d, ok := s.delegate.(ItemSelector); ok {
		d.WillSelectItem(s.list, index, offset)
	}
}

func (s sink) didSelect(index, offset int) {
	if d, ok := s.delegate.(ItemSelector); ok {
		d.DidSelectItem(s.list, index, offset)
	}
}

func (s sink) willDeselect(index, offset int) {
	if d, ok := s.delegate.(ItemDeselector); ok {
		d.WillDeselectItem(s.list, index, offset)
	}
}

func (s sink) didDeselect(index, offset int) {
	if d, ok := s.delegate.(ItemDeselector); ok {
		d.DidDeselectItem(s.list, index, offset)
	}
}

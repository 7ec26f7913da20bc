package listview

import "log"

// Move is a paging step
type Move int

const (
	MoveNone Move = iota
	MoveForward
	MoveBackward
)

func (m Move) String() string {
	switch m {
	case MoveForward:
		return "forward"
	case MoveBackward:
		return "backward"
	default:
		return "none"
	}
}

// notifier receives window display events
type notifier interface {
	willDisplay(cell Cell, index, offset int)
	didChangeDisplayItem(index, offset int)
}

type nopNotifier struct{}

func (nopNotifier) willDisplay(Cell, int, int) {}
func (nopNotifier) didChangeDisplayItem(int, int) {}

// announcement is the last (index, offset) a cell was announced with
type announcement struct {
	index  int
	offset int
}

// Window keeps three reusable cells [previous, current, next] in step with a
// logical item index space of any size.
type Window struct {
	factory CellFactory
	notify  notifier
	geom    Layout

	cells     [3]Cell
	announced map[Cell]announcement

	itemCount    int
	pendingCount int
	current      int
	offset       int

	needsReload bool
	needsCells  bool
}

// NewWindow creates a window that builds its cells with factory on the
// first layout pass
func NewWindow(factory CellFactory, n notifier) *Window {
	if factory == nil {
		factory = DefaultCellFactory
	}
	if n == nil {
		n = nopNotifier{}
	}
	return &Window{
		factory:     factory,
		notify:      n,
		announced:   make(map[Cell]announcement),
		needsReload: true,
		needsCells:  true,
	}
}

// Reload resets the current index and scroll offset. The new item count and
// slot indices take effect on the next layout pass.
func (w *Window) Reload(itemCount int) {
	if itemCount < 0 {
		log.Printf("listview: negative item count %d treated as 0", itemCount)
		itemCount = 0
	}
	w.pendingCount = itemCount
	w.current = 0
	w.offset = 0
	w.needsReload = true
}

// RegisterCellFactory replaces the cell factory. All three cells are
// recreated on the next layout pass.
func (w *Window) RegisterCellFactory(factory CellFactory) {
	if factory == nil {
		factory = DefaultCellFactory
	}
	w.factory = factory
	w.needsCells = true
}

// Layout runs a layout pass and reports whether it applied a pending reload.
// With no items the window stays inactive and nothing is announced.
func (w *Window) Layout(geom Layout) bool {
	reloaded := false
	if w.needsReload {
		w.itemCount = w.pendingCount
		w.needsReload = false
		w.announced = make(map[Cell]announcement)
		reloaded = true
	}
	w.geom = geom

	if w.itemCount == 0 {
		for _, c := range w.cells {
			if c != nil {
				c.SetHidden(true)
			}
		}
		return reloaded
	}

	if w.needsCells || w.cells[0] == nil {
		w.createCells()
	}
	w.populate()
	w.notify.didChangeDisplayItem(w.cells[1].Index(), w.offset)
	return reloaded
}

func (w *Window) createCells() {
	for i := range w.cells {
		c := w.factory(i-1, w.geom.Bounds)
		c.Setup()
		w.cells[i] = c
	}
	w.announced = make(map[Cell]announcement)
	w.needsCells = false
}

// populate places every cell at its rest frame and announces cells whose
// item or offset changed
func (w *Window) populate() {
	for i, c := range w.cells {
		p := i - 1
		c.SetFrame(w.geom.Frame(p, 0))
		a := announcement{index: wrap(w.current+p, w.itemCount), offset: w.offset + p}
		if prev, ok := w.announced[c]; ok && prev == a && c.Index() == a.index {
			continue
		}
		c.PrepareForReuse()
		c.SetIndex(a.index)
		c.SetHidden(false)
		w.notify.willDisplay(c, a.index, a.offset)
		w.announced[c] = a
	}
}

// Advance rotates the window one item forward or backward. It reports false
// when the window cannot page (fewer than two items or no layout pass yet).
func (w *Window) Advance(m Move) bool {
	if w.itemCount <= 1 || w.needsReload || w.cells[0] == nil {
		return false
	}

	switch m {
	case MoveForward:
		cell := w.cells[0]
		index := w.cells[2].Index() + 1
		if index < 0 || index >= w.itemCount {
			index = 0
		}
		w.cells = [3]Cell{w.cells[1], w.cells[2], cell}
		w.offset++
		w.recycle(cell, SlotNext, index)
	case MoveBackward:
		cell := w.cells[2]
		index := w.cells[0].Index() - 1
		if index < 0 || index >= w.itemCount {
			index = w.itemCount - 1
		}
		w.cells = [3]Cell{cell, w.cells[0], w.cells[1]}
		w.offset--
		w.recycle(cell, SlotPrevious, index)
	default:
		return false
	}

	w.current = w.cells[1].Index()
	w.notify.didChangeDisplayItem(w.current, w.offset)
	return true
}

// recycle moves cell to the edge slot at position p and shows it for index
func (w *Window) recycle(cell Cell, p, index int) {
	cell.PrepareForReuse()
	cell.SetHidden(true)
	cell.SetFrame(w.geom.Frame(p, 0))
	cell.SetIndex(index)
	offset := w.offset + p
	w.notify.willDisplay(cell, index, offset)
	w.announced[cell] = announcement{index: index, offset: offset}
	cell.SetHidden(false)
}

// ItemCount returns the item count applied by the last layout pass
func (w *Window) ItemCount() int { return w.itemCount }

// CurrentIndex returns the item shown in the current slot
func (w *Window) CurrentIndex() int { return w.current }

// ScrollOffset returns the net pages traversed since the last reload
func (w *Window) ScrollOffset() int { return w.offset }

// Active reports whether the window holds a valid display state
func (w *Window) Active() bool {
	return w.itemCount > 0 && !w.needsReload && w.cells[0] != nil
}

// CanPage reports whether there is more than one item to page between
func (w *Window) CanPage() bool { return w.itemCount > 1 }

// Cells returns the previous, current and next cells. Entries are nil
// before the first populated layout pass.
func (w *Window) Cells() [3]Cell { return w.cells }

// SlotIndices returns the item index of each slot
func (w *Window) SlotIndices() [3]int {
	var out [3]int
	for i, c := range w.cells {
		if c != nil {
			out[i] = c.Index()
		}
	}
	return out
}

// wrap is a true modulo for possibly negative i
func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}

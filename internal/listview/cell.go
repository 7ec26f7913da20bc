package listview

// Cell is a recyclable view unit. The window owns every cell it creates and
// reuses them by reassigning the item index.
type Cell interface {
	Index() int
	SetIndex(index int)
	Hidden() bool
	SetHidden(hidden bool)
	Selected() bool
	SetSelected(selected bool)
	Frame() Rect
	SetFrame(frame Rect)

	// PrepareForReuse clears host render state before the cell is shown
	// for a different item.
	PrepareForReuse()
	// Setup runs once per cell lifetime, right after creation.
	Setup()
}

// CellFactory creates a cell for the given item index and frame
type CellFactory func(index int, frame Rect) Cell

// BaseCell implements the bookkeeping half of Cell. Host cells embed it and
// override PrepareForReuse/Setup as needed.
type BaseCell struct {
	index    int
	hidden   bool
	selected bool
	frame    Rect
}

// NewBaseCell returns a BaseCell for index placed at frame
func NewBaseCell(index int, frame Rect) BaseCell {
	return BaseCell{index: index, frame: frame}
}

func (c *BaseCell) Index() int { return c.index }
func (c *BaseCell) SetIndex(index int) { c.index = index }
func (c *BaseCell) Hidden() bool { return c.hidden }
func (c *BaseCell) SetHidden(hidden bool) { c.hidden = hidden }
func (c *BaseCell) Selected() bool { return c.selected }
func (c *BaseCell) SetSelected(selected bool) { c.selected = selected }
func (c *BaseCell) Frame() Rect { return c.frame }
func (c *BaseCell) SetFrame(frame Rect) { c.frame = frame }
func (c *BaseCell) PrepareForReuse() {}
func (c *BaseCell) Setup() {}

// DefaultCellFactory builds plain BaseCells
func DefaultCellFactory(index int, frame Rect) Cell {
	c := NewBaseCell(index, frame)
	return &c
}

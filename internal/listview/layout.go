package listview

import "fmt"

// ScrollDirection is the axis the list pages along
type ScrollDirection int

const (
	Horizontal ScrollDirection = iota
	Vertical
)

func (d ScrollDirection) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseScrollDirection converts a config value into a ScrollDirection
func ParseScrollDirection(s string) (ScrollDirection, error) {
	switch s {
	case "", "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("unknown scroll direction %q", s)
	}
}

// Point is a position in container coordinates
type Point struct {
	X, Y float64
}

// Size is a width/height pair
type Size struct {
	Width, Height float64
}

// Rect is an origin plus a size
type Rect struct {
	Origin Point
	Size   Size
}

// MaxX returns the right edge of the rectangle
func (r Rect) MaxX() float64 { return r.Origin.X + r.Size.Width }

// MaxY returns the bottom edge of the rectangle
func (r Rect) MaxY() float64 { return r.Origin.Y + r.Size.Height }

// IsEmpty reports whether the rectangle has no area
func (r Rect) IsEmpty() bool { return r.Size.Width <= 0 || r.Size.Height <= 0 }

// Insets is a four-sided margin
type Insets struct {
	Top, Left, Bottom, Right float64
}

// Slot positions relative to the current item
const (
	SlotPrevious = -1
	SlotCurrent  = 0
	SlotNext     = 1
)

// Layout computes slot rectangles. It is a value type: the same Layout and
// arguments always produce the same rectangles.
type Layout struct {
	Direction ScrollDirection
	Margin    Insets
	Bounds    Rect
}

// Extent is the container length along the active axis
func (l Layout) Extent() float64 {
	if l.Direction == Vertical {
		return l.Bounds.Size.Height
	}
	return l.Bounds.Size.Width
}

// ScrollFactor is the drag distance past which a gesture always commits
func (l Layout) ScrollFactor() float64 {
	return l.Extent() / 4
}

// ItemSize is the container size shrunk by the margins on each axis
func (l Layout) ItemSize() Size {
	return Size{
		Width:  l.Bounds.Size.Width - (l.Margin.Left + l.Margin.Right),
		Height: l.Bounds.Size.Height - (l.Margin.Top + l.Margin.Bottom),
	}
}

// Frame returns the rectangle for the slot at position p (-1, 0 or 1) with
// the live drag offset applied along the active axis.
func (l Layout) Frame(p int, offset float64) Rect {
	origin := Point{X: l.Margin.Left, Y: l.Margin.Top}
	shift := float64(p)*l.Extent() + offset
	if l.Direction == Vertical {
		origin.Y += shift
	} else {
		origin.X += shift
	}
	return Rect{Origin: origin, Size: l.ItemSize()}
}

// Frames returns the previous, current and next slot rectangles
func (l Layout) Frames(offset float64) [3]Rect {
	return [3]Rect{
		l.Frame(SlotPrevious, offset),
		l.Frame(SlotCurrent, offset),
		l.Frame(SlotNext, offset),
	}
}

// Axis returns the component of p along the active axis
func (l Layout) Axis(p Point) float64 {
	if l.Direction == Vertical {
		return p.Y
	}
	return p.X
}

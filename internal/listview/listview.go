// Package listview implements a paging list: three recycled cells that track
// a wrapping item index space and page with drag gestures.
package listview

import "time"

// ListView shows one item at a time from a sequence of items and pages
// between neighbours with drag gestures, wrapping at both ends.
//
// All methods must be called from a single goroutine (the host event loop).
// Logical state changes synchronously; animations only move cell frames.
type ListView struct {
	direction     ScrollDirection
	margin        Insets
	scrollEnabled bool
	bounds        Rect

	window   *Window
	gestures *GestureInterpreter
	animator *Animator

	delegate   any
	datasource any

	previewDuration time.Duration
	settleDuration  time.Duration

	loaded          bool
	needsLayout     bool
	gesturesEnabled bool
	selected        int
}

// Option configures a ListView
type Option func(*ListView)

// WithClock sets the clock used for drag timing and animations
func WithClock(now func() time.Time) Option {
	return func(l *ListView) {
		l.gestures = NewGestureInterpreter(now)
		l.animator = NewAnimator(now)
	}
}

// WithDurations sets the live-preview and settle animation durations
func WithDurations(preview, settle time.Duration) Option {
	return func(l *ListView) {
		l.previewDuration = preview
		l.settleDuration = settle
	}
}

// WithCellFactory sets the factory used to build cells
func WithCellFactory(factory CellFactory) Option {
	return func(l *ListView) {
		l.window.RegisterCellFactory(factory)
	}
}

// New creates a horizontal, scroll-enabled list with zero margins
func New(opts ...Option) *ListView {
	l := &ListView{
		scrollEnabled:   true,
		gestures:        NewGestureInterpreter(nil),
		animator:        NewAnimator(nil),
		previewDuration: DefaultPreviewDuration,
		settleDuration:  DefaultSettleDuration,
		needsLayout:     true,
		selected:        -1,
	}
	l.window = NewWindow(DefaultCellFactory, listSink{l})
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SetDelegate sets the object told about display and selection changes
func (l *ListView) SetDelegate(d any) { l.delegate = d }

// SetDatasource sets the object asked for the item count
func (l *ListView) SetDatasource(ds any) { l.datasource = ds }

// SetBounds sets the container rectangle
func (l *ListView) SetBounds(r Rect) {
	if r != l.bounds {
		l.bounds = r
		l.needsLayout = true
	}
}

// SetScrollDirection sets the paging axis
func (l *ListView) SetScrollDirection(d ScrollDirection) {
	if d != l.direction {
		l.direction = d
		l.needsLayout = true
	}
}

// SetMargin sets the inset applied to every item
func (l *ListView) SetMargin(m Insets) {
	if m != l.margin {
		l.margin = m
		l.needsLayout = true
	}
}

// SetScrollEnabled turns gesture paging on or off. Enabling takes effect
// at once when the list already has more than one item.
func (l *ListView) SetScrollEnabled(enabled bool) {
	l.scrollEnabled = enabled
	l.gesturesEnabled = enabled && l.window.CanPage()
	if !enabled && l.gestures.Dragging() {
		l.CancelDrag()
	}
}

func (l *ListView) Bounds() Rect { return l.bounds }
func (l *ListView) ScrollDirection() ScrollDirection { return l.direction }
func (l *ListView) Margin() Insets { return l.margin }
func (l *ListView) ScrollEnabled() bool { return l.scrollEnabled }

// ScrollOffset is the net number of pages moved since the last reload.
// Forward pages increase it, backward pages decrease it.
func (l *ListView) ScrollOffset() int { return l.window.ScrollOffset() }

// CurrentIndex is the item shown in the current slot
func (l *ListView) CurrentIndex() int { return l.window.CurrentIndex() }

// ItemCount is the item count applied by the last layout pass
func (l *ListView) ItemCount() int { return l.window.ItemCount() }

// Active reports whether the list has a valid display state
func (l *ListView) Active() bool { return l.window.Active() }

// Cells returns the previous, current and next cells
func (l *ListView) Cells() [3]Cell { return l.window.Cells() }

// SelectedIndex returns the selected item or -1
func (l *ListView) SelectedIndex() int { return l.selected }

// Geometry returns the layout used for slot rectangles
func (l *ListView) Geometry() Layout {
	return Layout{Direction: l.direction, Margin: l.margin, Bounds: l.bounds}
}

// ReloadData resets the index and offset to zero and re-reads the item
// count. A selection is dropped through the deselect callbacks. Slots are
// re-synchronised on the next layout pass.
func (l *ListView) ReloadData() {
	l.loaded = true
	l.Deselect()
	l.window.Reload(l.numberOfItems())
	l.needsLayout = true
}

// RegisterCellFactory replaces all three cells on the next layout pass
func (l *ListView) RegisterCellFactory(factory CellFactory) {
	l.window.RegisterCellFactory(factory)
	l.needsLayout = true
}

// SetNeedsLayout schedules a layout pass
func (l *ListView) SetNeedsLayout() { l.needsLayout = true }

// NeedsLayout reports whether a layout pass is pending
func (l *ListView) NeedsLayout() bool { return l.needsLayout }

// LayoutIfNeeded runs a pending layout pass
func (l *ListView) LayoutIfNeeded() {
	if l.needsLayout {
		l.Layout()
	}
}

// Layout places every cell at rest and applies any pending reload
func (l *ListView) Layout() {
	if !l.loaded {
		l.ReloadData()
	}
	l.animator.Stop()
	if l.window.Layout(l.Geometry()) {
		l.gestures.Cancel()
		l.gesturesEnabled = l.scrollEnabled && l.window.CanPage()
	}
	l.needsLayout = false
}

// GesturesEnabled reports whether drags are interpreted
func (l *ListView) GesturesEnabled() bool {
	return l.gesturesEnabled && l.scrollEnabled && l.window.Active() && l.window.CanPage()
}

// Dragging reports whether a drag session is open
func (l *ListView) Dragging() bool { return l.gestures.Dragging() }

// BeginDrag opens a drag session. It reports false when gestures are disabled.
func (l *ListView) BeginDrag() bool {
	if !l.GesturesEnabled() {
		return false
	}
	l.gestures.Begin()
	return true
}

// Drag previews the drag translation by moving all slots with it. It
// returns the id of the preview animation.
func (l *ListView) Drag(translation Point) (int, bool) {
	if !l.GesturesEnabled() {
		l.gestures.Cancel()
		return 0, false
	}
	geom := l.Geometry()
	offset, ok := l.gestures.Update(translation, geom)
	if !ok {
		return 0, false
	}
	return l.animator.Start(l.window.Cells(), geom.Frames(offset), l.previewDuration), true
}

// EndDrag closes the drag session, commits a page move when the drag
// qualifies and settles the slots at rest. It returns the move applied and
// the id of the settle animation.
func (l *ListView) EndDrag(translation Point) (Move, int) {
	if !l.GesturesEnabled() {
		l.gestures.Cancel()
		return MoveNone, 0
	}
	geom := l.Geometry()
	m, ok := l.gestures.End(translation, geom)
	if !ok {
		return MoveNone, 0
	}
	if m != MoveNone && !l.window.Advance(m) {
		m = MoveNone
	}
	id := l.animator.Start(l.window.Cells(), geom.Frames(0), l.settleDuration)
	if m == MoveNone {
		l.notify().didChangeDisplayItem(l.window.CurrentIndex(), l.window.ScrollOffset())
	}
	return m, id
}

// CancelDrag drops the drag session and settles the slots
func (l *ListView) CancelDrag() int {
	l.gestures.Cancel()
	if !l.window.Active() {
		return 0
	}
	return l.animator.Start(l.window.Cells(), l.Geometry().Frames(0), l.settleDuration)
}

// Flick runs an instant drag session of one unit towards m, so keyboard
// paging goes through the same commit policy as a fast swipe.
func (l *ListView) Flick(m Move) (Move, int) {
	if m == MoveNone || !l.BeginDrag() {
		return MoveNone, 0
	}
	var translation Point
	step := -1.0
	if m == MoveBackward {
		step = 1.0
	}
	if l.direction == Vertical {
		translation.Y = step
	} else {
		translation.X = step
	}
	return l.EndDrag(translation)
}

// Step advances the running animation. It reports whether more frames follow.
func (l *ListView) Step() bool { return l.animator.Step() }

// Animating reports whether an animation is in flight
func (l *ListView) Animating() bool { return l.animator.Running() }

// AnimationID returns the id of the running animation, or 0
func (l *ListView) AnimationID() int { return l.animator.ID() }

// Select marks index as selected, deselecting the previous selection first.
// The host calls it on tap; gestures never select.
func (l *ListView) Select(index int) bool {
	if !l.window.Active() || index < 0 || index >= l.window.ItemCount() {
		return false
	}
	if l.selected == index {
		return true
	}
	l.Deselect()
	n := l.notify()
	offset := l.window.ScrollOffset()
	n.willSelect(index, offset)
	l.selected = index
	l.syncSelection()
	n.didSelect(index, offset)
	return true
}

// Deselect clears the current selection
func (l *ListView) Deselect() {
	if l.selected < 0 {
		return
	}
	n := l.notify()
	index, offset := l.selected, l.window.ScrollOffset()
	n.willDeselect(index, offset)
	l.selected = -1
	l.syncSelection()
	n.didDeselect(index, offset)
}

func (l *ListView) syncSelection() {
	for _, c := range l.window.Cells() {
		if c != nil {
			c.SetSelected(l.selected >= 0 && c.Index() == l.selected)
		}
	}
}

func (l *ListView) numberOfItems() int {
	if l.datasource == nil {
		return 0
	}
	if ic, ok := l.datasource.(ItemCounter); ok {
		return ic.NumberOfItems(l)
	}
	return DefaultItemCount
}

func (l *ListView) notify() sink {
	return sink{list: l, delegate: l.delegate}
}

// listSink forwards window events to the delegate looked up at call time
type listSink struct {
	list *ListView
}

func (s listSink) willDisplay(cell Cell, index, offset int) {
	cell.SetSelected(s.list.selected >= 0 && index == s.list.selected)
	s.list.notify().willDisplay(cell, index, offset)
}

func (s listSink) didChangeDisplayItem(index, offset int) {
	s.list.notify().didChangeDisplayItem(index, offset)
}

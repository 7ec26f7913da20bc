package listview

import "time"

// FlickDuration is the longest drag that still counts as a flick
const FlickDuration = 200 * time.Millisecond

// Decide applies the commit policy. delta is the drag travel towards the
// next item along the active axis. Travel past scrollFactor always commits;
// shorter travel commits only when the drag was a flick.
func Decide(delta float64, elapsed time.Duration, scrollFactor float64) Move {
	switch {
	case delta > scrollFactor:
		return MoveForward
	case delta < -scrollFactor:
		return MoveBackward
	case delta > 0 && elapsed < FlickDuration:
		return MoveForward
	case delta < 0 && elapsed < FlickDuration:
		return MoveBackward
	default:
		return MoveNone
	}
}

// DragSession lives from gesture begin to gesture end
type DragSession struct {
	Start       time.Time
	Translation Point
}

// GestureInterpreter turns a drag into a live offset and, when the drag
// ends, a paging decision
type GestureInterpreter struct {
	now     func() time.Time
	session *DragSession
}

// NewGestureInterpreter creates an idle interpreter. A nil clock uses time.Now.
func NewGestureInterpreter(now func() time.Time) *GestureInterpreter {
	if now == nil {
		now = time.Now
	}
	return &GestureInterpreter{now: now}
}

// Dragging reports whether a session is open
func (g *GestureInterpreter) Dragging() bool {
	return g.session != nil
}

// Begin opens a new session, replacing any open one
func (g *GestureInterpreter) Begin() {
	g.session = &DragSession{Start: g.now()}
}

// Update records the translation of the open session and returns the live
// offset along the active axis. ok is false when no session is open.
func (g *GestureInterpreter) Update(translation Point, geom Layout) (offset float64, ok bool) {
	if g.session == nil {
		return 0, false
	}
	g.session.Translation = translation
	return geom.Axis(translation), true
}

// End closes the session and decides whether it commits
func (g *GestureInterpreter) End(translation Point, geom Layout) (Move, bool) {
	s := g.session
	if s == nil {
		return MoveNone, false
	}
	g.session = nil
	s.Translation = translation

	elapsed := g.now().Sub(s.Start)
	// Dragging content towards the leading edge reveals the next item.
	delta := -geom.Axis(s.Translation)
	return Decide(delta, elapsed, geom.ScrollFactor()), true
}

// Cancel drops the open session without a decision
func (g *GestureInterpreter) Cancel() {
	g.session = nil
}

package listview

import "time"

// Default animation timings
const (
	DefaultPreviewDuration = 200 * time.Millisecond
	DefaultSettleDuration  = 200 * time.Millisecond
)

// EaseOut decelerates towards the end of the animation
func EaseOut(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

type animation struct {
	id       int
	start    time.Time
	duration time.Duration
	cells    [3]Cell
	from     [3]Rect
	to       [3]Rect
}

// Animator moves cell frames towards target rectangles over time. Starting
// a new animation replaces the running one and begins from the frames the
// cells currently have. Logical list state never waits on it.
type Animator struct {
	now    func() time.Time
	seq    int
	active *animation
}

// NewAnimator creates an idle animator. A nil clock uses time.Now.
func NewAnimator(now func() time.Time) *Animator {
	if now == nil {
		now = time.Now
	}
	return &Animator{now: now}
}

// Start animates cells to the target frames and returns the animation id
func (a *Animator) Start(cells [3]Cell, to [3]Rect, d time.Duration) int {
	a.seq++
	anim := &animation{
		id:       a.seq,
		start:    a.now(),
		duration: d,
		cells:    cells,
		to:       to,
	}
	for i, c := range cells {
		if c != nil {
			anim.from[i] = c.Frame()
		}
	}
	a.active = anim
	if d <= 0 {
		a.Step()
	}
	return anim.id
}

// Step applies the frame for the current time. It reports whether the
// animation is still running.
func (a *Animator) Step() bool {
	anim := a.active
	if anim == nil {
		return false
	}
	t := 1.0
	if anim.duration > 0 {
		t = float64(a.now().Sub(anim.start)) / float64(anim.duration)
	}
	if t >= 1 {
		t = 1
	}
	if t < 0 {
		t = 0
	}
	k := EaseOut(t)
	for i, c := range anim.cells {
		if c == nil {
			continue
		}
		if t >= 1 {
			c.SetFrame(anim.to[i])
		} else {
			c.SetFrame(lerpRect(anim.from[i], anim.to[i], k))
		}
	}
	if t >= 1 {
		a.active = nil
		return false
	}
	return true
}

// Stop drops the running animation where it is
func (a *Animator) Stop() {
	a.active = nil
}

// Running reports whether an animation is in flight
func (a *Animator) Running() bool { return a.active != nil }

// ID returns the id of the running animation, or 0
func (a *Animator) ID() int {
	if a.active == nil {
		return 0
	}
	return a.active.id
}

func lerp(a, b, k float64) float64 { return a + (b-a)*k }

func lerpRect(from, to Rect, k float64) Rect {
	return Rect{
		Origin: Point{X: lerp(from.Origin.X, to.Origin.X, k), Y: lerp(from.Origin.Y, to.Origin.Y, k)},
		Size:   Size{Width: lerp(from.Size.Width, to.Size.Width, k), Height: lerp(from.Size.Height, to.Size.Height, k)},
	}
}

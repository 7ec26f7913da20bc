package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"swipelist/internal/config"
	"swipelist/internal/deck"
	"swipelist/internal/domain"
	"swipelist/internal/eventbus"
	"swipelist/internal/listview"
)

const (
	defaultFrame = 16 * time.Millisecond
	maxMargin    = 12
)

// DeckLoader re-reads the deck on reload
type DeckLoader func() (domain.Deck, error)

// Option configures a Model
type Option func(*Model)

// WithLoader sets the function used to re-read the deck on reload
func WithLoader(load DeckLoader) Option {
	return func(m *Model) { m.loader = load }
}

// WithClock sets the clock used for gestures, animations and event times
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// mouseState tracks one left-button press
type mouseState struct {
	pressed  bool
	dragging bool // a drag session was opened on press
	moved    bool
	start    listview.Point
}

// Model is the bubbletea host of the paging list. It is the list's
// delegate and datasource, and relays list events to the bus.
type Model struct {
	bus      eventbus.EventBus
	deck     domain.Deck
	loader   DeckLoader
	renderer *deck.Renderer
	list     *listview.ListView

	keys   KeyMap
	help   help.Model
	styles *Styles
	events *eventLog

	width  int
	height int
	frame  time.Duration
	margin int
	now    func() time.Time
	mouse  mouseState
	err    error
}

// NewModel creates the host model for a deck
func NewModel(bus eventbus.EventBus, cfg *config.Config, d domain.Deck, opts ...Option) *Model {
	m := &Model{
		bus:      bus,
		deck:     d,
		renderer: deck.NewRenderer(cfg.Deck.Style),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		styles:   NewStyles(),
		events:   newEventLog(defaultEventLogSize),
		frame:    time.Duration(cfg.Animation.FrameMillis) * time.Millisecond,
		margin:   cfg.List.Margin.Left,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.frame <= 0 {
		m.frame = defaultFrame
	}

	dir, err := listview.ParseScrollDirection(cfg.List.ScrollDirection)
	if err != nil {
		log.Printf("Using horizontal paging: %v", err)
	}
	m.list = listview.New(
		listview.WithClock(m.now),
		listview.WithDurations(
			time.Duration(cfg.Animation.PreviewMillis)*time.Millisecond,
			time.Duration(cfg.Animation.SettleMillis)*time.Millisecond,
		),
		listview.WithCellFactory(newPageCell),
	)
	m.list.SetScrollDirection(dir)
	m.list.SetScrollEnabled(cfg.List.ScrollEnabled)
	mg := cfg.List.Margin
	m.list.SetMargin(listview.Insets{
		Top:    float64(mg.Top),
		Left:   float64(mg.Left),
		Bottom: float64(mg.Bottom),
		Right:  float64(mg.Right),
	})
	m.list.SetDelegate(m)
	m.list.SetDatasource(m)
	return m
}

// List returns the hosted list view
func (m *Model) List() *listview.ListView { return m.list }

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)

	case animationTickMsg:
		if msg.id == m.list.AnimationID() && m.list.Step() {
			cmd = m.tick(msg.id)
		}

	case pagerClosedMsg:
		if msg.err != nil {
			m.setError("pager", msg.err)
		}
	}

	if m.width > 0 {
		m.list.LayoutIfNeeded()
	}
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Prev):
		return m.afterGesture(m.list.Flick(listview.MoveBackward))

	case key.Matches(msg, m.keys.Next):
		return m.afterGesture(m.list.Flick(listview.MoveForward))

	case key.Matches(msg, m.keys.Select):
		m.toggleSelection()

	case key.Matches(msg, m.keys.Reload):
		m.reload()

	case key.Matches(msg, m.keys.Direction):
		m.cancelDrag()
		dir := listview.Vertical
		if m.list.ScrollDirection() == listview.Vertical {
			dir = listview.Horizontal
		}
		m.list.SetScrollDirection(dir)
		m.configChanged()

	case key.Matches(msg, m.keys.Scroll):
		m.mouse = mouseState{}
		m.list.SetScrollEnabled(!m.list.ScrollEnabled())
		m.configChanged()

	case key.Matches(msg, m.keys.Wider):
		m.setMargin(m.margin - 1)

	case key.Matches(msg, m.keys.Narrower):
		m.setMargin(m.margin + 1)

	case key.Matches(msg, m.keys.Log):
		return showInPager(m.events.Render(m.styles))

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	p := listview.Point{X: float64(msg.X), Y: float64(msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || msg.Y >= m.listHeight() {
			return nil
		}
		m.mouse = mouseState{pressed: true, start: p}
		m.mouse.dragging = m.list.BeginDrag()

	case tea.MouseActionMotion:
		if !m.mouse.pressed {
			return nil
		}
		tr := translation(m.mouse.start, p)
		if tr != (listview.Point{}) {
			m.mouse.moved = true
		}
		if !m.mouse.dragging {
			return nil
		}
		id, ok := m.list.Drag(tr)
		if !ok {
			m.mouse.dragging = false
			return nil
		}
		return m.tick(id)

	case tea.MouseActionRelease:
		if !m.mouse.pressed {
			return nil
		}
		state := m.mouse
		m.mouse = mouseState{}
		tr := translation(state.start, p)

		if !state.moved && tr == (listview.Point{}) {
			var cmd tea.Cmd
			if state.dragging {
				cmd = m.tick(m.list.CancelDrag())
			}
			m.toggleSelection()
			return cmd
		}
		if !state.dragging {
			return nil
		}
		return m.afterGesture(m.list.EndDrag(tr))
	}
	return nil
}

// translation is the travel from the press point to p
func translation(start, p listview.Point) listview.Point {
	return listview.Point{X: p.X - start.X, Y: p.Y - start.Y}
}

// afterGesture reports a committed move and animates the settle
func (m *Model) afterGesture(move listview.Move, id int) tea.Cmd {
	if move != listview.MoveNone {
		m.publish(eventbus.PageCommittedEvent{
			Move:   move.String(),
			Index:  m.list.CurrentIndex(),
			Offset: m.list.ScrollOffset(),
		})
	}
	return m.tick(id)
}

func (m *Model) tick(id int) tea.Cmd {
	if id == 0 {
		return nil
	}
	return tea.Tick(m.frame, func(time.Time) tea.Msg {
		return animationTickMsg{id: id}
	})
}

func (m *Model) cancelDrag() {
	if m.list.Dragging() {
		m.list.CancelDrag()
	}
	m.mouse = mouseState{}
}

func (m *Model) toggleSelection() {
	if !m.list.Active() {
		return
	}
	current := m.list.CurrentIndex()
	if m.list.SelectedIndex() == current {
		m.list.Deselect()
		return
	}
	m.list.Select(current)
}

func (m *Model) reload() {
	m.cancelDrag()
	if m.loader != nil {
		d, err := m.loader()
		if err != nil {
			m.setError("reload", err)
			return
		}
		m.deck = d
		m.publish(eventbus.DeckLoadedEvent{Deck: d})
	}
	m.err = nil
	m.list.ReloadData()
	m.publish(eventbus.DataReloadedEvent{Items: m.deck.Len()})
}

func (m *Model) setMargin(margin int) {
	margin = max(0, min(margin, maxMargin))
	if margin == m.margin {
		return
	}
	m.cancelDrag()
	m.margin = margin
	cur := m.list.Margin()
	cur.Left, cur.Right = float64(margin), float64(margin)
	m.list.SetMargin(cur)
	m.configChanged()
}

func (m *Model) configChanged() {
	m.publish(eventbus.ConfigChangedEvent{
		ScrollDirection: m.list.ScrollDirection().String(),
		ScrollEnabled:   m.list.ScrollEnabled(),
		Margin:          m.margin,
	})
}

func (m *Model) setError(op string, err error) {
	log.Printf("Error during %s: %v", op, err)
	m.err = fmt.Errorf("%s: %w", op, err)
	m.publish(eventbus.ErrorEvent{Message: m.err.Error(), Err: err})
}

func (m *Model) publish(e eventbus.DomainEvent) {
	m.events.Add(m.now(), e)
	if m.bus != nil {
		m.bus.Publish(e)
	}
}

// resize gives the list everything above the footer
func (m *Model) resize() {
	if m.width == 0 {
		return
	}
	m.cancelDrag()
	m.list.SetBounds(listview.Rect{Size: listview.Size{
		Width:  float64(m.width),
		Height: float64(m.listHeight()),
	}})
}

func (m *Model) listHeight() int {
	return max(0, m.height-lipgloss.Height(m.footer()))
}

// NumberOfItems implements listview.ItemCounter
func (m *Model) NumberOfItems(*listview.ListView) int { return m.deck.Len() }

// WillDisplay implements listview.CellDisplayer
func (m *Model) WillDisplay(_ *listview.ListView, cell listview.Cell, index, offset int) {
	if pc, ok := cell.(*pageCell); ok {
		pc.SetPage(m.deck.Page(index), fmt.Sprintf("%d/%d", index+1, m.deck.Len()))
	}
	m.publish(eventbus.CellWillDisplayEvent{Index: index, Offset: offset})
}

// DidChangeDisplayItem implements listview.DisplayItemChanger
func (m *Model) DidChangeDisplayItem(_ *listview.ListView, index, offset int) {
	m.publish(eventbus.DisplayItemChangedEvent{
		Deck:   m.deck.Name,
		Index:  index,
		Offset: offset,
		At:     m.now(),
	})
}

func (m *Model) WillSelectItem(*listview.ListView, int, int) {}

// DidSelectItem implements listview.ItemSelector
func (m *Model) DidSelectItem(_ *listview.ListView, index, offset int) {
	m.publish(eventbus.ItemSelectedEvent{Index: index, Offset: offset})
}

func (m *Model) WillDeselectItem(*listview.ListView, int, int) {}

// DidDeselectItem implements listview.ItemDeselector
func (m *Model) DidDeselectItem(_ *listview.ListView, index, offset int) {
	m.publish(eventbus.ItemDeselectedEvent{Index: index, Offset: offset})
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	h := m.listHeight()
	var body string
	if !m.list.Active() {
		body = lipgloss.Place(m.width, h, lipgloss.Center, lipgloss.Center,
			m.styles.Dim.Render("No pages"))
	} else {
		canvas := NewCanvas(m.width, h)
		for _, c := range m.list.Cells() {
			pc, ok := c.(*pageCell)
			if !ok || pc.Hidden() {
				continue
			}
			x, y := pc.Origin()
			canvas.Paint(x, y, pc.Render(m.renderer, m.styles))
		}
		body = canvas.String()
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.footer())
}

func (m *Model) footer() string {
	return m.statusLine() + "\n" + m.styles.Help.Render(m.help.View(m.keys))
}

func (m *Model) statusLine() string {
	field := func(k, v string) string {
		return m.styles.StatusKey.Render(k) + " " + m.styles.StatusValue.Render(v)
	}

	parts := []string{
		field("page", fmt.Sprintf("%d/%d", m.list.CurrentIndex()+1, m.list.ItemCount())),
		field("offset", fmt.Sprintf("%+d", m.list.ScrollOffset())),
		field("axis", m.list.ScrollDirection().String()),
	}
	if !m.list.ScrollEnabled() {
		parts = append(parts, m.styles.Dim.Render("paging off"))
	}
	if sel := m.list.SelectedIndex(); sel >= 0 {
		parts = append(parts, field("selected", fmt.Sprintf("%d", sel+1)))
	}
	line := strings.Join(parts, m.styles.Status.Render("  •  "))
	if m.err != nil {
		line += "  " + m.styles.StatusError.Render(m.err.Error())
	}
	return line
}

package ui

import (
	"fmt"
	"strings"
	"time"

	"swipelist/internal/eventbus"
)

const defaultEventLogSize = 500

type logEntry struct {
	at    time.Time
	event eventbus.DomainEvent
}

// eventLog keeps the most recent list events for the pager
type eventLog struct {
	entries []logEntry
	limit   int
}

func newEventLog(limit int) *eventLog {
	if limit <= 0 {
		limit = defaultEventLogSize
	}
	return &eventLog{limit: limit}
}

func (l *eventLog) Add(at time.Time, e eventbus.DomainEvent) {
	l.entries = append(l.entries, logEntry{at: at, event: e})
	if over := len(l.entries) - l.limit; over > 0 {
		l.entries = append(l.entries[:0], l.entries[over:]...)
	}
}

func (l *eventLog) Len() int { return len(l.entries) }

// Last returns the newest event, or nil
func (l *eventLog) Last() eventbus.DomainEvent {
	if len(l.entries) == 0 {
		return nil
	}
	return l.entries[len(l.entries)-1].event
}

// Render formats the log newest first
func (l *eventLog) Render(styles *Styles) string {
	var b strings.Builder
	b.WriteString(styles.LogTitle.Render(fmt.Sprintf("List events (%d)", len(l.entries))))
	b.WriteString("\n")
	for i := len(l.entries) - 1; i >= 0; i-- {
		e := l.entries[i]
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			styles.LogTime.Render(e.at.Format("15:04:05.000")),
			styles.LogEvent.Render(fmt.Sprintf("%-20s", e.event.Type())),
			describe(e.event)))
	}
	return b.String()
}

func describe(e eventbus.DomainEvent) string {
	switch ev := e.(type) {
	case eventbus.DisplayItemChangedEvent:
		return fmt.Sprintf("index=%d offset=%d", ev.Index, ev.Offset)
	case eventbus.CellWillDisplayEvent:
		return fmt.Sprintf("index=%d offset=%d", ev.Index, ev.Offset)
	case eventbus.ItemSelectedEvent:
		return fmt.Sprintf("index=%d offset=%d", ev.Index, ev.Offset)
	case eventbus.ItemDeselectedEvent:
		return fmt.Sprintf("index=%d offset=%d", ev.Index, ev.Offset)
	case eventbus.PageCommittedEvent:
		return fmt.Sprintf("%s index=%d offset=%d", ev.Move, ev.Index, ev.Offset)
	case eventbus.DataReloadedEvent:
		return fmt.Sprintf("items=%d", ev.Items)
	case eventbus.ConfigChangedEvent:
		return fmt.Sprintf("direction=%s paging=%t margin=%d", ev.ScrollDirection, ev.ScrollEnabled, ev.Margin)
	case eventbus.ErrorEvent:
		return ev.Message
	default:
		return fmt.Sprintf("%+v", e)
	}
}

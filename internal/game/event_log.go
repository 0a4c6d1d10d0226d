package game

import (
	"fmt"
	"strings"
)

// Event categories recorded by a Session.
const (
	CategoryScreen = "screen"
	CategoryMode   = "mode"
	CategoryMove   = "move"
	CategoryFPS    = "fps"
	CategoryInput  = "input"
)

// Event is one notable thing that happened during a session.
type Event struct {
	Tick     int
	Category string // screen, mode, move, fps, input
	Key      string // specific event name within the category
	Value    string // human-readable detail
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] screen    change           game -> win
func (e Event) String() string {
	return fmt.Sprintf("[T=%03d] %-9s %-16s %s", e.Tick, e.Category, e.Key, e.Value)
}

// EventLog collects events in order. It is unbounded and machine-readable,
// meant for tests and headless reports.
type EventLog struct {
	entries []Event
}

func NewEventLog() *EventLog { return &EventLog{} }

// Add records a new entry.
func (l *EventLog) Add(tick int, category, key, value string) {
	l.entries = append(l.entries, Event{Tick: tick, Category: category, Key: key, Value: value})
}

// Entries returns all recorded entries.
func (l *EventLog) Entries() []Event { return l.entries }

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (l *EventLog) Filter(category, key string) []Event {
	var out []Event
	for _, e := range l.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns how many entries match category and key.
func (l *EventLog) Count(category, key string) int {
	return len(l.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (l *EventLog) LastOf(category, key string) (Event, bool) {
	entries := l.Filter(category, key)
	if len(entries) == 0 {
		return Event{}, false
	}
	return entries[len(entries)-1], true
}

// Format returns the full log as a single string for t.Log output.
func (l *EventLog) Format() string {
	var sb strings.Builder
	for _, e := range l.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

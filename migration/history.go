package migration

import (
	"fmt"
	"strings"
)

// HistoryItem records one completed migration: count individuals moved
// from origin to destination.
type HistoryItem struct {
	Count       int
	Origin      int
	Destination int
}

// History is an append-only log of completed migrations.
type History struct {
	items []HistoryItem
}

// NewHistory returns an empty History.
func NewHistory() *History { return &History{} }

// Append records one migration event.
func (h *History) Append(count, origin, dest int) {
	h.items = append(h.items, HistoryItem{Count: count, Origin: origin, Destination: dest})
}

// Dump returns a copy of every recorded item, in arrival order.
func (h *History) Dump() []HistoryItem {
	out := make([]HistoryItem, len(h.items))
	copy(out, h.items)
	return out
}

// Clear discards every recorded item.
func (h *History) Clear() { h.items = nil }

// Len reports the number of recorded items.
func (h *History) Len() int { return len(h.items) }

// Clone returns a deep copy.
func (h *History) Clone() *History {
	out := NewHistory()
	out.items = append(out.items, h.items...)
	return out
}

// HumanReadable renders one line per history item: "count origin -> destination".
func (h *History) HumanReadable() string {
	var b strings.Builder
	for _, it := range h.items {
		fmt.Fprintf(&b, "%d %d -> %d\n", it.Count, it.Origin, it.Destination)
	}
	return b.String()
}

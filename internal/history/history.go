// Package history counts per-category interest. Counters only grow; the
// order in which categories first appear is kept for tie-breaking.
package history

import (
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type ViewHistory struct {
	counts *orderedmap.OrderedMap[string, int]
}

func New() *ViewHistory {
	return &ViewHistory{counts: orderedmap.New[string, int]()}
}

// Track increments the counter for category and returns the new value.
func (h *ViewHistory) Track(category string) int {
	n, _ := h.counts.Get(category)
	n++
	h.counts.Set(category, n)
	return n
}

func (h *ViewHistory) Count(category string) int {
	n, _ := h.counts.Get(category)
	return n
}

func (h *ViewHistory) Len() int {
	return h.counts.Len()
}

// Ranked returns categories by count descending; equal counts keep the
// order of first appearance.
func (h *ViewHistory) Ranked() []string {
	type entry struct {
		category string
		count    int
	}
	entries := make([]entry, 0, h.counts.Len())
	for pair := h.counts.Oldest(); pair != nil; pair = pair.Next() {
		entries = append(entries, entry{pair.Key, pair.Value})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].count > entries[j].count })

	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.category
	}
	return out
}

// Counts returns a copy of the counters.
func (h *ViewHistory) Counts() map[string]int {
	out := make(map[string]int, h.counts.Len())
	for pair := h.counts.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key] = pair.Value
	}
	return out
}

// Reset wipes all counters.
func (h *ViewHistory) Reset() {
	h.counts = orderedmap.New[string, int]()
}

func (h *ViewHistory) MarshalJSON() ([]byte, error) {
	return h.counts.MarshalJSON()
}

func (h *ViewHistory) UnmarshalJSON(b []byte) error {
	counts := orderedmap.New[string, int]()
	if err := counts.UnmarshalJSON(b); err != nil {
		return err
	}
	h.counts = counts
	return nil
}

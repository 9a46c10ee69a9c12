package biztrack

import (
	"fmt"
	"sort"
	"strings"
)

// freqCounter counts occurrences of string values while remembering the
// order in which each distinct value was first seen. Sorting is by count
// descending, and among equal counts the first-seen value comes first.
// This makes the breakdown tie-break explicit instead of relying on map
// iteration order.
type freqCounter struct {
	counts    map[string]int
	firstSeen map[string]int
	order     []string // distinct values in first-seen order
}

func newFreqCounter() *freqCounter {
	return &freqCounter{
		counts:    make(map[string]int),
		firstSeen: make(map[string]int),
	}
}

// Add counts n occurrences of value.
func (c *freqCounter) Add(value string, n int) {
	if _, seen := c.counts[value]; !seen {
		c.firstSeen[value] = len(c.order)
		c.order = append(c.order, value)
	}
	c.counts[value] += n
}

// freqEntry is one (value, count) pair of a sorted counter.
type freqEntry struct {
	Value string
	Count int
}

// Sorted returns the entries by (-count, first-seen index).
func (c *freqCounter) Sorted() []freqEntry {
	entries := make([]freqEntry, 0, len(c.order))
	for _, v := range c.order {
		entries = append(entries, freqEntry{Value: v, Count: c.counts[v]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return c.firstSeen[entries[i].Value] < c.firstSeen[entries[j].Value]
	})
	return entries
}

// Format renders the sorted entries as a comma-joined breakdown string,
// e.g. "6PM-12AM (3), 6AM-12PM (1)".
func (c *freqCounter) Format() string {
	entries := c.Sorted()
	formatted := make([]string, 0, len(entries))
	for _, e := range entries {
		formatted = append(formatted, fmt.Sprintf("%s (%d)", e.Value, e.Count))
	}
	return strings.Join(formatted, ", ")
}

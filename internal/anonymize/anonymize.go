// Package anonymize maps arbitrary label strings to sequential opaque
// identifiers. Output is memoized, so within one Anonymizer the same input
// always yields the same identifier, in first-seen order.
package anonymize

import (
	"fmt"
	"sync"
)

// Anonymizer assigns stable sequential labels like "Option 1", "Option 2".
// Safe for concurrent use.
type Anonymizer struct {
	mu     sync.Mutex
	prefix string
	next   int
	seen   map[string]string
}

// New creates an Anonymizer that emits "<prefix> N" labels.
func New(prefix string) *Anonymizer {
	return &Anonymizer{
		prefix: prefix,
		next:   1,
		seen:   make(map[string]string),
	}
}

// Label returns the opaque identifier for name, assigning the next
// sequential one on first sight.
func (a *Anonymizer) Label(name string) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	if label, ok := a.seen[name]; ok {
		return label
	}

	label := fmt.Sprintf("%s %d", a.prefix, a.next)
	a.seen[name] = label
	a.next++
	return label
}

// LabelAll maps a slice of names preserving order.
func (a *Anonymizer) LabelAll(names []string) []string {
	labels := make([]string, len(names))
	for i, name := range names {
		labels[i] = a.Label(name)
	}
	return labels
}

// Count reports how many distinct names have been assigned labels.
func (a *Anonymizer) Count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.seen)
}

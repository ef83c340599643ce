// Package tabs holds an ordered set of labeled tabs with a single active
// selection.
//
// Selection never fails loudly: unknown labels report false, out of range
// indexes are ignored, and accessors on an empty set report absence.
package tabs

import "slices"

// Tab binds a display label to a value.
type Tab[T any] struct {
	Label string
	Value T
}

func New[T any](label string, value T) Tab[T] {
	return Tab[T]{Label: label, Value: value}
}

// Tabs is fixed at construction; only the active index changes.
type Tabs[T any] struct {
	tabs   []Tab[T]
	active int
}

func NewTabs[T any](tabs ...Tab[T]) *Tabs[T] {
	return &Tabs[T]{tabs: slices.Clone(tabs)}
}

func (t *Tabs[T]) Len() int { return len(t.tabs) }

// All returns a copy of the tabs in order.
func (t *Tabs[T]) All() []Tab[T] { return slices.Clone(t.tabs) }

func (t *Tabs[T]) Labels() []string {
	out := make([]string, 0, len(t.tabs))
	for _, tab := range t.tabs {
		out = append(out, tab.Label)
	}
	return out
}

// ActiveIndex is only meaningful when Len() > 0.
func (t *Tabs[T]) ActiveIndex() int { return t.active }

// SetActiveLabel selects the first tab whose label matches, comparing with
// ASCII case folding only. Non-ASCII letters must match exactly.
func (t *Tabs[T]) SetActiveLabel(label string) bool {
	for idx, tab := range t.tabs {
		if equalFoldASCII(tab.Label, label) {
			t.active = idx
			return true
		}
	}
	return false
}

// SetActiveIndex ignores indexes outside the tab range.
func (t *Tabs[T]) SetActiveIndex(index int) {
	if index >= 0 && index < len(t.tabs) {
		t.active = index
	}
}

// Next and Prev cycle the selection, wrapping at either end.
func (t *Tabs[T]) Next() {
	if len(t.tabs) == 0 {
		return
	}
	t.SetActiveIndex((t.active + 1) % len(t.tabs))
}

func (t *Tabs[T]) Prev() {
	if len(t.tabs) == 0 {
		return
	}
	t.SetActiveIndex((t.active - 1 + len(t.tabs)) % len(t.tabs))
}

func (t *Tabs[T]) Active() (Tab[T], bool) {
	if t.active < 0 || t.active >= len(t.tabs) {
		return Tab[T]{}, false
	}
	return t.tabs[t.active], true
}

func (t *Tabs[T]) ActiveValue() (T, bool) {
	tab, ok := t.Active()
	return tab.Value, ok
}

func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

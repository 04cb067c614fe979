// Package scrollspy tracks which page section is in view.
package scrollspy

import (
	"errors"
	"fmt"
)

const (
	// Threshold is the viewport offset a section's top must reach (at or
	// above) before it becomes active.
	Threshold = 150.0
	// ScrolledOffset is how far the page must scroll before the navbar
	// switches to its compact style.
	ScrolledOffset = 50.0
)

var (
	ErrNoItems         = errors.New("scrollspy: at least one navigation item is required")
	ErrEmptyAnchor     = errors.New("scrollspy: navigation item has no anchor")
	ErrDuplicateAnchor = errors.New("scrollspy: duplicate anchor")
)

// Item is one entry of the navigation bar.
type Item struct {
	Name   string `json:"name" yaml:"name"`
	Anchor string `json:"anchor" yaml:"anchor"`
}

// MeasureFunc returns the top of an anchor's element relative to the
// viewport. ok is false when the element is not mounted.
type MeasureFunc func(anchor string) (top float64, ok bool)

// Scroller performs a one-shot programmatic scroll.
type Scroller interface {
	ScrollTo(anchor string, smooth bool)
}

// ScrollerFunc adapts a function to Scroller.
type ScrollerFunc func(anchor string, smooth bool)

func (f ScrollerFunc) ScrollTo(anchor string, smooth bool) { f(anchor, smooth) }

// State is what the navigation bar renders from.
type State struct {
	Active   string  `json:"active"`
	Offset   float64 `json:"offset"`
	Scrolled bool    `json:"scrolled"`
	MenuOpen bool    `json:"menuOpen"`
}

// Select scans items last to first and returns the first anchor whose top is
// at or above threshold. Items whose element is missing are skipped.
func Select(items []Item, measure MeasureFunc, threshold float64) (string, bool) {
	for i := len(items) - 1; i >= 0; i-- {
		top, ok := measure(items[i].Anchor)
		if !ok {
			continue
		}
		if top <= threshold {
			return items[i].Anchor, true
		}
	}
	return "", false
}

// Navigator owns the scroll state for one view. It is not safe for
// concurrent use; scroll events are expected one at a time.
type Navigator struct {
	items    []Item
	measure  MeasureFunc
	scroller Scroller
	state    State
}

// New validates items and returns a navigator with the first item active.
// scroller may be nil.
func New(items []Item, measure MeasureFunc, scroller Scroller) (*Navigator, error) {
	if err := Validate(items); err != nil {
		return nil, err
	}
	return &Navigator{
		items:    append([]Item(nil), items...),
		measure:  measure,
		scroller: scroller,
		state:    State{Active: items[0].Anchor},
	}, nil
}

// Validate checks that items is non-empty and anchors are unique.
func Validate(items []Item) error {
	if len(items) == 0 {
		return ErrNoItems
	}
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if it.Anchor == "" {
			return fmt.Errorf("%w: %q", ErrEmptyAnchor, it.Name)
		}
		if seen[it.Anchor] {
			return fmt.Errorf("%w: %q", ErrDuplicateAnchor, it.Anchor)
		}
		seen[it.Anchor] = true
	}
	return nil
}

func (n *Navigator) Items() []Item { return n.items }

func (n *Navigator) State() State { return n.state }

func (n *Navigator) Active() string { return n.state.Active }

// OnScroll recomputes the active section for a new scroll offset and
// reports whether anything the navbar renders changed.
func (n *Navigator) OnScroll(offset float64) (State, bool) {
	prev := n.state
	n.state.Offset = offset
	n.state.Scrolled = offset > ScrolledOffset
	if anchor, ok := Select(n.items, n.measure, Threshold); ok {
		n.state.Active = anchor
	}
	return n.state, prev.Active != n.state.Active || prev.Scrolled != n.state.Scrolled
}

// Navigate scrolls to anchor if it is a known, mounted section and closes
// the mobile menu either way. It reports whether a scroll was issued.
func (n *Navigator) Navigate(anchor string) bool {
	n.state.MenuOpen = false
	if !n.has(anchor) {
		return false
	}
	if _, ok := n.measure(anchor); !ok {
		return false
	}
	if n.scroller != nil {
		n.scroller.ScrollTo(anchor, true)
	}
	return true
}

// ToggleMenu flips the mobile menu overlay and returns its new state.
func (n *Navigator) ToggleMenu() bool {
	n.state.MenuOpen = !n.state.MenuOpen
	return n.state.MenuOpen
}

// SetMeasure replaces the measurement function, for views whose layout is
// reported alongside each scroll event.
func (n *Navigator) SetMeasure(measure MeasureFunc) { n.measure = measure }

func (n *Navigator) has(anchor string) bool {
	for _, it := range n.items {
		if it.Anchor == anchor {
			return true
		}
	}
	return false
}

// MapMeasure measures from a snapshot of element tops keyed by anchor.
func MapMeasure(tops map[string]float64) MeasureFunc {
	return func(anchor string) (float64, bool) {
		top, ok := tops[anchor]
		return top, ok
	}
}

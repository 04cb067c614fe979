// Package typewriter animates a list of role strings one character at a
// time, typing each role out, holding it, deleting it and moving on.
package typewriter

import (
	"errors"
	"time"
	"unicode/utf8"
)

// Animation timings.
const (
	TypeDelay    = 100 * time.Millisecond
	DeleteDelay  = 50 * time.Millisecond
	PauseAtFull  = 2000 * time.Millisecond
	PauseAtEmpty = 0 * time.Millisecond
)

var ErrNoRoles = errors.New("typewriter: at least one role is required")

type Direction int

const (
	Typing Direction = iota
	Deleting
)

func (d Direction) String() string {
	if d == Deleting {
		return "deleting"
	}
	return "typing"
}

// Cycle is the state of the role animation. Text is always a prefix of
// Roles[Index].
type Cycle struct {
	Roles     []string
	Index     int
	Text      string
	Direction Direction
}

// NewCycle returns a cycle positioned before the first character of the
// first role.
func NewCycle(roles []string) (Cycle, error) {
	if len(roles) == 0 {
		return Cycle{}, ErrNoRoles
	}
	return Cycle{Roles: append([]string(nil), roles...), Direction: Typing}, nil
}

// Role returns the role currently being typed or deleted.
func (c Cycle) Role() string { return c.Roles[c.Index] }

// Full reports whether the whole role is displayed.
func (c Cycle) Full() bool { return c.Text == c.Role() }

// Delay returns how long to wait in the current state before the next Step.
func (c Cycle) Delay() time.Duration {
	switch {
	case c.Direction == Typing && c.Full():
		return PauseAtFull
	case c.Direction == Deleting && c.Text == "":
		return PauseAtEmpty
	case c.Direction == Deleting:
		return DeleteDelay
	default:
		return TypeDelay
	}
}

// Next applies a single transition.
func (c Cycle) Next() Cycle {
	role := c.Role()
	n := utf8.RuneCountInString(c.Text)
	switch {
	case c.Direction == Typing && c.Text == role:
		c.Direction = Deleting
	case c.Direction == Deleting && c.Text == "":
		c.Index = (c.Index + 1) % len(c.Roles)
		c.Direction = Typing
	case c.Direction == Typing:
		c.Text = prefix(role, n+1)
	default:
		c.Text = prefix(role, n-1)
	}
	return c
}

// Step applies one transition and returns the new state together with the
// delay before the following Step is due.
func Step(c Cycle) (Cycle, time.Duration) {
	next := c.Next()
	return next, next.Delay()
}

// prefix returns the first n runes of s.
func prefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

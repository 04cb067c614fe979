package typewriter

import (
	"sync"

	"github.com/Zachkp/portfolio/internal/scheduler"
)

// Frame is what a view needs to render one step of the animation.
type Frame struct {
	Text      string `json:"text"`
	Role      string `json:"role"`
	Index     int    `json:"index"`
	Direction string `json:"direction"`
}

func frameOf(c Cycle) Frame {
	return Frame{Text: c.Text, Role: c.Role(), Index: c.Index, Direction: c.Direction.String()}
}

// Animator drives a Cycle with a scheduler. Exactly one timer is armed at a
// time and frames are published in step order.
type Animator struct {
	sched   scheduler.Scheduler
	onFrame func(Frame)

	mu        sync.Mutex
	cycle     Cycle
	pending   scheduler.Timer
	started   bool
	stopped   bool
	mutations int
}

// NewAnimator creates an animator over roles. onFrame may be nil; it is
// called outside the animator's lock.
func NewAnimator(sched scheduler.Scheduler, roles []string, onFrame func(Frame)) (*Animator, error) {
	c, err := NewCycle(roles)
	if err != nil {
		return nil, err
	}
	return &Animator{sched: sched, onFrame: onFrame, cycle: c}, nil
}

// Start arms the first step. Calling Start twice or after Stop does nothing.
func (a *Animator) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.started || a.stopped {
		return
	}
	a.started = true
	a.arm()
}

// Stop cancels the pending timer. No state changes after Stop returns.
func (a *Animator) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopped = true
	if a.pending != nil {
		a.pending.Stop()
		a.pending = nil
	}
}

// Frame returns a snapshot of the current state.
func (a *Animator) Frame() Frame {
	a.mu.Lock()
	defer a.mu.Unlock()
	return frameOf(a.cycle)
}

// Mutations counts applied steps.
func (a *Animator) Mutations() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mutations
}

// arm clears any pending timer and schedules the next step. Caller holds mu.
func (a *Animator) arm() {
	if a.pending != nil {
		a.pending.Stop()
	}
	a.pending = a.sched.AfterFunc(a.cycle.Delay(), a.fire)
}

func (a *Animator) fire() {
	a.mu.Lock()
	if a.stopped {
		a.mu.Unlock()
		return
	}
	a.pending = nil
	a.cycle = a.cycle.Next()
	a.mutations++
	f := frameOf(a.cycle)
	a.mu.Unlock()

	if a.onFrame != nil {
		a.onFrame(f)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.stopped {
		a.arm()
	}
}

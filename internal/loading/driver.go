// Package loading drives the splash screen progress counter.
package loading

import (
	"sync"
	"time"

	"github.com/Zachkp/portfolio/internal/scheduler"
)

const (
	Step          = 2
	Max           = 100
	Tick          = 30 * time.Millisecond
	CompleteDelay = 500 * time.Millisecond
)

// Next returns the progress value after one tick.
func Next(progress int) int {
	progress += Step
	if progress > Max {
		return Max
	}
	if progress < 0 {
		return 0
	}
	return progress
}

// Driver counts from 0 to Max and reports completion CompleteDelay after
// Max is reached.
type Driver struct {
	sched      scheduler.Scheduler
	onProgress func(int)
	onComplete func()

	mu        sync.Mutex
	progress  int
	pending   scheduler.Timer
	started   bool
	stopped   bool
	done      bool
	mutations int
}

// NewDriver returns an idle driver. Either callback may be nil.
func NewDriver(sched scheduler.Scheduler, onProgress func(int), onComplete func()) *Driver {
	return &Driver{sched: sched, onProgress: onProgress, onComplete: onComplete}
}

func (d *Driver) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.stopped {
		return
	}
	d.started = true
	d.pending = d.sched.AfterFunc(Tick, d.tick)
}

// Stop cancels whichever timer is pending, tick or completion.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
}

func (d *Driver) Progress() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.progress
}

func (d *Driver) Done() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.done
}

func (d *Driver) Mutations() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mutations
}

func (d *Driver) tick() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.pending = nil
	d.progress = Next(d.progress)
	d.mutations++
	p := d.progress
	d.mu.Unlock()

	if d.onProgress != nil {
		d.onProgress(p)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if p >= Max {
		d.pending = d.sched.AfterFunc(CompleteDelay, d.complete)
	} else {
		d.pending = d.sched.AfterFunc(Tick, d.tick)
	}
}

func (d *Driver) complete() {
	d.mu.Lock()
	if d.stopped || d.done {
		d.mu.Unlock()
		return
	}
	d.done = true
	d.pending = nil
	d.mutations++
	d.mu.Unlock()

	if d.onComplete != nil {
		d.onComplete()
	}
}

package scheduler

import (
	"testing"
	"time"
)

func TestManualFiresInDeadlineOrder(t *testing.T) {
	m := NewManual()
	var got []string
	m.AfterFunc(30*time.Millisecond, func() { got = append(got, "c") })
	m.AfterFunc(10*time.Millisecond, func() { got = append(got, "a") })
	m.AfterFunc(10*time.Millisecond, func() { got = append(got, "b") })

	m.Advance(20 * time.Millisecond)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("after 20ms got %v, want [a b]", got)
	}
	if m.Pending() != 1 {
		t.Fatalf("expected 1 pending timer, got %d", m.Pending())
	}

	m.Advance(10 * time.Millisecond)
	if len(got) != 3 || got[2] != "c" {
		t.Fatalf("after 30ms got %v", got)
	}
	if m.Now() != 30*time.Millisecond {
		t.Errorf("expected now=30ms, got %v", m.Now())
	}
}

func TestManualFiresTimersArmedDuringAdvance(t *testing.T) {
	m := NewManual()
	var at []time.Duration
	var tick func()
	tick = func() {
		at = append(at, m.Now())
		if len(at) < 3 {
			m.AfterFunc(0, tick)
		}
	}
	m.AfterFunc(5*time.Millisecond, tick)

	m.Advance(5 * time.Millisecond)
	if len(at) != 3 {
		t.Fatalf("expected zero-delay chain to run 3 times, got %d", len(at))
	}
	for _, d := range at {
		if d != 5*time.Millisecond {
			t.Errorf("expected callback at 5ms, got %v", d)
		}
	}
}

func TestManualStop(t *testing.T) {
	m := NewManual()
	fired := false
	timer := m.AfterFunc(time.Second, func() { fired = true })

	if !timer.Stop() {
		t.Fatal("first Stop should report the timer was pending")
	}
	if timer.Stop() {
		t.Error("second Stop should report false")
	}
	m.Advance(2 * time.Second)
	if fired {
		t.Error("stopped timer fired")
	}
}

func TestManualBlockUntil(t *testing.T) {
	m := NewManual()
	done := make(chan struct{})
	go func() {
		m.BlockUntil(2)
		close(done)
	}()

	m.AfterFunc(time.Second, func() {})
	m.AfterFunc(time.Second, func() {})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("BlockUntil did not return after 2 timers were armed")
	}
}

func TestRealRunsCallback(t *testing.T) {
	done := make(chan struct{})
	Real{}.AfterFunc(time.Millisecond, func() { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("real scheduler never fired")
	}
}

package loading

import (
	"testing"
	"time"

	"github.com/Zachkp/portfolio/internal/scheduler"
)

func TestNextClamps(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 2},
		{48, 50},
		{98, 100},
		{99, 100},
		{100, 100},
		{-5, 0},
	}
	for _, tt := range tests {
		if got := Next(tt.in); got != tt.want {
			t.Errorf("Next(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDriverReachesMaxAfterFiftyTicks(t *testing.T) {
	clock := scheduler.NewManual()
	var seen []int
	var completedAt time.Duration = -1
	d := NewDriver(clock, func(p int) { seen = append(seen, p) }, func() { completedAt = clock.Now() })
	d.Start()

	clock.Advance(1470 * time.Millisecond)
	if d.Progress() != 98 {
		t.Fatalf("after 49 ticks progress = %d, want 98", d.Progress())
	}

	clock.Advance(30 * time.Millisecond)
	if d.Progress() != 100 {
		t.Fatalf("after 50 ticks progress = %d, want 100", d.Progress())
	}
	if len(seen) != 50 {
		t.Fatalf("expected 50 progress reports, got %d", len(seen))
	}
	for i, p := range seen {
		if p != (i+1)*Step {
			t.Fatalf("report %d = %d, want %d", i, p, (i+1)*Step)
		}
	}

	clock.Advance(499 * time.Millisecond)
	if d.Done() || completedAt >= 0 {
		t.Fatal("completed before 500ms hold elapsed")
	}

	clock.Advance(time.Millisecond)
	if completedAt != 2000*time.Millisecond {
		t.Fatalf("completion at %v, want 2s", completedAt)
	}
	if !d.Done() {
		t.Error("Done() should report true")
	}

	clock.Advance(time.Minute)
	if len(seen) != 50 || d.Progress() != 100 {
		t.Errorf("driver kept ticking after completion: %d reports, progress %d", len(seen), d.Progress())
	}
	if clock.Pending() != 0 {
		t.Errorf("timers left armed after completion: %d", clock.Pending())
	}
}

func TestDriverStopBeforeFirstTick(t *testing.T) {
	clock := scheduler.NewManual()
	completed := false
	d := NewDriver(clock, nil, func() { completed = true })
	d.Start()
	d.Stop()

	clock.Advance(time.Minute)
	if d.Mutations() != 0 || d.Progress() != 0 || completed {
		t.Errorf("state changed after Stop: mutations=%d progress=%d completed=%v", d.Mutations(), d.Progress(), completed)
	}
}

func TestDriverStopDuringCompletionHold(t *testing.T) {
	clock := scheduler.NewManual()
	completed := false
	d := NewDriver(clock, nil, func() { completed = true })
	d.Start()
	clock.Advance(1700 * time.Millisecond)
	before := d.Mutations()
	d.Stop()

	clock.Advance(time.Minute)
	if completed {
		t.Error("completion fired after Stop")
	}
	if d.Mutations() != before {
		t.Errorf("mutations changed after Stop: %d -> %d", before, d.Mutations())
	}
	if clock.Pending() != 0 {
		t.Errorf("expected no armed timers, got %d", clock.Pending())
	}
}

func TestDriverProgressBounds(t *testing.T) {
	clock := scheduler.NewManual()
	d := NewDriver(clock, func(p int) {
		if p < 0 || p > Max {
			t.Errorf("progress out of bounds: %d", p)
		}
	}, nil)
	d.Start()
	for i := 0; i < 100; i++ {
		clock.Advance(Tick)
	}
}

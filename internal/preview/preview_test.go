package preview

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Zachkp/portfolio/internal/scheduler"
	"github.com/Zachkp/portfolio/internal/typewriter"
)

func TestSplashCompletes(t *testing.T) {
	clock := scheduler.NewManual()
	var out bytes.Buffer
	errCh := make(chan error, 1)
	go func() { errCh <- Splash(context.Background(), &out, clock) }()

	clock.BlockUntil(1)
	clock.Advance(2 * time.Second)

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Splash: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("splash never completed")
	}
	if !strings.Contains(out.String(), "Loading...") {
		t.Errorf("progress bar not rendered: %q", out.String())
	}
}

func TestSplashCancelled(t *testing.T) {
	clock := scheduler.NewManual()
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- Splash(ctx, &bytes.Buffer{}, clock) }()

	clock.BlockUntil(1)
	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if clock.Pending() != 0 {
		t.Errorf("driver timer survived cancellation")
	}
}

func TestTypewriterRendersFrames(t *testing.T) {
	clock := scheduler.NewManual()
	ctx, cancel := context.WithCancel(context.Background())
	var out bytes.Buffer
	errCh := make(chan error, 1)
	go func() { errCh <- Typewriter(ctx, &out, clock, []string{"Gopher"}) }()

	clock.BlockUntil(1)
	clock.Advance(300 * time.Millisecond)
	cancel()
	if err := <-errCh; err != nil {
		t.Fatalf("Typewriter: %v", err)
	}
	if !strings.Contains(out.String(), "> Gop|") {
		t.Errorf("expected typed prefix, got %q", out.String())
	}
	if clock.Pending() != 0 {
		t.Errorf("animator timer survived cancellation")
	}
}

func TestTypewriterNoRoles(t *testing.T) {
	err := Typewriter(context.Background(), &bytes.Buffer{}, scheduler.NewManual(), nil)
	if !errors.Is(err, typewriter.ErrNoRoles) {
		t.Errorf("expected ErrNoRoles, got %v", err)
	}
}

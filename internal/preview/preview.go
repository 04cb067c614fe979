// Package preview plays the splash screen and hero typewriter in a terminal.
package preview

import (
	"context"
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"

	"github.com/Zachkp/portfolio/internal/loading"
	"github.com/Zachkp/portfolio/internal/scheduler"
	"github.com/Zachkp/portfolio/internal/typewriter"
)

// Splash renders the loading counter as a progress bar and returns once the
// completion hold has elapsed.
func Splash(ctx context.Context, out io.Writer, sched scheduler.Scheduler) error {
	bar := progressbar.NewOptions(loading.Max,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("Loading..."),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetPredictTime(false),
	)

	progress := make(chan int)
	done := make(chan struct{})
	d := loading.NewDriver(sched, func(p int) {
		select {
		case progress <- p:
		case <-ctx.Done():
		}
	}, func() { close(done) })
	d.Start()
	defer d.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case p := <-progress:
			_ = bar.Set(p)
		case <-done:
			_ = bar.Finish()
			fmt.Fprintln(out)
			return nil
		}
	}
}

// Typewriter redraws the current role on a single line until ctx ends.
func Typewriter(ctx context.Context, out io.Writer, sched scheduler.Scheduler, roles []string) error {
	frames := make(chan typewriter.Frame)
	a, err := typewriter.NewAnimator(sched, roles, func(f typewriter.Frame) {
		select {
		case frames <- f:
		case <-ctx.Done():
		}
	})
	if err != nil {
		return err
	}
	a.Start()
	defer a.Stop()

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return nil
		case f := <-frames:
			fmt.Fprintf(out, "\r\033[K> %s|", f.Text)
		}
	}
}

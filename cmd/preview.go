package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/preview"
	"github.com/Zachkp/portfolio/internal/scheduler"
)

var (
	previewDuration    time.Duration
	previewSkipLoading bool

	previewScheduler scheduler.Scheduler = scheduler.Real{}
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Play the loading splash and role typewriter in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		site, err := content.Load(cfg.ContentFile)
		if err != nil {
			return fmt.Errorf("loading content: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		if previewDuration > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, previewDuration)
			defer cancel()
		}

		out := cmd.OutOrStdout()
		sched := previewScheduler
		if !previewSkipLoading {
			if err := preview.Splash(ctx, out, sched); err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return nil
				}
				return err
			}
		}
		fmt.Fprintf(out, "%s %s\n", site.Profile.Greeting, site.Profile.Name)
		return preview.Typewriter(ctx, out, sched, site.Roles)
	},
}

func init() {
	previewCmd.Flags().DurationVar(&previewDuration, "duration", 0, "stop after this long (0 runs until interrupted)")
	previewCmd.Flags().BoolVar(&previewSkipLoading, "skip-loading", false, "skip the loading splash")
	rootCmd.AddCommand(previewCmd)
}

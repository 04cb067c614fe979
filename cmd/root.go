package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Single-page portfolio site with animated sections",
	Long: `portfolio serves a one-page personal portfolio: a loading splash,
a typewriter hero banner, scroll-spy navigation and a light/dark theme
that is remembered per visitor.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "portfolio.yml", "config file path")
}

package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/alechenninger/worldclock/internal/domain"
	"github.com/alechenninger/worldclock/internal/snapshot"
	"github.com/alechenninger/worldclock/internal/tui"
)

var (
	flagWatchPlain bool
	flagWatchTicks int
)

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().String("zone", "", "time zone to show first (must be in the menu)")
	watchCmd.Flags().BoolVar(&flagWatchPlain, "plain", false, "print one line per second instead of the interactive display")
	watchCmd.Flags().IntVar(&flagWatchTicks, "ticks", 0, "stop after this many refreshes (0 runs until interrupted)")
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Show UTC and local time, refreshed every second",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		app := newApp(cfg)
		if flagWatchPlain || !isTerminal(os.Stdout) {
			out := cmd.OutOrStdout()
			return app.Watch(ctx, cfg.Zone, flagWatchTicks, func(v domain.View) error {
				_, err := fmt.Fprintln(out, snapshot.Line(v))
				return err
			})
		}
		slog.Debug("starting interactive display", "zone", cfg.Zone)
		return tui.Run(ctx, app, cfg.Zone)
	},
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

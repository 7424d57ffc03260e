package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alechenninger/worldclock/internal/snapshot"
)

var (
	flagNowAt   string
	flagNowSave string
)

func init() {
	rootCmd.AddCommand(nowCmd)
	nowCmd.Flags().String("zone", "", "time zone to show (must be in the menu)")
	nowCmd.Flags().String("format", "", "output format: text, json or yaml")
	nowCmd.Flags().StringVar(&flagNowAt, "at", "", "render this RFC3339 instant instead of now")
	nowCmd.Flags().StringVar(&flagNowSave, "save", "", "also save the output as a named snapshot")
}

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print UTC and local time once",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		at, err := parseAt(flagNowAt)
		if err != nil {
			return err
		}
		app := newApp(cfg)
		v, err := app.Now(cfg.Zone, at)
		if err != nil {
			return err
		}
		b, err := snapshot.Encode(v, cfg.Format)
		if err != nil {
			return err
		}
		if _, err := cmd.OutOrStdout().Write(b); err != nil {
			return err
		}
		if flagNowSave == "" {
			return nil
		}
		path, err := app.Export(ctx, v, flagNowSave, cfg.Format)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved %s\n", path)
		return nil
	},
}

func parseAt(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --at %q: %w", s, err)
	}
	return t, nil
}

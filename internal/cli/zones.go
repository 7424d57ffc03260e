package cli

import (
	"github.com/spf13/cobra"

	"github.com/alechenninger/worldclock/internal/snapshot"
)

var flagZonesAt string

func init() {
	rootCmd.AddCommand(zonesCmd)
	zonesCmd.Flags().String("format", "", "output format: text, json or yaml")
	zonesCmd.Flags().StringVar(&flagZonesAt, "at", "", "compute offsets at this RFC3339 instant")
}

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "List selectable time zones with their current UTC offsets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := parseAt(flagZonesAt)
		if err != nil {
			return err
		}
		app := newApp(cfg)
		opts, err := app.MenuAt(at)
		if err != nil {
			return err
		}
		b, err := snapshot.EncodeMenu(opts, app.Menu.Index(cfg.Zone), cfg.Format)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(b)
		return err
	},
}

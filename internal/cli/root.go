package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/alechenninger/worldclock/internal/application"
	"github.com/alechenninger/worldclock/internal/config"
	"github.com/alechenninger/worldclock/internal/zones"
)

var (
	rootCmd = &cobra.Command{
		Use:   "worldclock",
		Short: "UTC and world time in the terminal",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogging(cmd.Context()); err != nil {
				return err
			}
			return loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flagJSON       bool
	flagVerbose    bool
	flagConfigFile string

	// configFs is where config files are read from; tests swap it.
	configFs afero.Fs = afero.NewOsFs()
	// newApp builds the application for a command; tests swap in a fake clock.
	newApp = application.NewDefault
	cfg    config.Config
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "enable JSON log output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose (debug) logging")
	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "", "config file (default "+config.DefaultFile()+")")
}

func Execute(version string) {
	rootCmd.Version = version
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogging(ctx context.Context) error {
	var handler slog.Handler
	if flagJSON {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: chooseLevel(flagVerbose)})
	} else {
		level := charmlog.InfoLevel
		if flagVerbose {
			level = charmlog.DebugLevel
		}
		handler = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
			Level:           level,
			ReportTimestamp: true,
		})
	}
	slog.SetDefault(slog.New(handler))
	slog.Debug("logging initialized")
	return nil
}

func chooseLevel(verbose bool) slog.Leveler {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func loadConfig(cmd *cobra.Command) error {
	c, err := config.NewLoader(configFs).WithFlags(cmd.Flags()).Load(flagConfigFile)
	if err != nil {
		return err
	}
	if err := c.Validate(zones.Default(c.MenuDedupe)); err != nil {
		return err
	}
	cfg = c
	return nil
}

// Package config loads worldclock settings from file, environment and flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/alechenninger/worldclock/internal/domain"
	"github.com/alechenninger/worldclock/internal/snapshot"
	"github.com/alechenninger/worldclock/internal/zones"
)

const (
	appName   = "worldclock"
	envPrefix = "WORLDCLOCK"

	KeyZone        = "zone"
	KeyMenuDedupe  = "menu.dedupe"
	KeyFormat      = "output.format"
	KeySnapshotDir = "snapshot.dir"
)

type Config struct {
	Zone        string
	MenuDedupe  bool
	Format      string
	SnapshotDir string
	// File is the config file that was read, empty if none.
	File string
}

// DefaultFile is the per-user config file location.
func DefaultFile() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.yaml")
}

// DefaultSnapshotDir is where saved snapshots go unless configured.
func DefaultSnapshotDir() string {
	return filepath.Join(xdg.StateHome, appName, "snapshots")
}

// Loader reads configuration through viper on top of an afero filesystem.
type Loader struct {
	fs    afero.Fs
	flags *pflag.FlagSet
	env   func(string) (string, bool)
}

func NewLoader(fsys afero.Fs) *Loader { return &Loader{fs: fsys} }

// WithFlags binds a flag set; flags that were set take precedence over env and file.
func (l *Loader) WithFlags(flags *pflag.FlagSet) *Loader {
	l.flags = flags
	return l
}

// Load reads file (or the default file when empty). A missing default file is fine;
// a missing explicit file is an error.
func (l *Loader) Load(file string) (Config, error) {
	v := viper.New()
	v.SetFs(l.fs)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyZone, zones.DefaultZone)
	v.SetDefault(KeyMenuDedupe, false)
	v.SetDefault(KeyFormat, snapshot.FormatText)
	v.SetDefault(KeySnapshotDir, DefaultSnapshotDir())

	explicit := file != ""
	if !explicit {
		file = DefaultFile()
	}
	v.SetConfigFile(file)
	read := ""
	if err := v.ReadInConfig(); err != nil {
		exists, _ := afero.Exists(l.fs, file)
		if explicit || exists {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
		slog.Debug("no config file", "path", file)
	} else {
		read = file
	}

	if l.flags != nil {
		for key, name := range map[string]string{KeyZone: "zone", KeyFormat: "format"} {
			if f := l.flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, err
				}
			}
		}
	}

	cfg := Config{
		Zone:        v.GetString(KeyZone),
		MenuDedupe:  v.GetBool(KeyMenuDedupe),
		Format:      v.GetString(KeyFormat),
		SnapshotDir: v.GetString(KeySnapshotDir),
		File:        read,
	}
	slog.Debug("config loaded", "file", cfg.File, "zone", cfg.Zone, "dedupe", cfg.MenuDedupe)
	return cfg, nil
}

// Validate checks the configured zone is selectable and the format is known.
func (c Config) Validate(menu domain.ZoneMenu) error {
	var errs []error
	if !menu.Contains(c.Zone) {
		errs = append(errs, fmt.Errorf("%w: %q", domain.ErrZoneNotInMenu, c.Zone))
	}
	switch c.Format {
	case snapshot.FormatText, snapshot.FormatJSON, snapshot.FormatYAML:
	default:
		errs = append(errs, fmt.Errorf("%w: %q", snapshot.ErrUnknownFormat, c.Format))
	}
	return errors.Join(errs...)
}

package domain

import (
	"context"
	"time"
)

// Display holds the strings rendered for one instant and one zone.
type Display struct {
	Instant      time.Time `json:"instant" yaml:"instant"`
	UTCTime      string    `json:"utcTime" yaml:"utcTime"`
	UTCWeekday   string    `json:"utcWeekday" yaml:"utcWeekday"`
	Zone         string    `json:"zone" yaml:"zone"`
	LocalTime    string    `json:"localTime" yaml:"localTime"`
	LocalWeekday string    `json:"localWeekday" yaml:"localWeekday"`
	Offset       string    `json:"offset" yaml:"offset"`
}

// MenuOption is a menu entry with its offset label at the displayed instant.
type MenuOption struct {
	ZoneMenuEntry `yaml:",inline"`
	Offset        string `json:"offset" yaml:"offset"`
}

// Title is the text shown for the option in the selector.
func (o MenuOption) Title() string {
	if o.Offset == "" {
		return o.Label
	}
	return o.Label + " " + o.Offset
}

// View is everything the display draws on a refresh.
type View struct {
	Display  `yaml:",inline"`
	Options  []MenuOption `json:"options" yaml:"options"`
	Selected int          `json:"selected" yaml:"selected"`
}

// SnapshotWriter writes a rendered view somewhere outside the process.
type SnapshotWriter interface {
	// Write renders v in format (text, json or yaml) under name and returns where it went.
	Write(ctx context.Context, name string, v View, format string) (string, error)
}

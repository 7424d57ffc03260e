package domain

import "errors"

var (
	// ErrZoneNotInMenu is returned when a selection names a zone the menu does not offer.
	ErrZoneNotInMenu = errors.New("zone not in menu")
	// ErrUnknownZone is returned when the time-zone database has no such identifier.
	ErrUnknownZone = errors.New("unknown time zone")
	// ErrTickerActive is returned when activating a ticker that is already running.
	ErrTickerActive = errors.New("ticker already active")
)

// ZoneMenuEntry is a static (identifier, label) pair offered by the zone selector.
type ZoneMenuEntry struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// ZoneMenu is the fixed set of zones a user may select from.
type ZoneMenu interface {
	Entries() []ZoneMenuEntry
	Contains(id string) bool
	Index(id string) int
}

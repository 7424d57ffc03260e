// Package render turns an instant and a time-zone identifier into display strings.
package render

import (
	"fmt"
	"sync"
	"time"
	_ "time/tzdata"

	"github.com/alechenninger/worldclock/internal/domain"
)

const (
	utcLayout   = "2006-01-02 15:04:05"
	localLayout = "2006-01-02 03:04:05 PM"
)

// FormatUTC renders t in UTC as YYYY-MM-DD HH:MM:SS, dropping sub-seconds.
func FormatUTC(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(utcLayout)
}

// FormatLocal renders t in loc as YYYY-MM-DD hh:mm:ss AM/PM.
func FormatLocal(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(localLayout)
}

// Weekday returns the long English weekday name of t in loc.
func Weekday(t time.Time, loc *time.Location) string {
	return t.In(loc).Weekday().String()
}

// OffsetLabel returns the short GMT offset of loc at t, e.g. "GMT", "GMT+6", "GMT-3:30".
func OffsetLabel(t time.Time, loc *time.Location) string {
	_, offset := t.In(loc).Zone()
	if offset == 0 {
		return "GMT"
	}
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours := offset / 3600
	minutes := (offset % 3600) / 60
	if minutes == 0 {
		return fmt.Sprintf("GMT%s%d", sign, hours)
	}
	return fmt.Sprintf("GMT%s%d:%02d", sign, hours, minutes)
}

// Renderer formats instants for named zones, caching loaded locations.
type Renderer struct {
	mu   sync.Mutex
	locs map[string]*time.Location
}

func New() *Renderer {
	return &Renderer{locs: make(map[string]*time.Location)}
}

// Location resolves an IANA identifier.
func (r *Renderer) Location(zone string) (*time.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if loc, ok := r.locs[zone]; ok {
		return loc, nil
	}
	if zone == "" {
		return nil, fmt.Errorf("%w: empty zone identifier", domain.ErrUnknownZone)
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("%w: load %q: %v", domain.ErrUnknownZone, zone, err)
	}
	r.locs[zone] = loc
	return loc, nil
}

// Render produces every display string for t in zone.
func (r *Renderer) Render(t time.Time, zone string) (domain.Display, error) {
	loc, err := r.Location(zone)
	if err != nil {
		return domain.Display{}, err
	}
	return domain.Display{
		Instant:      t.UTC().Truncate(time.Second),
		UTCTime:      FormatUTC(t),
		UTCWeekday:   Weekday(t, time.UTC),
		Zone:         zone,
		LocalTime:    FormatLocal(t, loc),
		LocalWeekday: Weekday(t, loc),
		Offset:       OffsetLabel(t, loc),
	}, nil
}

// Offset returns the offset label of zone at t.
func (r *Renderer) Offset(t time.Time, zone string) (string, error) {
	loc, err := r.Location(zone)
	if err != nil {
		return "", err
	}
	return OffsetLabel(t, loc), nil
}

// Options labels every menu entry with its offset at t.
func (r *Renderer) Options(t time.Time, entries []domain.ZoneMenuEntry) ([]domain.MenuOption, error) {
	opts := make([]domain.MenuOption, 0, len(entries))
	for _, e := range entries {
		off, err := r.Offset(t, e.ID)
		if err != nil {
			return nil, err
		}
		opts = append(opts, domain.MenuOption{ZoneMenuEntry: e, Offset: off})
	}
	return opts, nil
}

// Package zones holds the fixed list of zones offered by the selector.
package zones

import "github.com/alechenninger/worldclock/internal/domain"

// DefaultZone is selected when nothing else is configured.
const DefaultZone = "Asia/Dhaka"

// Europe/London appears twice, once per season label. Dedupe collapses it.
var defaultEntries = []domain.ZoneMenuEntry{
	{ID: "Europe/London", Label: "Greenwich Mean Time (GMT)"},
	{ID: "America/Los_Angeles", Label: "Pacific Standard Time (PST)"},
	{ID: "America/New_York", Label: "Eastern Standard Time (EST)"},
	{ID: "Asia/Shanghai", Label: "China Standard Time (CST)"},
	{ID: "Asia/Dhaka", Label: "Bangladesh Time (BDT)"},
	{ID: "Asia/Kolkata", Label: "India Standard Time (IST)"},
	{ID: "Asia/Tokyo", Label: "Japan Standard Time (JST)"},
	{ID: "Australia/Sydney", Label: "Australian Eastern Daylight Time (AEDT)"},
	{ID: "Europe/London", Label: "British Summer Time (BST)"},
}

// Menu is an immutable, ordered zone menu.
type Menu struct {
	entries []domain.ZoneMenuEntry
	index   map[string]int
}

// Default returns the built-in menu.
func Default(dedupe bool) *Menu { return New(defaultEntries, dedupe) }

// New builds a menu from entries. With dedupe, repeated identifiers after the first are dropped.
func New(entries []domain.ZoneMenuEntry, dedupe bool) *Menu {
	m := &Menu{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		if _, seen := m.index[e.ID]; seen {
			if dedupe {
				continue
			}
		} else {
			m.index[e.ID] = len(m.entries)
		}
		m.entries = append(m.entries, e)
	}
	return m
}

func (m *Menu) Entries() []domain.ZoneMenuEntry {
	out := make([]domain.ZoneMenuEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

func (m *Menu) Contains(id string) bool {
	_, ok := m.index[id]
	return ok
}

// Index returns the first position of id, or -1.
func (m *Menu) Index(id string) int {
	if i, ok := m.index[id]; ok {
		return i
	}
	return -1
}

var _ domain.ZoneMenu = (*Menu)(nil)

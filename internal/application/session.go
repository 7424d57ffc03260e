package application

import (
	"fmt"
	"sync"
	"time"

	"github.com/alechenninger/worldclock/internal/domain"
	"github.com/alechenninger/worldclock/internal/render"
)

// Session holds the two cells the display is drawn from: the current instant
// and the selected zone.
type Session struct {
	menu     domain.ZoneMenu
	renderer *render.Renderer

	mu       sync.RWMutex
	instant  time.Time
	zone     string
	selected int
}

// Tick replaces the current instant. Earlier instants are ignored.
func (s *Session) Tick(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.Before(s.instant) {
		return
	}
	s.instant = t
}

// Select switches to a zone offered by the menu.
func (s *Session) Select(zone string) error {
	i := s.menu.Index(zone)
	if i < 0 {
		return fmt.Errorf("%w: %q", domain.ErrZoneNotInMenu, zone)
	}
	s.mu.Lock()
	s.zone, s.selected = zone, i
	s.mu.Unlock()
	return nil
}

// SelectIndex switches to the menu entry at position i.
func (s *Session) SelectIndex(i int) error {
	entries := s.menu.Entries()
	if i < 0 || i >= len(entries) {
		return fmt.Errorf("%w: index %d", domain.ErrZoneNotInMenu, i)
	}
	s.mu.Lock()
	s.zone, s.selected = entries[i].ID, i
	s.mu.Unlock()
	return nil
}

func (s *Session) Zone() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.zone
}

func (s *Session) Instant() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.instant
}

// View recomputes the display strings and menu offset labels.
func (s *Session) View() (domain.View, error) {
	s.mu.RLock()
	instant, zone, selected := s.instant, s.zone, s.selected
	s.mu.RUnlock()

	d, err := s.renderer.Render(instant, zone)
	if err != nil {
		return domain.View{}, err
	}
	opts, err := s.renderer.Options(instant, s.menu.Entries())
	if err != nil {
		return domain.View{}, err
	}
	return domain.View{Display: d, Options: opts, Selected: selected}, nil
}

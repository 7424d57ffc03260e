package application

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/alechenninger/worldclock/internal/config"
	"github.com/alechenninger/worldclock/internal/domain"
	"github.com/alechenninger/worldclock/internal/render"
	snapfs "github.com/alechenninger/worldclock/internal/snapshot/fs"
	"github.com/alechenninger/worldclock/internal/ticker"
	"github.com/alechenninger/worldclock/internal/zones"
)

type App struct {
	Clock     domain.Clock
	Menu      domain.ZoneMenu
	Renderer  *render.Renderer
	Snapshots domain.SnapshotWriter
	// Period between display refreshes; ticker.Period unless a test shortens it.
	Period time.Duration
}

func New(menu domain.ZoneMenu, snapshots domain.SnapshotWriter) *App {
	return &App{
		Clock:     domain.RealClock(),
		Menu:      menu,
		Renderer:  render.New(),
		Snapshots: snapshots,
		Period:    ticker.Period,
	}
}

func NewDefault(cfg config.Config) *App {
	return New(zones.Default(cfg.MenuDedupe), snapfs.New(cfg.SnapshotDir))
}

// NewSession starts a session showing zone at the current instant.
func (a *App) NewSession(zone string) (*Session, error) {
	return a.newSessionAt(zone, a.Clock.Now())
}

func (a *App) newSessionAt(zone string, at time.Time) (*Session, error) {
	s := &Session{menu: a.Menu, renderer: a.Renderer, instant: at}
	if err := s.Select(zone); err != nil {
		return nil, err
	}
	return s, nil
}

// Now renders zone at a fixed instant; a zero at means the clock's now.
func (a *App) Now(zone string, at time.Time) (domain.View, error) {
	if at.IsZero() {
		at = a.Clock.Now()
	}
	s, err := a.newSessionAt(zone, at)
	if err != nil {
		return domain.View{}, err
	}
	return s.View()
}

// MenuAt labels every menu entry with its offset at the given instant.
func (a *App) MenuAt(at time.Time) ([]domain.MenuOption, error) {
	if at.IsZero() {
		at = a.Clock.Now()
	}
	return a.Renderer.Options(at, a.Menu.Entries())
}

// Activate ties the session's instant to a ticker. Each tick updates the session
// and then calls onTick. The returned release deactivates exactly once.
func (a *App) Activate(ctx context.Context, s *Session, onTick func(time.Time)) (func(), error) {
	tk := ticker.New(a.Clock, a.Period)
	return tk.Activate(ctx, func(now time.Time) {
		s.Tick(now)
		if onTick != nil {
			onTick(now)
		}
	})
}

// Watch renders a fresh view of zone on every tick until ctx is done, fn fails,
// or maxTicks views were produced (0 means no limit).
func (a *App) Watch(ctx context.Context, zone string, maxTicks int, fn func(domain.View) error) error {
	s, err := a.NewSession(zone)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ticks := make(chan struct{}, 1)
	release, err := a.Activate(ctx, s, func(time.Time) {
		select {
		case ticks <- struct{}{}:
		default:
			slog.Debug("display behind, coalescing tick")
		}
	})
	if err != nil {
		return err
	}
	defer release()

	for n := 0; maxTicks <= 0 || n < maxTicks; n++ {
		select {
		case <-ctx.Done():
			return nil
		case <-ticks:
		}
		v, err := s.View()
		if err != nil {
			return err
		}
		if err := fn(v); err != nil {
			return err
		}
	}
	return nil
}

// Export writes v as a named snapshot.
func (a *App) Export(ctx context.Context, v domain.View, name, format string) (string, error) {
	if a.Snapshots == nil {
		return "", errors.New("no snapshot writer configured")
	}
	path, err := a.Snapshots.Write(ctx, name, v, format)
	if err != nil {
		return "", err
	}
	slog.Info("snapshot saved", "path", path, "zone", v.Zone)
	return path, nil
}

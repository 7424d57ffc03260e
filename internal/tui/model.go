// Package tui is the interactive terminal display: two clock cards and a zone selector.
package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alechenninger/worldclock/internal/application"
	"github.com/alechenninger/worldclock/internal/domain"
)

const (
	listHeight   = 18
	defaultWidth = 60
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("62")).Padding(0, 2).MarginBottom(1)
	cardStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).Padding(0, 2).MarginRight(2).Align(lipgloss.Center)
	cardTitleStyle    = lipgloss.NewStyle().Bold(true)
	weekdayStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	currentMark       = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render("●")
	errStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
)

type tickMsg time.Time

// option is a list row; index is its position in the menu.
type option struct {
	domain.MenuOption
	index   int
	current bool
}

func (o option) FilterValue() string { return o.ID + " " + o.Label }

type optionDelegate struct{}

func (d optionDelegate) Height() int                             { return 1 }
func (d optionDelegate) Spacing() int                            { return 0 }
func (d optionDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d optionDelegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	o, ok := li.(option)
	if !ok {
		return
	}
	str := o.Title()
	if o.current {
		str += " " + currentMark
	}
	if index == m.Index() {
		fmt.Fprint(w, selectedItemStyle.Render("> "+str))
		return
	}
	fmt.Fprint(w, itemStyle.Render(str))
}

// Model is the bubbletea model for the watch display.
type Model struct {
	session *application.Session
	ticks   <-chan time.Time
	list    list.Model
	view    domain.View
	err     error
}

// NewModel builds the display for a session. ticks delivers refresh instants.
func NewModel(s *application.Session, ticks <-chan time.Time) (*Model, error) {
	v, err := s.View()
	if err != nil {
		return nil, err
	}
	l := list.New(nil, optionDelegate{}, defaultWidth, listHeight)
	l.Title = "Select time zone"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.HelpStyle = helpStyle
	m := &Model{session: s, ticks: ticks, list: l}
	m.apply(v)
	m.list.Select(v.Selected)
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return waitForTick(m.ticks)
}

func waitForTick(ch <-chan time.Time) tea.Cmd {
	return func() tea.Msg {
		t, ok := <-ch
		if !ok {
			return tea.Quit()
		}
		return tickMsg(t)
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.refresh()
		return m, waitForTick(m.ticks)
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "enter", " ":
			if err := m.session.SelectIndex(m.list.Index()); err != nil {
				m.err = err
				return m, nil
			}
			slog.Debug("zone selected", "zone", m.session.Zone())
			m.refresh()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) refresh() {
	v, err := m.session.View()
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.apply(v)
}

func (m *Model) apply(v domain.View) {
	m.view = v
	items := make([]list.Item, 0, len(v.Options))
	for i, o := range v.Options {
		items = append(items, option{MenuOption: o, index: i, current: i == v.Selected})
	}
	m.list.SetItems(items)
}

func (m *Model) View() string {
	v := m.view
	utc := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		cardTitleStyle.Render("UTC Time"), v.UTCTime, weekdayStyle.Render(v.UTCWeekday)))
	local := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		cardTitleStyle.Render(v.Zone+" Time"), v.LocalTime, weekdayStyle.Render(v.LocalWeekday)))

	var b strings.Builder
	b.WriteString(titleStyle.Render("Time Conversion"))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, utc, local))
	b.WriteString("\n\n")
	b.WriteString(m.list.View())
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(m.err.Error()))
	}
	b.WriteString("\n")
	return b.String()
}

// Current returns the last rendered view.
func (m *Model) Current() domain.View { return m.view }

// Run shows the interactive display for zone until the user quits or ctx is done.
// The ticker is released on every exit path.
func Run(ctx context.Context, app *application.App, zone string, opts ...tea.ProgramOption) error {
	s, err := app.NewSession(zone)
	if err != nil {
		return err
	}
	ticks := make(chan time.Time, 1)
	release, err := app.Activate(ctx, s, func(now time.Time) {
		select {
		case ticks <- now:
		default:
		}
	})
	if err != nil {
		return err
	}
	defer func() {
		release()
		close(ticks)
	}()

	m, err := NewModel(s, ticks)
	if err != nil {
		return err
	}
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

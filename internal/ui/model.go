package ui

import (
	"context"
	"fmt"
	"time"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/timezone"
	"go-weather/internal/domain/usecase/dashboard"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// AppState represents the current state of the dashboard
type AppState int

const (
	StateLoading AppState = iota // First load in flight, nothing to show yet
	StateReady                   // Records (live or synthesized) are on screen
)

// statusBarHeight is the number of rows above the city layout.
const statusBarHeight = 2

// Model represents the dashboard state
type Model struct {
	state  AppState
	width  int
	height int
	cfg    Config

	source dashboard.UseCase
	prober Prober

	records    []entity.WeatherRecord
	refreshing bool
	online     bool
	err        string

	// seq is the last fetch issued, shownSeq the one whose records are displayed.
	seq      uint64
	shownSeq uint64

	gesture Gesture
	spinner spinner.Model
	zone    timezone.Zone
}

// NewModel creates the dashboard model. prober may be nil, in which case the
// dashboard always considers itself online.
func NewModel(source dashboard.UseCase, prober Prober, cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorAccent)

	_, offsetSeconds := time.Now().Zone()
	zone, _ := timezone.Closest(timezone.Hourly(), float64(offsetSeconds)/3600)

	return Model{
		state:   StateLoading,
		cfg:     cfg,
		source:  source,
		prober:  prober,
		online:  true,
		seq:     1,
		spinner: s,
		zone:    zone,
	}
}

// Init starts the first load, the refresh timer and the connectivity probe
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spinner.Tick,
		fetchWeather(m.source, m.seq, m.cfg.RequestTimeout),
		scheduleRefresh(m.cfg.RefreshInterval),
	}
	if m.prober != nil {
		cmds = append(cmds, checkConnectivity(m.prober, m.cfg.ConnectivityInterval))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	if message, ok := message.(tea.WindowSizeMsg); ok {
		m.width = message.Width
		m.height = message.Height
		return m, nil
	}

	switch message := message.(type) {
	case tea.KeyMsg:
		switch message.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m.refresh()
		}
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(message)
		return m, nil

	case weatherLoadedMsg:
		return m.applyLoaded(message), nil

	case autoRefreshMsg:
		next := scheduleRefresh(m.cfg.RefreshInterval)
		if m.gesture.Active() || !m.online {
			return m, next
		}
		m.seq++
		return m, tea.Batch(next, fetchWeather(m.source, m.seq, m.cfg.RequestTimeout))

	case connectivityMsg:
		m.online = message.online
		if m.prober == nil {
			return m, nil
		}
		return m, scheduleConnectivity(m.prober, m.cfg.ConnectivityInterval, m.cfg.ConnectivityInterval)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(message)
		return m, cmd
	}

	return m, nil
}

func (m Model) refresh() (tea.Model, tea.Cmd) {
	if !m.online {
		m.err = msg.GetMessage("dashboard.error.offline")
		return m, nil
	}
	m.refreshing = true
	m.seq++
	return m, fetchWeather(m.source, m.seq, m.cfg.RequestTimeout)
}

func (m Model) applyLoaded(loaded weatherLoadedMsg) Model {
	if loaded.seq == m.seq {
		m.refreshing = false
	}
	m.state = StateReady

	if loaded.seq < m.shownSeq {
		return m
	}
	m.shownSeq = loaded.seq

	if loaded.err != nil {
		log.Error(msg.GetMessage("dashboard.error.load-failed"), zap.Error(loaded.err))
		m.err = msg.GetMessage("dashboard.error.load-failed")
		return m
	}
	m.err = ""
	m.records = loaded.records
	return m
}

func (m *Model) handleMouse(event tea.MouseMsg) {
	switch event.Action {
	case tea.MouseActionPress:
		if event.Button == tea.MouseButtonLeft {
			m.gesture.Begin(event.X, event.Y)
		}
	case tea.MouseActionMotion:
		axis, extent := m.layoutAxis()
		m.gesture.Move(event.X, event.Y, axis, extent, len(m.records))
	case tea.MouseActionRelease:
		m.gesture.End()
	}
}

// layoutAxis returns the axis cities are laid out along and its length in cells.
func (m Model) layoutAxis() (Axis, int) {
	if m.width >= m.cfg.NarrowBreakpoint {
		return AxisHorizontal, m.width
	}
	return AxisVertical, max(m.height-statusBarHeight, 0)
}

func fetchWeather(source dashboard.UseCase, seq uint64, timeout time.Duration) tea.Cmd {
	return func() (result tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				result = weatherLoadedMsg{seq: seq, err: fmt.Errorf("weather source panicked: %v", r)}
			}
		}()

		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return weatherLoadedMsg{seq: seq, records: source.FetchWeather(ctx)}
	}
}

func scheduleRefresh(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return autoRefreshMsg{}
	})
}

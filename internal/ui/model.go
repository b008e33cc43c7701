package ui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/strait-current/internal/catchlog"
	"github.com/ngmaloney/strait-current/internal/flowfield"
	"github.com/ngmaloney/strait-current/internal/models"
	"github.com/ngmaloney/strait-current/internal/tidecycle"
	"github.com/ngmaloney/strait-current/internal/tidedata"
	"github.com/ngmaloney/strait-current/internal/watermask"
)

// AppState represents the current state of the application
type AppState int

const (
	StateLoading   AppState = iota // Fetching the first day of tides
	StateDisplay                   // Flow field and tide panes
	StateCatchForm                 // Logging a catch
	StateCatchList                 // Browsing catches for the selected date
	StateError                     // Error state
)

// Options wires the model to its collaborators
type Options struct {
	Client        tidedata.Client
	Catches       *catchlog.Repository // nil disables catch logging
	Mask          *watermask.Mask
	Sim           flowfield.Options
	FPS           int
	Refresh       time.Duration
	ReferenceHour int
	Now           func() time.Time
	Logger        *slog.Logger
}

// Model represents the application's state
type Model struct {
	state  AppState
	width  int
	height int
	err    error
	notice string

	// Collaborators
	client  tidedata.Client
	catches *catchlog.Repository
	mask    *watermask.Mask
	now     func() time.Time
	logger  *slog.Logger

	// Cadence
	fps           int
	refresh       time.Duration
	referenceHour int

	// Tides for the selected date
	date     time.Time
	loading  bool
	events   []models.TideEvent
	fetchErr error
	estimate models.FlowEstimate
	cycle    tidecycle.Cycle
	hasCycle bool
	lastLive bool // the last estimate used the wall clock

	// Flow field
	sim        *flowfield.Simulator
	projector  flowfield.BoxProjector
	terrain    [][]bool
	configured bool
	animating  bool
	paused     bool
	frameGen   int

	// Catch log
	form      *catchForm
	catchList list.Model

	// Widgets
	spinner  spinner.Model
	progress progress.Model
	help     help.Model
	keys     keyMap
}

// NewModel creates a new application model showing today's tides
func NewModel(opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Mask == nil {
		opts.Mask = watermask.Default()
	}
	if opts.FPS <= 0 {
		opts.FPS = 20
	}
	if opts.Refresh <= 0 {
		opts.Refresh = time.Minute
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	cl := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	cl.Title = "Catches"
	cl.SetShowHelp(false)
	cl.DisableQuitKeybindings()

	m := Model{
		state:         StateLoading,
		client:        opts.Client,
		catches:       opts.Catches,
		mask:          opts.Mask,
		now:           opts.Now,
		logger:        opts.Logger,
		fps:           opts.FPS,
		refresh:       opts.Refresh,
		referenceHour: opts.ReferenceHour,
		date:          startOfDay(opts.Now()),
		loading:       true,
		estimate:      tidecycle.EstimateFlow(nil, 0),
		sim:           flowfield.New(opts.Mask, nil, opts.Sim),
		catchList:     cl,
		spinner:       s,
		progress:      progress.New(progress.WithDefaultGradient(), progress.WithWidth(30), progress.WithoutPercentage()),
		help:          help.New(),
		keys:          keys,
	}
	m.resize()
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		fetchTideDay(m.client, m.date),
		clockTick(m.refresh),
	)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.catchList.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case frameMsg:
		if msg.gen != m.frameGen || !m.animating {
			return m, nil
		}
		if !m.paused {
			m.sim.Tick()
		}
		return m, frameTick(m.fps, m.frameGen)

	case clockMsg:
		// The last tick of a live date re-estimates once more so a session
		// that crosses midnight settles on the reference hour.
		if !m.loading && (m.isLive() || m.lastLive) {
			m.reestimate()
		}
		return m, clockTick(m.refresh)

	case tideDayMsg:
		if !msg.date.Equal(m.date) {
			return m, nil // stale response for a date no longer shown
		}
		m.loading = false
		m.fetchErr = msg.err
		m.events = nil
		if msg.err != nil {
			m.logger.Warn("tide fetch failed", "date", msg.date.Format("2006-01-02"), "err", msg.err)
		} else if msg.day != nil {
			m.events = tidecycle.BuildEventSequence(msg.day.High, msg.day.Low)
		}
		m.reestimate()
		if m.state == StateLoading {
			m.state = StateDisplay
			cmd := m.startAnimation()
			return m, cmd
		}
		return m, nil

	case catchSavedMsg:
		m.notice = successStyle.Render(fmt.Sprintf("✓ Logged %s at %s", msg.entry.Species, msg.entry.CaughtAt.Format("15:04")))
		m.logger.Info("catch logged", "id", msg.entry.ID, "species", msg.entry.Species)
		return m, nil

	case catchesLoadedMsg:
		return m, m.catchList.SetItems(catchItems(msg.entries))

	case errMsg:
		m.logger.Error("catch log failed", "err", msg.err)
		m.err = msg.err
		m.state = StateError
		m.form = nil
		m.stopAnimation()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	switch m.state {
	case StateCatchForm:
		return m.updateCatchForm(msg)
	case StateCatchList:
		return m.updateCatchList(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(keyMsg)
	}
	return m, nil
}

// handleKey handles keyboard input in the display, loading, and error states
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.state == StateError {
		// Any key returns to the display
		m.state = StateDisplay
		m.err = nil
		cmd := m.startAnimation()
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.PrevDay):
		return m.selectDate(m.date.AddDate(0, 0, -1))
	case key.Matches(msg, m.keys.NextDay):
		return m.selectDate(m.date.AddDate(0, 0, 1))
	case key.Matches(msg, m.keys.Today):
		return m.selectDate(startOfDay(m.now()))
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
	case key.Matches(msg, m.keys.Catch):
		if m.state != StateDisplay {
			return m, nil
		}
		if m.catches == nil {
			m.notice = errorStyle.Render("✗ catch log unavailable")
			return m, nil
		}
		m.notice = ""
		m.form = newCatchForm(m.date, m.queryMinute())
		m.state = StateCatchForm
		m.stopAnimation()
		return m, m.form.form.Init()
	case key.Matches(msg, m.keys.Catches):
		if m.state != StateDisplay || m.catches == nil {
			return m, nil
		}
		m.state = StateCatchList
		m.stopAnimation()
		return m, loadCatches(m.catches, m.date)
	}
	return m, nil
}

// updateCatchForm forwards input to the huh form and saves on completion
func (m Model) updateCatchForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if key.Matches(keyMsg, m.keys.Back) {
			m.form = nil
			m.state = StateDisplay
			cmd := m.startAnimation()
			return m, cmd
		}
	}

	updated, cmd := m.form.form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		m.form.form = f
	}

	switch m.form.form.State {
	case huh.StateCompleted:
		entry := m.form.entry(m.events)
		m.form = nil
		m.state = StateDisplay
		resume := m.startAnimation()
		return m, tea.Batch(saveCatch(m.catches, entry), resume)
	case huh.StateAborted:
		m.form = nil
		m.state = StateDisplay
		resume := m.startAnimation()
		return m, resume
	}
	return m, cmd
}

// updateCatchList forwards input to the list until the user backs out
func (m Model) updateCatchList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.catchList.FilterState() != list.Filtering {
		switch {
		case keyMsg.Type == tea.KeyCtrlC, keyMsg.String() == "q":
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Back), key.Matches(keyMsg, m.keys.Catches):
			m.state = StateDisplay
			cmd := m.startAnimation()
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.catchList, cmd = m.catchList.Update(msg)
	return m, cmd
}

// selectDate switches the viewed date and fetches its tides
func (m Model) selectDate(date time.Time) (tea.Model, tea.Cmd) {
	date = startOfDay(date)
	if date.Equal(m.date) && !m.loading && m.fetchErr == nil {
		return m, nil
	}
	m.date = date
	m.loading = true
	m.fetchErr = nil
	m.notice = ""
	return m, tea.Batch(m.spinner.Tick, fetchTideDay(m.client, date))
}

// reestimate recomputes the flow estimate and reconfigures the simulator
// when the regime changes
func (m *Model) reestimate() {
	minute := m.queryMinute()
	m.lastLive = m.isLive()
	est := tidecycle.EstimateFlowAt(m.events, minute)
	m.cycle, m.hasCycle = tidecycle.Straddle(m.events, minute)

	if !m.configured || !est.SameRegime(m.estimate) {
		m.sim.Configure(est.Direction, est.Strength)
		m.configured = true
		m.logger.Info("flow regime changed",
			"date", m.date.Format("2006-01-02"),
			"direction", est.Direction,
			"strength", est.Strength,
			"particles", m.sim.Len())
	}
	m.estimate = est
}

// queryMinute is the wall clock for today and the reference hour otherwise
func (m Model) queryMinute() int {
	if m.isLive() {
		now := m.now()
		return now.Hour()*60 + now.Minute()
	}
	return m.referenceHour * 60
}

func (m Model) isLive() bool {
	return m.date.Equal(startOfDay(m.now()))
}

// startAnimation schedules frames. Resuming respawns the population, so a
// stopped simulator carries nothing over.
func (m *Model) startAnimation() tea.Cmd {
	if m.animating {
		return nil
	}
	m.animating = true
	m.frameGen++
	if m.configured {
		m.sim.Configure(m.estimate.Direction, m.estimate.Strength)
	}
	return frameTick(m.fps, m.frameGen)
}

func (m *Model) stopAnimation() {
	m.animating = false
}

// resize fits the projection and terrain raster to the flow pane
func (m *Model) resize() {
	w, h := m.flowSize()
	m.projector = flowfield.NewBoxProjector(m.mask.Bounds(), w, h)
	m.sim.SetProjector(m.projector)

	m.terrain = make([][]bool, h)
	for y := 0; y < h; y++ {
		m.terrain[y] = make([]bool, w)
		for x := 0; x < w; x++ {
			lat, lng := m.projector.Unproject(float64(x), float64(y))
			m.terrain[y][x] = m.mask.Contains(lng, lat)
		}
	}
}

// flowSize returns the canvas size of the flow pane
func (m Model) flowSize() (int, int) {
	if m.width == 0 || m.height == 0 {
		return 60, 18
	}
	w := m.width*3/5 - 4
	h := m.height - 10
	if w < 20 {
		w = 20
	}
	if h < 8 {
		h = 8
	}
	return w, h
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// errMsg is a message type for errors
type errMsg struct {
	err error
}

package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"userdeck/internal/config"
	"userdeck/internal/domain"
	"userdeck/internal/pipeline"
	"userdeck/internal/ui/handlers"
	"userdeck/internal/ui/input"
	inputtypes "userdeck/internal/ui/input/types"
	"userdeck/internal/ui/logic"
	"userdeck/internal/ui/state"
	"userdeck/internal/ui/viewmodels"
	"userdeck/internal/ui/views"
)

// chromeLines is the height taken by the fixed parts of the screen
// (title, filter bar, count, help bar, padding). Hints and status lines
// come on top, see extraLines.
const chromeLines = 14

// Model represents the UI state
type Model struct {
	config *config.Config
	logger *zap.SugaredLogger
	state  *state.AppState // centralized state

	// UI-specific state not in AppState
	width       int
	height      int
	help        help.Model
	keys        keyMap
	spinner     spinner.Model
	inPagerMode bool // tracks if we're currently in pager mode

	// Handlers
	navigator    *logic.Navigator       // navigation and viewport handler
	renderer     *views.Renderer        // view renderer
	eventHandler *handlers.EventHandler // event processing handler
	viewModel    *viewmodels.ViewModel  // view model for rendering
	inputHandler *input.Handler         // input handling
	helpRenderer *HelpRenderer
	pager        *PagerOps

	// Filter pipeline, created once the dataset has loaded
	pipeline *pipeline.Pipeline
	timers   pipeline.TimerFactory

	// Program reference for terminal management
	program *tea.Program
}

// Option configures a Model
type Option func(*Model)

// WithTimerFactory replaces the timers used for filter debouncing
func WithTimerFactory(timers pipeline.TimerFactory) Option {
	return func(m *Model) {
		m.timers = timers
	}
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, logger *zap.SugaredLogger, opts ...Option) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	appState := state.NewAppState()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		config:       cfg,
		logger:       logger,
		state:        appState,
		help:         help.New(),
		keys:         newKeyMap(),
		spinner:      sp,
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(cfg.UISettings.DateLayout),
		inputHandler: input.New(),
		helpRenderer: NewHelpRenderer(),
		pager:        NewPagerOps(),
	}
	m.timers = newProgramTimers(m.send)

	for _, opt := range opts {
		opt(m)
	}

	m.eventHandler = handlers.NewEventHandler(appState, m.startPipeline, logger)
	m.viewModel = viewmodels.NewViewModel(appState, cfg, m.inputHandler)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

func (m *Model) send(msg tea.Msg) {
	if m.program != nil {
		m.program.Send(msg)
	}
}

// startPipeline builds the filter pipeline over a freshly loaded dataset
func (m *Model) startPipeline(users []domain.UserRecord) {
	if m.pipeline != nil {
		return
	}
	m.pipeline = pipeline.New(users, m.timers, m.logger)
	m.pipeline.Scheduler().Subscribe(m.applySnapshot)
	m.applySnapshot(m.pipeline.Snapshot())
}

// applySnapshot mirrors a scheduler snapshot into the app state
func (m *Model) applySnapshot(snap pipeline.Snapshot) {
	m.state.ApplySnapshot(snap)
	m.ensureSelectedVisible()
}

// Pipeline returns the filter pipeline, nil until the dataset loads
func (m *Model) Pipeline() *pipeline.Pipeline {
	return m.pipeline
}

// State returns the application state
func (m *Model) State() *state.AppState {
	return m.state
}

// Dispose stops any pending filter pass. Safe to call more than once.
func (m *Model) Dispose() {
	if m.pipeline != nil {
		m.pipeline.Dispose()
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.update(msg)
	// Hints and status lines change with criteria and events
	m.updateViewportHeight()
	return model, cmd
}

func (m *Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		ctx := &input.ModelContext{State: m.state}

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.syncNavigatorState()
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(a.Direction)

	case inputtypes.SetFieldAction:
		if m.pipeline == nil {
			return nil
		}
		m.pipeline.SetField(a.Field, a.Value)

	case inputtypes.ShowHelpAction:
		return m.showPager(m.helpRenderer.RenderHelpContent())

	case inputtypes.ShowDetailsAction:
		user, ok := m.state.SelectedUser()
		if !ok {
			return nil
		}
		return m.showPager(m.renderer.Users().RenderDetails(user))

	case inputtypes.QuitAction:
		m.logger.Infow("quitting", "force", a.Force)
		m.Dispose()
		return tea.Quit
	}
	return nil
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		cmd := m.eventHandler.HandleEvent(msg.Event)
		return m, cmd

	case timerFiredMsg:
		msg.timer.deliver()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pagerClosedMsg:
		if msg.err != nil {
			m.logger.Warnw("pager failed", "error", msg.err)
			m.state.StatusMessage = fmt.Sprintf("Pager failed: %v", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	default:
		// Cursor blink and other widget messages
		return m, m.inputHandler.Update(msg)
	}
}

// showPager returns a command that shows content using the ov pager
func (m *Model) showPager(content string) tea.Cmd {
	if m.program == nil {
		return nil
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.Show(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return pagerClosedMsg{err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetSpinner(m.spinner.View())
	m.viewModel.SetHelpView(m.help.ShortHelpView(m.keys.ShortHelpFor(m.inputHandler.CurrentMode())))

	return m.renderer.Render(m.viewModel.BuildViewState())
}

// syncNavigatorState updates the navigator with current model state
func (m *Model) syncNavigatorState() {
	total := 0
	if !m.state.Pending {
		total = len(m.state.Results)
	}
	m.navigator.UpdateState(
		m.state.SelectedIndex,
		m.state.ViewportOffset,
		m.state.ViewportHeight,
		total,
	)
}

// ensureSelectedVisible ensures the selected item is visible in the viewport
func (m *Model) ensureSelectedVisible() {
	m.syncNavigatorState()
	m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(m.state.SelectedIndex)
}

// updateViewportHeight sizes the result list to what is left of the
// terminal once every other line is drawn
func (m *Model) updateViewportHeight() {
	if m.height == 0 {
		return
	}
	height := m.height - chromeLines - m.extraLines()
	if height < 3 {
		height = 3
	}
	if height == m.state.ViewportHeight {
		return
	}
	m.state.ViewportHeight = height
	m.ensureSelectedVisible()
}

// extraLines counts the lines the renderer adds beyond chromeLines
func (m *Model) extraLines() int {
	n := 0
	if m.state.Status == domain.StatusReady {
		n += len(m.state.Criteria.Problems()) // one hint each
	}
	if m.state.Fault != nil {
		n += 2 // blank line and fault
	}
	if m.state.StatusMessage != "" {
		n += 2 // blank line and message
	}
	return n
}

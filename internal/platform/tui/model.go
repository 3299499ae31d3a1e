package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-topdown/internal/core"
)

// footerRows is the number of terminal rows reserved below the arena.
const footerRows = 1

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Game is a simulation the platform can drive.
type Game interface {
	Reset(cfg core.RuntimeConfig)
	Step(input core.InputFrame) core.StepResult
	Render(dst core.Surface)
	Title() string
}

// Options configures the platform layer.
type Options struct {
	WorldW, WorldH int           // Arena size in world pixels
	KeyHold        time.Duration // How long a direction stays held after a press
	Logger         *log.Logger   // Nil discards output
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game   Game
	canvas *core.Canvas
	screen *core.Screen
	styles styleCache
	keys   KeyMap
	help   help.Model
	held   *heldKeys
	logger *log.Logger

	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:       game,
		canvas:     core.NewCanvas(opts.WorldW, opts.WorldH),
		screen:     core.NewScreen(cfg.ScreenW, arenaRows(cfg.ScreenH)),
		styles:     make(styleCache),
		keys:       DefaultKeyMap(),
		help:       h,
		held:       newHeldKeys(opts.KeyHold, cfg.TickRate),
		logger:     opts.Logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// arenaRows returns how many terminal rows the arena gets.
func arenaRows(screenH int) int {
	return max(screenH-footerRows, 0)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "seed", m.config.Seed, "fps", m.config.TickRate,
		"cols", m.config.ScreenW, "rows", m.config.ScreenH)

	return tea.Batch(
		tea.SetWindowTitle(m.game.Title()),
		tickCmd(m.config.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.logger.Info("quit requested", "key", msg.String())
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case isHeld(action):
		m.held.press(action)
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleMouse tracks the pointer and turns left presses into fire actions.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	rows := m.screen.Height()
	if m.screen.Width() <= 0 || rows <= 0 || msg.Y >= rows {
		// Footer or no arena
		return m, nil
	}

	w, h := m.canvas.Size()
	m.inputFrame.SetPointer(cellToWorld(msg.X, msg.Y, m.screen.Width(), rows, w, h))

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.Set(core.ActionFire)
	}
	return m, nil
}

// handleResize processes window resize events. The world keeps its size;
// only the cell grid it is mapped onto changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, arenaRows(msg.Height))
	m.help.Width = msg.Width
	m.logger.Debug("terminal resized", "cols", msg.Width, "rows", msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.held.apply(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()
	m.held.tick()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.screen.Width() <= 0 || m.screen.Height() <= 0 {
		return "terminal too small"
	}

	m.game.Render(m.canvas)
	RenderCanvas(m.canvas, m.screen)

	return RenderScreen(m.screen, m.styles) + "\n" + m.footer()
}

// footer renders the status line and key help.
func (m Model) footer() string {
	status := footerStyle.Render(fmt.Sprintf("%s · enemies %d · shots %d  ",
		m.gameState.Phase, m.gameState.Enemies, m.gameState.Projectiles))
	return lipgloss.JoinHorizontal(lipgloss.Top, status, m.help.View(m.keys))
}

// GameState returns the state reported by the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer motion drives aiming
	)

	_, err := p.Run()
	return err
}

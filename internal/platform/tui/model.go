// Package tui provides the Bubble Tea integration for termsnake. It
// implements the presenter the game core draws through, maps keys to
// game commands and runs the frame scheduling chain.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termsnake/internal/config"
	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/snake"
)

const hudHeight = 2 // HUD text line + separator

// Model is the Bubble Tea model for a single game session.
type Model struct {
	loop     *snake.Loop
	view     *gameView
	screen   *core.Screen
	keymap   KeyMap
	help     help.Model
	cfg      core.RuntimeConfig
	tickGen  int // generation of the active scheduling chain
	quitting bool
}

// NewModel creates a model for a fresh session.
func NewModel(cfg core.RuntimeConfig, gameCfg config.SnakeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	session := snake.NewSession(snake.Options{
		Grid: snake.Grid{
			Cols: gameCfg.Board.Cols,
			Rows: gameCfg.Board.Rows,
		},
		Seed:      cfg.Seed,
		HeadColor: config.ParseColor(gameCfg.Colors.Head, core.ColorBrightGreen),
		BodyColor: config.ParseColor(gameCfg.Colors.Body, core.ColorGreen),
		FoodColor: config.ParseColor(gameCfg.Colors.Food, core.ColorBrightRed),
	})

	view := &gameView{}
	loop := snake.NewLoop(session, view, time.Duration(gameCfg.TickMS)*time.Millisecond)

	return Model{
		loop:   loop,
		view:   view,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keymap: DefaultKeyMap(),
		help:   help.New(),
		cfg:    cfg,
	}
}

// Init initializes the model. The game waits on the idle screen until
// the player starts it.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.cfg.ScreenW = msg.Width
		m.cfg.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey maps keyboard input to direction and command dispatch.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	// Direction keys go through the presenter's input binding, which
	// only exists while the loop is running.
	if d, ok := m.keymap.DirectionFor(msg); ok {
		m.view.dispatch(d)
		return m, nil
	}

	now := time.Now()

	switch {
	case key.Matches(msg, m.keymap.Start):
		// Enter acknowledges a pending game-over overlay first; the
		// next press starts a new run.
		if m.view.ackGameOver() {
			return m, nil
		}
		if m.loop.Status() == snake.StatusIdle {
			m.loop.Start(now)
			return m.armTicks()
		}

	case key.Matches(msg, m.keymap.Pause):
		switch m.loop.Status() {
		case snake.StatusRunning:
			m.loop.Pause()
		case snake.StatusPaused:
			m.loop.Resume(now)
			return m.armTicks()
		}

	case key.Matches(msg, m.keymap.Restart):
		m.loop.Restart(now)

	case key.Matches(msg, m.keymap.End):
		m.loop.End()

	case key.Matches(msg, m.keymap.Auto):
		m.loop.Auto()
	}

	return m, nil
}

// handleTick runs one frame of the simulation.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.tickGen {
		// Leftover tick from a chain that was stopped by pause/end.
		return m, nil
	}
	if m.loop.Frame(msg.Time) {
		return m, tickCmd(m.loop.TickInterval(), m.tickGen)
	}
	return m, nil
}

// armTicks starts a new frame scheduling chain, invalidating any
// in-flight tick from a previous one.
func (m Model) armTicks() (tea.Model, tea.Cmd) {
	m.tickGen++
	return m, tickCmd(m.loop.TickInterval(), m.tickGen)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	s := m.screen
	s.Clear()

	m.drawHUD(s)

	grid := m.loop.Session().Grid()
	requiredW := grid.Cols + 2
	requiredH := grid.Rows + hudHeight + 3
	if s.Width() < requiredW || s.Height() < requiredH {
		m.drawOverlay(s, "Window too small", "Resize to continue")
		return RenderScreen(s)
	}

	m.drawBoard(s, grid)

	switch {
	case m.view.gameOver:
		m.drawOverlay(s, "Game Over", "Press Enter to continue")
	case m.loop.Status() == snake.StatusPaused:
		m.drawOverlay(s, "Paused", "Press P to resume")
	case m.loop.Status() == snake.StatusIdle:
		m.drawOverlay(s, "termsnake", "Press Enter to start")
	}

	// Help footer on the last line
	s.DrawText(1, s.Height()-1, m.help.View(m.keymap))

	return RenderScreen(s)
}

// drawHUD draws the top status bar.
func (m Model) drawHUD(s *core.Screen) {
	hud := fmt.Sprintf(" termsnake — Score: %d  Best: %d", m.view.score, m.view.highest)
	s.DrawText(0, 0, hud)
	s.DrawHLine(0, 1, s.Width(), '─')
}

// drawBoard draws the border and all blocks, centered under the HUD.
func (m Model) drawBoard(s *core.Screen, grid snake.Grid) {
	ox := (s.Width() - grid.Cols) / 2
	oy := hudHeight + core.Max(0, (s.Height()-hudHeight-1-grid.Rows)/2)

	s.DrawBox(core.NewRect(ox-1, oy-1, grid.Cols+2, grid.Rows+2))

	// Blocks arrive head first; the food never shares a cell with the
	// snake, so it is identified by its cell.
	food := m.loop.Session().Food()
	for i, b := range m.view.blocks {
		r := 'o'
		switch {
		case i == 0:
			r = 'O'
		case b.Cell == food.Cell:
			r = '*'
		}
		s.SetCell(ox+b.X, oy+b.Y, r, b.Color)
	}
}

// drawOverlay draws a centered boxed two-line message.
func (m Model) drawOverlay(s *core.Screen, line1, line2 string) {
	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((s.Width()-boxW)/2, (s.Height()-boxH)/2, boxW, boxH)

	s.DrawRect(box, ' ')
	s.DrawBox(box)
	s.DrawTextCentered(box.Y+1, line1)
	s.DrawTextCentered(box.Y+3, line2)
}

// Run starts a local Bubble Tea program for one game session.
func Run(cfg core.RuntimeConfig, gameCfg config.SnakeConfig) error {
	p := tea.NewProgram(
		NewModel(cfg, gameCfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

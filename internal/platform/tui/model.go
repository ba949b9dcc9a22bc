package tui

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wrapsnake/internal/config"
	"github.com/vovakirdan/wrapsnake/internal/core"
	"github.com/vovakirdan/wrapsnake/internal/games/snake"
)

// Model is the Bubble Tea model for one snake game in a terminal.
type Model struct {
	game     *snake.Game
	loop     *snake.Loop
	screen   *core.Screen
	input    core.InputLatch
	keys     KeyMap
	help     help.Model
	layout   layout
	config   core.RuntimeConfig
	logger   *log.Logger
	shotDir  string // Screenshot directory; empty disables screenshots
	quitting bool
}

// NewModel creates a model with a fresh game built from cfg.
func NewModel(cfg config.SnakeConfig, rc core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}
	rng := rand.New(rand.NewSource(rc.SeedOrNow()))
	game := snake.New(snake.OptionsFromConfig(cfg), rng)

	h := help.New()
	h.ShowAll = false
	h.Width = rc.ScreenW

	return Model{
		game:   game,
		loop:   snake.NewLoop(game, rc.TickInterval),
		screen: core.NewScreen(rc.ScreenW, max(rc.ScreenH-1, 0)),
		keys:   DefaultKeyMap(),
		help:   h,
		layout: newLayout(game.Field(), rc.ScreenW, rc.ScreenH),
		config: rc,
		logger: logger,
	}
}

// WithScreenshotDir enables ctrl+s screenshots saved under dir.
func (m Model) WithScreenshotDir(dir string) Model {
	m.shotDir = dir
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.loop.Interval())
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
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey latches directional keys until the next simulation step.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.input.Press(action)
	return m, nil
}

// handleMouse tracks the pointer in field pixels and the left button state.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	px, py := m.layout.fieldPoint(msg.X, msg.Y)
	m.input.MovePointer(px, py)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.input.SetPointerDown(true)
		}
	case tea.MouseActionRelease:
		m.input.SetPointerDown(false)
	}
	return m, nil
}

// handleResize processes terminal resize events. The game keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.layout = newLayout(m.game.Field(), msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs the simulation steps due since the previous tick. The
// simulation pauses while the terminal is too small to show the field.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.layout.fits {
		m.loop.Skip(now)
		return m, tickCmd(m.loop.Interval())
	}

	res := m.loop.Frame(now, &m.input)
	if res.Died {
		m.logger.Debug("game over", "length", m.game.Len())
	}
	if res.Reset {
		m.logger.Debug("game reset")
	}

	return m, tickCmd(m.loop.Interval())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	if !m.layout.fits {
		m.drawTooSmall()
		return RenderScreen(m.screen)
	}

	m.screen.DrawBox(m.layout.box)
	state := m.game.RenderState()
	if state.GameOver {
		m.drawGameOver(state)
	} else {
		m.drawField(state)
	}

	helpBar := lipgloss.PlaceHorizontal(m.config.ScreenW, lipgloss.Center, m.help.View(m.keys))
	return RenderScreen(m.screen) + "\n" + helpBar
}

// drawField draws the snake and the apple.
func (m Model) drawField(s snake.RenderState) {
	m.drawCell(s.Apple, core.ColorRed)
	for _, seg := range s.Body {
		m.drawCell(seg, core.ColorGreen)
	}
	m.drawCell(s.Head, core.ColorGreen)
}

func (m Model) drawCell(p snake.Point, c core.Color) {
	x, y := m.layout.cellAt(p)
	m.screen.DrawTextColored(x, y, "██", c)
}

// drawGameOver draws the title, the death message and the reset button.
func (m Model) drawGameOver(s snake.RenderState) {
	m.screen.DrawTextCentered(m.layout.rowAt(snake.TitleY), snake.TitleText, core.ColorBlue)
	m.screen.DrawTextCentered(m.layout.rowAt(snake.DeathTextY), snake.DeathText, core.ColorRed)

	button := m.layout.buttonCells(s.ResetButton)
	if button.W == 0 {
		return
	}
	fill, label := resetColors(s.ResetHovered)
	m.screen.DrawRect(button, '█', fill)

	cx, cy := button.Center()
	m.screen.DrawTextColored(cx-len(snake.ResetText)/2, cy, snake.ResetText, label)
}

// resetColors returns the button fill and label colors. Hovering swaps them.
func resetColors(hovered bool) (fill, label core.Color) {
	if hovered {
		return core.ColorDarkGray, core.ColorGray
	}
	return core.ColorGray, core.ColorDarkGray
}

func (m Model) drawTooSmall() {
	w, h := m.layout.minSize()
	mid := m.screen.Height() / 2
	m.screen.DrawTextCentered(mid-1, "Terminal too small", core.ColorRed)
	m.screen.DrawTextCentered(mid+1,
		fmt.Sprintf("need %dx%d, have %dx%d", w, h, m.config.ScreenW, m.config.ScreenH), core.ColorGray)
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}
	m.View()

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "error", err)
		return
	}
	path := filepath.Join(m.shotDir, fmt.Sprintf("wrapsnake_%s.txt", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// Run starts a Bubble Tea program in the current terminal.
func Run(cfg config.SnakeConfig, rc core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, rc, logger).WithScreenshotDir(config.HomePath("screenshots"))
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}

package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// Player identifies who is playing, for score records.
type Player struct {
	Name      string // SSH user or storage.LocalPlayer
	SessionID string
}

// GameModel is the Bubble Tea model that drives one runner game.
// It feeds tick timestamps and mapped input to the game, renders it
// and records each finished run exactly once.
type GameModel struct {
	game       *runner.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	player     Player
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	standalone bool // No menu to return to: Back quits
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. store may be nil to disable score saving.
func NewGameModel(store *storage.Store, cfg core.RuntimeConfig, player Player, logger *log.Logger) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}
	if player.Name == "" {
		player.Name = storage.LocalPlayer
	}

	return GameModel{
		game:       runner.New(),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		player:     player,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init resets the game, seeds the HUD high score and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)

	if m.store != nil {
		high, err := m.store.HighScore(m.game.ID())
		if err != nil {
			m.logger.Warn("could not load high score", "error", err)
		}
		m.game.SetHighScore(high)
	}

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if action := m.keyMapper.MapMouse(msg); action != core.ActionNone {
			m.inputFrame.Set(action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		// The field is laid out in pixels, so a resize only changes the
		// viewport and never resets the run.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Debug("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
	}

	return m, nil
}

// handleTick runs one game frame at the tick's timestamp.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	m.inputFrame.Now = now
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Ended {
		m.saveRun()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun persists the run that just ended. Failures are logged and the
// game continues.
func (m GameModel) saveRun() {
	last := m.game.LastRun()
	run := storage.Run{
		GameID:    m.game.ID(),
		Player:    m.player.Name,
		SessionID: m.player.SessionID,
		Score:     last.Score,
		Speed:     last.Speed,
		Duration:  last.Duration,
	}

	m.logger.Info("run ended",
		"player", run.Player,
		"score", run.Score,
		"speed", fmt.Sprintf("%.0f", run.Speed),
		"duration", run.Duration.Round(time.Millisecond),
	)

	if m.store == nil || run.Score <= 0 {
		return
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Error("could not save run", "error", err)
	}
}

// saveScreenshot writes the current screen as plain text under
// ~/.runner/screenshots and returns the file path.
func (m GameModel) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".runner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays the runner directly in the local terminal, without the menu.
func Run(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewGameModel(store, cfg, Player{Name: storage.LocalPlayer}, logger)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Clicks jump
	)

	_, err := p.Run()
	return err
}

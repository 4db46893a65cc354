package ui

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chesstable/internal/app"
	"github.com/hailam/chesstable/internal/assets"
	"github.com/hailam/chesstable/internal/config"
	"github.com/hailam/chesstable/internal/rules"
	"github.com/hailam/chesstable/internal/table"
)

// Game implements ebiten.Game and presents the table's frames.
type Game struct {
	app    *app.App
	ctrl   *table.Controller
	queue  *table.Queue
	logger *log.Logger

	// Last frame presented by the controller
	frame table.Frame

	// Components
	renderer *Renderer
	input    *InputHandler
	panel    *Panel
	audio    *AudioManager
	toasts   *ToastManager

	width, height int
	quit          bool
}

// NewGame builds the desktop table.
func NewGame(cfg config.Config, logger *log.Logger, opts app.Options) (*Game, error) {
	g := &Game{
		queue:  table.NewQueue(),
		logger: logger,
		input:  NewInputHandler(),
	}

	a, err := app.New(cfg, logger, opts,
		table.WithScheduler(g.queue),
		table.WithView(g),
		table.WithMoveListener(g.onMove),
	)
	if err != nil {
		return nil, err
	}
	g.app = a
	g.ctrl = a.Controller

	tile := cfg.Window.TileSize
	sprites := NewSpriteManager(assets.NewCatalog(cfg.Assets.Dir), tile, logger)
	g.renderer = NewRenderer(tile, ThemeFromPalette(cfg.Palette), sprites)
	g.width = g.renderer.BoardSize() + PanelWidth
	g.height = max(g.renderer.BoardSize(), MinHeight)
	g.panel = NewPanel(g, g.renderer.BoardSize(), g.height, g.ctrl.HighlightLegalMoves(), a.SoundEnabled())
	g.toasts = NewToastManager(g.renderer.BoardSize())
	if !a.Persistent() {
		g.toasts.Show("Games are not being saved", ToastWarning)
	}

	// Created after app.New so replaying a stored game stays silent
	g.audio = NewAudioManager(a.SoundEnabled())

	g.queue.Drain()
	g.ctrl.Redraw()
	return g, nil
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.Config, logger *log.Logger, opts app.Options) error {
	g, err := NewGame(cfg, logger, opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := g.Close(); err != nil {
			logger.Warn("could not save table state", "error", err)
		}
	}()

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	return ebiten.RunGame(g)
}

// Present stores f for the next Draw.
func (g *Game) Present(f table.Frame) {
	g.frame = f
	if g.panel != nil {
		g.panel.SyncHighlight(f.Highlight)
	}
}

// Update handles input, then runs the redraws it scheduled.
func (g *Game) Update() error {
	g.input.Update()

	g.handleKeys()
	if !g.panel.HandleInput(g.input) {
		g.handleBoardInput()
	}

	g.queue.Drain()
	g.toasts.Update()
	g.updateCursor()

	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) handleKeys() {
	switch g.input.Command() {
	case CmdCancel:
		g.ctrl.Cancel()
	case CmdFlip:
		g.FlipAction()
	case CmdToggleHighlight:
		g.ToggleHighlightAction(!g.ctrl.HighlightLegalMoves())
	case CmdNewGame:
		g.NewGameAction()
	}
}

func (g *Game) handleBoardInput() {
	mx, my := g.input.MousePosition()
	slot := g.renderer.ScreenToSlot(mx, my)
	if slot < 0 || slot >= len(g.frame.Tiles) {
		return
	}

	switch g.input.Gesture() {
	case GestureCancel:
		g.ctrl.Cancel()
	case GesturePrimary:
		g.ctrl.Primary(g.frame.Tiles[slot].Index)
	}
}

func (g *Game) updateCursor() {
	if g.panel.AnyButtonHovered() {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// Draw renders the last presented frame and the panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.renderer.Theme().Background)
	g.renderer.DrawFrame(screen, g.frame)
	g.panel.Draw(screen)
	g.toasts.Draw(screen)
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func (g *Game) onMove(tr rules.MoveTransition) {
	if status := tr.Board.Status(); status != rules.InProgress {
		g.audio.Play(SoundGameEnd)
		g.toasts.Show(table.StatusLine(status, tr.Board.SideToMove()), ToastSuccess)
		return
	}
	g.audio.Play(SoundMove)
}

// NewGameAction starts a new game.
func (g *Game) NewGameAction() {
	g.app.NewGame()
	g.toasts.Show("New game", ToastInfo)
}

// FlipAction flips the board.
func (g *Game) FlipAction() {
	g.ctrl.FlipOrientation()
}

// ToggleHighlightAction turns legal move highlighting on or off.
func (g *Game) ToggleHighlightAction(enabled bool) {
	g.ctrl.ToggleLegalMoveHighlighting(enabled)
}

// ToggleSoundAction turns move sounds on or off.
func (g *Game) ToggleSoundAction(enabled bool) {
	g.audio.SetEnabled(enabled)
	g.app.SetSoundEnabled(enabled)
}

// ExitAction closes the window after the current frame.
func (g *Game) ExitAction() {
	g.quit = true
}

// Close saves preferences and closes storage.
func (g *Game) Close() error {
	return g.app.Close()
}

// Package desktop runs a flappy game in an Ebiten window. The logical screen
// is the engine viewport itself, so no coordinate scaling is needed; Ebiten
// stretches the image to the window.
package desktop

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	skyColor    = color.RGBA{112, 197, 206, 255}
	gateColor   = color.RGBA{83, 160, 60, 255}
	passedColor = color.RGBA{60, 110, 50, 255}
	capColor    = color.RGBA{120, 200, 90, 255}
	flyerColor  = color.RGBA{250, 200, 40, 255}
	crashColor  = color.RGBA{220, 60, 50, 255}
	beakColor   = color.RGBA{240, 120, 30, 255}
)

const (
	capHeight = 8
	beakSize  = 10
)

// App adapts a flappy.Game to ebiten.Game.
type App struct {
	game   *flappy.Game
	params engine.Params
	logger *log.Logger
}

// New creates an Ebiten app for game.
func New(game *flappy.Game, logger *log.Logger) *App {
	if logger == nil {
		logger = log.Default()
	}
	return &App{
		game:   game,
		params: game.Params(),
		logger: logger,
	}
}

// Update runs one fixed tick. Ebiten calls it TPS times per second.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
	in := inputFrame(inpututil.AppendJustPressedKeys(nil), clicked)

	a.game.Step(in)
	return nil
}

// inputFrame maps the keys pressed this tick to platform actions.
func inputFrame(keys []ebiten.Key, clicked bool) core.InputFrame {
	in := core.NewInputFrame()
	if clicked {
		in.Set(core.ActionJump)
	}
	for _, k := range keys {
		switch k {
		case ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyEnter:
			in.Set(core.ActionJump)
		case ebiten.KeyP, ebiten.KeyEscape:
			in.Set(core.ActionPause)
		}
	}
	return in
}

// Draw renders the current view.
func (a *App) Draw(screen *ebiten.Image) {
	v := a.game.View()
	p := a.params

	screen.Fill(skyColor)

	for _, g := range v.Gates {
		top, bottom := gateRects(p, g)
		c := gateColor
		if g.Passed {
			c = passedColor
		}
		fillRect(screen, top, c)
		fillRect(screen, bottom, c)
		fillRect(screen, core.NewBox(top.X-2, top.Bottom()-capHeight, top.W+4, capHeight), capColor)
		fillRect(screen, core.NewBox(bottom.X-2, bottom.Y, bottom.W+4, capHeight), capColor)
	}

	body := p.FlyerBox(v.FlyerY)
	c := flyerColor
	if v.Phase == engine.PhaseEnded {
		c = crashColor
	}
	fillRect(screen, body, c)
	fillRect(screen, beakRect(body, v.FlyerVelocity), beakColor)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", v.Score), 8, 8)

	state := a.game.State()
	switch {
	case state.Paused:
		a.message(screen, "PAUSED - press P to resume")
	case state.Idle:
		a.message(screen, "Press SPACE or click to start")
	case state.GameOver:
		a.message(screen, fmt.Sprintf("GAME OVER  score %d - SPACE to restart", v.Score))
	}
}

func (a *App) message(screen *ebiten.Image, text string) {
	// The debug font is 6px wide.
	x := (int(a.params.ViewportWidth) - len(text)*6) / 2
	ebitenutil.DebugPrintAt(screen, text, max(x, 0), int(a.params.ViewportHeight)/3)
}

// Layout fixes the logical screen to the viewport.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(a.params.ViewportWidth), int(a.params.ViewportHeight)
}

// gateRects returns the top and bottom segments of a gate.
func gateRects(p engine.Params, g engine.Gate) (top, bottom core.Box) {
	top = core.NewBox(g.X, 0, p.GateWidth, g.TopHeight)
	bottom = core.NewBox(g.X, p.ViewportHeight-g.BottomHeight, p.GateWidth, g.BottomHeight)
	return top, bottom
}

// beakRect places the beak on the right of the body, tilted with velocity.
func beakRect(body core.Box, velocity float64) core.Box {
	tilt := core.ClampF(velocity*1.5, -body.H/2, body.H/2)
	y := body.Y + body.H/2 - beakSize/2 + tilt
	return core.NewBox(body.Right()-beakSize/2, y, beakSize, beakSize)
}

func fillRect(dst *ebiten.Image, b core.Box, c color.Color) {
	vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), c, false)
}

// Run opens the window and blocks until it is closed.
func Run(game *flappy.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	app := New(game, logger)
	game.Reset(cfg)

	ebiten.SetWindowSize(int(app.params.ViewportWidth), int(app.params.ViewportHeight))
	ebiten.SetWindowTitle("Flappy")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)

	app.logger.Debug("starting desktop frontend", "tps", cfg.TickRate)
	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}

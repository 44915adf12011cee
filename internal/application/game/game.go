// Package game runs the story player's screens inside the Ebiten loop.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/atomic"

	"github.com/younwookim/protocolsmile/internal/application/scene"
)

// Game is the ebiten.Game of the player. It owns the current screen and
// a quit flag that other goroutines may raise.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	quit    atomic.Bool
}

// New makes initial the current screen and enters it
func New(initial scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initial,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0,
	}
	g.current.OnEnter()
	return g
}

// Update ticks the current screen once. A pending quit exits the screen
// and ends the loop with ebiten.Termination.
func (g *Game) Update() error {
	if g.quit.Load() {
		g.current.OnExit()
		return ebiten.Termination
	}

	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}
	if next != nil {
		g.switchTo(next)
	}
	return nil
}

func (g *Game) switchTo(next scene.Scene) {
	g.current.OnExit()
	g.current = next
	g.current.OnEnter()
}

// Draw paints the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout keeps the configured logical resolution regardless of window size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the tick length passed to screens, normally 1/framerate
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// RequestQuit makes the next Update end the loop. Safe from any goroutine.
func (g *Game) RequestQuit() {
	g.quit.Store(true)
}

// QuitRequested reports whether RequestQuit was called
func (g *Game) QuitRequested() bool {
	return g.quit.Load()
}

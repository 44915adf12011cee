// Package scene defines the screens of the story player.
//
// The title menu and the story view implement Scene. A screen hands off
// to another by returning it from Update; the game loop runs OnExit on the
// old screen and OnEnter on the new one.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the player
type Scene interface {
	// Update advances the screen by dt seconds. A non-nil next replaces
	// this screen; an error stops the player.
	Update(dt float64) (next Scene, err error)

	// Draw paints the screen
	Draw(screen *ebiten.Image)

	// OnEnter runs when the screen becomes current, including the first screen
	OnEnter()

	// OnExit runs when the screen is replaced or the player quits
	OnExit()
}

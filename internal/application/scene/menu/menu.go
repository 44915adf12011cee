// Package menu provides the title screen.
package menu

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/younwookim/protocolsmile/internal/application/scene"
	"github.com/younwookim/protocolsmile/internal/application/scene/widget"
	"github.com/younwookim/protocolsmile/internal/application/system"
	"github.com/younwookim/protocolsmile/internal/domain/animation"
	"github.com/younwookim/protocolsmile/internal/infrastructure/config"
	"github.com/younwookim/protocolsmile/internal/infrastructure/font"
)

var colorBG = color.RGBA{26, 10, 20, 255}

// Big menu button size on the sprite sheet
const (
	buttonW   = 180
	buttonH   = 23
	buttonGap = 12
)

// Menu is the title screen with Play and Quit buttons
type Menu struct {
	title     string
	screenW   int
	screenH   int
	face      *text.GoTextFace
	titleFace *text.GoTextFace
	input     *system.InputSystem

	play *widget.Button
	quit *widget.Button

	onPlay func() (scene.Scene, error)
	onQuit func()
}

// New creates the title screen. onPlay builds the story scene; onQuit
// asks the game to terminate.
func New(s *config.Settings, cat *animation.Catalog, onPlay func() (scene.Scene, error), onQuit func()) (*Menu, error) {
	face, err := font.Face(s.Text.FontSize)
	if err != nil {
		return nil, err
	}
	titleFace, err := font.Face(s.Text.FontSize * 2.5)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		cat = animation.DefaultCatalog()
	}

	w, h := s.Display.ScreenWidth, s.Display.ScreenHeight
	x := (w - buttonW) / 2
	y := h / 2
	playRect := image.Rect(x, y, x+buttonW, y+buttonH)
	quitRect := playRect.Add(image.Pt(0, buttonH+buttonGap))

	return &Menu{
		title:     s.Display.Title,
		screenW:   w,
		screenH:   h,
		face:      face,
		titleFace: titleFace,
		input:     system.NewInputSystem(),
		play: widget.NewButton(cat, "Play", playRect,
			animation.ButtonSelect("play", true), animation.ButtonDeselect("play", true)),
		quit: widget.NewButton(cat, "Quit", quitRect,
			animation.ButtonSelect("quit", true), animation.ButtonDeselect("quit", true)),
		onPlay: onPlay,
		onQuit: onQuit,
	}, nil
}

// Update handles hover and clicks (implements scene.Scene)
func (m *Menu) Update(dt float64) (scene.Scene, error) {
	return m.handle(m.input.GetInput(), dt)
}

func (m *Menu) handle(input system.InputState, dt float64) (scene.Scene, error) {
	for _, b := range []*widget.Button{m.play, m.quit} {
		b.SetHovered(b.Contains(input.MouseX, input.MouseY))
		b.Update(dt)
	}

	playPressed := input.AdvanceKey || (input.Click && m.play.Hovered())
	quitPressed := input.Pause || (input.Click && m.quit.Hovered())

	switch {
	case playPressed && m.onPlay != nil:
		return m.onPlay()
	case quitPressed && m.onQuit != nil:
		m.onQuit()
	}
	return nil, nil
}

// Draw renders the title and buttons
func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(m.screenW)/2, float64(m.screenH)/4)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, m.title, m.titleFace, op)

	m.play.Draw(screen, m.face)
	m.quit.Draw(screen, m.face)
}

// OnEnter is called when entering this scene
func (m *Menu) OnEnter() {
	m.play.SetHovered(false)
	m.quit.SetHovered(false)
}

// OnExit is called when leaving this scene
func (m *Menu) OnExit() {}

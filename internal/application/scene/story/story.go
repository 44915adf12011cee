// Package story provides the scene that plays scene documents.
package story

import (
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/protocolsmile/internal/application/scene"
	"github.com/younwookim/protocolsmile/internal/application/scene/widget"
	"github.com/younwookim/protocolsmile/internal/application/state"
	"github.com/younwookim/protocolsmile/internal/application/system"
	"github.com/younwookim/protocolsmile/internal/domain/animation"
	"github.com/younwookim/protocolsmile/internal/domain/story"
	"github.com/younwookim/protocolsmile/internal/domain/variable"
	"github.com/younwookim/protocolsmile/internal/infrastructure/config"
	"github.com/younwookim/protocolsmile/internal/infrastructure/font"
)

// Colors for rendering
var (
	colorBG      = color.RGBA{18, 12, 24, 255}
	colorSpeaker = color.RGBA{255, 200, 120, 255}
	colorHint    = color.RGBA{200, 200, 200, 255}
	colorPause   = color.RGBA{0, 0, 0, 128}
	colorEnd     = color.RGBA{20, 0, 10, 200}
)

var portraitPalette = []color.RGBA{
	{120, 160, 220, 255},
	{220, 130, 150, 255},
	{140, 200, 140, 255},
	{210, 190, 110, 255},
	{170, 140, 210, 255},
}

var defaultPortraitSize = image.Pt(96, 128)

// Options configures a Story scene
type Options struct {
	Settings   *config.Settings
	Source     system.SceneSource
	Catalog    *animation.Catalog
	Store      *variable.Store // nil for a fresh store
	StartScene int
	StartNode  int
	RecordPath string
	Back       func() scene.Scene // scene shown after the story completes
}

type optionsKey struct {
	scene, node, count int
}

// Story plays scenes through the director and draws the result
type Story struct {
	settings *config.Settings
	catalog  *animation.Catalog
	director *system.Director
	interp   *system.Interpreter
	input    *system.InputSystem
	layout   Layout
	face     *text.GoTextFace
	measure  func(string) float64
	state    state.GameState
	back     func() scene.Scene

	buttons     []*widget.Button
	optionRects []image.Rectangle
	optionsFor  optionsKey

	lines      []Line
	wrappedFor string
	runs       []story.Span

	recorder       *Recorder
	recordFilename string
}

// New creates a Story scene and starts the first scene.
// If RecordPath is not empty, input will be recorded.
func New(opts Options) (*Story, error) {
	s := opts.Settings
	if s == nil {
		d := config.DefaultSettings()
		s = &d
	}
	face, err := font.Face(s.Text.FontSize)
	if err != nil {
		return nil, err
	}

	cat := opts.Catalog
	if cat == nil {
		cat = animation.DefaultCatalog()
	}

	interp := system.NewInterpreter(opts.Store, system.InterpreterConfig{
		TransitionTime: s.Timing.SceneTransition,
		FadeTime:       s.Timing.FadeDuration,
		TextStepTime:   s.Text.StepTime(),
		Catalog:        cat,
	})
	director := system.NewDirector(opts.Source, interp)
	if err := director.Start(opts.StartScene, opts.StartNode); err != nil {
		return nil, err
	}

	p := &Story{
		settings:       s,
		catalog:        cat,
		director:       director,
		interp:         interp,
		input:          system.NewInputSystem(),
		layout:         NewLayout(s),
		face:           face,
		measure:        font.Measurer(face),
		state:          state.StatePlaying,
		back:           opts.Back,
		optionsFor:     optionsKey{scene: -1, node: -1},
		recordFilename: opts.RecordPath,
	}
	if opts.RecordPath != "" {
		p.recorder = NewRecorder(opts.StartScene, opts.StartNode)
		log.Printf("Recording enabled: %s", opts.RecordPath)
	}
	p.syncOptions()
	return p, nil
}

// Update proceeds the story (implements scene.Scene)
func (p *Story) Update(dt float64) (scene.Scene, error) {
	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}
	return p.handle(p.input.GetInput(), dt)
}

func (p *Story) handle(input system.InputState, dt float64) (scene.Scene, error) {
	switch p.state {
	case state.StatePlaying:
		if input.Pause {
			p.state = state.StatePaused
			return nil, nil
		}
		return nil, p.step(input, dt)
	case state.StatePaused:
		if input.Pause {
			p.state = state.StatePlaying
		}
	case state.StateStoryComplete:
		if (input.Click || input.AdvanceKey) && p.back != nil {
			return p.back(), nil
		}
	}
	return nil, nil // nil = stay on this scene
}

func (p *Story) step(input system.InputState, dt float64) error {
	hover := system.Hover(input, p.optionRects)
	for i, b := range p.buttons {
		b.SetHovered(i == hover)
		b.Update(dt)
	}

	tick := p.input.TickInput(input, p.layout.TextBox, p.optionRects, dt)
	if p.recorder != nil {
		p.recorder.RecordFrame(tick)
	}

	status, err := p.director.Step(tick)
	if err != nil {
		return err
	}
	switch status {
	case system.DirectorSceneChanged:
		log.Printf("Scene %d: %s", p.director.SceneID(), p.interp.Scene().TitleText())
	case system.DirectorFinished:
		p.state = state.StateStoryComplete
		log.Printf("Story complete")
		p.saveRecording()
	}

	p.syncOptions()
	return nil
}

// syncOptions rebuilds the option buttons when the fork on screen changes
func (p *Story) syncOptions() {
	opts := p.interp.Options()
	key := optionsKey{scene: p.director.SceneID(), node: p.interp.CurrentNode(), count: len(opts)}
	if opts == nil {
		key = optionsKey{scene: -1, node: -1}
	}
	if key == p.optionsFor {
		return
	}
	p.optionsFor = key

	p.optionRects = p.layout.OptionRects(len(opts), p.optionRects)
	p.buttons = p.buttons[:0]
	for i, label := range opts {
		p.buttons = append(p.buttons, widget.NewButton(p.catalog, label, p.optionRects[i],
			animation.ButtonGenericSelect, animation.ButtonGenericDeselect))
	}
}

// saveRecording saves the current recording to file
func (p *Story) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Draw renders the story screen
func (p *Story) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	p.drawPortraits(screen)
	if p.interp.Kind() == story.KindStory {
		p.drawTextBox(screen)
	}
	for _, b := range p.buttons {
		b.Draw(screen, p.face)
	}

	if p.interp.Fading() {
		p.drawOverlay(screen, color.RGBA{0, 0, 0, alpha(1 - p.interp.FadeFraction())})
	}
	if !p.interp.TransitionDone() {
		p.drawOverlay(screen, color.RGBA{0, 0, 0, alpha(1 - p.interp.TransitionFraction())})
	}

	// Scene and node debug info
	if ebiten.IsKeyPressed(ebiten.KeyTab) {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("scene %d node %d (%s)", p.director.SceneID(), p.interp.CurrentNode(), p.interp.Kind()))
	}

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, colorPause)
		p.drawCentered(screen, "PAUSED", "Press ESC to resume")
	case state.StateStoryComplete:
		p.drawOverlay(screen, colorEnd)
		p.drawCentered(screen, "THE END", "Click to return to the menu")
	}
}

func (p *Story) drawPortraits(screen *ebiten.Image) {
	for slot, portrait := range p.interp.Portraits() {
		if !portrait.Visible {
			continue
		}
		size := portrait.Timeline.Current().Src.Size()
		if size.X == 0 || size.Y == 0 {
			size = defaultPortraitSize
		}
		r := p.layout.PortraitRect(slot, size)
		c := portraitColor(portrait.Character)

		// Frame index shades the placeholder so playback is visible
		shade := 0.85 + 0.15*float64(portrait.Timeline.Frame%2)
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()),
			widget.Lerp(color.RGBA{0, 0, 0, 255}, c, shade), false)

		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(r.Min.X+4), float64(r.Min.Y+4))
		op.ColorScale.ScaleWithColor(color.Black)
		text.Draw(screen, portrait.Character, p.face, op)
	}
}

func (p *Story) drawTextBox(screen *ebiten.Image) {
	box := p.layout.TextBox
	vector.DrawFilledRect(screen, float32(box.Min.X), float32(box.Min.Y), float32(box.Dx()), float32(box.Dy()),
		p.settings.TextBox.Color.RGBA(), false)

	lineHeight := p.face.Size * 1.4
	if speaker := p.interp.Speaker(); speaker != "" {
		x, y := p.layout.SpeakerPos(lineHeight)
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(colorSpeaker)
		text.Draw(screen, speaker, p.face, op)
	}

	area := p.layout.TextArea()
	full := p.interp.Text()
	if full != p.wrappedFor || p.lines == nil {
		p.lines = Wrap(full, float64(area.Dx()), p.measure, p.lines)
		p.wrappedFor = full
	}

	revealed := p.interp.RevealedSpans()
	y := float64(area.Min.Y)
	for _, line := range p.lines {
		if y+lineHeight > float64(area.Max.Y)+lineHeight/2 {
			break
		}
		x := float64(area.Min.X)
		p.runs = LineSpans(revealed, line, line.End, p.runs)
		for _, run := range p.runs {
			op := &text.DrawOptions{}
			op.GeoM.Translate(x, y)
			op.ColorScale.ScaleWithColor(run.Color)
			text.Draw(screen, run.Text, p.face, op)
			x += p.measure(run.Text)
		}
		y += lineHeight
	}

	if p.interp.TextComplete() && p.interp.TransitionDone() {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(area.Max.X), float64(area.Max.Y))
		op.PrimaryAlign = text.AlignEnd
		op.SecondaryAlign = text.AlignEnd
		op.ColorScale.ScaleWithColor(colorHint)
		text.Draw(screen, ">>", p.face, op)
	}
}

func (p *Story) drawOverlay(screen *ebiten.Image, c color.RGBA) {
	if c.A == 0 {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(p.layout.ScreenW), float32(p.layout.ScreenH), c, false)
}

func (p *Story) drawCentered(screen *ebiten.Image, title, hint string) {
	cx, cy := float64(p.layout.ScreenW)/2, float64(p.layout.ScreenH)/2

	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy-p.face.Size)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, title, p.face, op)

	op = &text.DrawOptions{}
	op.GeoM.Translate(cx, cy+p.face.Size)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(colorHint)
	text.Draw(screen, hint, p.face, op)
}

// alpha converts an opacity in [0, 1] to a color channel. The overlay is
// black, so premultiplied color channels stay 0.
func alpha(v float64) uint8 {
	return uint8(max(0, min(1, v))*255 + 0.5)
}

func portraitColor(character string) color.RGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(character))
	return portraitPalette[h.Sum32()%uint32(len(portraitPalette))]
}

// State returns the player state
func (p *Story) State() state.GameState {
	return p.state
}

// Director returns the scene director
func (p *Story) Director() *system.Director {
	return p.director
}

// OnEnter is called when entering this scene
func (p *Story) OnEnter() {
	log.Printf("Scene %d: %s", p.director.SceneID(), p.interp.Scene().TitleText())
}

// OnExit is called when leaving this scene
func (p *Story) OnExit() {
	p.saveRecording()
	if p.recorder != nil {
		p.recorder.Stop()
	}
}

package system

import (
	"log"
	"strings"
	"unicode/utf8"

	"github.com/younwookim/protocolsmile/internal/domain/animation"
	"github.com/younwookim/protocolsmile/internal/domain/story"
	"github.com/younwookim/protocolsmile/internal/domain/variable"
)

// NoSelection means no fork option was activated this tick
const NoSelection = -1

// Portrait slots
const (
	SlotLeft = iota
	SlotCenter
	SlotRight
	SlotCount
)

// Status reports what a step did to the scene
type Status int

const (
	// Running means the scene has more content
	Running Status = iota
	// SceneComplete means the current node id names no node
	SceneComplete
	// SceneJump means a jump targets another scene; the caller loads it
	SceneJump
)

// String returns the name of the status
func (s Status) String() string {
	switch s {
	case Running:
		return "Running"
	case SceneComplete:
		return "SceneComplete"
	case SceneJump:
		return "SceneJump"
	default:
		return "Unknown"
	}
}

// TickInput is everything the interpreter needs from one display tick
type TickInput struct {
	DT      float64
	Advance bool // pointer press inside the text box, or the advance key
	Select  int  // activated fork option, NoSelection for none
}

// Idle returns a tick with no player input
func Idle(dt float64) TickInput {
	return TickInput{DT: dt, Select: NoSelection}
}

// StepResult is the outcome of one Step
type StepResult struct {
	Status Status
	Jump   story.Jump // target scene and node when Status is SceneJump
	Node   int        // current node id after the step
}

// InterpreterConfig holds timing for the interpreter
type InterpreterConfig struct {
	TransitionTime float64 // scene transition gating story advancement
	FadeTime       float64 // duration of fade nodes
	TextStepTime   float64 // seconds per revealed character
	Catalog        *animation.Catalog
}

// Portrait is one character slot on screen
type Portrait struct {
	Visible   bool
	Character string
	Timeline  *animation.Timeline
}

// Interpreter walks a scene graph one node step per tick
type Interpreter struct {
	store   *variable.Store
	config  InterpreterConfig
	catalog *animation.Catalog

	scene   *story.Scene
	current int
	entered int
	hasNode bool // entered holds a valid id

	transition *animation.Fade
	fade       *animation.Fade

	text       DisplayText
	fullText   string
	spans      []story.Span
	visibleLen int
	speaker    string
	options    []string
	portraits  [SlotCount]Portrait

	warned map[string]bool
}

// NewInterpreter creates an interpreter writing to store
func NewInterpreter(store *variable.Store, cfg InterpreterConfig) *Interpreter {
	if store == nil {
		store = variable.NewStore()
	}
	cat := cfg.Catalog
	if cat == nil {
		cat = animation.NewCatalog()
	}

	i := &Interpreter{
		store:      store,
		config:     cfg,
		catalog:    cat,
		current:    story.EndNode,
		transition: animation.NewFade(cfg.TransitionTime),
		fade:       animation.NewFade(cfg.FadeTime),
		warned:     make(map[string]bool),
	}
	for s := range i.portraits {
		i.portraits[s].Timeline = animation.NewTimeline(cat)
	}
	return i
}

// Load replaces the scene and starts at startNode.
// The scene transition restarts and all portraits are hidden.
func (i *Interpreter) Load(scene *story.Scene, startNode int) {
	i.scene = scene
	i.current = startNode
	if scene == nil {
		i.current = story.EndNode
	}
	i.hasNode = false

	i.transition.Start(false)
	i.fade = animation.NewFade(i.config.FadeTime)

	i.text.Reset()
	i.fullText = ""
	i.spans = nil
	i.visibleLen = 0
	i.speaker = ""
	i.options = nil
	for s := range i.portraits {
		i.portraits[s].Visible = false
		i.portraits[s].Character = ""
		i.portraits[s].Timeline.Set(animation.None, animation.Loop)
	}
	clear(i.warned)
}

// Step runs one tick. Node entry work happens on the first tick that sees
// a new id; the next id is committed at the end of the step.
func (i *Interpreter) Step(in TickInput) StepResult {
	i.transition.Update(in.DT)
	for s := range i.portraits {
		if i.portraits[s].Visible {
			i.portraits[s].Timeline.Update(in.DT)
		}
	}

	node := i.node()
	if node == nil {
		return StepResult{Status: SceneComplete, Node: i.current}
	}

	entering := !i.hasNode || i.entered != i.current
	if entering {
		i.enter(node)
		i.entered = i.current
		i.hasNode = true
	}

	next := i.current
	switch n := node.(type) {
	case *story.StoryNode:
		i.text.Update(in.DT, i.visibleLen, i.config.TextStepTime)
		if !i.transition.Done() {
			break
		}
		if i.fullText == "" {
			next = i.scene.Successor(n.ID)
		} else if in.Advance {
			if i.text.Complete(i.visibleLen) {
				next = i.scene.Successor(n.ID)
			} else {
				i.text.RevealAll(i.visibleLen)
			}
		}

	case *story.JumpNode:
		if n.Target.IsCrossScene(i.scene.ID) {
			return StepResult{Status: SceneJump, Jump: n.Target, Node: i.current}
		}
		next = n.Target.Node

	case *story.ConditionalNode:
		branch := n.IfFalse
		if i.store.Read(i.scene.Text(n.Key)) != 0 {
			branch = n.IfTrue
		}
		switch {
		case !branch.Set:
			next = i.scene.Successor(n.ID)
		case branch.Target.IsCrossScene(i.scene.ID):
			return StepResult{Status: SceneJump, Jump: branch.Target, Node: i.current}
		default:
			next = branch.Target.Node
		}

	case *story.WriteNode:
		i.store.Write(i.scene.Text(n.Key), n.Value)
		next = i.scene.Successor(n.ID)

	case *story.ForkNode:
		opts := i.scene.ForkOptions(n)
		if len(opts) == 0 {
			next = i.scene.Successor(n.ID)
			break
		}
		if in.Select < 0 || in.Select >= len(opts) {
			break
		}
		switch a := opts[in.Select].Action.(type) {
		case story.JumpAction:
			if a.Target.IsCrossScene(i.scene.ID) {
				return StepResult{Status: SceneJump, Jump: a.Target, Node: i.current}
			}
			next = a.Target.Node
		case story.WriteAction:
			i.store.Write(i.scene.Text(a.Key), a.Value)
			next = i.scene.Successor(n.ID)
		default:
			next = i.scene.Successor(n.ID)
		}

	case *story.FadeNode:
		i.fade.Update(in.DT)
		if i.fade.Done() {
			next = i.scene.Successor(n.ID)
		}
	}

	i.current = next
	if i.node() == nil {
		return StepResult{Status: SceneComplete, Node: i.current}
	}
	return StepResult{Status: Running, Node: i.current}
}

func (i *Interpreter) node() story.Node {
	if i.scene == nil {
		return nil
	}
	return i.scene.Node(i.current)
}

func (i *Interpreter) enter(node story.Node) {
	switch n := node.(type) {
	case *story.StoryNode:
		i.text.Reset()
		i.fullText = i.scene.Text(n.Text)
		i.spans = story.ParseMarkup(i.fullText)
		i.visibleLen = utf8.RuneCountInString(story.PlainText(i.spans))
		i.speaker = i.scene.Text(n.Character)
		i.direct(n.Animation)
		if n.Write != nil {
			i.store.Write(i.scene.Text(n.Write.Key), n.Write.Value)
		}

	case *story.ForkNode:
		opts := i.scene.ForkOptions(n)
		i.options = make([]string, len(opts))
		for k, o := range opts {
			i.options[k] = i.scene.Text(o.Text)
		}

	case *story.FadeNode:
		i.fade.Start(n.Reverse)
	}
}

// direct applies a character directive to the portrait slots
func (i *Interpreter) direct(d story.CharacterDirective) {
	if d.Clear {
		for s := range i.portraits {
			i.portraits[s].Visible = false
			i.portraits[s].Character = ""
		}
	}

	name := i.scene.Text(d.Name)
	if name == "" {
		return
	}
	id, ok := i.catalog.Lookup(name)
	if !ok {
		if !i.warned[name] {
			i.warned[name] = true
			log.Printf("Scene %d: unknown animation %q", i.scene.ID, name)
		}
		return
	}

	character, _, _ := strings.Cut(name, "_")
	slot := SlotCenter
	switch d.Side {
	case story.SideLeft:
		slot = SlotLeft
	case story.SideRight:
		slot = SlotRight
	case story.SideKeep:
		for s, p := range i.portraits {
			if p.Visible && p.Character == character {
				slot = s
				break
			}
		}
	}

	// A character occupies one slot at a time
	for s := range i.portraits {
		if s != slot && i.portraits[s].Character == character {
			i.portraits[s].Visible = false
			i.portraits[s].Character = ""
		}
	}

	p := &i.portraits[slot]
	p.Visible = true
	p.Character = character
	p.Timeline.SetOnce(id, animation.Loop)
	p.Timeline.Speed = d.Speed
}

// Scene returns the loaded scene
func (i *Interpreter) Scene() *story.Scene {
	return i.scene
}

// Store returns the key/value store
func (i *Interpreter) Store() *variable.Store {
	return i.store
}

// CurrentNode returns the current node id
func (i *Interpreter) CurrentNode() int {
	return i.current
}

// Kind returns the kind of the current node, KindNone at the end of a scene
func (i *Interpreter) Kind() story.NodeKind {
	n := i.node()
	if n == nil {
		return story.KindNone
	}
	return n.Kind()
}

// Speaker returns the name shown above the current line
func (i *Interpreter) Speaker() string {
	return i.speaker
}

// Text returns the current line without markup
func (i *Interpreter) Text() string {
	return story.PlainText(i.spans)
}

// RawText returns the current line as written, markup included
func (i *Interpreter) RawText() string {
	return i.fullText
}

// RevealedSpans returns the revealed part of the current line with colors
func (i *Interpreter) RevealedSpans() []story.Span {
	return story.Truncate(i.spans, i.text.Revealed)
}

// RevealedText returns the revealed part of the current line without markup
func (i *Interpreter) RevealedText() string {
	return story.PlainText(i.RevealedSpans())
}

// TextComplete reports whether the current line is fully revealed
func (i *Interpreter) TextComplete() bool {
	return i.text.Complete(i.visibleLen)
}

// Options returns the texts of the current fork, nil when not on a fork
// or before the fork was entered
func (i *Interpreter) Options() []string {
	if i.Kind() != story.KindFork || !i.hasNode || i.entered != i.current {
		return nil
	}
	return i.options
}

// Fading reports whether a fade node is running
func (i *Interpreter) Fading() bool {
	return i.Kind() == story.KindFade
}

// FadeFraction returns the fade timer over its duration, in [0, 1]
func (i *Interpreter) FadeFraction() float64 {
	return i.fade.Fraction()
}

// TransitionFraction returns the scene transition progress, in [0, 1]
func (i *Interpreter) TransitionFraction() float64 {
	return i.transition.Fraction()
}

// TransitionDone reports whether the scene transition finished
func (i *Interpreter) TransitionDone() bool {
	return i.transition.Done()
}

// Portraits returns the portrait slots, left to right
func (i *Interpreter) Portraits() [SlotCount]Portrait {
	return i.portraits
}

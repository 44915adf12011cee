package system

import (
	"errors"
	"fmt"
	"log"

	"github.com/younwookim/protocolsmile/internal/domain/story"
)

// SceneSource loads scene documents by id
type SceneSource interface {
	LoadSceneByID(id int) (*story.Scene, error)
	SceneIDs() []int
}

// DirectorStatus reports what a director step did
type DirectorStatus int

const (
	// DirectorRunning means the same scene keeps playing
	DirectorRunning DirectorStatus = iota
	// DirectorSceneChanged means another scene was loaded this step
	DirectorSceneChanged
	// DirectorFinished means the last scene completed
	DirectorFinished
)

// String returns the name of the status
func (s DirectorStatus) String() string {
	switch s {
	case DirectorRunning:
		return "Running"
	case DirectorSceneChanged:
		return "SceneChanged"
	case DirectorFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Director hands the interpreter from scene to scene. Cross-scene jumps
// load the target scene; a completed scene moves on to the next scene id.
type Director struct {
	source   SceneSource
	interp   *Interpreter
	sceneID  int
	finished bool
}

// NewDirector creates a director over source driving interp
func NewDirector(source SceneSource, interp *Interpreter) *Director {
	return &Director{source: source, interp: interp, sceneID: -1}
}

// Start loads sceneID and enters it at node
func (d *Director) Start(sceneID, node int) error {
	sc, err := d.source.LoadSceneByID(sceneID)
	if err != nil {
		return fmt.Errorf("failed to start scene %d: %w", sceneID, err)
	}
	d.interp.Load(sc, node)
	d.sceneID = sceneID
	d.finished = false
	return nil
}

// Step runs one interpreter tick and performs any scene hand-off it asks for.
// The returned error is a scene load failure and is not recoverable.
func (d *Director) Step(in TickInput) (DirectorStatus, error) {
	if d.finished {
		return DirectorFinished, nil
	}

	res := d.interp.Step(in)
	switch res.Status {
	case SceneJump:
		sc, err := d.source.LoadSceneByID(res.Jump.Scene)
		if errors.Is(err, story.ErrUnknownScene) {
			log.Printf("Scene %d node %d: jump to unknown scene %d, ending scene", d.sceneID, res.Node, res.Jump.Scene)
			return d.nextScene()
		}
		if err != nil {
			return DirectorRunning, fmt.Errorf("failed to load scene %d: %w", res.Jump.Scene, err)
		}
		d.interp.Load(sc, res.Jump.Node)
		d.sceneID = res.Jump.Scene
		return DirectorSceneChanged, nil

	case SceneComplete:
		return d.nextScene()
	}
	return DirectorRunning, nil
}

// nextScene loads the scene after the current one in id order
func (d *Director) nextScene() (DirectorStatus, error) {
	next, ok := d.following()
	if !ok {
		d.finished = true
		return DirectorFinished, nil
	}

	sc, err := d.source.LoadSceneByID(next)
	if err != nil {
		return DirectorRunning, fmt.Errorf("failed to load scene %d: %w", next, err)
	}
	d.interp.Load(sc, sc.First())
	d.sceneID = next
	return DirectorSceneChanged, nil
}

func (d *Director) following() (int, bool) {
	next, found := 0, false
	for _, id := range d.source.SceneIDs() {
		if id > d.sceneID && (!found || id < next) {
			next, found = id, true
		}
	}
	return next, found
}

// SceneID returns the id of the scene being played
func (d *Director) SceneID() int {
	return d.sceneID
}

// Finished reports whether the story ran out of scenes
func (d *Director) Finished() bool {
	return d.finished
}

// Interpreter returns the driven interpreter
func (d *Director) Interpreter() *Interpreter {
	return d.interp
}

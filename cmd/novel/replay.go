package main

import (
	"fmt"
	"io"

	"github.com/younwookim/protocolsmile/internal/application/replay"
	"github.com/younwookim/protocolsmile/internal/application/system"
	"github.com/younwookim/protocolsmile/internal/domain/animation"
	"github.com/younwookim/protocolsmile/internal/domain/variable"
	"github.com/younwookim/protocolsmile/internal/infrastructure/config"
)

// replayResult is the interpreter state after a replay
type replayResult struct {
	Scene    int
	Node     int
	Finished bool
	Frames   int
	Store    []variable.Pair
}

// runReplay feeds recorded input to a director without opening a window
// and writes a report to w
func runReplay(w io.Writer, source system.SceneSource, settings *config.Settings, cat *animation.Catalog, data *replay.ReplayData) (*replayResult, error) {
	store := variable.NewStore()
	interp := system.NewInterpreter(store, system.InterpreterConfig{
		TransitionTime: settings.Timing.SceneTransition,
		FadeTime:       settings.Timing.FadeDuration,
		TextStepTime:   settings.Text.StepTime(),
		Catalog:        cat,
	})
	director := system.NewDirector(source, interp)
	if err := director.Start(data.Scene, data.StartNode); err != nil {
		return nil, err
	}
	fmt.Fprint(w, interp.Scene().Describe())

	replayer := replay.NewReplayer(*data)
	for {
		in, ok := replayer.Next()
		if !ok {
			break
		}
		status, err := director.Step(in)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", replayer.CurrentFrame()-1, err)
		}
		if status == system.DirectorSceneChanged {
			fmt.Fprintf(w, "frame %d: scene %d\n", replayer.CurrentFrame()-1, director.SceneID())
		}
	}

	res := &replayResult{
		Scene:    director.SceneID(),
		Node:     interp.CurrentNode(),
		Finished: director.Finished(),
		Frames:   replayer.TotalFrames(),
		Store:    store.Snapshot(),
	}
	fmt.Fprintf(w, "frames: %d\nscene: %d\nnode: %d\nfinished: %t\n", res.Frames, res.Scene, res.Node, res.Finished)
	for _, p := range res.Store {
		fmt.Fprintf(w, "  %s = %d\n", p.Key, p.Value)
	}
	return res, nil
}

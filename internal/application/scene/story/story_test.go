package story

import (
	"image"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/protocolsmile/internal/application/replay"
	"github.com/younwookim/protocolsmile/internal/application/scene"
	"github.com/younwookim/protocolsmile/internal/application/state"
	"github.com/younwookim/protocolsmile/internal/application/system"
	"github.com/younwookim/protocolsmile/internal/domain/story"
	"github.com/younwookim/protocolsmile/internal/domain/variable"
	"github.com/younwookim/protocolsmile/internal/infrastructure/config"
)

const testSceneDoc = `{"id": 1, "title": "Test", "tree": [
	{"type": "story", "id": 0, "story": {"text": "hi", "character": "Aya"}},
	{"type": "fork", "id": 1, "fork": {"options": [
		{"text": "A", "action": "write", "write": {"key": "pick", "value": 1}},
		{"text": "B"}
	]}},
	{"type": "story", "id": 2, "story": {"text": "end"}}
]}`

// menuStub stands in for the menu scene
type menuStub struct{}

func (menuStub) Update(float64) (scene.Scene, error) { return nil, nil }
func (menuStub) Draw(*ebiten.Image)                  {}
func (menuStub) OnEnter()                            {}
func (menuStub) OnExit()                             {}

func createTestStory(t *testing.T, recordPath string) (*Story, *variable.Store) {
	t.Helper()
	fsys := fstest.MapFS{
		"scenes/01_test.json": {Data: []byte(testSceneDoc)},
	}
	settings := config.DefaultSettings()
	settings.Timing.SceneTransition = 0
	settings.Timing.FadeDuration = 0

	store := variable.NewStore()
	p, err := New(Options{
		Settings:   &settings,
		Source:     config.NewFSLoader(fsys, "."),
		Store:      store,
		StartScene: 1,
		RecordPath: recordPath,
		Back:       func() scene.Scene { return menuStub{} },
	})
	require.NoError(t, err)
	return p, store
}

func idle() system.InputState {
	return system.InputState{Number: system.NoNumber}
}

func advance() system.InputState {
	return system.InputState{AdvanceKey: true, Number: system.NoNumber}
}

func clickAt(r image.Rectangle) system.InputState {
	c := r.Min.Add(r.Size().Div(2))
	return system.InputState{MouseX: c.X, MouseY: c.Y, Click: true, Number: system.NoNumber}
}

func mustHandle(t *testing.T, p *Story, in system.InputState) scene.Scene {
	t.Helper()
	next, err := p.handle(in, 0.016)
	require.NoError(t, err)
	return next
}

func TestStory_PlayThrough(t *testing.T) {
	p, store := createTestStory(t, "")
	assert.Equal(t, state.StatePlaying, p.State())

	assert.Nil(t, mustHandle(t, p, idle()))
	assert.Equal(t, "Aya", p.interp.Speaker())
	assert.Equal(t, "", p.interp.RevealedText())

	// First advance reveals the line, the second moves on
	mustHandle(t, p, advance())
	assert.Equal(t, "hi", p.interp.RevealedText())
	mustHandle(t, p, advance())
	assert.Equal(t, 1, p.interp.CurrentNode())

	mustHandle(t, p, idle())
	require.Len(t, p.buttons, 2)
	assert.Equal(t, "A", p.buttons[0].Label)
	assert.Equal(t, "B", p.buttons[1].Label)
	assert.Equal(t, p.optionRects[1], p.buttons[1].Rect)

	mustHandle(t, p, clickAt(p.optionRects[0]))
	assert.Equal(t, 1, store.Read("pick"))
	assert.Equal(t, 2, p.interp.CurrentNode())
	assert.Empty(t, p.buttons)
	assert.Empty(t, p.optionRects)

	mustHandle(t, p, advance())
	mustHandle(t, p, advance())
	assert.Equal(t, state.StateStoryComplete, p.State())
	assert.True(t, p.Director().Finished())

	assert.Nil(t, mustHandle(t, p, idle()))
	assert.Equal(t, menuStub{}, mustHandle(t, p, system.InputState{Click: true, Number: system.NoNumber}))
}

func TestStory_NumberKeySelects(t *testing.T) {
	p, store := createTestStory(t, "")
	mustHandle(t, p, advance())
	mustHandle(t, p, advance())
	mustHandle(t, p, idle())
	require.Len(t, p.buttons, 2)

	mustHandle(t, p, system.InputState{Number: 1})
	assert.Equal(t, 0, store.Read("pick"))
	assert.Equal(t, story.KindStory, p.interp.Kind())
}

func TestStory_HoverHighlightsOption(t *testing.T) {
	p, _ := createTestStory(t, "")
	mustHandle(t, p, advance())
	mustHandle(t, p, advance())
	mustHandle(t, p, idle())
	require.Len(t, p.buttons, 2)

	hover := clickAt(p.optionRects[1])
	hover.Click = false
	mustHandle(t, p, hover)
	assert.False(t, p.buttons[0].Hovered())
	assert.True(t, p.buttons[1].Hovered())
	assert.Equal(t, 1, p.interp.CurrentNode(), "hovering does not select")
}

func TestStory_Pause(t *testing.T) {
	p, _ := createTestStory(t, "")
	pause := system.InputState{Pause: true, Number: system.NoNumber}

	mustHandle(t, p, pause)
	assert.Equal(t, state.StatePaused, p.State())

	// Input is ignored while paused
	mustHandle(t, p, advance())
	mustHandle(t, p, advance())
	assert.Equal(t, 0, p.interp.CurrentNode())

	mustHandle(t, p, pause)
	assert.Equal(t, state.StatePlaying, p.State())
}

func TestStory_Recording(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rec.json")
	p, _ := createTestStory(t, path)

	mustHandle(t, p, advance())
	mustHandle(t, p, advance())
	mustHandle(t, p, idle())
	mustHandle(t, p, system.InputState{Number: 0})
	mustHandle(t, p, advance())
	mustHandle(t, p, advance())
	require.Equal(t, state.StateStoryComplete, p.State())

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, 1, data.Scene)
	require.Len(t, data.Frames, 6)
	assert.Equal(t, 0, data.Frames[3].S)
	assert.True(t, data.Frames[4].A)

	p.OnExit()
	assert.False(t, p.recorder.IsRecording())
}

func TestNew_UnknownScene(t *testing.T) {
	_, err := New(Options{
		Source:     config.NewFSLoader(fstest.MapFS{"scenes/a.json": {Data: []byte(`{"id": 1, "tree": []}`)}}, "."),
		StartScene: 5,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, story.ErrUnknownScene)
}

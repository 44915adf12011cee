package menu

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/protocolsmile/internal/application/scene"
	"github.com/younwookim/protocolsmile/internal/application/system"
	"github.com/younwookim/protocolsmile/internal/infrastructure/config"
)

type stubScene struct{ name string }

func (s *stubScene) Update(float64) (scene.Scene, error) { return nil, nil }
func (s *stubScene) Draw(*ebiten.Image)                  {}
func (s *stubScene) OnEnter()                            {}
func (s *stubScene) OnExit()                             {}

func createTestMenu(t *testing.T) (*Menu, *stubScene, *int) {
	t.Helper()
	settings := config.DefaultSettings()
	story := &stubScene{name: "story"}
	quits := 0

	m, err := New(&settings, nil,
		func() (scene.Scene, error) { return story, nil },
		func() { quits++ })
	require.NoError(t, err)
	return m, story, &quits
}

func pointAt(r image.Rectangle, click bool) system.InputState {
	c := r.Min.Add(r.Size().Div(2))
	return system.InputState{MouseX: c.X, MouseY: c.Y, Click: click, Number: system.NoNumber}
}

func TestMenu_Layout(t *testing.T) {
	m, _, _ := createTestMenu(t)
	assert.Equal(t, image.Rect(230, 180, 410, 203), m.play.Rect)
	assert.Equal(t, image.Rect(230, 215, 410, 238), m.quit.Rect)
	assert.Equal(t, "Protocol Smile", m.title)
}

func TestMenu_Hover(t *testing.T) {
	m, _, _ := createTestMenu(t)

	next, err := m.handle(pointAt(m.play.Rect, false), 0.1)
	require.NoError(t, err)
	assert.Nil(t, next)
	assert.True(t, m.play.Hovered())
	assert.False(t, m.quit.Hovered())
	assert.Greater(t, m.play.Highlight(), 0.0)

	_, err = m.handle(pointAt(m.quit.Rect, false), 0.1)
	require.NoError(t, err)
	assert.False(t, m.play.Hovered())
	assert.True(t, m.quit.Hovered())

	m.OnEnter()
	assert.False(t, m.quit.Hovered())
}

func TestMenu_PlayAndQuit(t *testing.T) {
	tests := []struct {
		name      string
		input     func(m *Menu) system.InputState
		wantStory bool
		wantQuits int
	}{
		{"click play", func(m *Menu) system.InputState { return pointAt(m.play.Rect, true) }, true, 0},
		{"advance key plays", func(*Menu) system.InputState {
			return system.InputState{AdvanceKey: true, Number: system.NoNumber}
		}, true, 0},
		{"click quit", func(m *Menu) system.InputState { return pointAt(m.quit.Rect, true) }, false, 1},
		{"escape quits", func(*Menu) system.InputState {
			return system.InputState{Pause: true, Number: system.NoNumber}
		}, false, 1},
		{"click elsewhere", func(*Menu) system.InputState {
			return system.InputState{MouseX: 1, MouseY: 1, Click: true, Number: system.NoNumber}
		}, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, story, quits := createTestMenu(t)
			next, err := m.handle(tt.input(m), 0.016)
			require.NoError(t, err)
			if tt.wantStory {
				assert.Same(t, story, next)
			} else {
				assert.Nil(t, next)
			}
			assert.Equal(t, tt.wantQuits, *quits)
		})
	}
}

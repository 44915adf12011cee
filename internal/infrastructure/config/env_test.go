package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		check func(t *testing.T, s Settings)
	}{
		{
			name: "overrides",
			env: map[string]string{
				EnvStartScene:     "3",
				EnvStartNode:      "7",
				EnvTextSpeed:      "2.5",
				EnvTransitionTime: "0",
				EnvFadeTime:       "0.5",
			},
			check: func(t *testing.T, s Settings) {
				assert.Equal(t, 3, s.Story.StartScene)
				assert.Equal(t, 7, s.Story.StartNode)
				assert.Equal(t, 2.5, s.Text.DisplaySpeed)
				assert.Equal(t, 0.0, s.Timing.SceneTransition)
				assert.Equal(t, 0.5, s.Timing.FadeDuration)
			},
		},
		{
			name: "invalid values ignored",
			env: map[string]string{
				EnvStartScene:     "three",
				EnvTextSpeed:      "-1",
				EnvTransitionTime: "soon",
			},
			check: func(t *testing.T, s Settings) {
				d := DefaultSettings()
				assert.Equal(t, d.Story.StartScene, s.Story.StartScene)
				assert.Equal(t, d.Text.DisplaySpeed, s.Text.DisplaySpeed)
				assert.Equal(t, d.Timing.SceneTransition, s.Timing.SceneTransition)
			},
		},
		{
			name:  "empty environment",
			env:   map[string]string{},
			check: func(t *testing.T, s Settings) { assert.Equal(t, DefaultSettings(), s) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			applyEnv(&s, lookupFrom(tt.env))
			tt.check(t, s)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(EnvStartScene+"=5\n"), 0o644))

	t.Setenv(EnvStartScene, "")
	require.NoError(t, os.Unsetenv(EnvStartScene))

	require.NoError(t, LoadDotEnv(envFile, filepath.Join(dir, "missing.env")))

	s := DefaultSettings()
	ApplyEnv(&s)
	assert.Equal(t, 5, s.Story.StartScene)
}

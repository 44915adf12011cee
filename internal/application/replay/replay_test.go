package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/protocolsmile/internal/application/system"
)

func TestFrameInput_JSONOmitsIdleAdvance(t *testing.T) {
	data, err := json.Marshal(FrameInput{F: 3, DT: 0.5, S: -1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"f":3,"dt":0.5,"s":-1}`, string(data))
}

func TestReplayer_Next(t *testing.T) {
	data := ReplayData{
		Version: Version,
		Scene:   2,
		Frames: []FrameInput{
			{F: 0, DT: 0.016, S: -1},
			{F: 1, DT: 0.016, A: true, S: -1},
			{F: 2, DT: 0.02, S: 1},
		},
	}

	replayer := NewReplayer(data)
	assert.Equal(t, 2, replayer.Scene())

	in, ok := replayer.Next()
	require.True(t, ok)
	assert.Equal(t, system.TickInput{DT: 0.016, Select: system.NoSelection}, in)

	in, ok = replayer.Next()
	require.True(t, ok)
	assert.True(t, in.Advance)

	in, ok = replayer.Next()
	require.True(t, ok)
	assert.False(t, in.Advance)
	assert.Equal(t, 1, in.Select)
	assert.Equal(t, 0.02, in.DT)

	in, ok = replayer.Next()
	assert.False(t, ok)
	assert.Equal(t, system.NoSelection, in.Select)
}

func TestReplayer_CurrentFrame(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(5, 1, 0.1))

	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.Next()
	assert.Equal(t, 1, replayer.CurrentFrame())

	replayer.Next()
	replayer.Next()
	assert.Equal(t, 3, replayer.CurrentFrame())
	assert.Equal(t, 5, replayer.TotalFrames())
}

func TestReplayer_Reset(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(3, 1, 0.1))

	for i := 0; i < 3; i++ {
		_, ok := replayer.Next()
		require.True(t, ok)
	}
	_, ok := replayer.Next()
	assert.False(t, ok)

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())

	in, ok := replayer.Next()
	assert.True(t, ok)
	assert.True(t, in.Advance)
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData(60, 3, 1.0/60)

	assert.Equal(t, Version, data.Version)
	assert.Equal(t, 3, data.Scene)
	assert.Len(t, data.Frames, 60)

	for i, frame := range data.Frames {
		assert.Equal(t, i, frame.F, "Frame number mismatch at index %d", i)
		assert.True(t, frame.A)
		assert.Equal(t, system.NoSelection, frame.S)
	}
}

func TestLoadReplay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "r.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"1.0","scene":1,"startNode":4,"frames":[{"f":0,"dt":0.5,"a":true,"s":-1}]}`), 0o644))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, 4, data.StartNode)
	require.Len(t, data.Frames, 1)
	assert.True(t, data.Frames[0].A)

	_, err = LoadReplay(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{`), 0o644))
	_, err = LoadReplay(path)
	assert.Error(t, err)
}

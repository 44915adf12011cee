package story

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/protocolsmile/internal/application/replay"
	"github.com/younwookim/protocolsmile/internal/application/system"
)

func TestRecorder_RecordFrame(t *testing.T) {
	r := NewRecorder(2, 3)
	assert.True(t, r.IsRecording())

	r.RecordFrame(system.Idle(0.016))
	r.RecordFrame(system.TickInput{DT: 0.016, Advance: true, Select: system.NoSelection})
	r.RecordFrame(system.TickInput{DT: 0.02, Select: 1})

	data := r.Data()
	assert.Equal(t, 2, data.Scene)
	assert.Equal(t, 3, data.StartNode)
	require.Len(t, data.Frames, 3)
	assert.Equal(t, replay.FrameInput{F: 1, DT: 0.016, A: true, S: -1}, data.Frames[1])
	assert.Equal(t, replay.FrameInput{F: 2, DT: 0.02, S: 1}, data.Frames[2])

	r.Stop()
	r.RecordFrame(system.Idle(0.016))
	assert.Equal(t, 3, r.FrameCount())
	assert.False(t, r.IsRecording())
}

func TestRecorder_SaveAndReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rec.json")

	r := NewRecorder(1, 0)
	assert.Error(t, r.Save(path), "nothing recorded")

	r.RecordFrame(system.TickInput{DT: 0.5, Advance: true, Select: system.NoSelection})
	r.RecordFrame(system.TickInput{DT: 0.5, Select: 2})
	require.NoError(t, r.Save(path))

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)

	replayer := replay.NewReplayer(*data)
	in, ok := replayer.Next()
	require.True(t, ok)
	assert.Equal(t, system.TickInput{DT: 0.5, Advance: true, Select: system.NoSelection}, in)
	in, ok = replayer.Next()
	require.True(t, ok)
	assert.Equal(t, 2, in.Select)
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename()
	assert.Regexp(t, `^replay_\d{8}_\d{6}\.json$`, name)
}

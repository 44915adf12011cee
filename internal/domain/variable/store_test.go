package variable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_ReadAutoInserts(t *testing.T) {
	s := NewStore()

	assert.Equal(t, 0, s.Read("missing"))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []string{"missing"}, s.Keys())

	// A second read finds the inserted key instead of adding another
	assert.Equal(t, 0, s.Read("missing"))
	assert.Equal(t, 1, s.Len())
}

func TestStore_WriteThenRead(t *testing.T) {
	tests := []struct {
		name  string
		value int
	}{
		{"positive", 7},
		{"zero", 0},
		{"negative", -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			assert.Equal(t, tt.value, s.Write("k", tt.value))
			assert.Equal(t, tt.value, s.Read("k"))
		})
	}
}

func TestStore_WriteUpserts(t *testing.T) {
	s := NewStore()
	s.Write("a", 1)
	s.Write("b", 2)
	s.Write("a", 5)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 5, s.Read("a"))
	assert.Equal(t, []Pair{{"a", 5}, {"b", 2}}, s.Snapshot())
}

func TestStore_InsertionOrder(t *testing.T) {
	s := NewStore()
	s.Read("z")
	s.Write("a", 1)
	s.Read("m")

	assert.Equal(t, []string{"z", "a", "m"}, s.Keys())
}

func TestStore_ZeroValueUsable(t *testing.T) {
	var s Store
	assert.Equal(t, 0, s.Read("x"))
	assert.Equal(t, 3, s.Write("y", 3))
	assert.Equal(t, 3, s.Read("y"))
}

func TestStore_Reset(t *testing.T) {
	s := NewStore()
	s.Write("a", 1)
	s.Reset()

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.Read("a"))
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	s := NewStore()
	s.Write("a", 1)
	snap := s.Snapshot()
	snap[0].Value = 9

	assert.Equal(t, 1, s.Read("a"))
}

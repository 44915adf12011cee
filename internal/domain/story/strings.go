package story

// StringOffset references a run of bytes inside a scene's StringTable.
// It does not own the bytes and is only meaningful for the table that produced it.
type StringOffset struct {
	Offset int
	Length int
}

// IsEmpty reports whether the reference points at no bytes
func (o StringOffset) IsEmpty() bool {
	return o.Length == 0
}

// StringTable is an append-only arena shared by every node of a scene.
// Pushed strings are never deduplicated or mutated in place.
type StringTable struct {
	buf []byte
}

// Push appends s and returns its reference
func (t *StringTable) Push(s string) StringOffset {
	off := StringOffset{Offset: len(t.buf), Length: len(s)}
	t.buf = append(t.buf, s...)
	return off
}

// Resolve returns the string referenced by off.
// References outside the table resolve to the empty string.
func (t *StringTable) Resolve(off StringOffset) string {
	if off.Length <= 0 || off.Offset < 0 || off.Offset+off.Length > len(t.buf) {
		return ""
	}
	return string(t.buf[off.Offset : off.Offset+off.Length])
}

// Len returns the number of bytes held by the table
func (t *StringTable) Len() int {
	return len(t.buf)
}

// Reset empties the table, keeping its capacity
func (t *StringTable) Reset() {
	t.buf = t.buf[:0]
}

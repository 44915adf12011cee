package replay

// Version is written into new recordings
const Version = "1.0"

// FrameInput records the interpreter input for a single frame
type FrameInput struct {
	F  int     `json:"f"`           // Frame number
	DT float64 `json:"dt"`          // Delta time in seconds
	A  bool    `json:"a,omitempty"` // Advance
	S  int     `json:"s"`           // Selected fork option, -1 for none
}

// ReplayData contains all data needed to replay a reading session
type ReplayData struct {
	Version   string       `json:"version"`
	Scene     int          `json:"scene"`
	StartNode int          `json:"startNode"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

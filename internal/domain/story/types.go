package story

// NodeKind identifies the behavior of a node
type NodeKind int

const (
	KindNone NodeKind = iota
	KindStory
	KindControl
	KindFork
	KindWrite
	KindFade
)

// String returns the document name of the kind
func (k NodeKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindStory:
		return "story"
	case KindControl:
		return "control"
	case KindFork:
		return "fork"
	case KindWrite:
		return "write"
	case KindFade:
		return "fade"
	default:
		return ""
	}
}

// ParseNodeKind maps a document "type" value to a kind.
// "none" is not a valid document type.
func ParseNodeKind(s string) (NodeKind, bool) {
	for k := KindStory; k <= KindFade; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return KindNone, false
}

// ControlType selects between the two control node variants
type ControlType int

const (
	ControlJump ControlType = iota
	ControlConditional
)

// String returns the document name of the control type
func (c ControlType) String() string {
	switch c {
	case ControlJump:
		return "jump"
	case ControlConditional:
		return "conditional"
	default:
		return ""
	}
}

// ParseControlType maps a document "control.type" value
func ParseControlType(s string) (ControlType, bool) {
	for c := ControlJump; c <= ControlConditional; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return ControlJump, false
}

// ForkActionType is the action attached to a fork option
type ForkActionType int

const (
	ActionNone ForkActionType = iota
	ActionJump
	ActionWrite
)

// String returns the document name of the action
func (a ForkActionType) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionJump:
		return "jump"
	case ActionWrite:
		return "write"
	default:
		return ""
	}
}

// ParseForkActionType maps a document "action" value
func ParseForkActionType(s string) (ForkActionType, bool) {
	for a := ActionNone; a <= ActionWrite; a++ {
		if a.String() == s {
			return a, true
		}
	}
	return ActionNone, false
}

// Side is where a character portrait is placed
type Side int

const (
	SideKeep Side = iota
	SideLeft
	SideCenter
	SideRight
)

// String returns the document name of the side
func (s Side) String() string {
	switch s {
	case SideKeep:
		return "keep"
	case SideLeft:
		return "left"
	case SideCenter:
		return "center"
	case SideRight:
		return "right"
	default:
		return ""
	}
}

// ParseSide maps a document "side" value
func ParseSide(s string) (Side, bool) {
	for side := SideKeep; side <= SideRight; side++ {
		if side.String() == s {
			return side, true
		}
	}
	return SideKeep, false
}

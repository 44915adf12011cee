package story

// EndNode is the node id that signals the scene has no more content.
const EndNode = -1

// SameScene marks a jump target inside the scene that owns the jump.
const SameScene = -1

// Jump is a (scene, node) target. Scene is SameScene for local jumps.
type Jump struct {
	Scene int
	Node  int
}

// IsCrossScene reports whether the jump leaves the scene with the given id
func (j Jump) IsCrossScene(current int) bool {
	return j.Scene != SameScene && j.Scene != current
}

// Branch is one arm of a conditional. An unset branch does nothing and
// the interpreter falls through to the next node in document order.
type Branch struct {
	Set    bool
	Target Jump
}

// Assignment writes Value to the store under Key
type Assignment struct {
	Key   StringOffset
	Value int
}

// CharacterDirective asks the presentation layer to show a character animation
type CharacterDirective struct {
	Name  StringOffset
	Speed float64
	Side  Side
	Clear bool
}

// Node is one step of a scene graph.
// The set of implementations is closed: StoryNode, JumpNode, ConditionalNode,
// ForkNode, WriteNode and FadeNode.
type Node interface {
	NodeID() int
	Kind() NodeKind
	isNode()
}

// StoryNode shows a line of dialogue
type StoryNode struct {
	ID        int
	Text      StringOffset
	Character StringOffset
	Animation CharacterDirective
	Write     *Assignment
}

// JumpNode unconditionally moves to Target
type JumpNode struct {
	ID     int
	Target Jump
}

// ConditionalNode branches on a store value
type ConditionalNode struct {
	ID      int
	Key     StringOffset
	IfFalse Branch
	IfTrue  Branch
}

// ForkNode offers the player a choice. Offset and Len select a run of
// the owning scene's option storage.
type ForkNode struct {
	ID     int
	Offset int
	Len    int
}

// WriteNode stores a value and falls through
type WriteNode struct {
	ID int
	Assignment
}

// FadeNode runs a full-screen fade, forward or in reverse
type FadeNode struct {
	ID      int
	Reverse bool
}

func (n *StoryNode) NodeID() int       { return n.ID }
func (n *JumpNode) NodeID() int        { return n.ID }
func (n *ConditionalNode) NodeID() int { return n.ID }
func (n *ForkNode) NodeID() int        { return n.ID }
func (n *WriteNode) NodeID() int       { return n.ID }
func (n *FadeNode) NodeID() int        { return n.ID }

func (*StoryNode) Kind() NodeKind       { return KindStory }
func (*JumpNode) Kind() NodeKind        { return KindControl }
func (*ConditionalNode) Kind() NodeKind { return KindControl }
func (*ForkNode) Kind() NodeKind        { return KindFork }
func (*WriteNode) Kind() NodeKind       { return KindWrite }
func (*FadeNode) Kind() NodeKind        { return KindFade }

// ControlType reports the control variant
func (*JumpNode) ControlType() ControlType { return ControlJump }

// ControlType reports the control variant
func (*ConditionalNode) ControlType() ControlType { return ControlConditional }

func (*StoryNode) isNode()       {}
func (*JumpNode) isNode()        {}
func (*ConditionalNode) isNode() {}
func (*ForkNode) isNode()        {}
func (*WriteNode) isNode()       {}
func (*FadeNode) isNode()        {}

// ForkAction is what happens when a fork option is picked.
// A nil ForkAction does nothing.
type ForkAction interface {
	Type() ForkActionType
	isForkAction()
}

// JumpAction moves to Target without falling through
type JumpAction struct {
	Target Jump
}

// WriteAction stores a value, then falls through
type WriteAction struct {
	Assignment
}

func (JumpAction) Type() ForkActionType  { return ActionJump }
func (WriteAction) Type() ForkActionType { return ActionWrite }

func (JumpAction) isForkAction()  {}
func (WriteAction) isForkAction() {}

// ForkOption is one selectable entry of a fork
type ForkOption struct {
	Text   StringOffset
	Action ForkAction
}

// ActionType returns the option's action type, ActionNone when unset
func (o ForkOption) ActionType() ForkActionType {
	if o.Action == nil {
		return ActionNone
	}
	return o.Action.Type()
}

// Package story holds the in-memory form of a story document: a graph of
// nodes sharing one string table and one fork option storage.
//
// A Scene is built once per activation by the document loader and is
// replaced, never patched, when the story moves to another scene.
package story

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownScene is returned when a scene id names no document
var ErrUnknownScene = errors.New("unknown scene")

// SkippedEntry records a tree entry the loader dropped
type SkippedEntry struct {
	Index  int
	Reason string
}

// Scene is one loaded story document
type Scene struct {
	ID    int
	Title StringOffset

	// Nodes are kept in document order, which is not an execution order.
	Nodes   []Node
	Strings StringTable
	Options []ForkOption

	Skipped []SkippedEntry
}

// Reset clears the scene so it can be reparsed
func (s *Scene) Reset() {
	s.ID = -1
	s.Title = StringOffset{}
	s.Nodes = s.Nodes[:0]
	s.Strings.Reset()
	s.Options = s.Options[:0]
	s.Skipped = s.Skipped[:0]
}

// Text resolves a reference against the scene's string table
func (s *Scene) Text(off StringOffset) string {
	return s.Strings.Resolve(off)
}

// TitleText returns the scene title, empty when the document had none
func (s *Scene) TitleText() string {
	return s.Strings.Resolve(s.Title)
}

func (s *Scene) index(id int) int {
	if id < 0 {
		return -1
	}
	for i, n := range s.Nodes {
		if n.NodeID() == id {
			return i
		}
	}
	return -1
}

// Node returns the node with the given id, or nil if none matches
func (s *Scene) Node(id int) Node {
	i := s.index(id)
	if i < 0 {
		return nil
	}
	return s.Nodes[i]
}

// Successor returns the id of the node after id in document order,
// or EndNode when id is the last node or does not exist.
func (s *Scene) Successor(id int) int {
	i := s.index(id)
	if i < 0 || i+1 >= len(s.Nodes) {
		return EndNode
	}
	return s.Nodes[i+1].NodeID()
}

// First returns the id of the first node in document order
func (s *Scene) First() int {
	if len(s.Nodes) == 0 {
		return EndNode
	}
	return s.Nodes[0].NodeID()
}

// PushOptions appends a contiguous run of options to the scene storage and
// returns the fork node that references it.
func (s *Scene) PushOptions(id int, options []ForkOption) *ForkNode {
	n := &ForkNode{ID: id, Offset: len(s.Options), Len: len(options)}
	s.Options = append(s.Options, options...)
	return n
}

// ForkOptions returns the options referenced by a fork node.
// The slice aliases scene storage and must not be modified.
func (s *Scene) ForkOptions(n *ForkNode) []ForkOption {
	if n == nil || n.Len <= 0 || n.Offset < 0 || n.Offset+n.Len > len(s.Options) {
		return nil
	}
	return s.Options[n.Offset : n.Offset+n.Len : n.Offset+n.Len]
}

// Diagnostics lists local jump targets that name no node of the scene.
// Such jumps end the scene at runtime; the loader reports them as warnings.
func (s *Scene) Diagnostics() []string {
	var out []string
	check := func(from int, j Jump, what string) {
		if j.Scene != SameScene && j.Scene != s.ID {
			return
		}
		if j.Node == EndNode {
			return
		}
		if s.index(j.Node) < 0 {
			out = append(out, fmt.Sprintf("node %d: %s targets missing node %d", from, what, j.Node))
		}
	}

	for _, n := range s.Nodes {
		switch n := n.(type) {
		case *JumpNode:
			check(n.ID, n.Target, "jump")
		case *ConditionalNode:
			if n.IfFalse.Set {
				check(n.ID, n.IfFalse.Target, "false branch")
			}
			if n.IfTrue.Set {
				check(n.ID, n.IfTrue.Target, "true branch")
			}
		case *ForkNode:
			for i, opt := range s.ForkOptions(n) {
				if a, ok := opt.Action.(JumpAction); ok {
					check(n.ID, a.Target, fmt.Sprintf("option %d", i))
				}
			}
		}
	}
	return out
}

// Describe renders a readable dump of the scene for logs and tools
func (s *Scene) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "scene %d %q (%d nodes)\n", s.ID, s.TitleText(), len(s.Nodes))
	for _, n := range s.Nodes {
		fmt.Fprintf(&b, "  [%d] %s", n.NodeID(), n.Kind())
		switch n := n.(type) {
		case *StoryNode:
			if !n.Character.IsEmpty() {
				fmt.Fprintf(&b, " %s:", s.Text(n.Character))
			}
			fmt.Fprintf(&b, " %q", s.Text(n.Text))
			if n.Write != nil {
				fmt.Fprintf(&b, " write %s=%d", s.Text(n.Write.Key), n.Write.Value)
			}
		case *JumpNode:
			fmt.Fprintf(&b, " jump -> %s", describeJump(n.Target))
		case *ConditionalNode:
			fmt.Fprintf(&b, " if %s false:%s true:%s", s.Text(n.Key), describeBranch(n.IfFalse), describeBranch(n.IfTrue))
		case *ForkNode:
			for i, opt := range s.ForkOptions(n) {
				fmt.Fprintf(&b, "\n      %d. %q %s", i, s.Text(opt.Text), opt.ActionType())
				switch a := opt.Action.(type) {
				case JumpAction:
					fmt.Fprintf(&b, " -> %s", describeJump(a.Target))
				case WriteAction:
					fmt.Fprintf(&b, " %s=%d", s.Text(a.Key), a.Value)
				}
			}
		case *WriteNode:
			fmt.Fprintf(&b, " %s=%d", s.Text(n.Key), n.Value)
		case *FadeNode:
			if n.Reverse {
				b.WriteString(" reverse")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func describeJump(j Jump) string {
	if j.Scene == SameScene {
		return fmt.Sprintf("node %d", j.Node)
	}
	return fmt.Sprintf("scene %d node %d", j.Scene, j.Node)
}

func describeBranch(b Branch) string {
	if !b.Set {
		return "none"
	}
	return describeJump(b.Target)
}

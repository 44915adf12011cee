package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/younwookim/protocolsmile/internal/domain/story"
)

var (
	// ErrInvalidDocument means the document could not be parsed or its root is not an object
	ErrInvalidDocument = errors.New("invalid scene document")
	// ErrMissingField means a required top-level field is absent
	ErrMissingField = errors.New("missing required field")
)

// ParseScene builds a scene from a JSON or YAML document.
// name is used in errors and selects YAML decoding for .yaml/.yml names.
func ParseScene(data []byte, name string) (*story.Scene, error) {
	sc := &story.Scene{}
	if err := ParseSceneInto(sc, data, name); err != nil {
		return nil, err
	}
	return sc, nil
}

// ParseSceneInto resets sc and fills it from the document.
// On error sc is left untouched.
func ParseSceneInto(sc *story.Scene, data []byte, name string) error {
	root, err := parseDocument(data, name)
	if err != nil {
		return err
	}

	id := typed(field(root, "id"), gjson.Number)
	tree := field(root, "tree")
	if !id.Exists() || !tree.IsArray() {
		return fmt.Errorf("%s: %w: scene requires 'id' and 'tree'", name, ErrMissingField)
	}

	sc.Reset()
	sc.ID = int(id.Int())
	if title := typed(field(root, "title"), gjson.String); title.Exists() {
		sc.Title = sc.Strings.Push(title.String())
	}

	i := 0
	tree.ForEach(func(_, entry gjson.Result) bool {
		n, reason := parseNode(sc, entry)
		if n != nil {
			sc.Nodes = append(sc.Nodes, n)
		} else {
			sc.Skipped = append(sc.Skipped, story.SkippedEntry{Index: i, Reason: reason})
		}
		i++
		return true
	})
	return nil
}

// SceneID reads only the top-level id of a document
func SceneID(data []byte, name string) (int, error) {
	root, err := parseDocument(data, name)
	if err != nil {
		return 0, err
	}
	id := typed(field(root, "id"), gjson.Number)
	if !id.Exists() {
		return 0, fmt.Errorf("%s: %w: scene requires 'id'", name, ErrMissingField)
	}
	return int(id.Int()), nil
}

func isYAML(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func parseDocument(data []byte, name string) (gjson.Result, error) {
	var doc []byte
	if isYAML(name) {
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return gjson.Result{}, fmt.Errorf("%s: %w: %v", name, ErrInvalidDocument, err)
		}
		out, err := json.Marshal(v)
		if err != nil {
			return gjson.Result{}, fmt.Errorf("%s: %w: %v", name, ErrInvalidDocument, err)
		}
		doc = out
	} else {
		doc = stripComments(data)
		if !gjson.ValidBytes(doc) {
			return gjson.Result{}, fmt.Errorf("%s: %w: failed to parse json", name, ErrInvalidDocument)
		}
	}

	root := gjson.ParseBytes(doc)
	if !root.IsObject() {
		return gjson.Result{}, fmt.Errorf("%s: %w: root must be an object", name, ErrInvalidDocument)
	}
	return root, nil
}

// field resolves a dotted path against obj. Each dot may be an object
// boundary or part of a literal key, so "story.text" matches both
// {"story":{"text":..}} and {"story.text":..}. The longest literal key wins.
func field(obj gjson.Result, p string) gjson.Result {
	return lookup(obj, strings.Split(p, "."))
}

func lookup(obj gjson.Result, parts []string) gjson.Result {
	if !obj.IsObject() {
		return gjson.Result{}
	}
	for i := len(parts); i > 0; i-- {
		r := member(obj, strings.Join(parts[:i], "."))
		if !r.Exists() {
			continue
		}
		if i == len(parts) {
			return r
		}
		if sub := lookup(r, parts[i:]); sub.Exists() {
			return sub
		}
	}
	return gjson.Result{}
}

// member returns the first value stored under key
func member(obj gjson.Result, key string) gjson.Result {
	var out gjson.Result
	obj.ForEach(func(k, v gjson.Result) bool {
		if k.String() == key {
			out = v
			return false
		}
		return true
	})
	return out
}

// typed drops r unless it has the wanted type
func typed(r gjson.Result, t gjson.Type) gjson.Result {
	if !r.Exists() || r.Type != t {
		return gjson.Result{}
	}
	return r
}

func boolean(r gjson.Result) (bool, bool) {
	switch r.Type {
	case gjson.True:
		return true, true
	case gjson.False:
		return false, true
	}
	return false, false
}

func nonEmptyObject(r gjson.Result) bool {
	if !r.IsObject() {
		return false
	}
	n := 0
	r.ForEach(func(_, _ gjson.Result) bool {
		n++
		return false
	})
	return n > 0
}

func parseNode(sc *story.Scene, entry gjson.Result) (story.Node, string) {
	if !entry.IsObject() {
		return nil, "entry is not an object"
	}

	typ := typed(field(entry, "type"), gjson.String)
	idv := typed(field(entry, "id"), gjson.Number)
	if !typ.Exists() || !idv.Exists() {
		return nil, "missing type or id"
	}
	kind, ok := story.ParseNodeKind(typ.String())
	if !ok {
		return nil, fmt.Sprintf("unknown type %q", typ.String())
	}
	id := int(idv.Int())
	if id < 0 {
		return nil, fmt.Sprintf("negative id %d", id)
	}

	switch kind {
	case story.KindStory:
		return parseStory(sc, entry, id), ""
	case story.KindControl:
		return parseControl(sc, entry, id)
	case story.KindWrite:
		key := typed(field(entry, "write.key"), gjson.String)
		if !key.Exists() {
			return nil, "write requires key"
		}
		n := &story.WriteNode{ID: id}
		n.Key = sc.Strings.Push(key.String())
		if v := typed(field(entry, "write.value"), gjson.Number); v.Exists() {
			n.Value = int(v.Int())
		}
		return n, ""
	case story.KindFork:
		return parseFork(sc, entry, id)
	case story.KindFade:
		n := &story.FadeNode{ID: id}
		n.Reverse, _ = boolean(field(entry, "fade.reverse"))
		return n, ""
	}
	return nil, fmt.Sprintf("unhandled type %s", kind)
}

func parseStory(sc *story.Scene, entry gjson.Result, id int) *story.StoryNode {
	n := &story.StoryNode{ID: id}
	n.Animation.Speed = 1

	if v := typed(field(entry, "story.text"), gjson.String); v.Exists() {
		n.Text = sc.Strings.Push(v.String())
	}
	if v := typed(field(entry, "story.character"), gjson.String); v.Exists() {
		n.Character = sc.Strings.Push(v.String())
	}
	if v := typed(field(entry, "story.animation.name"), gjson.String); v.Exists() {
		n.Animation.Name = sc.Strings.Push(v.String())
	}
	if v := typed(field(entry, "story.animation.speed"), gjson.Number); v.Exists() {
		n.Animation.Speed = max(v.Float(), 0)
	}
	if v := typed(field(entry, "story.animation.side"), gjson.String); v.Exists() {
		if side, ok := story.ParseSide(v.String()); ok {
			n.Animation.Side = side
		}
	}
	n.Animation.Clear, _ = boolean(field(entry, "story.animation.clear"))

	if v := typed(field(entry, "story.write.key"), gjson.String); v.Exists() {
		w := &story.Assignment{Key: sc.Strings.Push(v.String())}
		if val := typed(field(entry, "story.write.value"), gjson.Number); val.Exists() {
			w.Value = int(val.Int())
		}
		n.Write = w
	}
	return n
}

func parseJump(obj gjson.Result, prefix string) (story.Jump, bool) {
	node := typed(field(obj, prefix+"node"), gjson.Number)
	if !node.Exists() {
		return story.Jump{}, false
	}
	j := story.Jump{Scene: story.SameScene, Node: int(node.Int())}
	if scene := typed(field(obj, prefix+"scene"), gjson.Number); scene.Exists() {
		j.Scene = int(scene.Int())
	}
	return j, true
}

func parseBranch(obj gjson.Result) story.Branch {
	if !nonEmptyObject(obj) {
		return story.Branch{}
	}
	b := story.Branch{Set: true, Target: story.Jump{Scene: story.SameScene}}
	if scene := typed(field(obj, "scene"), gjson.Number); scene.Exists() {
		b.Target.Scene = int(scene.Int())
	}
	if node := typed(field(obj, "node"), gjson.Number); node.Exists() {
		b.Target.Node = int(node.Int())
	}
	return b
}

func parseControl(sc *story.Scene, entry gjson.Result, id int) (story.Node, string) {
	typ := typed(field(entry, "control.type"), gjson.String)
	if !typ.Exists() {
		return nil, "control requires type"
	}
	ct, ok := story.ParseControlType(typ.String())
	if !ok {
		return nil, fmt.Sprintf("unknown control type %q", typ.String())
	}

	switch ct {
	case story.ControlJump:
		j, ok := parseJump(entry, "control.jump.")
		if !ok {
			return nil, "jump requires node"
		}
		return &story.JumpNode{ID: id, Target: j}, ""
	default:
		key := typed(field(entry, "control.conditional.key"), gjson.String)
		if !key.Exists() {
			return nil, "conditional requires key"
		}
		n := &story.ConditionalNode{ID: id, Key: sc.Strings.Push(key.String())}
		n.IfFalse = parseBranch(field(entry, "control.conditional.false"))
		n.IfTrue = parseBranch(field(entry, "control.conditional.true"))
		return n, ""
	}
}

func parseFork(sc *story.Scene, entry gjson.Result, id int) (story.Node, string) {
	options := field(entry, "fork.options")
	if !options.IsArray() {
		return nil, "fork requires options"
	}

	var opts []story.ForkOption
	options.ForEach(func(_, o gjson.Result) bool {
		if !o.IsObject() {
			return true
		}
		opts = append(opts, parseOption(sc, o))
		return true
	})
	return sc.PushOptions(id, opts), ""
}

func parseOption(sc *story.Scene, o gjson.Result) story.ForkOption {
	var opt story.ForkOption
	if v := typed(field(o, "text"), gjson.String); v.Exists() {
		opt.Text = sc.Strings.Push(v.String())
	}

	action := typed(field(o, "action"), gjson.String)
	if !action.Exists() {
		return opt
	}
	at, ok := story.ParseForkActionType(action.String())
	if !ok {
		return opt
	}

	switch at {
	case story.ActionJump:
		if j, ok := parseJump(o, "jump."); ok {
			opt.Action = story.JumpAction{Target: j}
		}
	case story.ActionWrite:
		key := typed(field(o, "write.key"), gjson.String)
		val := typed(field(o, "write.value"), gjson.Number)
		if key.Exists() && val.Exists() {
			opt.Action = story.WriteAction{Assignment: story.Assignment{
				Key:   sc.Strings.Push(key.String()),
				Value: int(val.Int()),
			}}
		}
	}
	return opt
}

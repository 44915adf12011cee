package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/protocolsmile/internal/domain/story"
)

// ScenesDir is the directory scanned for scene documents
const ScenesDir = "scenes"

// Loader loads settings, animations and scenes using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string

	table *SceneTable
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadSettings loads settings.yaml and fills unset values with defaults
func (l *Loader) LoadSettings() (*Settings, error) {
	data, err := fs.ReadFile(l.fsys, "settings.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read settings.yaml: %w", err)
	}

	var cfg Settings
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings.yaml: %w", err)
	}
	cfg.ApplyDefaults()

	return &cfg, nil
}

// LoadAnimations loads animations.json
func (l *Loader) LoadAnimations() (*AnimationsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "animations.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read animations.json: %w", err)
	}

	var cfg AnimationsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse animations.json: %w", err)
	}

	return &cfg, nil
}

// LoadScene loads a scene document by its path inside the config tree
func (l *Loader) LoadScene(name string) (*story.Scene, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene %s: %w", name, err)
	}

	sc, err := ParseScene(data, name)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}

	for _, s := range sc.Skipped {
		log.Printf("Scene %s: skipped tree entry %d: %s", name, s.Index, s.Reason)
	}
	for _, d := range sc.Diagnostics() {
		log.Printf("Scene %s: %s", name, d)
	}

	return sc, nil
}

// SceneTable maps scene ids to document paths
type SceneTable struct {
	paths map[int]string
	ids   []int
}

// Path returns the document path of a scene id
func (t *SceneTable) Path(id int) (string, bool) {
	p, ok := t.paths[id]
	return p, ok
}

// IDs returns the scene ids in ascending order
func (t *SceneTable) IDs() []int {
	out := make([]int, len(t.ids))
	copy(out, t.ids)
	return out
}

// Len returns the number of scenes
func (t *SceneTable) Len() int {
	return len(t.ids)
}

// SceneTable scans the scenes directory and reads each document's id.
// The result is cached for the lifetime of the loader.
func (l *Loader) SceneTable() (*SceneTable, error) {
	if l.table != nil {
		return l.table, nil
	}

	entries, err := fs.ReadDir(l.fsys, ScenesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ScenesDir, err)
	}

	t := &SceneTable{paths: make(map[int]string)}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch path.Ext(e.Name()) {
		case ".json", ".yaml", ".yml":
		default:
			continue
		}

		name := path.Join(ScenesDir, e.Name())
		data, err := fs.ReadFile(l.fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read scene %s: %w", name, err)
		}
		id, err := SceneID(data, name)
		if err != nil {
			return nil, fmt.Errorf("failed to index scene: %w", err)
		}
		if prev, dup := t.paths[id]; dup {
			return nil, fmt.Errorf("scene id %d defined by both %s and %s", id, prev, name)
		}
		t.paths[id] = name
		t.ids = append(t.ids, id)
	}
	sort.Ints(t.ids)

	l.table = t
	return t, nil
}

// LoadSceneByID loads the scene document registered under id
func (l *Loader) LoadSceneByID(id int) (*story.Scene, error) {
	t, err := l.SceneTable()
	if err != nil {
		return nil, err
	}
	name, ok := t.Path(id)
	if !ok {
		return nil, fmt.Errorf("scene %d: %w", id, story.ErrUnknownScene)
	}
	return l.LoadScene(name)
}

// SceneIDs returns the known scene ids in ascending order, or nil when
// the scenes directory cannot be indexed.
func (l *Loader) SceneIDs() []int {
	t, err := l.SceneTable()
	if err != nil {
		log.Printf("Failed to index scenes: %v", err)
		return nil
	}
	return t.IDs()
}

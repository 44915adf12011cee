package config

import (
	"sort"

	"github.com/younwookim/protocolsmile/internal/domain/animation"
)

// AnimationsConfig is the root config for animations.json
type AnimationsConfig struct {
	Characters map[string]SpriteConfig `json:"characters"`
}

// SpriteConfig describes one character sprite sheet
type SpriteConfig struct {
	Sheet       string                     `json:"sheet"`
	FrameWidth  int                        `json:"frameWidth"`
	FrameHeight int                        `json:"frameHeight"`
	Animations  map[string]AnimationConfig `json:"animations"`
}

// AnimationConfig is one row of a sprite sheet
type AnimationConfig struct {
	Row    int `json:"row"`
	Frames int `json:"frames"`
	FPS    int `json:"fps"`
}

// AnimationName is the catalog name of a character animation, e.g. "aya_idle"
func AnimationName(character, anim string) string {
	return character + "_" + anim
}

// RegisterAnimations adds every character animation to the catalog and
// returns the registered names in sorted order.
func RegisterAnimations(cat *animation.Catalog, cfg *AnimationsConfig) []string {
	if cfg == nil {
		return nil
	}

	byName := make(map[string][]animation.Frame)
	for character, sprite := range cfg.Characters {
		for anim, a := range sprite.Animations {
			if a.Frames <= 0 || sprite.FrameWidth <= 0 || sprite.FrameHeight <= 0 {
				continue
			}
			frames := animation.Strip(0, a.Row*sprite.FrameHeight, sprite.FrameWidth, sprite.FrameHeight, a.Frames)
			for i := range frames {
				frames[i].Texture = sprite.Sheet
				if a.FPS > 0 {
					frames[i].Duration = 1.0 / float64(a.FPS)
				}
			}
			byName[AnimationName(character, anim)] = frames
		}
	}

	// Register in sorted order so ids are stable across runs
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cat.Register(name, byName[name])
	}
	return names
}

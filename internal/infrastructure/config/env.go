package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override settings.yaml
const (
	EnvStartScene     = "SMILE_START_SCENE"
	EnvStartNode      = "SMILE_START_NODE"
	EnvTextSpeed      = "SMILE_TEXT_SPEED"
	EnvTransitionTime = "SMILE_TRANSITION_TIME"
	EnvFadeTime       = "SMILE_FADE_TIME"
)

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are ignored; variables already set win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides settings from the process environment.
// Values that do not parse are logged and ignored.
func ApplyEnv(s *Settings) {
	applyEnv(s, os.LookupEnv)
}

func applyEnv(s *Settings, lookup func(string) (string, bool)) {
	if v, ok := envInt(lookup, EnvStartScene); ok {
		s.Story.StartScene = v
	}
	if v, ok := envInt(lookup, EnvStartNode); ok {
		s.Story.StartNode = v
	}
	if v, ok := envFloat(lookup, EnvTextSpeed); ok && v > 0 {
		s.Text.DisplaySpeed = v
	}
	if v, ok := envFloat(lookup, EnvTransitionTime); ok && v >= 0 {
		s.Timing.SceneTransition = v
	}
	if v, ok := envFloat(lookup, EnvFadeTime); ok && v >= 0 {
		s.Timing.FadeDuration = v
	}
}

func envInt(lookup func(string) (string, bool), key string) (int, bool) {
	raw, ok := lookup(key)
	if !ok || raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Ignoring %s=%q: %v", key, raw, err)
		return 0, false
	}
	return v, true
}

func envFloat(lookup func(string) (string, bool), key string) (float64, bool) {
	raw, ok := lookup(key)
	if !ok || raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("Ignoring %s=%q: %v", key, raw, err)
		return 0, false
	}
	return v, true
}

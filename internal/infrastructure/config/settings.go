package config

import "image/color"

// Settings is the root config for settings.yaml
type Settings struct {
	Display DisplayConfig `yaml:"display"`
	Text    TextConfig    `yaml:"text"`
	Timing  TimingConfig  `yaml:"timing"`
	Story   StoryConfig   `yaml:"story"`
	TextBox TextBoxConfig `yaml:"textBox"`
	Fork    ForkConfig    `yaml:"fork"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Scale        int    `yaml:"scale"`
	Framerate    int    `yaml:"framerate"`
	Title        string `yaml:"title"`
}

type TextConfig struct {
	FontSize     float64 `yaml:"fontSize"`
	BaseTime     float64 `yaml:"baseTime"`     // Seconds per revealed character at speed 1
	DisplaySpeed float64 `yaml:"displaySpeed"` // Multiplier over BaseTime, larger is slower
}

// StepTime returns the seconds between two revealed characters
func (t TextConfig) StepTime() float64 {
	return t.BaseTime * t.DisplaySpeed
}

type TimingConfig struct {
	SceneTransition float64 `yaml:"sceneTransition"`
	FadeDuration    float64 `yaml:"fadeDuration"`
}

type StoryConfig struct {
	StartScene int `yaml:"startScene"`
	StartNode  int `yaml:"startNode"`
}

type TextBoxConfig struct {
	Y       int           `yaml:"y"`
	Height  int           `yaml:"height"`
	Padding PaddingConfig `yaml:"padding"`
	Color   RGBAConfig    `yaml:"color"`
}

type PaddingConfig struct {
	Top    int `yaml:"top"`
	Right  int `yaml:"right"`
	Bottom int `yaml:"bottom"`
	Left   int `yaml:"left"`
}

type RGBAConfig struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

// RGBA converts the config color
func (c RGBAConfig) RGBA() color.RGBA {
	return color.RGBA{c.R, c.G, c.B, c.A}
}

// IsZero reports whether no component was set
func (c RGBAConfig) IsZero() bool {
	return c == RGBAConfig{}
}

type ForkConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Gap    int `yaml:"gap"`
}

// DefaultSettings returns the settings used when settings.yaml leaves a value unset
func DefaultSettings() Settings {
	return Settings{
		Display: DisplayConfig{
			ScreenWidth:  640,
			ScreenHeight: 360,
			Scale:        2,
			Framerate:    60,
			Title:        "Protocol Smile",
		},
		Text: TextConfig{
			FontSize:     14,
			BaseTime:     0.005,
			DisplaySpeed: 6,
		},
		Timing: TimingConfig{
			SceneTransition: 2.0,
			FadeDuration:    2.0,
		},
		TextBox: TextBoxConfig{
			Y:       240,
			Height:  110,
			Padding: PaddingConfig{Top: 10, Right: 40, Bottom: 10, Left: 40},
			Color:   RGBAConfig{R: 40, G: 4, B: 16, A: 176},
		},
		Fork: ForkConfig{
			Width:  300,
			Height: 24,
			Gap:    8,
		},
	}
}

// ApplyDefaults fills zero values from DefaultSettings.
// Story start values are left alone since zero is a valid scene and node.
func (s *Settings) ApplyDefaults() {
	d := DefaultSettings()

	if s.Display.ScreenWidth == 0 {
		s.Display.ScreenWidth = d.Display.ScreenWidth
	}
	if s.Display.ScreenHeight == 0 {
		s.Display.ScreenHeight = d.Display.ScreenHeight
	}
	if s.Display.Scale == 0 {
		s.Display.Scale = d.Display.Scale
	}
	if s.Display.Framerate == 0 {
		s.Display.Framerate = d.Display.Framerate
	}
	if s.Display.Title == "" {
		s.Display.Title = d.Display.Title
	}

	if s.Text.FontSize == 0 {
		s.Text.FontSize = d.Text.FontSize
	}
	if s.Text.BaseTime == 0 {
		s.Text.BaseTime = d.Text.BaseTime
	}
	if s.Text.DisplaySpeed == 0 {
		s.Text.DisplaySpeed = d.Text.DisplaySpeed
	}

	if s.Timing.SceneTransition < 0 {
		s.Timing.SceneTransition = 0
	}
	if s.Timing.FadeDuration < 0 {
		s.Timing.FadeDuration = 0
	}

	if s.TextBox.Height == 0 {
		s.TextBox = d.TextBox
	}
	if s.TextBox.Color.IsZero() {
		s.TextBox.Color = d.TextBox.Color
	}

	if s.Fork.Width == 0 {
		s.Fork.Width = d.Fork.Width
	}
	if s.Fork.Height == 0 {
		s.Fork.Height = d.Fork.Height
	}
	if s.Fork.Gap == 0 {
		s.Fork.Gap = d.Fork.Gap
	}
}

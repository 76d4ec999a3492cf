package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"firstgame/internal/logsink"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Environment overrides.
const (
	EnvConfigPath = "FIRSTGAME_CONFIG"
	EnvLogLevel   = "FIRSTGAME_LOG_LEVEL"
	EnvAudio      = "FIRSTGAME_AUDIO"
	EnvAssets     = "FIRSTGAME_ASSETS"
)

// FileName is the config document looked up in the asset store.
const FileName = "config.yaml"

type Config struct {
	Window Window `yaml:"window"`
	Render Render `yaml:"render"`
	Game   Game   `yaml:"game"`
	Audio  Audio  `yaml:"audio"`
	Log    Log    `yaml:"log"`
	Assets string `yaml:"assets"` // desktop asset directory
}

// Window is only used by the desktop front-end; Android is always full screen.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Render struct {
	ClearColor           [4]float32 `yaml:"clear_color"`
	ProjectionHalfHeight float32    `yaml:"projection_half_height"`
	NearPlane            float32    `yaml:"near_plane"`
	FarPlane             float32    `yaml:"far_plane"`
	TextureAsset         string     `yaml:"texture_asset"`
}

type Game struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Step   float64 `yaml:"step"`
	WrapX  float64 `yaml:"wrap_x"`
}

type Audio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

type Log struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{Width: 800, Height: 600, Title: "First Game"},
		Render: Render{
			// Cornflower blue.
			ClearColor:           [4]float32{100 / 255.0, 149 / 255.0, 237 / 255.0, 1},
			ProjectionHalfHeight: 1,
			NearPlane:            0.1,
			FarPlane:             100,
			TextureAsset:         "android_robot.png",
		},
		Game:   Game{StartX: 100, StartY: 200, Step: 1, WrapX: 800},
		Audio:  Audio{Enabled: true, Volume: 0.6},
		Log:    Log{Level: "info"},
		Assets: "assets",
	}
}

// Load decodes a YAML document on top of the defaults. Unknown keys are
// rejected. An empty document yields the defaults.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	data, err := io.ReadAll(r)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Default(), fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// LoadFile loads the document at path.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Default(), fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// ApplyEnv applies environment overrides. lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvAudio); ok && v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAudio, err)
		}
		c.Audio.Enabled = on
	}
	if v, ok := lookup(EnvAssets); ok && v != "" {
		c.Assets = v
	}
	return nil
}

// Validate reports every problem found, joined.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height))
	}
	if c.Render.ProjectionHalfHeight <= 0 {
		errs = append(errs, fmt.Errorf("%w: projection_half_height %v", ErrInvalid, c.Render.ProjectionHalfHeight))
	}
	if c.Render.NearPlane == c.Render.FarPlane {
		errs = append(errs, fmt.Errorf("%w: near_plane equals far_plane (%v)", ErrInvalid, c.Render.NearPlane))
	}
	if c.Render.TextureAsset == "" {
		errs = append(errs, fmt.Errorf("%w: texture_asset is empty", ErrInvalid))
	}
	if c.Game.WrapX <= 0 {
		errs = append(errs, fmt.Errorf("%w: wrap_x %v", ErrInvalid, c.Game.WrapX))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("%w: audio volume %v outside [0,1]", ErrInvalid, c.Audio.Volume))
	}
	if _, err := logsink.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
	}
	return errors.Join(errs...)
}

// Package config holds the settings shared by the example programs.
// Every field has a default, so the programs run without a config file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window  Window  `toml:"window"`
	GL      GL      `toml:"gl"`
	Render  Render  `toml:"render"`
	Shaders Shaders `toml:"shaders"`

	// LogLevel overrides the verbosity flags when set
	// (debug, info, warn or error).
	LogLevel string `toml:"log_level"`
}

type Window struct {
	Width        int    `toml:"width"`
	Height       int    `toml:"height"`
	Title        string `toml:"title"`
	Resizable    bool   `toml:"resizable"`
	SwapInterval int    `toml:"swap_interval"`
}

// GL is the requested context version. Only core profiles are created.
type GL struct {
	Major int `toml:"major"`
	Minor int `toml:"minor"`
}

type Render struct {
	ClearColor [4]float32 `toml:"clear_color"`
	// Stats logs the frame rate once per second.
	Stats bool `toml:"stats"`
}

// Shaders are the source files read by programs that load
// their shader pair from disk.
type Shaders struct {
	Vertex   string `toml:"vertex"`
	Fragment string `toml:"fragment"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:        800,
			Height:       600,
			Title:        "OpenGLGraphics",
			Resizable:    true,
			SwapInterval: 1,
		},
		GL: GL{Major: 3, Minor: 3},
		Render: Render{
			ClearColor: [4]float32{0.2, 0.3, 0.3, 1.0},
		},
		Shaders: Shaders{
			Vertex:   "cmd/custom/shader.vert",
			Fragment: "cmd/custom/shader.frag",
		},
	}
}

// Load decodes the TOML file at path over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML data over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.GL.Major < 3 || (c.GL.Major == 3 && c.GL.Minor < 3) {
		return fmt.Errorf("%w: core profile needs GL 3.3 or later, got %d.%d", ErrInvalid, c.GL.Major, c.GL.Minor)
	}
	for i, v := range c.Render.ClearColor {
		if !(v >= 0 && v <= 1) {
			return fmt.Errorf("%w: clear_color[%d] = %v is outside [0,1]", ErrInvalid, i, v)
		}
	}
	if _, err := c.Level(slog.LevelWarn); err != nil {
		return err
	}
	return nil
}

// Level returns the log level named by LogLevel, or fallback if it is empty.
func (c Config) Level(fallback slog.Level) (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "":
		return fallback, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return fallback, fmt.Errorf("%w: unknown log_level %q", ErrInvalid, c.LogLevel)
}

func (r Render) Clear() mgl32.Vec4 {
	return mgl32.Vec4(r.ClearColor)
}

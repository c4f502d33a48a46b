package app

import (
	"bytes"
	"flag"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smithjjoseph/GL-graphics/internal/config"
	"github.com/smithjjoseph/GL-graphics/internal/window"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestParseFlags(t *testing.T) {
	fs := flag.NewFlagSet("hello", flag.ContinueOnError)
	o, err := parseFlags(fs, []string{"-config", "gl.toml", "-v"})
	require.NoError(t, err)
	assert.Equal(t, "gl.toml", o.config)
	assert.True(t, o.v)
	assert.False(t, o.vv)
	assert.Empty(t, o.cpuprofile)
}

func TestParseFlagsNoArgs(t *testing.T) {
	fs := flag.NewFlagSet("hello", flag.ContinueOnError)
	o, err := parseFlags(fs, nil)
	require.NoError(t, err)
	assert.Equal(t, options{}, o)
}

func TestParseFlagsUnknown(t *testing.T) {
	fs := flag.NewFlagSet("hello", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	_, err := parseFlags(fs, []string{"-fullscreen"})
	assert.Error(t, err)
}

func TestLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, slog.LevelWarn)
	log.Info("hidden")
	log.Warn("shown", "frames", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "frames=3")
	assert.Contains(t, out, "source=")
}

func TestStartCPUProfile(t *testing.T) {
	stop, err := startCPUProfile(filepath.Join(t.TempDir(), "cpu.pprof"))
	require.NoError(t, err)
	stop()

	_, err = startCPUProfile(filepath.Join(t.TempDir(), "missing", "cpu.pprof"))
	assert.Error(t, err)
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		name string
		toml string
		opts options
		want slog.Level
	}{
		{"default", "", options{}, slog.LevelWarn},
		{"quiet", "", options{q: true}, slog.LevelError},
		{"stats", "[render]\nstats = true", options{}, slog.LevelInfo},
		{"stats quiet", "[render]\nstats = true", options{q: true}, slog.LevelInfo},
		{"stats debug", "[render]\nstats = true", options{vv: true}, slog.LevelDebug},
		{"config level", `log_level = "error"`, options{vv: true}, slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Parse([]byte(tt.toml))
			require.NoError(t, err)
			assert.Equal(t, tt.want, logLevel(tt.opts, cfg))
		})
	}
}

func TestStatsLoggedWithoutFlags(t *testing.T) {
	cfg, err := config.Parse([]byte("[render]\nstats = true"))
	require.NoError(t, err)

	var buf bytes.Buffer
	log := newLogger(&buf, logLevel(options{}, cfg))
	log.Info("frame rate", "fps", 60.0)

	assert.Contains(t, buf.String(), "msg=\"frame rate\"")
	assert.Contains(t, buf.String(), "fps=60")
}

func TestInitFailed(t *testing.T) {
	var buf bytes.Buffer
	code := initFailed(&buf, window.ErrCreateWindow)
	assert.Equal(t, ExitInit, code)
	assert.Equal(t, "failed to create GLFW window\n", buf.String())
}

// Package app holds the start-up and tear-down shared by the example
// programs: flags, config, logging, profiling and the window itself.
package app

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/pprof"

	"github.com/smithjjoseph/GL-graphics/internal/config"
	"github.com/smithjjoseph/GL-graphics/internal/window"
)

// ExitInit is the exit code when the window, the GL loader or the config
// cannot be set up.
const ExitInit = -1

type options struct {
	config     string
	cpuprofile string
	vv, v, q   bool
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	var o options
	fs.StringVar(&o.config, "config", "", "load settings from TOML `file`")
	fs.StringVar(&o.cpuprofile, "cpuprofile", "", "write cpu profile to `file`")
	fs.BoolVar(&o.vv, "vv", false, "debug logging")
	fs.BoolVar(&o.v, "v", false, "info logging")
	fs.BoolVar(&o.q, "q", false, "errors only")
	return o, fs.Parse(args)
}

// LevelFromFlags maps the verbosity flags to a level. The flags are
// checked in the order vv, v, q; the default is warn.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// logLevel picks the level from the config, then the flags. Frame
// statistics are logged at info, so enabling them lowers the level to at
// most info.
func logLevel(o options, cfg config.Config) slog.Level {
	level, _ := cfg.Level(LevelFromFlags(o.vv, o.v, o.q))
	if cfg.Render.Stats && level > slog.LevelInfo {
		level = slog.LevelInfo
	}
	return level
}

// initFailed reports a start-up failure and returns the exit code for it.
func initFailed(w io.Writer, err error) int {
	fmt.Fprintln(w, err)
	return ExitInit
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	}))
}

// Main sets everything up, opens the window and hands it to run. It
// returns the process exit code.
func Main(name string, run func(cfg config.Config, win *window.Window)) int {
	o, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		return 2
	}

	cfg, err := config.Load(o.config)
	if err != nil {
		return initFailed(os.Stderr, err)
	}
	slog.SetDefault(newLogger(os.Stderr, logLevel(o, cfg)).With("prog", name))

	if o.cpuprofile != "" {
		stop, err := startCPUProfile(o.cpuprofile)
		if err != nil {
			slog.Error("could not start CPU profile", "err", err)
		} else {
			defer stop()
		}
	}

	win, err := window.Open(cfg)
	if err != nil {
		return initFailed(os.Stderr, err)
	}
	defer win.Close()

	run(cfg, win)
	return 0
}

func startCPUProfile(path string) (stop func(), err error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}, nil
}

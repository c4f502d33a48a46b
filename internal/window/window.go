// Package window opens a GLFW window with a current OpenGL core context
// and drives the render loop. GLFW and GL calls must come from the main
// OS thread; callers lock it with runtime.LockOSThread in an init func.
package window

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/smithjjoseph/GL-graphics/internal/config"
)

var (
	ErrInit         = errors.New("failed to initialise GLFW")
	ErrCreateWindow = errors.New("failed to create GLFW window")
	ErrLoadGL       = errors.New("failed to load OpenGL functions")
)

type Window struct {
	*glfw.Window

	cfg  config.Config
	keys map[glfw.Key]func()
}

// Open initialises GLFW, creates the window, makes its context current and
// loads the GL function pointers. On failure GLFW is already terminated.
func Open(cfg config.Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInit, err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GL.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GL.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	if runtime.GOOS == "darwin" {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	glfw.WindowHint(glfw.Resizable, boolHint(cfg.Window.Resizable))

	win, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %w", ErrCreateWindow, err)
	}
	win.MakeContextCurrent()
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %w", ErrLoadGL, err)
	}
	glfw.SwapInterval(cfg.Window.SwapInterval)

	slog.Info("window open",
		"title", cfg.Window.Title,
		"size", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height),
		"gl", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	w := &Window{Window: win, cfg: cfg, keys: map[glfw.Key]func(){}}
	win.SetKeyCallback(w.onKey)
	return w, nil
}

// ProcessInput closes the window while Escape is held.
func (w *Window) ProcessInput() {
	if w.GetKey(glfw.KeyEscape) == glfw.Press {
		w.SetShouldClose(true)
	}
}

// OnKeyPress calls fn each time key is pressed. Repeats and releases are
// ignored.
func (w *Window) OnKeyPress(key glfw.Key, fn func()) {
	w.keys[key] = fn
}

func (w *Window) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	if fn, ok := w.keys[key]; ok {
		fn()
	}
}

// Run renders until the window should close. Each frame it processes
// input, clears the color buffer, calls draw with the GLFW time in seconds,
// then swaps buffers and polls events.
func (w *Window) Run(draw func(t float64)) {
	bg := w.cfg.Render.Clear()
	var stats frameStats

	for !w.ShouldClose() {
		w.ProcessInput()

		gl.ClearColor(bg[0], bg[1], bg[2], bg[3])
		gl.Clear(gl.COLOR_BUFFER_BIT)

		now := glfw.GetTime()
		draw(now)

		w.SwapBuffers()
		glfw.PollEvents()

		if fps, ok := stats.tick(now); ok && w.cfg.Render.Stats {
			slog.Info("frame rate", "fps", fps, "frames", humanize.Comma(int64(stats.total)))
		}
	}
	slog.Info("render loop done", "frames", humanize.Comma(int64(stats.total)))
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.Destroy()
	glfw.Terminate()
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

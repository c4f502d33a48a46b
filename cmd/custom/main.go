// Command custom loads its shader pair from shader.vert and shader.frag and
// draws a triangle whose vertex colors are interpolated across its face.
//
// The shader paths come from the [shaders] section of the config and
// default to the files next to this program, relative to the repository
// root.
package main

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/smithjjoseph/GL-graphics/internal/app"
	"github.com/smithjjoseph/GL-graphics/internal/config"
	"github.com/smithjjoseph/GL-graphics/internal/mesh"
	"github.com/smithjjoseph/GL-graphics/internal/shader"
	"github.com/smithjjoseph/GL-graphics/internal/window"
)

var vertices = []float32{
	// positions      // colors
	0.5, -0.5, 0.0, 1.0, 0.0, 0.0, // bottom right
	-0.5, -0.5, 0.0, 0.0, 1.0, 0.0, // bottom left
	0.0, 0.5, 0.0, 0.0, 0.0, 1.0, // top
}

func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(app.Main("custom", run))
}

func run(cfg config.Config, win *window.Window) {
	customShader, err := shader.New(cfg.Shaders.Vertex, cfg.Shaders.Fragment)
	if err != nil {
		slog.Error("shader setup", "vertex", cfg.Shaders.Vertex, "fragment", cfg.Shaders.Fragment, "err", err)
	}
	defer customShader.Delete()

	triangle := mesh.New(vertices, nil, mesh.PositionColor)
	defer triangle.Delete()

	win.Run(func(float64) {
		customShader.Use()
		triangle.Draw()
	})
}

// Command uniform draws a triangle whose color is driven by a uniform that
// cycles with time.
package main

import (
	"log/slog"
	"math"
	"os"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/smithjjoseph/GL-graphics/internal/app"
	"github.com/smithjjoseph/GL-graphics/internal/config"
	"github.com/smithjjoseph/GL-graphics/internal/mesh"
	"github.com/smithjjoseph/GL-graphics/internal/shader"
	"github.com/smithjjoseph/GL-graphics/internal/window"
)

const vertexShaderSource = `#version 330 core
layout (location = 0) in vec3 aPos;
void main() {
    gl_Position = vec4(aPos, 1.0);
}`

const fragmentShaderSource = `#version 330 core
out vec4 FragColor;
uniform vec4 chosenColor;
void main() {
    FragColor = vec4(chosenColor);
}`

var vertices = []float32{
	-0.5, -0.5, 0.0,
	0.5, -0.5, 0.0,
	0.0, 0.5, 0.0,
}

func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(app.Main("uniform", run))
}

// PulseColor is the color at time t seconds: red follows cos t, green
// follows sin t, both mapped into [0,1].
func PulseColor(t float64) mgl32.Vec4 {
	red := float32(math.Cos(t)/2 + 0.5)
	green := float32(math.Sin(t)/2 + 0.5)
	return mgl32.Vec4{red, green, 0.5, 1.0}
}

func run(_ config.Config, win *window.Window) {
	vertexShader, err := shader.Compile(gl.VERTEX_SHADER, vertexShaderSource, "vertexShader")
	logErr(err)
	fragmentShader, err := shader.Compile(gl.FRAGMENT_SHADER, fragmentShaderSource, "FragmentShader")
	logErr(err)
	program, err := shader.Link("ShaderProgram", vertexShader, fragmentShader)
	logErr(err)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)
	defer gl.DeleteProgram(program)

	triangle := mesh.New(vertices, nil, mesh.Position)
	defer triangle.Delete()

	prog := &shader.Shader{ID: program}
	win.Run(func(t float64) {
		prog.Use()
		prog.SetVec4("chosenColor", PulseColor(t))
		triangle.Draw()
	})
}

func logErr(err error) {
	if err != nil {
		slog.Error("shader setup", "err", err)
	}
}

// Command hello draws a single orange triangle in wireframe.
package main

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/smithjjoseph/GL-graphics/internal/app"
	"github.com/smithjjoseph/GL-graphics/internal/config"
	"github.com/smithjjoseph/GL-graphics/internal/mesh"
	"github.com/smithjjoseph/GL-graphics/internal/shader"
	"github.com/smithjjoseph/GL-graphics/internal/window"
)

const vertexShaderSource = `#version 330 core
layout (location = 0) in vec3 aPos;
void main() {
    gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}`

const fragmentShaderSource = `#version 330 core
out vec4 FragColor;
void main() {
    FragColor = vec4(1.0, 0.5, 0.2, 1.0);
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
	os.Exit(app.Main("hello", run))
}

func run(_ config.Config, win *window.Window) {
	vertexShader, err := shader.Compile(gl.VERTEX_SHADER, vertexShaderSource, "vertexShader")
	logErr(err)
	fragmentShader, err := shader.Compile(gl.FRAGMENT_SHADER, fragmentShaderSource, "fragmentShader")
	logErr(err)
	shaderProgram, err := shader.Link("shaderProgram", vertexShader, fragmentShader)
	logErr(err)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)
	defer gl.DeleteProgram(shaderProgram)

	triangle := mesh.New(vertices, nil, mesh.Position)
	defer triangle.Delete()

	window.SetPolygonMode(gl.LINE)

	win.Run(func(float64) {
		gl.UseProgram(shaderProgram)
		triangle.Draw()
	})
}

func logErr(err error) {
	if err != nil {
		slog.Error("shader setup", "err", err)
	}
}

// Command triangles draws two triangles from one element buffer, each with
// its own shader program. Space toggles between filled and wireframe
// polygons.
package main

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

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

const orangeFragmentShaderSource = `#version 330 core
out vec4 FragColor;
void main() {
    FragColor = vec4(1.0, 0.5, 0.2, 1.0);
}`

const yellowFragmentShaderSource = `#version 330 core
out vec4 FragColor;
void main() {
    FragColor = vec4(0.5, 0.5, 0.1, 1.0);
}`

var vertices = []float32{
	-0.8, 0.5, 0.0,
	-0.8, -0.5, 0.0,
	-0.2, -0.5, 0.0,
	0.8, 0.5, 0.0,
	0.8, -0.5, 0.0,
	0.2, -0.5, 0.0,
}

var indices = []uint32{
	0, 1, 2,
	3, 4, 5,
}

func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(app.Main("triangles", run))
}

func run(_ config.Config, win *window.Window) {
	vertexShader := compile(gl.VERTEX_SHADER, vertexShaderSource, "vertexShader")
	orangeFragmentShader := compile(gl.FRAGMENT_SHADER, orangeFragmentShaderSource, "orangeFragmentShader")
	yellowFragmentShader := compile(gl.FRAGMENT_SHADER, yellowFragmentShaderSource, "yellowFragmentShader")

	orangeShaderProgram := link("orangeShaderProgram", vertexShader, orangeFragmentShader)
	defer gl.DeleteProgram(orangeShaderProgram)
	yellowShaderProgram := link("yellowShaderProgram", vertexShader, yellowFragmentShader)
	defer gl.DeleteProgram(yellowShaderProgram)

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(orangeFragmentShader)
	gl.DeleteShader(yellowFragmentShader)

	triangles := mesh.New(vertices, indices, mesh.Position)
	defer triangles.Delete()

	win.OnKeyPress(glfw.KeySpace, window.TogglePolygonMode)

	win.Run(func(float64) {
		gl.UseProgram(orangeShaderProgram)
		triangles.DrawRange(0, 3)
		gl.UseProgram(yellowShaderProgram)
		triangles.DrawRange(3, 3)
		mesh.Unbind()
	})
}

func compile(stage uint32, source, identifier string) uint32 {
	s, err := shader.Compile(stage, source, identifier)
	if err != nil {
		slog.Error("compile", "shader", identifier, "err", err)
	}
	return s
}

func link(identifier string, stages ...uint32) uint32 {
	p, err := shader.Link(identifier, stages...)
	if err != nil {
		slog.Error("link", "program", identifier, "err", err)
	}
	return p
}

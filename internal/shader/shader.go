// Package shader compiles GLSL stages, links programs and reports each step
// on the console in the SUCCESS::/ERROR:: format.
//
// Failures never stop the caller. Every step still returns a handle, and the
// error only describes what went wrong, so a program can log it and keep
// rendering with whatever state resulted.
package shader

import (
	"errors"
	"io/fs"
	"os"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Shader is a linked vertex+fragment program built from two source files.
type Shader struct {
	ID uint32
}

// New reads the vertex and fragment sources from the given paths and
// builds a Shader from them. See NewFS.
func New(vertexPath, fragmentPath string) (*Shader, error) {
	return NewFS(osFS{}, vertexPath, fragmentPath)
}

// NewFS reads both sources from fsys, compiles them, links the program and
// deletes the intermediate stages. The returned Shader is never nil; the
// error joins every step that failed.
func NewFS(fsys fs.FS, vertexPath, fragmentPath string) (*Shader, error) {
	return build(Console, fsys, vertexPath, fragmentPath)
}

func build(r *Reporter, fsys fs.FS, vertexPath, fragmentPath string) (*Shader, error) {
	vertexCode, fragmentCode, readErr := readSources(r, fsys, vertexPath, fragmentPath)

	vertex, vertErr := compile(r, gl.VERTEX_SHADER, vertexCode, "VERTEX")
	fragment, fragErr := compile(r, gl.FRAGMENT_SHADER, fragmentCode, "FRAGMENT")
	id, linkErr := link(r, "PROGRAM", vertex, fragment)

	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)

	return &Shader{ID: id}, errors.Join(readErr, vertErr, fragErr, linkErr)
}

// Use activates the program.
func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

// The setters look the uniform up by name on every call and act on the
// program currently in use.

func (s *Shader) SetBool(name string, value bool) {
	gl.Uniform1i(s.location(name), glBool(value))
}

func (s *Shader) SetInt(name string, value int32) {
	gl.Uniform1i(s.location(name), value)
}

func (s *Shader) SetFloat(name string, value float32) {
	gl.Uniform1f(s.location(name), value)
}

func (s *Shader) SetVec4(name string, value mgl32.Vec4) {
	gl.Uniform4f(s.location(name), value[0], value[1], value[2], value[3])
}

func (s *Shader) Delete() {
	gl.DeleteProgram(s.ID)
}

// glBool is the integer a bool uniform is set with.
func glBool(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

func (s *Shader) location(name string) int32 {
	return gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
}

// osFS opens plain OS paths, relative or absolute, which os.DirFS refuses.
type osFS struct{}

func (osFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

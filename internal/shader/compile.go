package shader

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Compile creates and compiles a shader stage of the given type
// (gl.VERTEX_SHADER, gl.FRAGMENT_SHADER) and reports the outcome under
// identifier. The handle is returned even if compilation failed.
func Compile(stage uint32, source, identifier string) (uint32, error) {
	return compile(Console, stage, source, identifier)
}

func compile(r *Reporter, stage uint32, source, identifier string) (uint32, error) {
	shader := gl.CreateShader(stage)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		infoLog := shaderInfoLog(shader)
		r.Compiled(identifier, false, infoLog)
		return shader, fmt.Errorf("%w: %s: %s", ErrCompile, identifier, infoLog)
	}
	r.Compiled(identifier, true, "")
	return shader, nil
}

// Link attaches the stages to a new program, links it and reports the
// outcome under identifier. The stages are left for the caller to delete.
func Link(identifier string, stages ...uint32) (uint32, error) {
	return link(Console, identifier, stages...)
}

func link(r *Reporter, identifier string, stages ...uint32) (uint32, error) {
	program := gl.CreateProgram()
	for _, s := range stages {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		infoLog := programInfoLog(program)
		r.Linked(identifier, false, infoLog)
		return program, fmt.Errorf("%w: %s: %s", ErrLink, identifier, infoLog)
	}
	r.Linked(identifier, true, "")
	return program, nil
}

func shaderInfoLog(shader uint32) string {
	var n int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return ""
	}
	buf := make([]byte, n)
	gl.GetShaderInfoLog(shader, n, nil, &buf[0])
	return gl.GoStr(&buf[0])
}

func programInfoLog(program uint32) string {
	var n int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return ""
	}
	buf := make([]byte, n)
	gl.GetProgramInfoLog(program, n, nil, &buf[0])
	return gl.GoStr(&buf[0])
}

package shader

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"testing"
	"testing/fstest"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainReporter() (*Reporter, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewReporter(&buf, termenv.WithProfile(termenv.Ascii)), &buf
}

func TestCompiledReport(t *testing.T) {
	r, buf := plainReporter()
	r.Compiled("vertexShader", true, "")
	assert.Equal(t, "SUCCESS::SHADER::vertexShader::COMPILATION_SUCCESS\n", buf.String())

	buf.Reset()
	r.Compiled("fragmentShader", false, "0:3(2): error: syntax error\n\x00")
	assert.Equal(t,
		"ERROR::SHADER::fragmentShader::COMPILATION_FAILED\n0:3(2): error: syntax error\n",
		buf.String())
}

func TestLinkedReport(t *testing.T) {
	r, buf := plainReporter()
	r.Linked("shaderProgram", true, "")
	assert.Equal(t, "SUCCESS::PROGRAM::shaderProgram::LINKAGE_SUCCESS\n", buf.String())

	buf.Reset()
	r.Linked("orangeShaderProgram", false, "")
	assert.Equal(t, "ERROR::PROGRAM::orangeShaderProgram::LINKAGE_FAILED\n", buf.String())
}

func TestReadFailedReport(t *testing.T) {
	r, buf := plainReporter()
	r.ReadFailed(errors.New("open shader.vert: no such file"))
	assert.Equal(t,
		"ERROR::SHADER::FILE_NOT_SUCCESSFULLY_READ\nopen shader.vert: no such file\n",
		buf.String())
}

func TestReadSources(t *testing.T) {
	fsys := fstest.MapFS{
		"shader.vert": {Data: []byte("#version 330 core\nvoid main() {}\n")},
		"shader.frag": {Data: []byte("#version 330 core\nout vec4 c;\nvoid main() { c = vec4(1); }\n")},
	}
	r, buf := plainReporter()

	vert, frag, err := readSources(r, fsys, "shader.vert", "shader.frag")
	require.NoError(t, err)
	assert.Equal(t, "#version 330 core\nvoid main() {}\n", vert)
	assert.Contains(t, frag, "c = vec4(1);")
	assert.Empty(t, buf.String())
}

func TestReadSourcesMissing(t *testing.T) {
	fsys := fstest.MapFS{
		"shader.vert": {Data: []byte("void main() {}")},
	}
	r, buf := plainReporter()

	vert, frag, err := readSources(r, fsys, "shader.vert", "shader.frag")
	assert.ErrorIs(t, err, ErrRead)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, "void main() {}", vert, "the readable file is still returned")
	assert.Empty(t, frag)
	assert.Contains(t, buf.String(), "ERROR::SHADER::FILE_NOT_SUCCESSFULLY_READ\n")
	assert.Contains(t, buf.String(), "shader.frag")
}

func TestOSFSReadsAbsolutePaths(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/abs.vert"
	require.NoError(t, os.WriteFile(path, []byte("abs"), 0o644))

	b, err := fs.ReadFile(osFS{}, path)
	require.NoError(t, err)
	assert.Equal(t, "abs", string(b))

	_, err = fs.ReadFile(osFS{}, dir+"/missing.frag")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestReportColors(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, termenv.WithProfile(termenv.ANSI))

	r.Compiled("vertexShader", true, "")
	assert.Equal(t, "\x1b[32mSUCCESS::SHADER::vertexShader::COMPILATION_SUCCESS\x1b[0m\n", buf.String())

	buf.Reset()
	r.Linked("shaderProgram", false, "error: vertex shader lacks main")
	assert.Equal(t,
		"\x1b[31;1mERROR::PROGRAM::shaderProgram::LINKAGE_FAILED\x1b[0m\n"+
			"error: vertex shader lacks main\n",
		buf.String(), "the info log line is left uncolored")
}

func TestGLBool(t *testing.T) {
	assert.Equal(t, int32(1), glBool(true))
	assert.Equal(t, int32(0), glBool(false))
}

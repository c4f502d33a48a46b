package shader

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	ErrRead    = errors.New("shader source not read")
	ErrCompile = errors.New("shader compilation failed")
	ErrLink    = errors.New("program linkage failed")
)

// ReadSources reads a vertex and a fragment shader from fsys, wholesale and
// without preprocessing. A file that cannot be read is reported and comes
// back as an empty string, alongside an error wrapping ErrRead.
func ReadSources(fsys fs.FS, vertexPath, fragmentPath string) (vertex, fragment string, err error) {
	return readSources(Console, fsys, vertexPath, fragmentPath)
}

func readSources(r *Reporter, fsys fs.FS, vertexPath, fragmentPath string) (string, string, error) {
	var errs []error
	read := func(path string) string {
		b, err := fs.ReadFile(fsys, path)
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrRead, err)
			r.ReadFailed(err)
			errs = append(errs, err)
			return ""
		}
		return string(b)
	}
	vertex := read(vertexPath)
	fragment := read(fragmentPath)
	return vertex, fragment, errors.Join(errs...)
}

package shader

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// Object is the kind of GL object a report line refers to.
type Object string

const (
	ObjShader  Object = "SHADER"
	ObjProgram Object = "PROGRAM"
)

// Reporter prints the SUCCESS::/ERROR:: status lines for compile and link
// steps. Lines are colored when the output is a terminal.
type Reporter struct {
	out *termenv.Output
}

func NewReporter(w io.Writer, opts ...termenv.OutputOption) *Reporter {
	return &Reporter{out: termenv.NewOutput(w, opts...)}
}

// Console reports on stdout. Compile and Link use it unless told otherwise.
var Console = NewReporter(os.Stdout)

// Compiled reports the outcome of compiling a shader stage.
func (r *Reporter) Compiled(identifier string, ok bool, infoLog string) {
	if ok {
		r.success(ObjShader, identifier, "COMPILATION_SUCCESS")
		return
	}
	r.failure(ObjShader, identifier, "COMPILATION_FAILED", infoLog)
}

// Linked reports the outcome of linking a program.
func (r *Reporter) Linked(identifier string, ok bool, infoLog string) {
	if ok {
		r.success(ObjProgram, identifier, "LINKAGE_SUCCESS")
		return
	}
	r.failure(ObjProgram, identifier, "LINKAGE_FAILED", infoLog)
}

// ReadFailed reports a shader source file that could not be read.
func (r *Reporter) ReadFailed(err error) {
	r.failure(ObjShader, "", "FILE_NOT_SUCCESSFULLY_READ", err.Error())
}

func (r *Reporter) success(obj Object, identifier, status string) {
	line := r.out.String(statusLine("SUCCESS", obj, identifier, status)).Foreground(r.out.Color("2"))
	fmt.Fprintln(r.out, line)
}

func (r *Reporter) failure(obj Object, identifier, status, detail string) {
	line := r.out.String(statusLine("ERROR", obj, identifier, status)).Foreground(r.out.Color("1")).Bold()
	fmt.Fprintln(r.out, line)
	if detail = strings.TrimRight(detail, "\x00\n"); detail != "" {
		fmt.Fprintln(r.out, detail)
	}
}

func statusLine(prefix string, obj Object, identifier, status string) string {
	parts := []string{prefix, string(obj)}
	if identifier != "" {
		parts = append(parts, identifier)
	}
	return strings.Join(append(parts, status), "::")
}

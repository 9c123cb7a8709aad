package shaders

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fosdem/glsample/lib/metrics"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	ErrCreateVertexShader   = errors.New("error creating vertex shader")
	ErrCreateFragmentShader = errors.New("error creating fragment shader")
	ErrCreateProgram        = errors.New("error creating program object")
)

// CompileError carries the driver's info log for a shader that did not
// compile.
type CompileError struct {
	Stage string
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, strings.TrimSpace(e.Log))
}

type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link shader program: %s", strings.TrimSpace(e.Log))
}

type stage struct {
	name       string
	template   string
	glType     uint32
	createFail error
}

var stages = []stage{
	{"vertex", VertexShaderName, gl.VERTEX_SHADER, ErrCreateVertexShader},
	{"fragment", FragmentShaderName, gl.FRAGMENT_SHADER, ErrCreateFragmentShader},
}

// BuildGLProgram renders, compiles and links the vertex and fragment
// shader. A GL context must be current.
func BuildGLProgram(shaderer *Shaderer, shaderData *ShaderData) (uint32, error) {
	var compiled []uint32
	defer func() {
		for _, shader := range compiled {
			gl.DeleteShader(shader)
		}
	}()

	for _, st := range stages {
		source, err := shaderer.GetShaderSource(st.template, shaderData)
		if err != nil {
			return 0, fmt.Errorf("could not get %s shader: %w", st.name, err)
		}

		shader, err := compileShader(st, source)
		if err != nil {
			metrics.ShaderErrors.WithLabelValues(st.name).Inc()
			return 0, err
		}
		compiled = append(compiled, shader)
	}

	program, err := newProgram(compiled...)
	if err != nil {
		metrics.ShaderErrors.WithLabelValues("link").Inc()
		return 0, err
	}
	metrics.ProgramsBuilt.Inc()

	return program, nil
}

func newProgram(shaders ...uint32) (uint32, error) {
	program := gl.CreateProgram()
	if program == 0 {
		return 0, ErrCreateProgram
	}

	for _, shader := range shaders {
		gl.AttachShader(program, shader)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		logmsg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logmsg))
		gl.DeleteProgram(program)

		return 0, &LinkError{Log: strings.TrimRight(logmsg, "\x00")}
	}

	for _, shader := range shaders {
		gl.DetachShader(program, shader)
	}

	return program, nil
}

func compileShader(st stage, source string) (uint32, error) {
	shader := gl.CreateShader(st.glType)
	if shader == 0 {
		return 0, st.createFail
	}

	csources, free := gl.Strs(source)
	size := int32(len(source))
	gl.ShaderSource(shader, 1, csources, &size)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		clog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(clog))
		gl.DeleteShader(shader)

		return 0, &CompileError{Stage: st.name, Log: strings.TrimRight(clog, "\x00")}
	}

	return shader, nil
}

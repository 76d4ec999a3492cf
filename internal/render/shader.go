package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"firstgame/internal/logsink"
)

// ErrInvalidShader is returned when a program cannot be built or one of its
// required names does not resolve.
var ErrInvalidShader = errors.New("invalid shader")

// Shader is a linked program with the three locations the quad pipeline
// needs. A nil *Shader is invalid.
type Shader struct {
	gl         GL
	program    uint32
	position   int32
	uv         int32
	projection int32
}

// LoadShader compiles and links a vertex/fragment pair and resolves the
// position attribute, UV attribute and projection uniform. On any failure it
// releases everything it created and returns a nil shader.
func LoadShader(gl GL, vertexSrc, fragmentSrc, positionName, uvName, projectionName string) (*Shader, error) {
	log := logsink.For(logsink.TagShader)

	vs, err := compileShader(gl, VERTEX_SHADER, vertexSrc)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	defer gl.DeleteShader(vs)

	fs, err := compileShader(gl, FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	if program == 0 {
		err := fmt.Errorf("%w: create program failed", ErrInvalidShader)
		log.Error(err.Error())
		return nil, err
	}
	keep := false
	defer func() {
		if !keep {
			gl.DeleteProgram(program)
		}
	}()

	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)

	if gl.GetProgrami(program, LINK_STATUS) == 0 {
		err := fmt.Errorf("%w: failed to link program: %s", ErrInvalidShader, strings.TrimRight(gl.GetProgramInfoLog(program), "\x00\n"))
		log.Error(err.Error())
		return nil, err
	}

	s := &Shader{
		gl:         gl,
		program:    program,
		position:   gl.GetAttribLocation(program, positionName),
		uv:         gl.GetAttribLocation(program, uvName),
		projection: gl.GetUniformLocation(program, projectionName),
	}
	var missing []string
	if s.position == -1 {
		missing = append(missing, positionName)
	}
	if s.uv == -1 {
		missing = append(missing, uvName)
	}
	if s.projection == -1 {
		missing = append(missing, projectionName)
	}
	if len(missing) > 0 {
		err := fmt.Errorf("%w: unresolved names %s", ErrInvalidShader, strings.Join(missing, ", "))
		log.Error(err.Error())
		return nil, err
	}

	keep = true
	return s, nil
}

func compileShader(gl GL, kind Enum, src string) (uint32, error) {
	sh := gl.CreateShader(kind)
	if sh == 0 {
		return 0, fmt.Errorf("%w: create shader failed", ErrInvalidShader)
	}
	gl.ShaderSource(sh, src)
	gl.CompileShader(sh)
	if gl.GetShaderi(sh, COMPILE_STATUS) == 0 {
		infoLog := gl.GetShaderInfoLog(sh)
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("%w: failed to compile shader: %s", ErrInvalidShader, strings.TrimRight(infoLog, "\x00\n"))
	}
	return sh, nil
}

func (s *Shader) Valid() bool { return s != nil && s.program != 0 }

func (s *Shader) Activate() {
	if s.Valid() {
		s.gl.UseProgram(s.program)
	}
}

func (s *Shader) Deactivate() {
	if s.Valid() {
		s.gl.UseProgram(0)
	}
}

// SetProjectionMatrix uploads m to the projection uniform of the active program.
func (s *Shader) SetProjectionMatrix(m mgl32.Mat4) {
	if !s.Valid() {
		return
	}
	s.gl.UniformMatrix4fv(s.projection, m[:])
}

// DrawModel issues one indexed triangle-list draw for m using the interleaved
// position/UV layout and texture unit 0.
func (s *Shader) DrawModel(m *Model) {
	if !s.Valid() || m == nil || m.vbo == 0 {
		return
	}
	gl := s.gl
	gl.BindBuffer(ARRAY_BUFFER, m.vbo)
	gl.BindBuffer(ELEMENT_ARRAY_BUFFER, m.ibo)

	gl.VertexAttribPointer(s.position, 3, FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(s.position)
	gl.VertexAttribPointer(s.uv, 2, FLOAT, false, vertexStride, uvOffset)
	gl.EnableVertexAttribArray(s.uv)

	gl.ActiveTexture(TEXTURE0)
	gl.BindTexture(TEXTURE_2D, m.texture.ID())

	gl.DrawElements(TRIANGLES, m.IndexCount(), UNSIGNED_SHORT, 0)

	gl.DisableVertexAttribArray(s.uv)
	gl.DisableVertexAttribArray(s.position)
}

// Release deletes the program. Safe to call more than once.
func (s *Shader) Release() {
	if !s.Valid() {
		return
	}
	s.gl.DeleteProgram(s.program)
	s.program = 0
}

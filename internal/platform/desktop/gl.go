//go:build !android

package desktop

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"firstgame/internal/render"
)

func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// coreGL adapts the 4.1 core bindings to render.GL. The context must be
// current on the calling thread.
type coreGL struct{}

var _ render.GL = coreGL{}

func (coreGL) CreateShader(kind render.Enum) uint32 { return gl.CreateShader(uint32(kind)) }

func (coreGL) ShaderSource(shader uint32, src string) {
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (coreGL) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (coreGL) GetShaderi(shader uint32, pname render.Enum) int {
	var v int32
	gl.GetShaderiv(shader, uint32(pname), &v)
	return int(v)
}

func (coreGL) GetShaderInfoLog(shader uint32) string {
	var logLen int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 0 {
		return ""
	}
	buf := make([]byte, logLen+1)
	gl.GetShaderInfoLog(shader, logLen, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00")
}

func (coreGL) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (coreGL) CreateProgram() uint32               { return gl.CreateProgram() }
func (coreGL) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }
func (coreGL) DetachShader(program, shader uint32) { gl.DetachShader(program, shader) }
func (coreGL) LinkProgram(program uint32)          { gl.LinkProgram(program) }

func (coreGL) GetProgrami(program uint32, pname render.Enum) int {
	var v int32
	gl.GetProgramiv(program, uint32(pname), &v)
	return int(v)
}

func (coreGL) GetProgramInfoLog(program uint32) string {
	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 0 {
		return ""
	}
	buf := make([]byte, logLen+1)
	gl.GetProgramInfoLog(program, logLen, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00")
}

func (coreGL) DeleteProgram(program uint32) { gl.DeleteProgram(program) }
func (coreGL) UseProgram(program uint32)    { gl.UseProgram(program) }

func (coreGL) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (coreGL) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (coreGL) UniformMatrix4fv(location int32, m []float32) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (coreGL) CreateBuffer() uint32 {
	var b uint32
	gl.GenBuffers(1, &b)
	return b
}

func (coreGL) BindBuffer(target render.Enum, buffer uint32) { gl.BindBuffer(uint32(target), buffer) }

func (coreGL) BufferData(target render.Enum, data []byte, usage render.Enum) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = gl.Ptr(data)
	}
	gl.BufferData(uint32(target), len(data), p, uint32(usage))
}

func (coreGL) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

func (coreGL) EnableVertexAttribArray(location int32)  { gl.EnableVertexAttribArray(uint32(location)) }
func (coreGL) DisableVertexAttribArray(location int32) { gl.DisableVertexAttribArray(uint32(location)) }

func (coreGL) VertexAttribPointer(location int32, size int, ty render.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointer(uint32(location), int32(size), uint32(ty), normalized, int32(stride), glOffset(offset))
}

func (coreGL) ActiveTexture(unit render.Enum) { gl.ActiveTexture(uint32(unit)) }

func (coreGL) CreateTexture() uint32 {
	var t uint32
	gl.GenTextures(1, &t)
	return t
}

func (coreGL) BindTexture(target render.Enum, texture uint32) { gl.BindTexture(uint32(target), texture) }

func (coreGL) TexParameteri(target, pname render.Enum, param int) {
	gl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (coreGL) TexImage2D(target render.Enum, level, width, height int, format, ty render.Enum, data []byte) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = gl.Ptr(data)
	}
	internal := int32(format)
	if format == render.RGBA {
		internal = gl.RGBA8
	}
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(uint32(target), int32(level), internal, int32(width), int32(height), 0, uint32(format), uint32(ty), p)
}

func (coreGL) DeleteTexture(texture uint32) { gl.DeleteTextures(1, &texture) }

func (coreGL) DrawElements(mode render.Enum, count int, ty render.Enum, offset int) {
	gl.DrawElements(uint32(mode), int32(count), uint32(ty), glOffset(offset))
}

func (coreGL) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (coreGL) ClearColor(r, g, b, a float32)          { gl.ClearColor(r, g, b, a) }
func (coreGL) Clear(mask render.Enum)                 { gl.Clear(uint32(mask)) }
func (coreGL) Enable(capability render.Enum)          { gl.Enable(uint32(capability)) }
func (coreGL) BlendFunc(sfactor, dfactor render.Enum) { gl.BlendFunc(uint32(sfactor), uint32(dfactor)) }

func (coreGL) GetError() render.Enum { return render.Enum(gl.GetError()) }

// GetString answers EXTENSIONS by walking the indexed list; the core profile
// rejects it as a plain string query.
func (coreGL) GetString(name render.Enum) string {
	if name == render.EXTENSIONS {
		var n int32
		gl.GetIntegerv(gl.NUM_EXTENSIONS, &n)
		exts := make([]string, 0, n)
		for i := int32(0); i < n; i++ {
			if p := gl.GetStringi(gl.EXTENSIONS, uint32(i)); p != nil {
				exts = append(exts, gl.GoStr(p))
			}
		}
		return strings.Join(exts, " ")
	}
	p := gl.GetString(uint32(name))
	if p == nil {
		return ""
	}
	return gl.GoStr(p)
}

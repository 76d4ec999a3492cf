//go:build android

package mobile

import (
	"golang.org/x/mobile/gl"

	"firstgame/internal/render"
)

// esGL adapts an x/mobile GLES context to render.GL.
type esGL struct {
	ctx gl.Context
}

var _ render.GL = esGL{}

func shader(v uint32) gl.Shader    { return gl.Shader{Value: v} }
func program(v uint32) gl.Program  { return gl.Program{Init: true, Value: v} }
func attrib(loc int32) gl.Attrib   { return gl.Attrib{Value: uint(loc)} }
func uniform(loc int32) gl.Uniform { return gl.Uniform{Value: loc} }

func (g esGL) CreateShader(kind render.Enum) uint32 {
	return g.ctx.CreateShader(gl.Enum(kind)).Value
}

func (g esGL) ShaderSource(s uint32, src string) { g.ctx.ShaderSource(shader(s), src) }
func (g esGL) CompileShader(s uint32)            { g.ctx.CompileShader(shader(s)) }

func (g esGL) GetShaderi(s uint32, pname render.Enum) int {
	return g.ctx.GetShaderi(shader(s), gl.Enum(pname))
}

func (g esGL) GetShaderInfoLog(s uint32) string { return g.ctx.GetShaderInfoLog(shader(s)) }
func (g esGL) DeleteShader(s uint32)            { g.ctx.DeleteShader(shader(s)) }

func (g esGL) CreateProgram() uint32             { return g.ctx.CreateProgram().Value }
func (g esGL) AttachShader(p, s uint32)          { g.ctx.AttachShader(program(p), shader(s)) }
func (g esGL) DetachShader(p, s uint32)          { g.ctx.DetachShader(program(p), shader(s)) }
func (g esGL) LinkProgram(p uint32)              { g.ctx.LinkProgram(program(p)) }
func (g esGL) GetProgramInfoLog(p uint32) string { return g.ctx.GetProgramInfoLog(program(p)) }
func (g esGL) DeleteProgram(p uint32)            { g.ctx.DeleteProgram(program(p)) }
func (g esGL) UseProgram(p uint32)               { g.ctx.UseProgram(program(p)) }

func (g esGL) GetProgrami(p uint32, pname render.Enum) int {
	return g.ctx.GetProgrami(program(p), gl.Enum(pname))
}

// Unresolved locations come back as the all-ones value, which narrows to -1.
func (g esGL) GetAttribLocation(p uint32, name string) int32 {
	return int32(g.ctx.GetAttribLocation(program(p), name).Value)
}

func (g esGL) GetUniformLocation(p uint32, name string) int32 {
	return g.ctx.GetUniformLocation(program(p), name).Value
}

func (g esGL) UniformMatrix4fv(location int32, m []float32) {
	g.ctx.UniformMatrix4fv(uniform(location), m)
}

func (g esGL) CreateBuffer() uint32 { return g.ctx.CreateBuffer().Value }

func (g esGL) BindBuffer(target render.Enum, b uint32) {
	g.ctx.BindBuffer(gl.Enum(target), gl.Buffer{Value: b})
}

func (g esGL) BufferData(target render.Enum, data []byte, usage render.Enum) {
	g.ctx.BufferData(gl.Enum(target), data, gl.Enum(usage))
}

func (g esGL) DeleteBuffer(b uint32) { g.ctx.DeleteBuffer(gl.Buffer{Value: b}) }

func (g esGL) EnableVertexAttribArray(location int32)  { g.ctx.EnableVertexAttribArray(attrib(location)) }
func (g esGL) DisableVertexAttribArray(location int32) { g.ctx.DisableVertexAttribArray(attrib(location)) }

func (g esGL) VertexAttribPointer(location int32, size int, ty render.Enum, normalized bool, stride, offset int) {
	g.ctx.VertexAttribPointer(attrib(location), size, gl.Enum(ty), normalized, stride, offset)
}

func (g esGL) ActiveTexture(unit render.Enum) { g.ctx.ActiveTexture(gl.Enum(unit)) }
func (g esGL) CreateTexture() uint32          { return g.ctx.CreateTexture().Value }

func (g esGL) BindTexture(target render.Enum, t uint32) {
	g.ctx.BindTexture(gl.Enum(target), gl.Texture{Value: t})
}

func (g esGL) TexParameteri(target, pname render.Enum, param int) {
	g.ctx.TexParameteri(gl.Enum(target), gl.Enum(pname), param)
}

// GLES2 requires the internal format to equal the pixel format.
func (g esGL) TexImage2D(target render.Enum, level, width, height int, format, ty render.Enum, data []byte) {
	g.ctx.TexImage2D(gl.Enum(target), level, int(format), width, height, gl.Enum(format), gl.Enum(ty), data)
}

func (g esGL) DeleteTexture(t uint32) { g.ctx.DeleteTexture(gl.Texture{Value: t}) }

func (g esGL) DrawElements(mode render.Enum, count int, ty render.Enum, offset int) {
	g.ctx.DrawElements(gl.Enum(mode), count, gl.Enum(ty), offset)
}

func (g esGL) Viewport(x, y, width, height int)       { g.ctx.Viewport(x, y, width, height) }
func (g esGL) ClearColor(r, gr, b, a float32)         { g.ctx.ClearColor(r, gr, b, a) }
func (g esGL) Clear(mask render.Enum)                 { g.ctx.Clear(gl.Enum(mask)) }
func (g esGL) Enable(capability render.Enum)          { g.ctx.Enable(gl.Enum(capability)) }
func (g esGL) BlendFunc(sfactor, dfactor render.Enum) { g.ctx.BlendFunc(gl.Enum(sfactor), gl.Enum(dfactor)) }

func (g esGL) GetError() render.Enum             { return render.Enum(g.ctx.GetError()) }
func (g esGL) GetString(name render.Enum) string { return g.ctx.GetString(gl.Enum(name)) }

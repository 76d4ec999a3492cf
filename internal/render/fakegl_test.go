package render

import (
	"strings"
)

// fakeGL is a software stand-in for a GL context. Shaders compile when their
// source contains "void main"; names resolve when they occur in any attached
// source. Every call is appended to calls.
type fakeGL struct {
	next     uint32
	calls    []string
	sources  map[uint32]string
	attached map[uint32][]uint32
	linkFail bool
	errors   []Enum

	live      map[uint32]string // handle -> kind, for leak checks
	uniforms  map[int32][]float32
	enabled   map[int32]bool
	draws     int
	drawCount int
	clears    int
	viewport  [4]int
	bufData   map[uint32][]byte
	bound     map[Enum]uint32
	texImages int
	strings   map[Enum]string
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		sources:  map[uint32]string{},
		attached: map[uint32][]uint32{},
		live:     map[uint32]string{},
		uniforms: map[int32][]float32{},
		enabled:  map[int32]bool{},
		bufData:  map[uint32][]byte{},
		bound:    map[Enum]uint32{},
		strings: map[Enum]string{
			VENDOR:     "fake",
			RENDERER:   "fake renderer",
			VERSION:    "OpenGL ES 3.0 fake",
			EXTENSIONS: "GL_OES_fake GL_EXT_fake",
		},
	}
}

func (f *fakeGL) alloc(kind string) uint32 {
	f.next++
	f.live[f.next] = kind
	return f.next
}

func (f *fakeGL) free(h uint32) { delete(f.live, h) }

func (f *fakeGL) liveOf(kind string) int {
	n := 0
	for _, k := range f.live {
		if k == kind {
			n++
		}
	}
	return n
}

func (f *fakeGL) record(c string) { f.calls = append(f.calls, c) }

func (f *fakeGL) CreateShader(kind Enum) uint32 { f.record("CreateShader"); return f.alloc("shader") }
func (f *fakeGL) ShaderSource(sh uint32, src string) {
	f.sources[sh] = src
}
func (f *fakeGL) CompileShader(uint32) { f.record("CompileShader") }
func (f *fakeGL) GetShaderi(sh uint32, pname Enum) int {
	if pname == COMPILE_STATUS && strings.Contains(f.sources[sh], "void main") {
		return 1
	}
	return 0
}
func (f *fakeGL) GetShaderInfoLog(uint32) string { return "ERROR: 0:1: syntax error\n" }
func (f *fakeGL) DeleteShader(sh uint32)         { f.record("DeleteShader"); f.free(sh) }

func (f *fakeGL) CreateProgram() uint32 { f.record("CreateProgram"); return f.alloc("program") }
func (f *fakeGL) AttachShader(p, sh uint32) {
	f.attached[p] = append(f.attached[p], sh)
}
func (f *fakeGL) DetachShader(uint32, uint32) {}
func (f *fakeGL) LinkProgram(uint32)          { f.record("LinkProgram") }
func (f *fakeGL) GetProgrami(p uint32, pname Enum) int {
	if pname == LINK_STATUS && !f.linkFail {
		return 1
	}
	return 0
}
func (f *fakeGL) GetProgramInfoLog(uint32) string { return "link error" }
func (f *fakeGL) DeleteProgram(p uint32)          { f.record("DeleteProgram"); f.free(p) }
func (f *fakeGL) UseProgram(p uint32)             { f.record("UseProgram") }

func (f *fakeGL) location(p uint32, name string) int32 {
	for i, sh := range f.attached[p] {
		if strings.Contains(f.sources[sh], name) {
			return int32(i*8 + len(name)%8)
		}
	}
	return -1
}
func (f *fakeGL) GetAttribLocation(p uint32, name string) int32  { return f.location(p, name) }
func (f *fakeGL) GetUniformLocation(p uint32, name string) int32 {
	loc := f.location(p, name)
	if loc < 0 {
		return -1
	}
	return 100 + loc
}
func (f *fakeGL) UniformMatrix4fv(loc int32, m []float32) {
	f.record("UniformMatrix4fv")
	f.uniforms[loc] = append([]float32(nil), m...)
}

func (f *fakeGL) CreateBuffer() uint32 { return f.alloc("buffer") }
func (f *fakeGL) BindBuffer(target Enum, b uint32) {
	f.bound[target] = b
}
func (f *fakeGL) BufferData(target Enum, data []byte, _ Enum) {
	f.bufData[f.bound[target]] = append([]byte(nil), data...)
}
func (f *fakeGL) DeleteBuffer(b uint32) { f.free(b) }

func (f *fakeGL) EnableVertexAttribArray(loc int32)  { f.enabled[loc] = true }
func (f *fakeGL) DisableVertexAttribArray(loc int32) { f.enabled[loc] = false }
func (f *fakeGL) VertexAttribPointer(loc int32, size int, ty Enum, normalized bool, stride, offset int) {
	f.record("VertexAttribPointer")
}

func (f *fakeGL) ActiveTexture(Enum)    {}
func (f *fakeGL) CreateTexture() uint32 { return f.alloc("texture") }
func (f *fakeGL) BindTexture(target Enum, t uint32) {
	f.bound[target] = t
}
func (f *fakeGL) TexParameteri(Enum, Enum, int) {}
func (f *fakeGL) TexImage2D(Enum, int, int, int, Enum, Enum, []byte) {
	f.texImages++
}
func (f *fakeGL) DeleteTexture(t uint32) { f.free(t) }

func (f *fakeGL) DrawElements(mode Enum, count int, ty Enum, offset int) {
	f.record("DrawElements")
	f.draws++
	f.drawCount = count
}
func (f *fakeGL) Viewport(x, y, w, h int)    { f.viewport = [4]int{x, y, w, h} }
func (f *fakeGL) ClearColor(_, _, _, _ float32) {}
func (f *fakeGL) Clear(Enum)                 { f.record("Clear"); f.clears++ }
func (f *fakeGL) Enable(Enum)                {}
func (f *fakeGL) BlendFunc(Enum, Enum)       {}

func (f *fakeGL) GetError() Enum {
	if len(f.errors) == 0 {
		return NO_ERROR
	}
	e := f.errors[0]
	f.errors = f.errors[1:]
	return e
}
func (f *fakeGL) GetString(name Enum) string { return f.strings[name] }

// fakeSurface hands out a fakeGL and counts presents and releases.
type fakeSurface struct {
	gl       *fakeGL
	configs  []FramebufferConfig
	bound    FramebufferConfig
	bindErr  error
	profile  Profile
	swaps    int
	releases int
}

func (s *fakeSurface) Configs() []FramebufferConfig { return s.configs }

func (s *fakeSurface) Bind(cfg FramebufferConfig) (GL, error) {
	if s.bindErr != nil {
		return nil, s.bindErr
	}
	s.bound = cfg
	return s.gl, nil
}

func (s *fakeSurface) Profile() Profile { return s.profile }

func (s *fakeSurface) SwapBuffers() {
	s.swaps++
	s.gl.record("SwapBuffers")
}

func (s *fakeSurface) Release() { s.releases++ }

package render

// Enum is a GL enumerant. Values match the Khronos headers so adapters can
// pass them straight through.
type Enum uint32

const (
	NO_ERROR                      Enum = 0
	INVALID_ENUM                  Enum = 0x0500
	INVALID_VALUE                 Enum = 0x0501
	INVALID_OPERATION             Enum = 0x0502
	OUT_OF_MEMORY                 Enum = 0x0505
	INVALID_FRAMEBUFFER_OPERATION Enum = 0x0506

	VERTEX_SHADER   Enum = 0x8B31
	FRAGMENT_SHADER Enum = 0x8B30
	COMPILE_STATUS  Enum = 0x8B81
	LINK_STATUS     Enum = 0x8B82

	ARRAY_BUFFER         Enum = 0x8892
	ELEMENT_ARRAY_BUFFER Enum = 0x8893
	STATIC_DRAW          Enum = 0x88E4

	FLOAT          Enum = 0x1406
	UNSIGNED_BYTE  Enum = 0x1401
	UNSIGNED_SHORT Enum = 0x1403
	TRIANGLES      Enum = 0x0004

	TEXTURE0           Enum = 0x84C0
	TEXTURE_2D         Enum = 0x0DE1
	TEXTURE_MAG_FILTER Enum = 0x2800
	TEXTURE_MIN_FILTER Enum = 0x2801
	TEXTURE_WRAP_S     Enum = 0x2802
	TEXTURE_WRAP_T     Enum = 0x2803
	LINEAR             Enum = 0x2601
	CLAMP_TO_EDGE      Enum = 0x812F
	RGBA               Enum = 0x1908

	COLOR_BUFFER_BIT    Enum = 0x4000
	BLEND               Enum = 0x0BE2
	SRC_ALPHA           Enum = 0x0302
	ONE_MINUS_SRC_ALPHA Enum = 0x0303

	VENDOR     Enum = 0x1F00
	RENDERER   Enum = 0x1F01
	VERSION    Enum = 0x1F02
	EXTENSIONS Enum = 0x1F03
)

// GL is the subset of OpenGL (ES 2 / 4.1 core) the renderer needs.
// Object handles are uint32 with 0 meaning none. Locations are int32 with -1
// meaning the name did not resolve.
type GL interface {
	CreateShader(kind Enum) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	GetShaderi(shader uint32, pname Enum) int
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgrami(program uint32, pname Enum) int
	GetProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	GetAttribLocation(program uint32, name string) int32
	GetUniformLocation(program uint32, name string) int32
	UniformMatrix4fv(location int32, m []float32)

	CreateBuffer() uint32
	BindBuffer(target Enum, buffer uint32)
	BufferData(target Enum, data []byte, usage Enum)
	DeleteBuffer(buffer uint32)

	EnableVertexAttribArray(location int32)
	DisableVertexAttribArray(location int32)
	VertexAttribPointer(location int32, size int, ty Enum, normalized bool, stride, offset int)

	ActiveTexture(unit Enum)
	CreateTexture() uint32
	BindTexture(target Enum, texture uint32)
	TexParameteri(target, pname Enum, param int)
	TexImage2D(target Enum, level, width, height int, format, ty Enum, data []byte)
	DeleteTexture(texture uint32)

	DrawElements(mode Enum, count int, ty Enum, offset int)
	Viewport(x, y, width, height int)
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	Enable(capability Enum)
	BlendFunc(sfactor, dfactor Enum)

	GetError() Enum
	GetString(name Enum) string
}

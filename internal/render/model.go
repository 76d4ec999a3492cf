package render

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Interleaved vertex layout: vec3 position then vec2 UV, tightly packed.
const (
	vertexStride = 5 * 4
	uvOffset     = 3 * 4
)

type Vertex struct {
	Position mgl32.Vec3
	UV       mgl32.Vec2
}

// Model is an immutable indexed mesh uploaded once, with the texture it is
// drawn with. The model does not own the texture.
type Model struct {
	gl       GL
	vertices []Vertex
	indices  []uint16
	texture  *Texture
	vbo      uint32
	ibo      uint32
}

// QuadVertices is the full-screen quad, wound to match QuadIndices.
func QuadVertices() []Vertex {
	return []Vertex{
		{Position: mgl32.Vec3{1, 1, 0}, UV: mgl32.Vec2{0, 0}},
		{Position: mgl32.Vec3{-1, 1, 0}, UV: mgl32.Vec2{1, 0}},
		{Position: mgl32.Vec3{-1, -1, 0}, UV: mgl32.Vec2{1, 1}},
		{Position: mgl32.Vec3{1, -1, 0}, UV: mgl32.Vec2{0, 1}},
	}
}

func QuadIndices() []uint16 {
	return []uint16{0, 1, 2, 0, 2, 3}
}

// NewModel uploads vertices and indices into static buffers.
func NewModel(gl GL, vertices []Vertex, indices []uint16, texture *Texture) *Model {
	m := &Model{
		gl:       gl,
		vertices: append([]Vertex(nil), vertices...),
		indices:  append([]uint16(nil), indices...),
		texture:  texture,
	}
	m.vbo = gl.CreateBuffer()
	gl.BindBuffer(ARRAY_BUFFER, m.vbo)
	gl.BufferData(ARRAY_BUFFER, vertexBytes(m.vertices), STATIC_DRAW)

	m.ibo = gl.CreateBuffer()
	gl.BindBuffer(ELEMENT_ARRAY_BUFFER, m.ibo)
	gl.BufferData(ELEMENT_ARRAY_BUFFER, indexBytes(m.indices), STATIC_DRAW)
	return m
}

func (m *Model) IndexCount() int    { return len(m.indices) }
func (m *Model) Texture() *Texture  { return m.texture }
func (m *Model) Vertices() []Vertex { return m.vertices }
func (m *Model) Indices() []uint16  { return m.indices }

// Release deletes the GPU buffers. Safe to call more than once.
func (m *Model) Release() {
	if m.vbo != 0 {
		m.gl.DeleteBuffer(m.vbo)
		m.vbo = 0
	}
	if m.ibo != 0 {
		m.gl.DeleteBuffer(m.ibo)
		m.ibo = 0
	}
}

func vertexBytes(vs []Vertex) []byte {
	out := make([]byte, len(vs)*vertexStride)
	for i, v := range vs {
		o := i * vertexStride
		vals := [5]float32{v.Position[0], v.Position[1], v.Position[2], v.UV[0], v.UV[1]}
		for j, f := range vals {
			binary.LittleEndian.PutUint32(out[o+j*4:], math.Float32bits(f))
		}
	}
	return out
}

func indexBytes(is []uint16) []byte {
	out := make([]byte, len(is)*2)
	for i, v := range is {
		binary.LittleEndian.PutUint16(out[i*2:], v)
	}
	return out
}

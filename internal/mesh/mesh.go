// Package mesh uploads hardcoded vertex and index data to the GPU and
// issues the draw calls for it.
package mesh

import (
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Mesh owns a vertex array object together with its vertex buffer and,
// when indexed, its element buffer.
type Mesh struct {
	VAO, VBO, EBO uint32

	vertices int32
	indices  int32
}

// New uploads vertices (and indices, when non-empty) with STATIC_DRAW and
// configures one attribute pointer per layout entry. The VAO is bound first
// so that the buffer bindings and attribute state are recorded in it.
func New(vertices []float32, indices []uint32, layout Layout) *Mesh {
	m := &Mesh{
		vertices: layout.VertexCount(vertices),
		indices:  int32(len(indices)),
	}
	gl.GenVertexArrays(1, &m.VAO)
	gl.GenBuffers(1, &m.VBO)
	gl.BindVertexArray(m.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*sizeofFloat32, gl.Ptr(vertices), gl.STATIC_DRAW)

	if len(indices) > 0 {
		gl.GenBuffers(1, &m.EBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.EBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*sizeofUint32, gl.Ptr(indices), gl.STATIC_DRAW)
	}

	stride := layout.Stride()
	for i, size := range layout {
		gl.VertexAttribPointer(uint32(i), size, gl.FLOAT, false, stride, gl.PtrOffset(layout.Offset(i)))
		gl.EnableVertexAttribArray(uint32(i))
	}
	return m
}

func (m *Mesh) Indexed() bool {
	return m.EBO != 0
}

// Count is the number of indices, or vertices for non-indexed meshes.
func (m *Mesh) Count() int32 {
	if m.Indexed() {
		return m.indices
	}
	return m.vertices
}

func (m *Mesh) Bind() {
	gl.BindVertexArray(m.VAO)
}

func Unbind() {
	gl.BindVertexArray(0)
}

// Draw binds the mesh and draws all of it as triangles.
func (m *Mesh) Draw() {
	m.DrawRange(0, m.Count())
}

// DrawRange draws count vertices (or indices) starting at first.
func (m *Mesh) DrawRange(first, count int32) {
	m.Bind()
	if m.Indexed() {
		gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_INT, gl.PtrOffset(indexOffset(first)))
		return
	}
	gl.DrawArrays(gl.TRIANGLES, first, count)
}

func (m *Mesh) Delete() {
	gl.DeleteVertexArrays(1, &m.VAO)
	gl.DeleteBuffers(1, &m.VBO)
	if m.EBO != 0 {
		gl.DeleteBuffers(1, &m.EBO)
	}
}

// indexOffset is the byte offset of index first within the element buffer.
func indexOffset(first int32) int {
	return int(first) * sizeofUint32
}

package mesh

const (
	sizeofFloat32 = 4
	sizeofUint32  = 4
)

// Layout lists the component count of each interleaved float attribute.
// Attribute i is bound to shader location i.
type Layout []int32

var (
	// Position is a single vec3 attribute.
	Position = Layout{3}
	// PositionColor is a vec3 position followed by a vec3 color.
	PositionColor = Layout{3, 3}
)

// Components is the number of floats per vertex.
func (l Layout) Components() int32 {
	var n int32
	for _, c := range l {
		n += c
	}
	return n
}

// Stride is the size of one vertex in bytes.
func (l Layout) Stride() int32 {
	return l.Components() * sizeofFloat32
}

// Offset is the byte offset of attribute i within a vertex.
func (l Layout) Offset(i int) int {
	var n int32
	for _, c := range l[:i] {
		n += c
	}
	return int(n) * sizeofFloat32
}

// VertexCount is how many whole vertices fit in data.
func (l Layout) VertexCount(data []float32) int32 {
	c := l.Components()
	if c == 0 {
		return 0
	}
	return int32(len(data)) / c
}

package rock

import (
	"encoding/binary"
	gomath "math"
)

// VertexStride is the packed size of one Vertex in bytes.
const VertexStride = 44

// Attribute byte offsets inside a packed vertex.
const (
	PositionOffset = 0
	NormalOffset   = 12
	TangentOffset  = 24
	TexCoordOffset = 36
)

// IndexSize is the packed size of one index in bytes.
const IndexSize = 4

// PackVertices encodes vertices as little-endian float32 attributes,
// VertexStride bytes each.
func PackVertices(vertices []Vertex) []byte {
	buf := make([]byte, len(vertices)*VertexStride)
	for i, v := range vertices {
		putVertex(buf[i*VertexStride:], v)
	}
	return buf
}

// PackIndices encodes indices as little-endian uint32.
func PackIndices(indices []uint32) []byte {
	buf := make([]byte, len(indices)*IndexSize)
	for i, idx := range indices {
		binary.LittleEndian.PutUint32(buf[i*IndexSize:], idx)
	}
	return buf
}

// UnpackVertices decodes a buffer produced by PackVertices. Trailing bytes that
// do not form a whole vertex are ignored.
func UnpackVertices(buf []byte) []Vertex {
	vertices := make([]Vertex, len(buf)/VertexStride)
	for i := range vertices {
		vertices[i] = readVertex(buf[i*VertexStride:])
	}
	return vertices
}

// UnpackIndices decodes a buffer produced by PackIndices.
func UnpackIndices(buf []byte) []uint32 {
	indices := make([]uint32, len(buf)/IndexSize)
	for i := range indices {
		indices[i] = binary.LittleEndian.Uint32(buf[i*IndexSize:])
	}
	return indices
}

func putVertex(b []byte, v Vertex) {
	fields := [11]float32{
		v.Position.X, v.Position.Y, v.Position.Z,
		v.Normal.X, v.Normal.Y, v.Normal.Z,
		v.Tangent.X, v.Tangent.Y, v.Tangent.Z,
		v.TexCoord.X, v.TexCoord.Y,
	}
	for i, f := range fields {
		binary.LittleEndian.PutUint32(b[i*4:], gomath.Float32bits(f))
	}
}

func readVertex(b []byte) Vertex {
	var f [11]float32
	for i := range f {
		f[i] = gomath.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	var v Vertex
	v.Position.X, v.Position.Y, v.Position.Z = f[0], f[1], f[2]
	v.Normal.X, v.Normal.Y, v.Normal.Z = f[3], f[4], f[5]
	v.Tangent.X, v.Tangent.Y, v.Tangent.Z = f[6], f[7], f[8]
	v.TexCoord.X, v.TexCoord.Y = f[9], f[10]
	return v
}

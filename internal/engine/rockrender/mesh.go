package rockrender

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/rockgen/pkg/rock"
)

// ErrEmptyMesh is returned when Upload is given no vertices or indices.
var ErrEmptyMesh = errors.New("empty mesh")

// Mesh owns the immutable vertex and index buffers of one rock. It satisfies
// rock.Uploader.
type Mesh struct {
	log *zap.Logger

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

var _ rock.Uploader = (*Mesh)(nil)

// NewMesh returns a mesh with no GPU buffers.
func NewMesh(log *zap.Logger) *Mesh {
	if log == nil {
		log = zap.NewNop()
	}
	return &Mesh{log: log}
}

// Upload creates static buffers for the vertex and index data. Buffers from a
// previous upload are released first.
func (m *Mesh) Upload(vertices []rock.Vertex, indices []uint32) error {
	if len(vertices) == 0 || len(indices) == 0 {
		return ErrEmptyMesh
	}
	if m.vao != 0 {
		if err := m.Release(); err != nil {
			return err
		}
	}

	vertexData := rock.PackVertices(vertices)
	indexData := rock.PackIndices(indices)

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertexData), gl.Ptr(vertexData), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indexData), gl.Ptr(indexData), gl.STATIC_DRAW)

	stride := int32(rock.VertexStride)

	gl.EnableVertexAttribArray(attribPosition)
	gl.VertexAttribPointerWithOffset(attribPosition, 3, gl.FLOAT, false, stride, rock.PositionOffset)

	gl.EnableVertexAttribArray(attribNormal)
	gl.VertexAttribPointerWithOffset(attribNormal, 3, gl.FLOAT, false, stride, rock.NormalOffset)

	gl.EnableVertexAttribArray(attribTangent)
	gl.VertexAttribPointerWithOffset(attribTangent, 3, gl.FLOAT, false, stride, rock.TangentOffset)

	gl.EnableVertexAttribArray(attribTexCoord)
	gl.VertexAttribPointerWithOffset(attribTexCoord, 2, gl.FLOAT, false, stride, rock.TexCoordOffset)

	gl.BindVertexArray(0)
	m.indexCount = int32(len(indices))

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("uploading mesh: gl error 0x%x", code)
	}

	m.log.Debug("mesh uploaded",
		zap.Uint32("vao", m.vao),
		zap.Int("vertex_bytes", len(vertexData)),
		zap.Int("index_bytes", len(indexData)),
	)
	return nil
}

// Release deletes the buffers. It is a no-op when nothing is uploaded.
func (m *Mesh) Release() error {
	if m.vao == 0 && m.vbo == 0 && m.ebo == 0 {
		return nil
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	m.vao, m.vbo, m.ebo, m.indexCount = 0, 0, 0, 0

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("releasing mesh: gl error 0x%x", code)
	}
	return nil
}

// Loaded reports whether the mesh holds GPU buffers.
func (m *Mesh) Loaded() bool {
	return m.vao != 0
}

// Draw issues one indexed draw call.
func (m *Mesh) Draw() {
	if m.vao == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

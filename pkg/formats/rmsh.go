// Package formats reads and writes rock mesh files.
package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/rockgen/pkg/rock"
)

// RMSH format errors.
var (
	ErrInvalidRMSHMagic       = errors.New("invalid RMSH magic: expected 'RMSH'")
	ErrUnsupportedRMSHVersion = errors.New("unsupported RMSH version")
	ErrTruncatedRMSHData      = errors.New("truncated RMSH data")
	ErrInvalidRMSHIndex       = errors.New("RMSH index out of range")
)

const (
	rmshMagic      = "RMSH"
	rmshHeaderSize = 4 + 2 + 4 + 4

	// Counts above this are rejected before allocating.
	rmshMaxElements = 1 << 26
)

// RMSHVersion represents the RMSH file version.
type RMSHVersion struct {
	Major uint8
	Minor uint8
}

// String returns the version as "Major.Minor".
func (v RMSHVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// RMSHCurrentVersion is written by WriteRMSH.
var RMSHCurrentVersion = RMSHVersion{Major: 1, Minor: 0}

// RMSH is a rock mesh as stored on disk: a header followed by the packed
// 44-byte vertices and uint32 indices, all little-endian.
type RMSH struct {
	Version  RMSHVersion
	Vertices []rock.Vertex
	Indices  []uint32
}

// Mesh returns the file contents as a rock mesh.
func (r *RMSH) Mesh() *rock.Mesh {
	return &rock.Mesh{Vertices: r.Vertices, Indices: r.Indices}
}

// WriteRMSH writes vertices and indices in RMSH format.
func WriteRMSH(w io.Writer, vertices []rock.Vertex, indices []uint32) error {
	buf := new(bytes.Buffer)
	buf.Grow(rmshHeaderSize + len(vertices)*rock.VertexStride + len(indices)*rock.IndexSize)

	buf.WriteString(rmshMagic)
	buf.WriteByte(RMSHCurrentVersion.Major)
	buf.WriteByte(RMSHCurrentVersion.Minor)
	binary.Write(buf, binary.LittleEndian, uint32(len(vertices)))
	binary.Write(buf, binary.LittleEndian, uint32(len(indices)))
	buf.Write(rock.PackVertices(vertices))
	buf.Write(rock.PackIndices(indices))

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing RMSH: %w", err)
	}
	return nil
}

// WriteRMSHFile writes an RMSH file to disk.
func WriteRMSHFile(path string, vertices []rock.Vertex, indices []uint32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating RMSH file: %w", err)
	}
	if err := WriteRMSH(f, vertices, indices); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ParseRMSH parses an RMSH file from raw bytes.
func ParseRMSH(data []byte) (*RMSH, error) {
	if len(data) < rmshHeaderSize {
		return nil, ErrTruncatedRMSHData
	}

	if string(data[0:4]) != rmshMagic {
		return nil, ErrInvalidRMSHMagic
	}

	version := RMSHVersion{Major: data[4], Minor: data[5]}
	if version.Major != RMSHCurrentVersion.Major {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedRMSHVersion, version)
	}

	r := bytes.NewReader(data[6:])

	var vertexCount, indexCount uint32
	if err := binary.Read(r, binary.LittleEndian, &vertexCount); err != nil {
		return nil, fmt.Errorf("%w: reading vertex count", ErrTruncatedRMSHData)
	}
	if err := binary.Read(r, binary.LittleEndian, &indexCount); err != nil {
		return nil, fmt.Errorf("%w: reading index count", ErrTruncatedRMSHData)
	}

	if vertexCount > rmshMaxElements || indexCount > rmshMaxElements {
		return nil, fmt.Errorf("invalid RMSH counts: %d vertices, %d indices", vertexCount, indexCount)
	}
	if indexCount%3 != 0 {
		return nil, fmt.Errorf("invalid RMSH index count %d: not a triangle list", indexCount)
	}

	need := int(vertexCount)*rock.VertexStride + int(indexCount)*rock.IndexSize
	if r.Len() < need {
		return nil, fmt.Errorf("%w: need %d bytes of mesh data, have %d", ErrTruncatedRMSHData, need, r.Len())
	}

	mesh := &RMSH{
		Version:  version,
		Vertices: make([]rock.Vertex, vertexCount),
		Indices:  make([]uint32, indexCount),
	}

	if err := binary.Read(r, binary.LittleEndian, mesh.Vertices); err != nil {
		return nil, fmt.Errorf("%w: reading vertices", ErrTruncatedRMSHData)
	}
	if err := binary.Read(r, binary.LittleEndian, mesh.Indices); err != nil {
		return nil, fmt.Errorf("%w: reading indices", ErrTruncatedRMSHData)
	}

	for i, idx := range mesh.Indices {
		if idx >= vertexCount {
			return nil, fmt.Errorf("%w: index %d references vertex %d of %d", ErrInvalidRMSHIndex, i, idx, vertexCount)
		}
	}

	return mesh, nil
}

// ParseRMSHFile parses an RMSH file from disk.
func ParseRMSHFile(path string) (*RMSH, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading RMSH file: %w", err)
	}
	return ParseRMSH(data)
}

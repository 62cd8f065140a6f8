package formats

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/rockgen/pkg/rock"
)

// WriteOBJ writes the mesh as a Wavefront OBJ with positions, texture
// coordinates and normals. Indices become 1-based v/vt/vn triplets. The
// texture v axis is flipped to OBJ's bottom-left origin.
func WriteOBJ(w io.Writer, name string, vertices []rock.Vertex, indices []uint32) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# rockgen mesh: %d vertices, %d triangles\n", len(vertices), len(indices)/3)
	if name != "" {
		fmt.Fprintf(bw, "o %s\n", name)
	}

	for _, v := range vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.Position.X, v.Position.Y, v.Position.Z)
	}
	for _, v := range vertices {
		fmt.Fprintf(bw, "vt %g %g\n", v.TexCoord.X, 1-v.TexCoord.Y)
	}
	for _, v := range vertices {
		fmt.Fprintf(bw, "vn %g %g %g\n", v.Normal.X, v.Normal.Y, v.Normal.Z)
	}

	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i]+1, indices[i+1]+1, indices[i+2]+1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing OBJ: %w", err)
	}
	return nil
}

// WriteOBJFile writes an OBJ file to disk.
func WriteOBJFile(path, name string, vertices []rock.Vertex, indices []uint32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating OBJ file: %w", err)
	}
	if err := WriteOBJ(f, name, vertices, indices); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

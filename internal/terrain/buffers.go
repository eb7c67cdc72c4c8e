package terrain

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/faultline-terrain/pkg/math"
)

// Div returns the grid resolution.
func (t *Terrain) Div() int { return t.div }

// Bounds returns the XY domain.
func (t *Terrain) Bounds() Bounds { return t.bounds }

// NumVertices returns (div+1)^2.
func (t *Terrain) NumVertices() int { return len(t.vertices) }

// NumFaces returns 2*div^2.
func (t *Terrain) NumFaces() int { return len(t.faces) / 3 }

// MinZ returns the lowest vertex height.
func (t *Terrain) MinZ() float32 { return t.minZ }

// MaxZ returns the highest vertex height.
func (t *Terrain) MaxZ() float32 { return t.maxZ }

// Vertex returns the position of grid vertex (i, j).
// Returns false if (i, j) is outside the grid.
func (t *Terrain) Vertex(i, j int) (math.Vec3, bool) {
	if !t.inGrid(i, j) {
		return math.Vec3{}, false
	}
	return t.vertices[t.index(i, j)], true
}

// Normal returns the unit normal of grid vertex (i, j).
// Returns false if (i, j) is outside the grid.
func (t *Terrain) Normal(i, j int) (math.Vec3, bool) {
	if !t.inGrid(i, j) {
		return math.Vec3{}, false
	}
	return t.normals[t.index(i, j)], true
}

func (t *Terrain) inGrid(i, j int) bool {
	return i >= 0 && j >= 0 && i <= t.div && j <= t.div
}

// Positions returns a flat copy of vertex positions, 3 floats per vertex.
func (t *Terrain) Positions() []float32 {
	return flatten(t.vertices)
}

// Normals returns a flat copy of vertex normals, 3 floats per vertex.
func (t *Terrain) Normals() []float32 {
	return flatten(t.normals)
}

// Faces returns a copy of the triangle index buffer, 3 indices per face.
func (t *Terrain) Faces() []uint32 {
	return append([]uint32(nil), t.faces...)
}

// Edges returns a copy of the wireframe index buffer, 2 indices per edge.
func (t *Terrain) Edges() []uint32 {
	return append([]uint32(nil), t.edges...)
}

func flatten(vs []math.Vec3) []float32 {
	out := make([]float32, 0, 3*len(vs))
	for _, v := range vs {
		out = append(out, v.X, v.Y, v.Z)
	}
	return out
}

// Stats returns a summary of the generated terrain.
func (t *Terrain) Stats() Stats {
	var sum float64
	for _, v := range t.vertices {
		sum += float64(v.Z)
	}
	return Stats{
		Vertices:        len(t.vertices),
		Faces:           t.NumFaces(),
		EdgeIndices:     len(t.edges),
		MinZ:            t.minZ,
		MaxZ:            t.maxZ,
		MeanZ:           float32(sum / float64(len(t.vertices))),
		DegenerateCount: t.degenerate,
	}
}

// Dump writes a debug listing of vertices ("v x y z") and faces ("f a b c").
func (t *Terrain) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, v := range t.vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
	}
	for f := 0; f+2 < len(t.faces); f += 3 {
		fmt.Fprintf(bw, "f %d %d %d\n", t.faces[f], t.faces[f+1], t.faces[f+2])
	}
	return bw.Flush()
}

package terrain

import "github.com/Faultbox/faultline-terrain/pkg/math"

// buildFaces splits every grid cell into triangles (a, b, c) and (b, d, c),
// where a is the cell's lower-left corner, b = a+1, c = a+div+1 and d = c+1.
// Cells are emitted row-major with both triangles of a cell adjacent.
func (t *Terrain) buildFaces() {
	n := t.div
	t.faces = t.faces[:0]
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a := uint32(t.index(i, j))
			b := a + 1
			c := a + uint32(n) + 1
			d := c + 1
			t.faces = append(t.faces,
				a, b, c,
				b, d, c,
			)
		}
	}
}

// computeNormals accumulates the unnormalized cross product of each face into
// its three vertices, then normalizes every vertex once. The cross product
// magnitude is twice the face area, so larger faces weigh more.
// Accumulators are reset first, so repeated calls give the same result.
func (t *Terrain) computeNormals() {
	t.accumulateNormals()

	t.degenerate = 0
	for k, n := range t.normals {
		if n.IsZero() {
			t.degenerate++
			continue
		}
		t.normals[k] = n.Normalize()
	}
}

// accumulateNormals resets the accumulators and adds each face's raw cross
// product to its three vertices.
func (t *Terrain) accumulateNormals() {
	for k := range t.normals {
		t.normals[k] = math.Vec3{}
	}

	for f := 0; f+2 < len(t.faces); f += 3 {
		i0, i1, i2 := t.faces[f], t.faces[f+1], t.faces[f+2]
		p0 := t.vertices[i0]
		e1 := t.vertices[i1].Sub(p0)
		e2 := t.vertices[i2].Sub(p0)
		n := e1.Cross(e2)

		t.normals[i0] = t.normals[i0].Add(n)
		t.normals[i1] = t.normals[i1].Add(n)
		t.normals[i2] = t.normals[i2].Add(n)
	}
}

package terrain

import "github.com/Faultbox/faultline-terrain/pkg/math"

// index returns the row-major linear index of grid vertex (i, j).
func (t *Terrain) index(i, j int) int {
	return i*(t.div+1) + j
}

// buildGrid lays out the (div+1)x(div+1) lattice. Row i walks Y, column j walks X.
// Heights and normal accumulators start at zero.
func (t *Terrain) buildGrid() {
	n := t.div
	dX := (t.bounds.MaxX - t.bounds.MinX) / float32(n)
	dY := (t.bounds.MaxY - t.bounds.MinY) / float32(n)

	for i := 0; i <= n; i++ {
		y := t.bounds.MinY + dY*float32(i)
		for j := 0; j <= n; j++ {
			idx := t.index(i, j)
			t.vertices[idx] = math.Vec3{X: t.bounds.MinX + dX*float32(j), Y: y}
			t.normals[idx] = math.Vec3{}
		}
	}
}

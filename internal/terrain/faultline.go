package terrain

import (
	gomath "math"

	"github.com/Faultbox/faultline-terrain/pkg/math"
)

// applyFaultLines perturbs heights with iterations random half-plane splits.
// Each pass picks a point P in the domain and a unit direction D; vertices with
// dot(V.xy-P, D) > 0 rise by delta, all others sink by delta.
func (t *Terrain) applyFaultLines(rng Rand, iterations int, delta float32) {
	b := t.bounds
	for range iterations {
		p := math.Vec2{
			X: b.MinX + (b.MaxX-b.MinX)*float32(rng.Float64()),
			Y: b.MinY + (b.MaxY-b.MinY)*float32(rng.Float64()),
		}
		d := math.Vec2FromAngle(rng.Float64() * 2 * gomath.Pi)

		for k := range t.vertices {
			v := &t.vertices[k]
			if v.XY().Sub(p).Dot(d) > 0 {
				v.Z += delta
			} else {
				v.Z -= delta
			}
		}
	}
}

package terrain

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/faultline-terrain/pkg/math"
)

// seqRand replays a fixed sequence of draws.
type seqRand struct {
	vals []float64
	pos  int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.pos%len(r.vals)]
	r.pos++
	return v
}

func TestApplyFaultLines_SingleSplit(t *testing.T) {
	tests := []struct {
		name  string
		draws []float64 // px, py, angle fraction
		want  [4]float32
	}{
		// P=(0.5,0.5), D=(1,0): the x=1 column rises.
		{"vertical fault", []float64{0.5, 0.5, 0}, [4]float32{-0.25, 0.25, -0.25, 0.25}},
		// P=(0,0.5), D=(1,0): x=0 lies on the line and sinks.
		{"vertex on line", []float64{0, 0.5, 0}, [4]float32{-0.25, 0.25, -0.25, 0.25}},
		// P=(0.5,0.5), D=(0,1): the y=1 row rises.
		{"horizontal fault", []float64{0.5, 0.5, 0.25}, [4]float32{-0.25, -0.25, 0.25, 0.25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTerrain(unitSquare(1))
			tr.buildGrid()
			tr.applyFaultLines(&seqRand{vals: tt.draws}, 1, 0.25)
			for k, v := range tr.vertices {
				if v.Z != tt.want[k] {
					t.Errorf("vertex %d z = %v, want %v", k, v.Z, tt.want[k])
				}
			}
		})
	}
}

func TestApplyFaultLines_AccumulatesDelta(t *testing.T) {
	tr := newTerrain(unitSquare(1))
	tr.buildGrid()
	tr.applyFaultLines(&seqRand{vals: []float64{0.5, 0.5, 0}}, 3, 0.25)
	if got := tr.vertices[1].Z; got != 0.75 {
		t.Errorf("vertex 1 z = %v, want 0.75", got)
	}
	if got := tr.vertices[0].Z; got != -0.75 {
		t.Errorf("vertex 0 z = %v, want -0.75", got)
	}
}

func TestNew_InjectedRandNormals(t *testing.T) {
	tr, err := New(unitSquare(1), WithIterations(1), WithDelta(0.25),
		WithRand(&seqRand{vals: []float64{0.5, 0.5, 0}}))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if tr.MinZ() != -0.25 || tr.MaxZ() != 0.25 {
		t.Errorf("extents = [%v, %v], want [-0.25, 0.25]", tr.MinZ(), tr.MaxZ())
	}

	// Plane z = 0.5x - 0.25 has normal (-0.5, 0, 1) before normalization.
	want := math.Vec3{X: -0.5, Y: 0, Z: 1}.Normalize()
	for i := 0; i <= 1; i++ {
		for j := 0; j <= 1; j++ {
			n, _ := tr.Normal(i, j)
			if gomath.Abs(float64(n.X-want.X)) > 1e-6 ||
				gomath.Abs(float64(n.Y-want.Y)) > 1e-6 ||
				gomath.Abs(float64(n.Z-want.Z)) > 1e-6 {
				t.Errorf("Normal(%d, %d) = %v, want %v", i, j, n, want)
			}
		}
	}
}

package terrain

import (
	"fmt"
	gomath "math"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/faultline-terrain/pkg/math"
)

// Validate checks the construction parameters.
func (p Params) Validate() error {
	if p.Div <= 0 {
		return fmt.Errorf("%w: div=%d, must be >= 1", ErrInvalidResolution, p.Div)
	}
	if p.Div > MaxDiv {
		return fmt.Errorf("%w: div=%d, max %d", ErrIndexOverflow, p.Div, MaxDiv)
	}
	if !finite(p.MinX) || !finite(p.MaxX) || !(p.MinX < p.MaxX) || !finite(p.MaxX-p.MinX) {
		return fmt.Errorf("%w: x range [%v, %v]", ErrInvalidDomain, p.MinX, p.MaxX)
	}
	if !finite(p.MinY) || !finite(p.MaxY) || !(p.MinY < p.MaxY) || !finite(p.MaxY-p.MinY) {
		return fmt.Errorf("%w: y range [%v, %v]", ErrInvalidDomain, p.MinY, p.MaxY)
	}
	return nil
}

func finite(v float32) bool {
	f := float64(v)
	return !gomath.IsNaN(f) && !gomath.IsInf(f, 0)
}

// New validates p and builds a terrain by running every stage once, in order.
// No buffer is produced when validation fails.
func New(p Params, opts ...Option) (*Terrain, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.iterations < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIterations, o.iterations)
	}
	if !finite(o.delta) || o.delta < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDelta, o.delta)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	t := newTerrain(p)
	log := o.log.With(zap.Int("div", p.Div))

	stage(log, "grid", func() { t.buildGrid() })
	stage(log, "faultline", func() { t.applyFaultLines(o.rng, o.iterations, o.delta) })
	stage(log, "extents", func() { t.computeExtents() })
	stage(log, "faces", func() { t.buildFaces() })
	stage(log, "normals", func() { t.computeNormals() })
	stage(log, "edges", func() { t.buildEdges() })

	if t.degenerate > 0 {
		log.Debug("degenerate normals left as zero", zap.Int("count", t.degenerate))
	}
	log.Info("terrain generated",
		zap.Int("vertices", len(t.vertices)),
		zap.Int("faces", t.NumFaces()),
		zap.Float32("min_z", t.minZ),
		zap.Float32("max_z", t.maxZ),
	)
	return t, nil
}

// newTerrain allocates all containers once for resolution p.Div.
func newTerrain(p Params) *Terrain {
	n := p.Div
	verts := (n + 1) * (n + 1)
	faces := 2 * n * n
	return &Terrain{
		div:      n,
		bounds:   Bounds{MinX: p.MinX, MaxX: p.MaxX, MinY: p.MinY, MaxY: p.MaxY},
		vertices: make([]math.Vec3, verts),
		normals:  make([]math.Vec3, verts),
		faces:    make([]uint32, 0, 3*faces),
		edges:    make([]uint32, 0, 6*faces),
	}
}

func stage(log *zap.Logger, name string, fn func()) {
	start := time.Now()
	fn()
	log.Debug("stage done", zap.String("stage", name), zap.Duration("took", time.Since(start)))
}

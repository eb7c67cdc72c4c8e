// Package terrain synthesizes a fault-line terrain mesh and prepares it for shaded rendering.
//
// A Terrain is built once by New, which runs the pipeline stages in a fixed
// order over a single owned arena: grid layout, fault-line heights, height
// extents, face connectivity, vertex normals and wireframe edges. After New
// returns the Terrain is read-only.
package terrain

import (
	"errors"

	"github.com/Faultbox/faultline-terrain/pkg/math"
)

var (
	ErrInvalidResolution = errors.New("invalid grid resolution")
	ErrInvalidDomain     = errors.New("invalid terrain domain")
	ErrInvalidIterations = errors.New("invalid fault-line iteration count")
	ErrInvalidDelta      = errors.New("invalid fault-line delta")
	ErrIndexOverflow     = errors.New("vertex count exceeds 32-bit index range")
)

// MaxDiv is the largest resolution whose vertex indices fit in a uint32 index buffer.
const MaxDiv = 65534

// Params holds the caller-supplied construction parameters.
type Params struct {
	Div  int     // Number of grid cells along each axis
	MinX float32 // Domain bounds
	MaxX float32
	MinY float32
	MaxY float32
}

// Bounds holds the rectangular XY domain of the terrain.
type Bounds struct {
	MinX, MaxX float32
	MinY, MaxY float32
}

// Stats summarizes a generated terrain.
type Stats struct {
	Vertices        int
	Faces           int
	EdgeIndices     int
	MinZ, MaxZ      float32
	MeanZ           float32
	DegenerateCount int // Vertices left with a zero normal
}

// Terrain owns every buffer of one generated terrain instance.
type Terrain struct {
	div    int
	bounds Bounds

	vertices []math.Vec3 // Row-major, index i*(div+1)+j
	normals  []math.Vec3 // Same indexing as vertices
	faces    []uint32    // 3 indices per triangle
	edges    []uint32    // 2 indices per edge, not deduplicated

	minZ, maxZ float32
	degenerate int
}

// Package flowgrid defines the Graph type, options, and sentinel errors
// for the flowgrid subpackage of github.com/katalvlaran/streamnet.
package flowgrid

import (
	"errors"
)

// Sink is the sentinel target value marking a pixel with no outgoing edge
// (a sink or outlet of the flow field).
const Sink = -1

// Sentinel errors for flowgrid operations.
var (
	// ErrEmptyRaster indicates the raster has no rows or no columns.
	ErrEmptyRaster = errors.New("flowgrid: raster must have at least one row and one column")

	// ErrBadCellSize indicates a zero or negative cell size.
	ErrBadCellSize = errors.New("flowgrid: cell size must be positive")

	// ErrEdgeArrayMismatch indicates source, target and direction arrays of
	// differing lengths.
	ErrEdgeArrayMismatch = errors.New("flowgrid: source, target and direction must have equal length")

	// ErrPixelOutOfRange indicates an edge endpoint outside [0, Rows·Cols).
	ErrPixelOutOfRange = errors.New("flowgrid: pixel index out of range")

	// ErrNotTopological indicates the edge arrays violate the topological
	// ordering invariant (an edge's target acts as a source earlier on).
	ErrNotTopological = errors.New("flowgrid: edge list is not in topological order")

	// ErrWeightLength indicates a weight array that is not one value per pixel.
	ErrWeightLength = errors.New("flowgrid: weights length must equal rows*cols")
)

// Graph is a whole-raster directed flow graph. It is immutable once built.
//
// Source, Target and Direction are parallel per-edge arrays in topological
// order: Source[e] and Target[e] are column-major pixel indices, and
// Target[e] == Sink marks e's source pixel as a sink/outlet. Direction codes
// are opaque passthrough from the flow-routing component.
type Graph struct {
	// Rows and Cols give the raster shape.
	Rows, Cols int

	// CellSize is the raster cell edge length in map units.
	CellSize float64

	// Strides holds the element strides of the row and column axes under
	// column-major linearization: {1, Rows}.
	Strides [2]int

	// Projected reports whether the georeference uses a projected reference
	// system (cell sizes in linear map units rather than degrees).
	Projected bool

	// Bounds and Transform are opaque georeferencing passthrough, carried for
	// downstream collaborators; flowgrid performs no projection math.
	Bounds    [4]float64
	Transform [6]float64

	// Source, Target and Direction are the per-edge arrays described above.
	Source    []int
	Target    []int
	Direction []uint8
}

// Option configures optional behavior of NewGraph.
type Option func(*Options)

// Options holds configurable parameters for Graph construction.
type Options struct {
	// Projected marks the georeference as projected. Default false.
	Projected bool

	// Bounds and Transform carry the opaque georeference. Zero by default.
	Bounds    [4]float64
	Transform [6]float64

	// TopologyCheck, if true, verifies the topological ordering invariant
	// during construction (an extra O(V+E) pass). Default false: external
	// flow routers guarantee the order by construction.
	TopologyCheck bool
}

// DefaultOptions returns an Options struct with:
//   - Projected = false
//   - zero Bounds and Transform
//   - TopologyCheck disabled
func DefaultOptions() Options {
	return Options{}
}

// WithProjected returns an Option that marks the georeference as projected.
func WithProjected(projected bool) Option {
	return func(o *Options) {
		o.Projected = projected
	}
}

// WithGeoreference returns an Option that attaches the opaque georeference
// passthrough (bounds and affine transform) to the Graph.
func WithGeoreference(bounds [4]float64, transform [6]float64) Option {
	return func(o *Options) {
		o.Bounds = bounds
		o.Transform = transform
	}
}

// WithTopologyCheck returns an Option that enables verification of the
// topological ordering invariant during construction.
func WithTopologyCheck() Option {
	return func(o *Options) {
		o.TopologyCheck = true
	}
}

// Package stream defines the Network type, units, options, and sentinel
// errors for the stream subpackage of github.com/katalvlaran/streamnet.
package stream

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// Sentinel errors for stream operations.
var (
	// ErrNilGraph is returned when New receives a nil flow graph.
	ErrNilGraph = errors.New("stream: flow graph is nil")

	// ErrUnknownUnit indicates an area unit outside pixels/mapunits/m2/km2.
	ErrUnknownUnit = errors.New("stream: unknown area unit")

	// ErrShapeMismatch indicates a mask, threshold raster, or attribute
	// source whose length matches neither the raster nor the node list.
	ErrShapeMismatch = errors.New("stream: shape mismatch")

	// ErrUnsupportedSource indicates a nil node attribute source.
	ErrUnsupportedSource = errors.New("stream: unsupported node attribute source")

	// ErrNonAdjacentEdge indicates an edge joining pixels that are not
	// orthogonal or diagonal raster neighbors — a flow-field contract
	// violation.
	ErrNonAdjacentEdge = errors.New("stream: edge joins non-adjacent pixels")

	// ErrBadA0 indicates a non-positive reference drainage area.
	ErrBadA0 = errors.New("stream: reference area a0 must be positive")
)

// Unit selects the measurement unit of a stream threshold.
type Unit int

const (
	// UnitPixels measures thresholds in raster pixels.
	UnitPixels Unit = iota
	// UnitMapunits measures thresholds in squared native map units.
	UnitMapunits
	// UnitM2 measures thresholds in square meters.
	UnitM2
	// UnitKm2 measures thresholds in square kilometers.
	UnitKm2
)

// unitNames maps Unit values to their canonical spellings.
var unitNames = [...]string{"pixels", "mapunits", "m2", "km2"}

// String returns the canonical spelling of u, or "unknown" outside the enum.
func (u Unit) String() string {
	if u < UnitPixels || u > UnitKm2 {
		return "unknown"
	}

	return unitNames[u]
}

// ParseUnit resolves a unit spelling to its Unit value.
// Returns ErrUnknownUnit for anything but "pixels", "mapunits", "m2", "km2".
func ParseUnit(s string) (Unit, error) {
	for u, name := range unitNames {
		if s == name {
			return Unit(u), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// cellArea returns the divisor converting a threshold in unit u to pixel
// units. In an unprojected reference system, map units stay unconverted
// (native squared map units).
func (u Unit) cellArea(cellSize float64, projected bool) (float64, error) {
	switch u {
	case UnitPixels:
		return 1, nil
	case UnitM2:
		return cellSize * cellSize, nil
	case UnitKm2:
		return (cellSize * 0.001) * (cellSize * 0.001), nil
	case UnitMapunits:
		if projected {
			return cellSize * cellSize, nil
		}

		return 1, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownUnit, int(u))
	}
}

// Network is a pruned stream-network DAG. It is immutable once built;
// treat all exported slices as read-only.
//
// Stream maps node ids to column-major pixel indices in raster order —
// its position defines the pixel↔node-id bijection. Source and Target are
// edge attribute lists of node ids in the topological order inherited from
// the flow graph: for every edge e, Source[e] precedes Target[e] in the
// global order. Direction carries the opaque per-edge flow codes.
type Network struct {
	// Stream holds the pixel index of each node, indexed by node id.
	Stream []int

	// Source and Target are parallel edge arrays of node ids.
	Source []int
	Target []int

	// Direction is the per-edge flow code inherited from the flow graph.
	Direction []uint8

	// Raster metadata copied from the flow graph.
	Rows, Cols int
	CellSize   float64
	Strides    [2]int

	// Georeference passthrough copied from the flow graph.
	Projected bool
	Bounds    [4]float64
	Transform [6]float64
}

// Len returns the number of stream nodes.
// Complexity: O(1).
func (n *Network) Len() int {
	return len(n.Stream)
}

// EdgeCount returns the number of edges in the network.
// Complexity: O(1).
func (n *Network) EdgeCount() int {
	return len(n.Source)
}

// Pixels returns a copy of the node→pixel mapping, safe for callers to keep.
// Complexity: O(V).
func (n *Network) Pixels() []int {
	out := make([]int, len(n.Stream))
	copy(out, n.Stream)

	return out
}

// Option configures optional behavior of New.
type Option func(*Options)

// Options holds configurable parameters for Network construction.
type Options struct {
	// Unit is the measurement unit of Threshold / ThresholdRaster.
	// Default UnitPixels.
	Unit Unit

	// Threshold is a scalar upslope-accumulation threshold in Unit.
	// The zero default resolves to floor(((rows+cols)/2)²·0.01) pixels.
	Threshold float64

	// ThresholdRaster is a per-pixel threshold (column-major, one value per
	// raster pixel) in Unit. Takes precedence over Threshold when non-nil.
	ThresholdRaster []float64

	// Mask is an explicit per-pixel inclusion mask (column-major). When
	// non-nil it overrides any threshold input; supplying both emits a
	// non-fatal warning on Logger. The mask must be flow-closed: a masked-in
	// pixel whose target is masked out is not filtered here. Masks derived
	// from accumulation thresholds are flow-closed by construction.
	Mask []bool

	// Logger receives construction diagnostics and the mask-vs-threshold
	// warning. Defaults to log.Default() when nil.
	Logger *log.Logger
}

// DefaultOptions returns an Options struct with:
//   - UnitPixels
//   - zero Threshold (auto-resolved default)
//   - no threshold raster, no mask
//   - nil Logger (log.Default() at construction)
func DefaultOptions() Options {
	return Options{Unit: UnitPixels}
}

// WithUnit returns an Option that sets the threshold measurement unit.
func WithUnit(u Unit) Option {
	return func(o *Options) {
		o.Unit = u
	}
}

// WithThreshold returns an Option that sets a scalar accumulation threshold.
func WithThreshold(v float64) Option {
	return func(o *Options) {
		o.Threshold = v
	}
}

// WithThresholdRaster returns an Option that sets a per-pixel accumulation
// threshold raster (column-major, one value per raster pixel).
func WithThresholdRaster(vals []float64) Option {
	return func(o *Options) {
		o.ThresholdRaster = vals
	}
}

// WithMask returns an Option that sets an explicit inclusion mask
// (column-major, one flag per raster pixel). The mask overrides thresholds.
func WithMask(mask []bool) Option {
	return func(o *Options) {
		o.Mask = mask
	}
}

// WithLogger returns an Option that sets the diagnostics logger.
// Passing nil has no effect (log.Default() is retained).
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Package stream provides Network construction: threshold resolution over
// upslope accumulation, followed by sub-graph induction and renumbering.
package stream

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/streamnet/flowgrid"
)

// New builds a stream Network from a whole-raster flow graph.
//
// The inclusion mask is resolved first: an explicit WithMask wins outright
// (a simultaneously supplied non-zero threshold is ignored with a non-fatal
// warning); otherwise the threshold — scalar, raster, or the auto-resolved
// default floor(((rows+cols)/2)²·0.01) pixels — is converted to pixel units
// and compared against unit-weight upslope accumulation.
//
// The induced sub-graph keeps every flow-graph edge whose source pixel is
// masked in and whose target is not the sink sentinel, renumbering endpoints
// to compact node ids in raster order. Raster metadata and georeference are
// copied from g.
//
// Returns ErrNilGraph, ErrUnknownUnit, or ErrShapeMismatch.
// An all-false mask yields an empty Network, not an error.
// Complexity: O(V+E) time and memory.
func New(g *flowgrid.Graph, opts ...Option) (*Network, error) {
	// 1. Validate the graph and apply options.
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}

	// 2. Resolve the unit's cell area up front: a bad unit is a
	// configuration error regardless of which inputs were supplied.
	cellArea, err := o.Unit.cellArea(g.CellSize, g.Projected)
	if err != nil {
		return nil, err
	}

	// 3. Resolve the per-pixel inclusion mask.
	w, err := resolveMask(g, &o, cellArea)
	if err != nil {
		return nil, err
	}

	// 4. Collect stream pixels in raster order; position = node id.
	stream := make([]int, 0)
	for px, in := range w {
		if in {
			stream = append(stream, px)
		}
	}

	// 5. Remap table: rank of each included pixel within stream.
	ix := make([]int, g.NumPixels())
	for id, px := range stream {
		ix[px] = id
	}

	// 6. Keep edges with a masked-in source and a non-sink target, remapping
	// endpoints through ix. Edge order — and with it the topological
	// ordering invariant — is inherited from the flow graph.
	source := make([]int, 0, len(stream))
	target := make([]int, 0, len(stream))
	direction := make([]uint8, 0, len(stream))
	var s, t int
	for e := range g.Source {
		s, t = g.Source[e], g.Target[e]
		if t == flowgrid.Sink || !w[s] {
			continue
		}
		source = append(source, ix[s])
		target = append(target, ix[t])
		direction = append(direction, g.Direction[e])
	}

	o.Logger.Debug("stream: network built",
		"nodes", len(stream), "edges", len(source), "pixels", g.NumPixels())

	return &Network{
		Stream:    stream,
		Source:    source,
		Target:    target,
		Direction: direction,
		Rows:      g.Rows,
		Cols:      g.Cols,
		CellSize:  g.CellSize,
		Strides:   g.Strides,
		Projected: g.Projected,
		Bounds:    g.Bounds,
		Transform: g.Transform,
	}, nil
}

// resolveMask turns the supplied mask or threshold inputs into a per-pixel
// inclusion mask, validating shapes along the way.
func resolveMask(g *flowgrid.Graph, o *Options, cellArea float64) ([]bool, error) {
	n := g.NumPixels()

	// Explicit mask: copy it and ignore any threshold input with a warning.
	if o.Mask != nil {
		if len(o.Mask) != n {
			return nil, fmt.Errorf("%w: mask length %d, raster has %d pixels",
				ErrShapeMismatch, len(o.Mask), n)
		}
		if o.Threshold != 0 || o.ThresholdRaster != nil {
			o.Logger.Warn("stream: explicit mask provided; threshold input ignored")
		}
		w := make([]bool, n)
		copy(w, o.Mask)

		return w, nil
	}

	// Threshold in pixel units, one value per pixel.
	thresh := make([]float64, n)
	switch {
	case o.ThresholdRaster != nil:
		if len(o.ThresholdRaster) != n {
			return nil, fmt.Errorf("%w: threshold raster length %d, raster has %d pixels",
				ErrShapeMismatch, len(o.ThresholdRaster), n)
		}
		for i, v := range o.ThresholdRaster {
			thresh[i] = v / cellArea
		}
	case o.Threshold == 0:
		// Auto-resolved default, already in pixel units.
		avg := (g.Rows + g.Cols) / 2
		def := math.Floor(float64(avg*avg) * 0.01)
		for i := range thresh {
			thresh[i] = def
		}
	default:
		v := o.Threshold / cellArea
		for i := range thresh {
			thresh[i] = v
		}
	}

	// Unit-weight accumulation gives contributing area in pixel units.
	acc, err := g.Accumulate(nil)
	if err != nil {
		return nil, err
	}
	w := make([]bool, n)
	for i := range w {
		w[i] = acc[i] >= thresh[i]
	}

	return w, nil
}

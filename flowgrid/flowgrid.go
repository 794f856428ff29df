// Package flowgrid provides the flow Graph constructor and the column-major
// pixel linearization helpers shared by all downstream algorithms.
package flowgrid

import (
	"fmt"
)

// NewGraph constructs a Graph from raster shape, cell size, and the per-edge
// source/target/direction arrays of a flow-routing component.
// It deep-copies the edge arrays to ensure immutability.
// Returns ErrEmptyRaster, ErrBadCellSize, ErrEdgeArrayMismatch,
// ErrPixelOutOfRange, or, with WithTopologyCheck, ErrNotTopological.
// Algorithmic complexity: O(E) time and memory.
func NewGraph(rows, cols int, cellSize float64, source, target []int, direction []uint8, opts ...Option) (*Graph, error) {
	// 1. Validate raster shape and cell size.
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyRaster
	}
	if cellSize <= 0 {
		return nil, ErrBadCellSize
	}

	// 2. Validate edge-array alignment.
	if len(source) != len(target) || len(source) != len(direction) {
		return nil, fmt.Errorf("%w: source=%d target=%d direction=%d",
			ErrEdgeArrayMismatch, len(source), len(target), len(direction))
	}

	// 3. Validate endpoint ranges. Targets may additionally be Sink.
	n := rows * cols
	for e := range source {
		if source[e] < 0 || source[e] >= n {
			return nil, fmt.Errorf("%w: source[%d]=%d, raster has %d pixels",
				ErrPixelOutOfRange, e, source[e], n)
		}
		if t := target[e]; t != Sink && (t < 0 || t >= n) {
			return nil, fmt.Errorf("%w: target[%d]=%d, raster has %d pixels",
				ErrPixelOutOfRange, e, t, n)
		}
	}

	// 4. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 5. Deep copy to prevent external mutation.
	src := make([]int, len(source))
	copy(src, source)
	tgt := make([]int, len(target))
	copy(tgt, target)
	dir := make([]uint8, len(direction))
	copy(dir, direction)

	g := &Graph{
		Rows:      rows,
		Cols:      cols,
		CellSize:  cellSize,
		Strides:   [2]int{1, rows},
		Projected: o.Projected,
		Bounds:    o.Bounds,
		Transform: o.Transform,
		Source:    src,
		Target:    tgt,
		Direction: dir,
	}

	// 6. Optionally verify the ordering invariant.
	if o.TopologyCheck {
		if err := g.verifyTopology(); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// NumPixels returns the number of raster pixels (Rows·Cols).
// Complexity: O(1).
func (g *Graph) NumPixels() int {
	return g.Rows * g.Cols
}

// EdgeCount returns the number of entries in the per-edge arrays.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return len(g.Source)
}

// Linear maps (row, col) to a column-major pixel index: col·Rows + row.
// Returns ErrPixelOutOfRange when the coordinates fall outside the raster.
// Complexity: O(1).
func (g *Graph) Linear(row, col int) (int, error) {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return 0, fmt.Errorf("%w: (row=%d, col=%d) outside %dx%d",
			ErrPixelOutOfRange, row, col, g.Rows, g.Cols)
	}

	return col*g.Rows + row, nil
}

// Unravel converts a column-major pixel index back to (row, col).
// Returns ErrPixelOutOfRange when idx falls outside the raster.
// Complexity: O(1).
func (g *Graph) Unravel(idx int) (row, col int, err error) {
	if idx < 0 || idx >= g.NumPixels() {
		return 0, 0, fmt.Errorf("%w: index %d outside %d pixels",
			ErrPixelOutOfRange, idx, g.NumPixels())
	}

	return idx % g.Rows, idx / g.Rows, nil
}

// verifyTopology checks that for every edge (s,t), any edge whose source is t
// appears strictly later in the arrays. A violation means a pixel would be
// pushed downstream before its own upstream contributions are final.
func (g *Graph) verifyTopology() error {
	// 1. Record the first position at which each pixel acts as a source.
	firstAsSource := make([]int, g.NumPixels())
	for i := range firstAsSource {
		firstAsSource[i] = -1
	}
	var s int
	for e := len(g.Source) - 1; e >= 0; e-- {
		// Reverse scan keeps the earliest occurrence.
		s = g.Source[e]
		firstAsSource[s] = e
	}

	// 2. Every target must only act as a source after the current edge.
	var t int
	for e := range g.Source {
		t = g.Target[e]
		if t == Sink {
			continue
		}
		if pos := firstAsSource[t]; pos != -1 && pos <= e {
			return fmt.Errorf("%w: edge %d targets pixel %d, which drains at edge %d",
				ErrNotTopological, e, t, pos)
		}
	}

	return nil
}

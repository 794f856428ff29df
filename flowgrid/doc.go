// Package flowgrid models a whole-raster directed flow graph and computes
// weighted upslope accumulation over it.
//
// What:
//
//   - Graph wraps the per-edge source/target/direction arrays produced by an
//     external flow-routing component, together with raster shape, cell size,
//     column-major strides and an opaque georeference.
//   - Pixels are linearized column-major: index = col·Rows + row.
//   - A Sink (-1) target marks a pixel with no outgoing edge.
//   - Accumulate folds weights downstream in the stored topological order,
//     yielding each pixel's contributing (upslope) sum.
//
// Why:
//
//   - Drainage analysis: contributing area drives stream-cell thresholds.
//   - Stream extraction: the stream package prunes a Graph into a Network.
//   - Any per-pixel quantity (rainfall, sediment flux) can be routed downslope.
//
// Complexity:
//
//   - NewGraph:    O(E) validation, O(E) copy. Memory: O(E).
//   - Accumulate:  O(V+E) time, O(V) memory.
//   - Linear, Unravel: O(1).
//
// Ordering invariant:
//
// The edge arrays must be topologically consistent: for every edge (s,t),
// s's entry precedes any entry whose source is t. Accumulate and all
// single-pass propagations in the stream package depend on this, not merely
// benefit from it. WithTopologyCheck verifies it at construction.
//
// Errors:
//
//   - ErrEmptyRaster:       raster has no rows or no columns.
//   - ErrBadCellSize:       cell size is zero or negative.
//   - ErrEdgeArrayMismatch: source/target/direction lengths differ.
//   - ErrPixelOutOfRange:   an edge references a pixel outside the raster.
//   - ErrNotTopological:    edge order violates the ordering invariant.
//   - ErrWeightLength:      weights are not one per pixel.
package flowgrid

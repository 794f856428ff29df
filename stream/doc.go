// Package stream prunes a whole-raster flow graph into a drainage Network
// and implements the graph algorithms of river-longitudinal-profile analysis.
//
// What:
//
//   - New builds a Network from a flowgrid.Graph plus either an explicit
//     inclusion mask or an upslope-accumulation threshold (scalar or raster,
//     in pixels, map units, m² or km²).
//   - Network is an immutable DAG: Stream maps compact node ids to pixel
//     indices; Source/Target/Direction are edge attribute lists over node ids.
//   - EdgeLength and DownstreamDistance give per-edge and per-node geometry.
//   - NodeAttributes projects rasters, node arrays, or scalars onto nodes.
//   - ChiTransform integrates drainage area upstream from the outlets
//     (the chi coordinate of Perron & Royden, 2013).
//   - Trunk derives the dominant stream through every confluence.
//   - Segments decomposes the DAG into polylines for external renderers.
//
// Why:
//
//   - Landscape evolution: chi-transformed profiles linearize steady-state
//     river profiles and expose knickpoints.
//   - Network geometry: trunk streams and head-to-outlet distances underpin
//     drainage-divide and capture analyses.
//   - Rendering: Segments feeds any polyline renderer without duplicating
//     shared downstream paths.
//
// Complexity:
//
//   - New:                O(V+E) time and memory.
//   - EdgeLength:         O(E).
//   - DownstreamDistance: O(V+E).
//   - NodeAttributes:     O(V).
//   - ChiTransform:       O(V+E).
//   - Trunk:              O(V+E), builds an independent Network.
//   - Segments:           O(V+E).
//
// Immutability:
//
// A Network never mutates after construction. Trunk only reads its receiver
// and returns a fresh value with independently owned arrays, so concurrent
// reads — including concurrent Trunk calls — are safe.
//
// Errors:
//
//   - ErrNilGraph:          New received a nil flow graph.
//   - ErrUnknownUnit:       unit is not pixels/mapunits/m2/km2.
//   - ErrShapeMismatch:     mask, threshold raster, or attribute source of
//     the wrong length.
//   - ErrUnsupportedSource: nil attribute source.
//   - ErrNonAdjacentEdge:   an edge joins pixels that are not 8-neighbors.
//   - ErrBadA0:             non-positive reference area for ChiTransform.
package stream

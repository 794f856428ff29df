// Package streamnet extracts and analyzes channel networks from raster
// flow-direction fields — from whole-raster flow graphs to trunk streams
// and chi-transformed river profiles.
//
// 🚀 What is streamnet?
//
//	A library for river-longitudinal-profile analysis that brings together:
//		• Flow graphs: whole-raster directed graphs in topological order
//		• Accumulation: weighted upslope (contributing-area) accumulation
//		• Stream networks: threshold- or mask-pruned drainage DAGs
//		• Distances: edge lengths and maximum head-to-node distances
//		• Chi transform: trapezoidal drainage-area integration (Perron & Royden)
//		• Trunk streams: dominant-path extraction at every confluence
//		• Segments: depth-first polyline decomposition for renderers
//
// ✨ Why choose streamnet?
//
//   - Deterministic – every operation is a single- or double-pass array scan
//   - Immutable values – networks never mutate; Trunk derives fresh copies
//   - Pure Go – no cgo, flat slices, O(V+E) algorithms throughout
//   - Explicit errors – eager validation with sentinel errors at every boundary
//
// Under the hood, everything is organized under two subpackages:
//
//	flowgrid/ — whole-raster flow Graph, column-major linearization, Accumulate
//	stream/   — pruned Network, distances, attributes, chi, Trunk, Segments
//
// Quick ASCII example:
//
//	    ●           ●          two channel heads
//	     \         /
//	      ●───●───●            confluence on the trunk
//	               \
//	                ◎          outlet (sink)
//
//	a drainage DAG: edges point downslope, the outlet has no outgoing edge.
//
// Flow-direction computation, raster I/O, projection math and rendering are
// external collaborators; streamnet owns only the network and its algorithms.
//
//	go get github.com/katalvlaran/streamnet
package streamnet

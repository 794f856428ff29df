package stream

import (
	"fmt"
	"math"
)

// EdgeLength computes the pixel-to-pixel distance of every edge.
//
// The absolute pixel-index difference of an 8-connected step equals one of
// the raster's axis strides (orthogonal: length CellSize) or the sum or
// difference of the two strides (diagonal: length CellSize·√2). Any other
// magnitude means the edge joins non-adjacent pixels and violates the
// flow-field contract.
//
// Returns ErrNonAdjacentEdge on a contract violation.
// Complexity: O(E) time and memory.
func (n *Network) EdgeLength() ([]float64, error) {
	ortho, diag := n.CellSize, n.CellSize*math.Sqrt2
	// Valid step magnitudes under column-major linearization.
	rowStep, colStep := n.Strides[0], n.Strides[1]
	diagLo, diagHi := colStep-rowStep, colStep+rowStep

	lengths := make([]float64, len(n.Source))
	var d int
	for e := range n.Source {
		if d = n.Stream[n.Source[e]] - n.Stream[n.Target[e]]; d < 0 {
			d = -d
		}
		switch d {
		case rowStep, colStep:
			lengths[e] = ortho
		case diagLo, diagHi:
			lengths[e] = diag
		default:
			return nil, fmt.Errorf("%w: edge %d spans pixel distance %d",
				ErrNonAdjacentEdge, e, d)
		}
	}

	return lengths, nil
}

// DownstreamDistance computes, per node, the maximum summed edge length from
// any channel head draining through it: 0 at channel heads, maximal at
// outlets, non-decreasing along every directed path.
//
// A single forward pass over the edges suffices: dist[t] becomes
// max(dist[t], dist[s]+length(e)). Correctness rests on the topological
// ordering invariant — dist[s] is final before edge (s,t) is applied.
//
// Returns ErrNonAdjacentEdge when edge lengths cannot be computed.
// Complexity: O(V+E) time, O(V) memory.
func (n *Network) DownstreamDistance() ([]float64, error) {
	lengths, err := n.EdgeLength()
	if err != nil {
		return nil, err
	}

	dist := make([]float64, len(n.Stream))
	var v float64
	for e := range n.Source {
		if v = dist[n.Source[e]] + lengths[e]; v > dist[n.Target[e]] {
			dist[n.Target[e]] = v
		}
	}

	return dist, nil
}

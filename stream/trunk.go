package stream

// Trunk derives the dominant stream: at every confluence only the incoming
// edge on the path of maximum downstream distance survives, discarding
// tributaries.
//
// Each edge (s,t) is weighted dist[s]+1 (strictly positive so a genuine
// incoming edge always beats the zero default), and per target the
// maximum-weight incoming edge is selected — ties fall to the first
// occurrence in edge order. Inclusion is seeded at the outlets (nodes with
// incoming but no outgoing edges) and propagated upstream by scanning the
// edges in reverse stored order: a source joins the trunk only when its
// target already has and it carries the selected edge. Reverse order is what
// finalizes a target's flag before its source's is decided.
//
// The result is a fresh Network over a compacted node-id space: Stream,
// Direction, and the georeference are copied consistently with the
// renumbered edges, and the receiver is never mutated.
//
// Returns ErrNonAdjacentEdge from the underlying distance computation.
// Complexity: O(V+E) time and memory.
func (n *Network) Trunk() (*Network, error) {
	// 1. Downstream distances drive the edge weighting.
	dist, err := n.DownstreamDistance()
	if err != nil {
		return nil, err
	}
	numNodes := len(n.Stream)
	numEdges := len(n.Source)

	// 2. Classify outlets: incoming edges but no outgoing ones.
	hasIn := make([]bool, numNodes)
	hasOut := make([]bool, numNodes)
	for e := 0; e < numEdges; e++ {
		hasOut[n.Source[e]] = true
		hasIn[n.Target[e]] = true
	}

	// 3. Select each node's maximum-weight incoming edge; flag the selected
	// sources. Strict comparison keeps the first occurrence on ties.
	best := make([]float64, numNodes)
	bestSrc := make([]int, numNodes)
	for i := range bestSrc {
		bestSrc[i] = -1
	}
	var wgt float64
	for e := 0; e < numEdges; e++ {
		if wgt = dist[n.Source[e]] + 1; wgt > best[n.Target[e]] {
			best[n.Target[e]] = wgt
			bestSrc[n.Target[e]] = n.Source[e]
		}
	}
	selected := make([]bool, numNodes)
	for _, s := range bestSrc {
		if s != -1 {
			selected[s] = true
		}
	}

	// 4. Seed inclusion at the outlets, propagate upstream in reverse edge
	// order: targets finalize before their sources are decided.
	include := make([]bool, numNodes)
	for v := 0; v < numNodes; v++ {
		include[v] = hasIn[v] && !hasOut[v]
	}
	for e := numEdges - 1; e >= 0; e-- {
		include[n.Source[e]] = include[n.Target[e]] && selected[n.Source[e]]
	}

	// 5. Compact node ids over the included nodes, in raster order.
	newID := make([]int, numNodes)
	stream := make([]int, 0, numNodes)
	for v := 0; v < numNodes; v++ {
		if include[v] {
			newID[v] = len(stream)
			stream = append(stream, n.Stream[v])
		} else {
			newID[v] = -1
		}
	}

	// 6. Retain edges with both endpoints included; remap through newID.
	source := make([]int, 0, len(stream))
	target := make([]int, 0, len(stream))
	direction := make([]uint8, 0, len(stream))
	for e := 0; e < numEdges; e++ {
		if include[n.Source[e]] && include[n.Target[e]] {
			source = append(source, newID[n.Source[e]])
			target = append(target, newID[n.Target[e]])
			direction = append(direction, n.Direction[e])
		}
	}

	return &Network{
		Stream:    stream,
		Source:    source,
		Target:    target,
		Direction: direction,
		Rows:      n.Rows,
		Cols:      n.Cols,
		CellSize:  n.CellSize,
		Strides:   n.Strides,
		Projected: n.Projected,
		Bounds:    n.Bounds,
		Transform: n.Transform,
	}, nil
}

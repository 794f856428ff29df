package flowgrid

// Accumulate computes, for every pixel, its own weight plus the weights of
// all pixels draining into it transitively.
//
// A nil weights slice means unit weights, in which case the result is the
// upslope pixel count (contributing area in pixel units). Otherwise weights
// must hold one value per raster pixel.
//
// The fold runs over the edge arrays in their stored topological order:
// acc starts as a copy of the weights, and each edge (s,t) applies
// acc[t] += acc[s]. The ordering invariant guarantees acc[s] is final — all
// of s's upstream contributions applied — before it is pushed downstream.
// Sink-targeted edges contribute nothing.
//
// Returns ErrWeightLength when weights are not one per pixel.
// Complexity: O(V+E) time, O(V) memory. Deterministic.
func (g *Graph) Accumulate(weights []float64) ([]float64, error) {
	// 1. Initialize the accumulator from the weights.
	n := g.NumPixels()
	acc := make([]float64, n)
	if weights == nil {
		for i := range acc {
			acc[i] = 1
		}
	} else {
		if len(weights) != n {
			return nil, ErrWeightLength
		}
		copy(acc, weights)
	}

	// 2. Fold edges downstream in topological order.
	var t int
	for e := range g.Source {
		if t = g.Target[e]; t == Sink {
			continue
		}
		acc[t] += acc[g.Source[e]]
	}

	return acc, nil
}

package stream

// Point is a pixel coordinate with x = column and y = row.
// Mapping to geographic coordinates is a rendering-side concern.
type Point struct {
	X, Y int
}

// Segments decomposes the network into maximal simple polylines for
// rendering.
//
// An explicit-stack depth-first walk (recursion would overflow on long
// channel networks) starts a new segment at each edge whose source is still
// unvisited, scanning edges in stored order. Every popped node is appended
// to the current segment; an already-visited node is appended once more —
// so each rejoining branch records the shared node — but its successors are
// not pushed again, cutting the branch instead of duplicating the shared
// downstream path.
//
// Complexity: O(V+E) time and memory.
func (n *Network) Segments() [][]Point {
	numNodes := len(n.Stream)

	// 1. Adjacency: successor node ids per node, in stored edge order.
	adjacency := make([][]int, numNodes)
	for e := range n.Source {
		adjacency[n.Source[e]] = append(adjacency[n.Source[e]], n.Target[e])
	}

	// 2. Unravel node pixels to (x,y) = (col,row) under column-major order.
	coords := make([]Point, numNodes)
	for id, px := range n.Stream {
		coords[id] = Point{X: px / n.Rows, Y: px % n.Rows}
	}

	// 3. Depth-first walk with an explicit stack.
	visited := make([]bool, numNodes)
	segments := make([][]Point, 0)
	stack := make([]int, 0, numNodes)
	var u int
	for e := range n.Source {
		if visited[n.Source[e]] {
			continue
		}
		// Start a new segment at this source.
		stack = append(stack, n.Source[e])
		segment := make([]Point, 0)
		for len(stack) > 0 {
			u = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			// Always record the popped node; revisits mark a rejoin.
			segment = append(segment, coords[u])
			if !visited[u] {
				visited[u] = true
				stack = append(stack, adjacency[u]...)
			}
		}
		segments = append(segments, segment)
	}

	return segments
}

// File: stream/example_test.go
package stream_test

import (
	"fmt"

	"github.com/katalvlaran/streamnet/flowgrid"
	"github.com/katalvlaran/streamnet/stream"
)

////////////////////////////////////////////////////////////////////////////////
// Example: New + Trunk + Segments
////////////////////////////////////////////////////////////////////////////////

// ExampleNew demonstrates pruning a flow graph to a stream network, then
// extracting its trunk and render segments.
// Scenario:
//
//   - 4×4 raster, column-major indices (index = col·rows + row)
//   - Stem down column 1: 4→5→6→7, sink at pixel 7
//   - Diagonal tributary: pixel 2 → pixel 7
//   - Explicit mask over the five flow pixels
//
// Complexity: O(V+E) per operation
func ExampleNew() {
	g, _ := flowgrid.NewGraph(4, 4, 1,
		[]int{4, 5, 2, 6, 7},
		[]int{5, 6, 7, 7, flowgrid.Sink},
		[]uint8{1, 1, 2, 1, 0},
	)

	mask := make([]bool, g.NumPixels())
	for _, px := range []int{2, 4, 5, 6, 7} {
		mask[px] = true
	}

	n, _ := stream.New(g, stream.WithMask(mask))
	fmt.Println("nodes:", n.Len(), "edges:", n.EdgeCount())

	trunk, _ := n.Trunk()
	fmt.Println("trunk pixels:", trunk.Pixels())

	fmt.Println("segments:", len(n.Segments()))

	// Output:
	// nodes: 5 edges: 4
	// trunk pixels: [4 5 6 7]
	// segments: 2
}

////////////////////////////////////////////////////////////////////////////////
// Example: ChiTransform
////////////////////////////////////////////////////////////////////////////////

// ExampleNetwork_ChiTransform shows the degenerate mn = 0 case, where chi
// reduces to the along-stream distance to the outlet.
func ExampleNetwork_ChiTransform() {
	g, _ := flowgrid.NewGraph(3, 3, 10,
		[]int{0, 1, 2},
		[]int{1, 2, flowgrid.Sink},
		[]uint8{1, 1, 0},
	)

	mask := make([]bool, g.NumPixels())
	mask[0], mask[1], mask[2] = true, true, true

	n, _ := stream.New(g, stream.WithMask(mask))
	chi, _ := n.ChiTransform(stream.ScalarSource(1), stream.WithMN(0))
	fmt.Println("chi:", chi)

	// Output:
	// chi: [20 10 0]
}

package stream_test

import (
	"testing"

	"github.com/katalvlaran/streamnet/flowgrid"
	"github.com/katalvlaran/streamnet/stream"
)

// pathGraph builds a 3×3 raster (cell size 10) whose column 0 drains top to
// bottom into a sink at the last row: 0→1, 1→2, 2→Sink.
func pathGraph(t *testing.T) *flowgrid.Graph {
	t.Helper()
	g, err := flowgrid.NewGraph(3, 3, 10,
		[]int{0, 1, 2},
		[]int{1, 2, flowgrid.Sink},
		[]uint8{1, 1, 0},
		flowgrid.WithTopologyCheck(),
	)
	if err != nil {
		t.Fatalf("NewGraph error: %v", err)
	}

	return g
}

// pathNetwork prunes pathGraph to column 0 via an explicit mask.
// Node ids: pixel 0→0, 1→1, 2→2; edges (0→1), (1→2).
func pathNetwork(t *testing.T) *stream.Network {
	t.Helper()
	n, err := stream.New(pathGraph(t), stream.WithMask(maskOf(9, 0, 1, 2)))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	return n
}

// forkGraph builds a 4×4 raster (cell size 1) with a column-1 stem
// 4→5→6→7→Sink joined at pixel 7 by a diagonal tributary from pixel 2.
//
//	       4        .
//	       5        .
//	  2    6        tributary pixel 2 at (row 2, col 0)
//	   \   7        confluence at the outlet pixel 7
func forkGraph(t *testing.T) *flowgrid.Graph {
	t.Helper()
	g, err := flowgrid.NewGraph(4, 4, 1,
		[]int{4, 5, 2, 6, 7},
		[]int{5, 6, 7, 7, flowgrid.Sink},
		[]uint8{1, 1, 2, 1, 0},
		flowgrid.WithTopologyCheck(),
	)
	if err != nil {
		t.Fatalf("NewGraph error: %v", err)
	}

	return g
}

// forkNetwork prunes forkGraph to its five flow pixels.
// Node ids (raster order): pixel 2→0, 4→1, 5→2, 6→3, 7→4.
// Edges in stored order: (1→2), (2→3), (0→4), (3→4).
func forkNetwork(t *testing.T) *stream.Network {
	t.Helper()
	n, err := stream.New(forkGraph(t), stream.WithMask(maskOf(16, 2, 4, 5, 6, 7)))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	return n
}

// maskOf returns a length-n mask with the given pixel indices set.
func maskOf(n int, pixels ...int) []bool {
	mask := make([]bool, n)
	for _, px := range pixels {
		mask[px] = true
	}

	return mask
}

// equalInts fails the test when got differs from want.
func equalInts(t *testing.T, label string, got, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s = %v; want %v", label, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s = %v; want %v", label, got, want)
		}
	}
}

package flowgrid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/streamnet/flowgrid"
)

//----------------------------------------------------------------------------//
// NewGraph Validation Tests
//----------------------------------------------------------------------------//

// TestNewGraph_Errors verifies that NewGraph rejects malformed inputs.
func TestNewGraph_Errors(t *testing.T) {
	cases := []struct {
		name      string
		rows      int
		cols      int
		cellSize  float64
		source    []int
		target    []int
		direction []uint8
		err       error
	}{
		{"NoRows", 0, 3, 10, nil, nil, nil, flowgrid.ErrEmptyRaster},
		{"NoCols", 3, 0, 10, nil, nil, nil, flowgrid.ErrEmptyRaster},
		{"ZeroCellSize", 3, 3, 0, nil, nil, nil, flowgrid.ErrBadCellSize},
		{"NegativeCellSize", 3, 3, -1, nil, nil, nil, flowgrid.ErrBadCellSize},
		{"RaggedArrays", 3, 3, 10, []int{0, 1}, []int{1}, []uint8{1}, flowgrid.ErrEdgeArrayMismatch},
		{"SourceOutOfRange", 3, 3, 10, []int{9}, []int{0}, []uint8{1}, flowgrid.ErrPixelOutOfRange},
		{"SourceNegative", 3, 3, 10, []int{-1}, []int{0}, []uint8{1}, flowgrid.ErrPixelOutOfRange},
		{"TargetOutOfRange", 3, 3, 10, []int{0}, []int{9}, []uint8{1}, flowgrid.ErrPixelOutOfRange},
		{"TargetBelowSink", 3, 3, 10, []int{0}, []int{-2}, []uint8{1}, flowgrid.ErrPixelOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := flowgrid.NewGraph(tc.rows, tc.cols, tc.cellSize, tc.source, tc.target, tc.direction)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGraph error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestNewGraph_SinkTargetAllowed checks that the Sink sentinel passes range
// validation.
func TestNewGraph_SinkTargetAllowed(t *testing.T) {
	g, err := flowgrid.NewGraph(3, 3, 10, []int{2}, []int{flowgrid.Sink}, []uint8{0})
	if err != nil {
		t.Fatalf("NewGraph error: %v", err)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d; want 1", g.EdgeCount())
	}
}

// TestNewGraph_DeepCopy verifies that mutating the input arrays after
// construction does not leak into the Graph.
func TestNewGraph_DeepCopy(t *testing.T) {
	source := []int{0, 1, 2}
	target := []int{1, 2, flowgrid.Sink}
	direction := []uint8{1, 1, 0}
	g, err := flowgrid.NewGraph(3, 3, 10, source, target, direction)
	if err != nil {
		t.Fatalf("NewGraph error: %v", err)
	}

	source[0], target[0], direction[0] = 2, 0, 9
	if g.Source[0] != 0 || g.Target[0] != 1 || g.Direction[0] != 1 {
		t.Errorf("Graph aliased caller arrays: source=%d target=%d direction=%d",
			g.Source[0], g.Target[0], g.Direction[0])
	}
}

// TestNewGraph_Metadata checks strides, georeference, and the projected flag.
func TestNewGraph_Metadata(t *testing.T) {
	bounds := [4]float64{0, 0, 30, 30}
	transform := [6]float64{0, 10, 0, 30, 0, -10}
	g, err := flowgrid.NewGraph(3, 3, 10, nil, nil, nil,
		flowgrid.WithProjected(true),
		flowgrid.WithGeoreference(bounds, transform),
	)
	if err != nil {
		t.Fatalf("NewGraph error: %v", err)
	}
	if g.Strides != [2]int{1, 3} {
		t.Errorf("Strides = %v; want [1 3]", g.Strides)
	}
	if !g.Projected {
		t.Error("Projected = false; want true")
	}
	if g.Bounds != bounds || g.Transform != transform {
		t.Errorf("georeference not carried: bounds=%v transform=%v", g.Bounds, g.Transform)
	}
	if g.NumPixels() != 9 {
		t.Errorf("NumPixels = %d; want 9", g.NumPixels())
	}
}

//----------------------------------------------------------------------------//
// Topology Check Tests
//----------------------------------------------------------------------------//

// TestWithTopologyCheck accepts ordered edge lists and rejects a list where a
// target drains before the edge feeding it.
func TestWithTopologyCheck(t *testing.T) {
	// Ordered: 0→1, 1→2, 2→Sink down column 0.
	if _, err := flowgrid.NewGraph(3, 3, 10,
		[]int{0, 1, 2}, []int{1, 2, flowgrid.Sink}, []uint8{1, 1, 0},
		flowgrid.WithTopologyCheck(),
	); err != nil {
		t.Fatalf("ordered list rejected: %v", err)
	}

	// Violation: pixel 1 drains at edge 0, but receives from pixel 0 at edge 1.
	_, err := flowgrid.NewGraph(3, 3, 10,
		[]int{1, 0, 2}, []int{2, 1, flowgrid.Sink}, []uint8{1, 1, 0},
		flowgrid.WithTopologyCheck(),
	)
	if !errors.Is(err, flowgrid.ErrNotTopological) {
		t.Errorf("NewGraph error = %v; want ErrNotTopological", err)
	}
}

//----------------------------------------------------------------------------//
// Linearization Tests
//----------------------------------------------------------------------------//

// TestLinearUnravel checks the column-major bijection on a 3×4 raster.
func TestLinearUnravel(t *testing.T) {
	g, err := flowgrid.NewGraph(3, 4, 10, nil, nil, nil)
	if err != nil {
		t.Fatalf("NewGraph error: %v", err)
	}

	// Column-major: index = col·rows + row.
	idx, err := g.Linear(2, 1)
	if err != nil {
		t.Fatalf("Linear error: %v", err)
	}
	if idx != 5 {
		t.Errorf("Linear(2,1) = %d; want 5", idx)
	}

	for want := 0; want < g.NumPixels(); want++ {
		row, col, uerr := g.Unravel(want)
		if uerr != nil {
			t.Fatalf("Unravel(%d) error: %v", want, uerr)
		}
		got, lerr := g.Linear(row, col)
		if lerr != nil {
			t.Fatalf("Linear(%d,%d) error: %v", row, col, lerr)
		}
		if got != want {
			t.Errorf("round-trip %d → (%d,%d) → %d", want, row, col, got)
		}
	}

	if _, err = g.Linear(3, 0); !errors.Is(err, flowgrid.ErrPixelOutOfRange) {
		t.Errorf("Linear(3,0) error = %v; want ErrPixelOutOfRange", err)
	}
	if _, _, err = g.Unravel(12); !errors.Is(err, flowgrid.ErrPixelOutOfRange) {
		t.Errorf("Unravel(12) error = %v; want ErrPixelOutOfRange", err)
	}
}

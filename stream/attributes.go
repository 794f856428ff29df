package stream

import (
	"fmt"
)

// AttributeSource is a tagged source for node attribute lists: a full raster
// gathered at each node's pixel, an array already shaped as a node attribute
// list, or a scalar broadcast to every node. Construct one with
// RasterSource, NodeSource, or ScalarSource.
type AttributeSource interface {
	// resolve projects the source onto the nodes of n.
	resolve(n *Network) ([]float64, error)
}

// rasterSource gathers a column-major full-raster array at each node's pixel.
type rasterSource struct {
	values []float64
}

// nodeSource passes through an array already indexed by node id.
type nodeSource struct {
	values []float64
}

// scalarSource broadcasts a single value to every node.
type scalarSource struct {
	value float64
}

// RasterSource wraps a column-major per-pixel array (one value per raster
// pixel); NodeAttributes gathers it at each node's pixel index.
func RasterSource(values []float64) AttributeSource {
	return rasterSource{values: values}
}

// NodeSource wraps an array already shaped as a node attribute list
// (one value per stream node); NodeAttributes returns a copy of it.
func NodeSource(values []float64) AttributeSource {
	return nodeSource{values: values}
}

// ScalarSource wraps a single value; NodeAttributes broadcasts it.
func ScalarSource(value float64) AttributeSource {
	return scalarSource{value: value}
}

func (s rasterSource) resolve(n *Network) ([]float64, error) {
	if len(s.values) != n.Rows*n.Cols {
		return nil, fmt.Errorf("%w: raster source length %d, raster has %d pixels",
			ErrShapeMismatch, len(s.values), n.Rows*n.Cols)
	}
	out := make([]float64, len(n.Stream))
	for id, px := range n.Stream {
		out[id] = s.values[px]
	}

	return out, nil
}

func (s nodeSource) resolve(n *Network) ([]float64, error) {
	if len(s.values) != len(n.Stream) {
		return nil, fmt.Errorf("%w: node source length %d, network has %d nodes",
			ErrShapeMismatch, len(s.values), len(n.Stream))
	}
	out := make([]float64, len(s.values))
	copy(out, s.values)

	return out, nil
}

func (s scalarSource) resolve(n *Network) ([]float64, error) {
	out := make([]float64, len(n.Stream))
	for i := range out {
		out[i] = s.value
	}

	return out, nil
}

// NodeAttributes projects src onto the network's nodes, returning a node
// attribute list the caller owns.
// Returns ErrUnsupportedSource for a nil src and ErrShapeMismatch when the
// source length matches neither the raster nor the node list.
// Complexity: O(V) time and memory.
func (n *Network) NodeAttributes(src AttributeSource) ([]float64, error) {
	if src == nil {
		return nil, ErrUnsupportedSource
	}

	return src.resolve(n)
}

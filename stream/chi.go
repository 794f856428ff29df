package stream

import (
	"math"
)

// ChiOption configures optional behavior of ChiTransform.
type ChiOption func(*ChiOptions)

// ChiOptions holds configurable parameters for the chi transform.
type ChiOptions struct {
	// A0 is the reference drainage area, in the same units as the resolved
	// upstream area. Default 1e6.
	A0 float64

	// MN is the m/n concavity ratio. Default 0.45.
	MN float64

	// Efficiency is an optional erosional-efficiency field K. When set, the
	// integrand becomes (1/K)·(1/A)^mn and the result is the response time
	// for a signal propagating upstream from the outlet (assumes a unit
	// stream-power exponent). Default nil.
	Efficiency AttributeSource

	// CorrectCellSize multiplies the upstream area by CellSize² — use when
	// the area is supplied in pixel units, as unit-weight accumulation
	// yields. Default true.
	CorrectCellSize bool
}

// DefaultChiOptions returns a ChiOptions struct with:
//   - A0 = 1e6
//   - MN = 0.45
//   - no efficiency field
//   - cell-size correction enabled
func DefaultChiOptions() ChiOptions {
	return ChiOptions{
		A0:              1e6,
		MN:              0.45,
		Efficiency:      nil,
		CorrectCellSize: true,
	}
}

// WithA0 returns a ChiOption that sets the reference drainage area.
func WithA0(a0 float64) ChiOption {
	return func(o *ChiOptions) {
		o.A0 = a0
	}
}

// WithMN returns a ChiOption that sets the m/n concavity ratio.
func WithMN(mn float64) ChiOption {
	return func(o *ChiOptions) {
		o.MN = mn
	}
}

// WithEfficiency returns a ChiOption that sets the erosional-efficiency
// field, switching ChiTransform to its response-time variant.
func WithEfficiency(k AttributeSource) ChiOption {
	return func(o *ChiOptions) {
		o.Efficiency = k
	}
}

// WithoutCellSizeCorrection returns a ChiOption that disables the CellSize²
// pre-multiplication — use when the upstream area is already in map units.
func WithoutCellSizeCorrection() ChiOption {
	return func(o *ChiOptions) {
		o.CorrectCellSize = false
	}
}

// ChiTransform computes the chi coordinate of every node: the cumulative
// trapezoidal integral, upstream from the outlets, of
//
//	f(x) = (a0/A(x))^mn            (default), or
//	f(x) = (1/K(x))·(1/A(x))^mn    (response-time variant, WithEfficiency)
//
// where A is the upstream area resolved from upstreamArea (optionally
// pre-multiplied by CellSize² when supplied in pixel units).
//
// The integration walks the stored edge order in reverse, so a node's
// downstream chi is final before its own is computed:
// chi[s] = chi[t] + 0.5·(f[s]+f[t])·length(e). Chi is 0 at every outlet and
// grows upstream, linearizing river profiles under steady-state erosion.
//
// Returns ErrUnsupportedSource or ErrShapeMismatch from attribute
// resolution, ErrBadA0 for a non-positive reference area, and
// ErrNonAdjacentEdge from edge-length computation.
// Complexity: O(V+E) time, O(V) memory.
func (n *Network) ChiTransform(upstreamArea AttributeSource, opts ...ChiOption) ([]float64, error) {
	// 1. Apply options.
	o := DefaultChiOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Resolve the upstream-area node attribute list (an owned copy).
	a, err := n.NodeAttributes(upstreamArea)
	if err != nil {
		return nil, err
	}
	if o.CorrectCellSize {
		for i := range a {
			a[i] *= n.CellSize * n.CellSize
		}
	}

	// 3. Build the integrand in place.
	if o.Efficiency != nil {
		k, kerr := n.NodeAttributes(o.Efficiency)
		if kerr != nil {
			return nil, kerr
		}
		for i := range a {
			a[i] = (1 / k[i]) * math.Pow(1/a[i], o.MN)
		}
	} else {
		if o.A0 <= 0 {
			return nil, ErrBadA0
		}
		for i := range a {
			a[i] = math.Pow(o.A0/a[i], o.MN)
		}
	}

	// 4. Trapezoidal integration upstream from the outlets.
	lengths, err := n.EdgeLength()
	if err != nil {
		return nil, err
	}
	chi := make([]float64, len(n.Stream))
	var s, t int
	for e := len(n.Source) - 1; e >= 0; e-- {
		s, t = n.Source[e], n.Target[e]
		chi[s] = chi[t] + 0.5*(a[s]+a[t])*lengths[e]
	}

	return chi, nil
}

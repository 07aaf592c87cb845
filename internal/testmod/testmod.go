// Package testmod is a fixture module for the presets tests: a struct-based
// module with callables in both kwargs conventions, a nested submodule
// package, cyclic sibling nodes, an external reference, and plain data.
package testmod

import (
	"strings"

	"github.com/bmcfee/presets"
	"github.com/bmcfee/presets/internal/testmod/dsp"
)

// Version is copied through proxies unchanged.
const Version = "1.0.0"

// ScaleOpts carries the keyword parameters of Scale.
type ScaleOpts struct {
	Factor *float64 `preset:"factor"`
	Offset *float64 // installs as "offset"
}

// Node is a same-package submodule used to form reference cycles.
type Node struct {
	// Gain returns x * g, with g defaulting to 1.
	Gain func(x float64, kw presets.Args) float64 `preset:"g"`

	// Peer points at the sibling node, closing the cycle.
	Peer *Node
}

// Module is the root fixture module surface.
type Module struct {
	// Mult returns x * b, with b defaulting to 2.
	Mult func(x float64, kw presets.Args) float64 `preset:"b"`

	// Combine returns x*b + c + d, with defaults b=2, c=0, d=0.
	Combine func(x float64, kw presets.Args) float64 `preset:"b,c,d"`

	// Scale returns x*factor + offset, with defaults factor=1.5, offset=0.
	Scale func(x float64, opts ScaleOpts) float64

	// Dsp is a submodule by package containment.
	Dsp *dsp.Module

	// Left and Right reference each other through Peer.
	Left  *Node
	Right *Node

	// Replacer is an external reference (package strings is not contained
	// in this package) and must pass through untouched.
	Replacer *strings.Replacer

	Version string
}

// New constructs the fixture module graph, including the Left/Right cycle.
func New() *Module {
	left := &Node{
		Gain: func(x float64, kw presets.Args) float64 {
			return x * kw.Float("g", 1)
		},
	}
	right := &Node{
		Gain: func(x float64, kw presets.Args) float64 {
			return x * kw.Float("g", 1)
		},
	}
	left.Peer = right
	right.Peer = left

	return &Module{
		Mult: func(x float64, kw presets.Args) float64 {
			return x * kw.Float("b", 2)
		},

		Combine: func(x float64, kw presets.Args) float64 {
			return x*kw.Float("b", 2) + kw.Float("c", 0) + kw.Float("d", 0)
		},

		Scale: func(x float64, opts ScaleOpts) float64 {
			factor := 1.5
			if opts.Factor != nil {
				factor = *opts.Factor
			}
			offset := 0.0
			if opts.Offset != nil {
				offset = *opts.Offset
			}
			return x*factor + offset
		},

		Dsp:      dsp.New(),
		Left:     left,
		Right:    right,
		Replacer: strings.NewReplacer("a", "b"),
		Version:  Version,
	}
}

// Package dsp is the nested fixture package: a submodule of testmod by
// package containment.
package dsp

import (
	"errors"

	"github.com/bmcfee/presets"
)

// ErrZeroDivisor is returned by Div when the divisor is zero.
var ErrZeroDivisor = errors.New("dsp: zero divisor")

// DefaultSR is the native sample rate assumed by Resample.
const DefaultSR = 22050

// ResampleOpts carries the keyword parameters of Resample. SR uses a
// pointer so an explicit zero is distinguishable from "unset".
type ResampleOpts struct {
	SR      *int   `preset:"sr"`
	Quality string `preset:"quality"`
}

// Module is the dsp fixture module surface.
type Module struct {
	// Add returns x + b, with b defaulting to 1.
	Add func(x float64, kw presets.Args) float64 `preset:"b"`

	// Resample rescales y by sr/DefaultSR. Quality "fast" halves the
	// output length; the default quality keeps it.
	Resample func(y []float64, opts ResampleOpts) []float64

	// Div returns x/y, or ErrZeroDivisor scaled reporting when y is zero.
	// The scale parameter multiplies the result and defaults to 1.
	Div func(x, y float64, kw presets.Args) (float64, error) `preset:"scale"`
}

// New constructs the fixture module.
func New() *Module {
	return &Module{
		Add: func(x float64, kw presets.Args) float64 {
			return x + kw.Float("b", 1)
		},

		Resample: func(y []float64, opts ResampleOpts) []float64 {
			sr := DefaultSR
			if opts.SR != nil {
				sr = *opts.SR
			}
			quality := opts.Quality
			if quality == "" {
				quality = "kaiser_best"
			}

			ratio := float64(sr) / DefaultSR
			out := make([]float64, len(y))
			for i, v := range y {
				out[i] = v * ratio
			}
			if quality == "fast" && len(out) > 1 {
				out = out[:len(out)/2]
			}
			return out
		},

		Div: func(x, y float64, kw presets.Args) (float64, error) {
			if y == 0 {
				return 0, ErrZeroDivisor
			}
			return x / y * kw.Float("scale", 1), nil
		},
	}
}

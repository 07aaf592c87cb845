// Demonstrates wrapping a small audio-flavored module and overriding its
// shared sample-rate parameter in one place.
package main

import (
	"fmt"
	"log"
	"math"

	"github.com/bmcfee/presets"
)

// Effects is a submodule of Audio (same package, so contained).
type Effects struct {
	// Gain scales samples by the "gain" parameter (default 1).
	Gain func(y []float64, kw presets.Args) []float64 `preset:"gain"`
}

// Audio is the module being wrapped. Both Tone and Duration read the shared
// "sr" parameter.
type Audio struct {
	// Tone synthesizes a sine at freq for one second of samples.
	Tone func(freq float64, kw presets.Args) []float64 `preset:"sr"`

	// Duration reports the duration of a sample buffer in seconds.
	Duration func(y []float64, kw presets.Args) float64 `preset:"sr"`

	Fx *Effects
}

func newAudio() *Audio {
	return &Audio{
		Tone: func(freq float64, kw presets.Args) []float64 {
			sr := kw.Float("sr", 8000)
			y := make([]float64, int(sr))
			for i := range y {
				y[i] = math.Sin(2 * math.Pi * freq * float64(i) / sr)
			}
			return y
		},
		Duration: func(y []float64, kw presets.Args) float64 {
			return float64(len(y)) / kw.Float("sr", 8000)
		},
		Fx: &Effects{
			Gain: func(y []float64, kw presets.Args) []float64 {
				g := kw.Float("gain", 1)
				out := make([]float64, len(y))
				for i, v := range y {
					out[i] = v * g
				}
				return out
			},
		},
	}
}

func main() {
	p, err := presets.New(newAudio())
	if err != nil {
		log.Fatal(err)
	}

	// One override, applied to every callable that declares "sr".
	p.Set("sr", 44100)
	p.Set("gain", 0.5)

	y := p.Module.Tone(440, nil)
	fmt.Printf("tone: %d samples, %.2fs\n", len(y), p.Module.Duration(y, nil))

	quiet := p.Module.Fx.Gain(y, nil)
	fmt.Printf("gain applied through submodule: first sample %f -> %f\n", y[1], quiet[1])

	// The call site still wins over the store.
	short := p.Module.Tone(440, presets.Args{"sr": 8000})
	fmt.Printf("explicit sr at call site: %d samples\n", len(short))

	fmt.Print(p.Debug())
}

// Package presets provides an object interface to a module-like value which
// can override the default parameter values of its callables.
//
// This is primarily useful for libraries that expose many functions with
// overlapping parameter sets (a sample rate shared by dozens of functions,
// for example). One shared override applies everywhere at once, while the
// externally-facing call signatures stay exactly as declared and any single
// call can still override the value explicitly.
//
// Features:
//   - Recursive wrapping: submodules (pointer fields whose package is
//     contained in the wrapped module's package) are wrapped with the same
//     shared override store
//   - Three-tier precedence: caller-supplied value > store override >
//     the callable's own native default
//   - Two kwargs conventions: a trailing presets.Args map, or a trailing
//     options struct merged through weakly-typed decoding
//   - Dictionary-like store surface: Get, Set, Remove, Contains, Keys, Update
//   - Preset files (TOML or YAML), environment overrides, struct
//     registration, and a fluent builder
//
// Quick Start:
//
//	type Audio struct {
//	    Tone func(freq float64, kw presets.Args) []float64 `preset:"sr,dur"`
//	}
//
//	p, err := presets.New(&Audio{Tone: tone})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p.Set("sr", 44100)
//
//	y := p.Module.Tone(440, nil)                        // sr resolves to 44100
//	z := p.Module.Tone(440, presets.Args{"sr": 8000})   // caller wins
//
// Precedence (highest to lowest):
//  1. Keyword value supplied at the call site
//  2. Override installed in the shared store
//  3. The callable's native default
//
// Thread Safety:
// The store is an unsynchronized shared mapping. Wrapping and calling are
// safe from a single goroutine; concurrent mutation of the store requires
// external synchronization by the caller.
package presets

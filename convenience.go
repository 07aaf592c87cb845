package presets

import (
	"fmt"
	"strings"
)

// Quick wraps a module with overrides loaded from a preset file and the
// environment in a single call. Either source may be empty to skip it.
// This is the recommended entry point for most applications.
func Quick[T any](module *T, envPrefix, presetFile string) (*Preset[T], error) {
	b := NewBuilder(module)
	if presetFile != "" {
		b = b.WithFile(presetFile)
	}
	if envPrefix != "" {
		b = b.WithEnvPrefix(envPrefix)
	}
	return b.Build()
}

// MustQuick is like Quick but panics on error.
func MustQuick[T any](module *T, envPrefix, presetFile string) *Preset[T] {
	p, err := Quick(module, envPrefix, presetFile)
	if err != nil {
		panic(fmt.Sprintf("preset initialization failed: %v", err))
	}
	return p
}

// Debug returns a formatted report of the current overrides and the wrapped
// callables with their declared parameter names. Because the store can
// change a callable's effective defaults at any time, the defaults declared
// in a callable's source may not be the ones in force.
func (p *Preset[T]) Debug() string {
	var b strings.Builder
	b.WriteString("Preset debug info:\n")
	b.WriteString("WARNING: effective defaults may differ from the defaults declared in source.\n")

	b.WriteString("Overrides:\n")
	for _, name := range p.Keys() {
		value, _ := p.lookup(name)
		b.WriteString(fmt.Sprintf("  %s = %v\n", name, value))
	}

	b.WriteString("Wrapped callables:\n")
	for _, c := range p.calls {
		b.WriteString(fmt.Sprintf("  %s(%s)\n", c.path, strings.Join(c.params, ", ")))
	}

	return b.String()
}

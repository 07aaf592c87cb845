package presets_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmcfee/presets"
	"github.com/bmcfee/presets/internal/testmod"
)

func TestBuilderPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.toml")
	require.NoError(t, os.WriteFile(path, []byte("b = 1\nc = 10\nd = 100\n"), 0644))

	t.Setenv("PBUILD_B", "2")
	t.Setenv("PBUILD_C", "20")

	p, err := presets.NewBuilder(testmod.New()).
		WithFile(path).
		WithEnvPrefix("PBUILD_").
		WithOverrides(map[string]any{"b": 3}).
		Build()
	require.NoError(t, err)

	// Explicit overrides beat env, env beats file, file fills the rest.
	b, err := p.Int64("b")
	require.NoError(t, err)
	assert.Equal(t, int64(3), b)

	c, err := p.Int64("c")
	require.NoError(t, err)
	assert.Equal(t, int64(20), c)

	d, err := p.Int64("d")
	require.NoError(t, err)
	assert.Equal(t, int64(100), d)

	// And the result drives call-time resolution.
	assert.Equal(t, 3*4.0+20+100, p.Module.Combine(4, nil))
}

func TestBuilderMissingFileNotFatal(t *testing.T) {
	p, err := presets.NewBuilder(testmod.New()).
		WithFile(filepath.Join(t.TempDir(), "absent.toml")).
		WithOverrides(map[string]any{"b": -3.0}).
		Build()
	require.NoError(t, err)

	assert.Equal(t, -12.0, p.Module.Mult(4, nil))
}

func TestBuilderWithStore(t *testing.T) {
	store := presets.NewStore()

	p1, err := presets.NewBuilder(testmod.New()).WithStore(store).Build()
	require.NoError(t, err)
	p2, err := presets.NewBuilder(testmod.New()).WithStore(store).Build()
	require.NoError(t, err)

	p1.Set("b", -3.0)
	assert.Equal(t, -12.0, p2.Module.Mult(4, nil))
}

func TestBuilderMustBuild(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		p := presets.NewBuilder(testmod.New()).MustBuild()
		assert.NotNil(t, p.Module)
	})

	t.Run("PanicsOnError", func(t *testing.T) {
		assert.Panics(t, func() {
			presets.NewBuilder[testmod.Module](nil).MustBuild()
		})
	})
}

func TestQuick(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.toml")
	require.NoError(t, os.WriteFile(path, []byte("b = -3.0\n"), 0644))
	t.Setenv("PQUICK_C", "5")

	p, err := presets.Quick(testmod.New(), "PQUICK_", path)
	require.NoError(t, err)

	assert.Equal(t, -12.0, p.Module.Mult(4, nil))
	assert.Equal(t, -3.0*4+5, p.Module.Combine(4, nil))

	t.Run("MustQuick", func(t *testing.T) {
		p := presets.MustQuick(testmod.New(), "", "")
		assert.Equal(t, 8.0, p.Module.Mult(4, nil))
	})
}

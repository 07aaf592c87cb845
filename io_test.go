package presets_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmcfee/presets"
)

func TestSaveLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.toml")

	s := presets.NewStore()
	s.Update(map[string]any{
		"sr":      int64(44100),
		"ratio":   0.5,
		"quality": "fast",
		"deep":    true,
	})
	require.NoError(t, s.SaveFile(path))

	loaded := presets.NewStore()
	require.NoError(t, loaded.LoadFile(path))

	assert.Equal(t, s.Keys(), loaded.Keys())
	for _, name := range s.Keys() {
		want, err := s.Get(name)
		require.NoError(t, err)
		got, err := loaded.Get(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}
}

func TestSaveLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")

	s := presets.NewStore()
	s.Update(map[string]any{"sr": 44100, "quality": "fast"})
	require.NoError(t, s.SaveFile(path))

	loaded := presets.NewStore()
	require.NoError(t, loaded.LoadFile(path))

	v, err := loaded.Get("sr")
	require.NoError(t, err)
	assert.Equal(t, 44100, v)

	q, err := loaded.Get("quality")
	require.NoError(t, err)
	assert.Equal(t, "fast", q)
}

func TestLoadFileMissing(t *testing.T) {
	s := presets.NewStore()
	err := s.LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, presets.ErrPresetNotFound)
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("= not toml ="), 0644))

	s := presets.NewStore()
	err := s.LoadFile(path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, presets.ErrPresetNotFound)
}

func TestLoadFileFlattensSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sections.toml")
	content := "b = 1\n\n[stft]\nn_fft = 4096\nhop_length = 1024\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s := presets.NewStore()
	require.NoError(t, s.LoadFile(path))

	assert.Equal(t, []string{"b", "stft.hop_length", "stft.n_fft"}, s.Keys())

	v, err := s.Int64("stft.n_fft")
	require.NoError(t, err)
	assert.Equal(t, int64(4096), v)
}

func TestLoadFileMergesIntoExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.toml")
	require.NoError(t, os.WriteFile(path, []byte("b = 2\n"), 0644))

	s := presets.NewStore()
	s.Set("keep", "me")
	s.Set("b", 1)
	require.NoError(t, s.LoadFile(path))

	v, err := s.Get("keep")
	require.NoError(t, err)
	assert.Equal(t, "me", v)

	b, err := s.Int64("b")
	require.NoError(t, err)
	assert.Equal(t, int64(2), b)
}

func TestSaveFileCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "presets.toml")

	s := presets.NewStore()
	s.Set("b", int64(1))
	require.NoError(t, s.SaveFile(path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

package presets_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmcfee/presets"
)

type stftDefaults struct {
	SampleRate int           `preset:"sr"`
	HopLength  int           // maps to "hop_length"
	Window     string        `preset:"window"`
	Timeout    time.Duration `preset:"timeout"`
	Internal   string        `preset:"-"`
}

func TestUpdateStruct(t *testing.T) {
	s := presets.NewStore()

	err := s.UpdateStruct(stftDefaults{
		SampleRate: 44100,
		HopLength:  1024,
		Internal:   "skipped",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"hop_length", "sr"}, s.Keys())

	sr, err := s.Get("sr")
	require.NoError(t, err)
	assert.Equal(t, 44100, sr)

	hop, err := s.Get("hop_length")
	require.NoError(t, err)
	assert.Equal(t, 1024, hop)
}

func TestUpdateStructPointerFields(t *testing.T) {
	type defaults struct {
		Factor *float64 `preset:"factor"`
	}

	two := 2.0
	s := presets.NewStore()
	require.NoError(t, s.UpdateStruct(&defaults{Factor: &two}))

	v, err := s.Get("factor")
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestUpdateStructValidation(t *testing.T) {
	s := presets.NewStore()

	assert.Error(t, s.UpdateStruct(42))
	assert.Error(t, s.UpdateStruct((*stftDefaults)(nil)))
}

func TestScan(t *testing.T) {
	s := presets.NewStore()
	s.Update(map[string]any{
		"sr":         "44100", // weakly typed
		"hop_length": 1024,
		"window":     "hann",
		"timeout":    "2s",
	})

	var out stftDefaults
	require.NoError(t, s.Scan(&out))

	assert.Equal(t, 44100, out.SampleRate)
	assert.Equal(t, 1024, out.HopLength)
	assert.Equal(t, "hann", out.Window)
	assert.Equal(t, 2*time.Second, out.Timeout)
	assert.Empty(t, out.Internal)
}

func TestScanValidation(t *testing.T) {
	s := presets.NewStore()

	assert.Error(t, s.Scan(nil))
	assert.Error(t, s.Scan(stftDefaults{}))
}

func TestUpdateStructScanRoundTrip(t *testing.T) {
	s := presets.NewStore()
	require.NoError(t, s.UpdateStruct(stftDefaults{SampleRate: 22050, Window: "hamming"}))

	var out stftDefaults
	require.NoError(t, s.Scan(&out))

	assert.Equal(t, 22050, out.SampleRate)
	assert.Equal(t, "hamming", out.Window)
	assert.Zero(t, out.HopLength)
}

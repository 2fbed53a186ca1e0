package data

import (
	"bytes"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMarketJSON(t *testing.T) {
	m, err := LoadMarketJSON(filepath.Join("testdata", "market.json"))
	require.NoError(t, err)

	ranked := m.Ranked()
	require.Len(t, ranked, 3)
	assert.Equal(t, "Alpha", ranked[0].Name)
	assert.Equal(t, "Gamma", ranked[2].Name)
	assert.Equal(t, []float64{20, 32.5, 36.5}, m.Coverage())
}

func TestLoadMarketJSONMissingTier1(t *testing.T) {
	m, err := LoadMarketJSON(filepath.Join("testdata", "no_tier1.json"))
	assert.ErrorIs(t, err, ErrMissingTier)
	assert.ErrorContains(t, err, "tier1")
	assert.Nil(t, m)
}

func TestLoadMarketJSONErrors(t *testing.T) {
	_, err := LoadMarketJSON(filepath.Join("testdata", "negative.json"))
	assert.ErrorIs(t, err, ErrInvalidShare)

	_, err = LoadMarketJSON(filepath.Join("testdata", "truncated.json"))
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = LoadMarketJSON(filepath.Join("testdata", "absent.json"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadOverlayFallsBackToEmpty(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	for _, name := range []string{"absent.json", "no_tier1.json", "truncated.json"} {
		buf.Reset()
		m, err := LoadOverlay(filepath.Join("testdata", name), logger)
		require.NoError(t, err, name)
		assert.True(t, m.Empty(), name)
		assert.Contains(t, buf.String(), "omitting overlay", name)
	}

	m, err := LoadOverlay(filepath.Join("testdata", "market.json"), logger)
	require.NoError(t, err)
	assert.False(t, m.Empty())
}

func TestLoadOverlayPropagatesOtherIOErrors(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("directory read semantics differ on windows")
	}
	// Reading a directory is an I/O error that is neither missing nor malformed.
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "market.json"), 0o755))

	_, err := LoadOverlay(filepath.Join(dir, "market.json"), nil)
	assert.Error(t, err)
}

func TestShippedMarketFile(t *testing.T) {
	m, err := LoadMarketJSON(filepath.Join("..", "..", "data", "ats-systems.json"))
	require.NoError(t, err)
	assert.Len(t, m.Tier1, 5)
	assert.Len(t, m.Tier2, 10)

	cov := m.Coverage()
	assert.InDelta(t, 49.5, cov[4], 1e-9)
	assert.InDelta(t, 79.5, cov[14], 1e-9)
}

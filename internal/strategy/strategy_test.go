package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxROIFirstOccurrenceWinsTies(t *testing.T) {
	ctx := Context{ROI: []float64{1, 5, 3, 5, 2}}
	assert.Equal(t, 2, MaxROI{}.Decide(ctx))
}

func TestMaxROIBounds(t *testing.T) {
	assert.Equal(t, 0, MaxROI{}.Decide(Context{}))
	assert.Equal(t, 1, MaxROI{}.Decide(Context{ROI: []float64{-1e9}}))
	assert.Equal(t, 3, MaxROI{}.Decide(Context{ROI: []float64{-3, -2, -1}}))
}

func TestSecretaryCutoff(t *testing.T) {
	assert.Equal(t, 12, Cutoff(34))
	assert.Equal(t, 0, Cutoff(2))
	assert.Equal(t, 1, Cutoff(3))
}

func TestSecretaryDecide(t *testing.T) {
	// cutoff for 5 is 1: observe the first value, take the next improvement.
	assert.Equal(t, 3, Secretary{}.Decide(Context{ROI: []float64{4, 2, 6, 9, 1}}))
	// nothing beats the observed max, so it tests everything.
	assert.Equal(t, 5, Secretary{}.Decide(Context{ROI: []float64{9, 2, 6, 8, 1}}))
	assert.Equal(t, 1, Secretary{}.Decide(Context{ROI: []float64{7, 3}}))
	assert.Equal(t, 0, Secretary{}.Decide(Context{}))
}

func TestNames(t *testing.T) {
	for _, s := range []Strategy{MaxROI{}, Secretary{}} {
		assert.NotEmpty(t, s.Name())
	}
}

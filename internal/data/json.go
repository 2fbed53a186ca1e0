package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"ats-coverage/internal/model"
)

var (
	// ErrMissingTier indicates that the market file lacks a tier1 or tier2 key.
	ErrMissingTier = errors.New("data: missing tier")

	// ErrInvalidShare indicates a negative or non-numeric marketShare.
	ErrInvalidShare = errors.New("data: invalid market share")

	// ErrMalformed indicates the file is not valid JSON for the market shape.
	ErrMalformed = errors.New("data: malformed market json")
)

// marketFile distinguishes an absent tier key from an empty list.
type marketFile struct {
	Tier1 *[]model.System `json:"tier1"`
	Tier2 *[]model.System `json:"tier2"`
}

// LoadMarketJSON reads the ranked ATS system list.
func LoadMarketJSON(path string) (*model.Market, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f marketFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	if f.Tier1 == nil {
		return nil, fmt.Errorf("%w: %s has no tier1", ErrMissingTier, path)
	}
	if f.Tier2 == nil {
		return nil, fmt.Errorf("%w: %s has no tier2", ErrMissingTier, path)
	}
	m := &model.Market{Tier1: *f.Tier1, Tier2: *f.Tier2}
	for i, s := range m.Ranked() {
		if s.MarketShare < 0 {
			return nil, fmt.Errorf("%w: rank %d (%s) has share %v", ErrInvalidShare, i+1, s.Name, s.MarketShare)
		}
	}
	return m, nil
}

// LoadOverlay loads the market file for chart overlays. A missing or
// malformed file degrades to an empty market with a warning; any other I/O
// error is returned.
func LoadOverlay(path string, logger *slog.Logger) (*model.Market, error) {
	m, err := LoadMarketJSON(path)
	switch {
	case err == nil:
		return m, nil
	case errors.Is(err, fs.ErrNotExist),
		errors.Is(err, ErrMalformed),
		errors.Is(err, ErrMissingTier),
		errors.Is(err, ErrInvalidShare):
		if logger == nil {
			logger = slog.Default()
		}
		logger.Warn("could not load real market data, omitting overlay", "path", path, "err", err)
		return &model.Market{}, nil
	default:
		return nil, err
	}
}

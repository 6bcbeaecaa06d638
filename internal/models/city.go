package models

import "fmt"

// PollutionTier describes a city's baseline pollution level relative to the
// typical range used by the generators.
type PollutionTier string

const (
	TierTypical PollutionTier = "typical"
	TierHigh    PollutionTier = "high"
	TierLow     PollutionTier = "low"
)

// ParseTier converts a config value into a PollutionTier. Empty means typical.
func ParseTier(s string) (PollutionTier, error) {
	switch PollutionTier(s) {
	case "", TierTypical:
		return TierTypical, nil
	case TierHigh:
		return TierHigh, nil
	case TierLow:
		return TierLow, nil
	}
	return "", fmt.Errorf("unknown pollution tier %q (want typical, high or low)", s)
}

// City is a static registry entry
type City struct {
	Name      string        `json:"name"`
	Latitude  float64       `json:"lat"`
	Longitude float64       `json:"lon"`
	Country   string        `json:"country"`
	Tier      PollutionTier `json:"pollution_tier"`
}

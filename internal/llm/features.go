package llm

import (
	"math"

	"github.com/tonearc/artistdna/internal/scoring"
)

// Features is the sanitized output of the feature-extraction call: small
// bounded corrections on top of deterministic base scoring, plus
// session-quality red flags. Shape is enforced here, at the boundary,
// so nothing downstream needs to re-validate.
type Features struct {
	Tags              []string           `json:"tags"`
	AxisAdjustments   map[string]float64 `json:"axis_adjustments"`
	SocialAdjustments map[string]float64 `json:"social_adjustments"`
	RedFlags          scoring.RedFlags   `json:"red_flags"`
	Notes             string             `json:"notes"`
}

// NeutralFeatures is the fallback when extraction fails or no provider is
// configured: zero adjustments, zero red flags.
func NeutralFeatures() Features {
	return Features{
		Tags:              []string{},
		AxisAdjustments:   zeroAdjustments(scoring.AxisNames),
		SocialAdjustments: zeroAdjustments(scoring.SocialAxisNames),
		Notes:             "AI-анализ недоступен — базовый профиль",
	}
}

func zeroAdjustments(axes []string) map[string]float64 {
	m := make(map[string]float64, len(axes))
	for _, axis := range axes {
		m[axis] = 0
	}
	return m
}

// ParseFeatures coerces an arbitrary JSON object into Features.
// Adjustments are rounded and clamped to [-10,10], red flags to [0,1];
// anything missing or of the wrong type falls back to zero. Unknown axis
// names are dropped.
func ParseFeatures(raw map[string]any) Features {
	f := NeutralFeatures()
	if raw == nil {
		return f
	}

	if tags, ok := raw["tags"].([]any); ok {
		f.Tags = make([]string, 0, len(tags))
		for _, t := range tags {
			if s, ok := t.(string); ok {
				f.Tags = append(f.Tags, s)
			}
		}
	}

	f.AxisAdjustments = parseAdjustments(raw["axis_adjustments"], scoring.AxisNames)
	f.SocialAdjustments = parseAdjustments(raw["social_adjustments"], scoring.SocialAxisNames)

	if rf, ok := raw["red_flags"].(map[string]any); ok {
		f.RedFlags.SocialDesirability = unitFloat(rf["social_desirability"])
		f.RedFlags.LowEffort = unitFloat(rf["low_effort"])
		f.RedFlags.Inconsistency = unitFloat(rf["inconsistency"])
	}

	if notes, ok := raw["notes"].(string); ok {
		f.Notes = notes
	}
	return f
}

func parseAdjustments(v any, axes []string) map[string]float64 {
	out := zeroAdjustments(axes)
	obj, ok := v.(map[string]any)
	if !ok {
		return out
	}
	for _, axis := range axes {
		if n, ok := obj[axis].(float64); ok {
			out[axis] = math.Max(-10, math.Min(10, math.Round(n)))
		}
	}
	return out
}

func unitFloat(v any) float64 {
	n, ok := v.(float64)
	if !ok {
		return 0
	}
	return math.Max(0, math.Min(1, n))
}

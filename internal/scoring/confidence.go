package scoring

import (
	"math"

	"github.com/tonearc/artistdna/internal/survey"
)

// Opposing pairs of scale questions used for structural inconsistency.
// Both members claiming the extreme of supposedly opposite traits is a
// direct contradiction (1.0); both denying the extreme is a weaker but
// still suspicious signal (0.6).
var opposingPairs = [][2]string{
	{"q09_structure_planning", "q10_structure_flow"},
	{"q11_publicness_attention", "q12_publicness_privacy"},
	{"q13_conflict_direct", "q14_conflict_diplomacy"},
	{"q07_lyric_truth", "q08_lyric_technique"},
	{"q15_commercial_instinct", "q16_commercial_integrity"},
}

// ComputeInconsistency scores contradictory answer pairs in [0,1]. Only
// pairs with both members answered on the scale participate; with no such
// pair the result is 0, never undefined.
func ComputeInconsistency(answers []Answer) float64 {
	values := make(map[string]float64, len(answers))
	for _, ans := range answers {
		if ans.Type != survey.TypeScale {
			continue
		}
		if v, ok := numberValue(ans.Payload["value"]); ok {
			values[ans.QuestionID] = v
		}
	}

	var total float64
	var answered int

	for _, pair := range opposingPairs {
		a, okA := values[pair[0]]
		b, okB := values[pair[1]]
		if !okA || !okB {
			continue
		}
		answered++
		switch {
		case a >= 4 && b >= 4:
			total += 1.0
		case a <= 2 && b <= 2:
			total += 0.6
		}
	}

	if answered == 0 {
		return 0
	}
	return math.Max(0, math.Min(1, total/float64(answered)))
}

// RedFlags are session-quality signals produced by the external feature
// extraction step, each in [0,1]. They are clamped before they get here,
// but the confidence formula tolerates any float.
type RedFlags struct {
	SocialDesirability float64 `json:"social_desirability"`
	LowEffort          float64 `json:"low_effort"`
	Inconsistency      float64 `json:"inconsistency"`
}

// ConfidenceInput bundles everything the confidence formula reads.
type ConfidenceInput struct {
	Inconsistency float64
	RedFlags      RedFlags
	DurationSec   int
}

// Confidence is the overall trust score plus a per-axis map over the core
// axes. Both live in [0.30, 0.95].
type Confidence struct {
	Overall float64            `json:"overall"`
	ByAxis  map[string]float64 `json:"by_axis"`
}

const (
	confidenceFloor   = 0.30
	confidenceCeiling = 0.95
)

// ComputeFullConfidence derives the profile trust score.
//
// overall = 0.92 - 0.40*max(inconsistency, redFlags.inconsistency)
//   - 0.25*redFlags.lowEffort - 0.20*redFlags.socialDesirability
//   - duration penalty, clamped to [0.30,0.95].
//
// The duration branches are checked in this exact order: a positive
// duration under 120s costs 0.08, otherwise under 180s costs 0.10.
//
// Per-axis confidence defaults to overall; when structural inconsistency
// reaches 0.6 the five axes most exposed to the opposing pairs take a
// fixed extra penalty, each independently clamped.
func ComputeFullConfidence(in ConfidenceInput) Confidence {
	overall := 0.92 -
		0.40*math.Max(in.Inconsistency, in.RedFlags.Inconsistency) -
		0.25*in.RedFlags.LowEffort -
		0.20*in.RedFlags.SocialDesirability

	if in.DurationSec > 0 && in.DurationSec < 120 {
		overall -= 0.08
	} else if in.DurationSec > 0 && in.DurationSec < 180 {
		overall -= 0.10
	}

	overall = clampConfidence(overall)

	byAxis := make(map[string]float64, len(AxisNames))
	for _, axis := range AxisNames {
		byAxis[axis] = overall
	}

	if in.Inconsistency >= 0.6 {
		byAxis["structure"] = clampConfidence(byAxis["structure"] - 0.12)
		byAxis["publicness"] = clampConfidence(byAxis["publicness"] - 0.08)
		byAxis["conflict_style"] = clampConfidence(byAxis["conflict_style"] - 0.08)
		byAxis["lyric_focus"] = clampConfidence(byAxis["lyric_focus"] - 0.08)
		byAxis["commercial_focus"] = clampConfidence(byAxis["commercial_focus"] - 0.08)
	}

	return Confidence{Overall: overall, ByAxis: byAxis}
}

// clampConfidence rounds to 2 decimal places, then clamps.
func clampConfidence(v float64) float64 {
	return math.Max(confidenceFloor, math.Min(confidenceCeiling, math.Round(v*100)/100))
}

package scoring

import (
	"math"

	"github.com/tonearc/artistdna/internal/survey"
)

// The two axis sets are scored independently by the same fold. A single
// question may carry weights for axes of either set (or none); the
// accumulator silently drops whatever is outside its own set.

// AxisNames are the 8 core trait axes.
var AxisNames = []string{
	"energy",
	"novelty",
	"darkness",
	"lyric_focus",
	"structure",
	"conflict_style",
	"publicness",
	"commercial_focus",
}

// SocialAxisNames are the 4 social magnetism axes.
var SocialAxisNames = []string{
	"warmth",
	"power",
	"edge",
	"clarity",
}

// AxisScores maps axis name to an integer score in 0..100.
type AxisScores map[string]int

// ComputeBaseAxes folds the ordered answer list into a fresh core
// accumulator and resolves each axis to clamp(0,100, round(50+sum)).
// Answers whose question id does not resolve are skipped.
func ComputeBaseAxes(answers []Answer) AxisScores {
	acc := NewAccumulator()
	replay(acc, answers)
	return axesFromAccum(acc, AxisNames)
}

// ComputeSocialBaseAxes is the social-set counterpart of ComputeBaseAxes.
func ComputeSocialBaseAxes(answers []Answer) AxisScores {
	acc := NewSocialAccumulator()
	replay(acc, answers)
	return axesFromAccum(acc, SocialAxisNames)
}

func replay(acc Accumulator, answers []Answer) {
	for _, ans := range answers {
		q, ok := survey.Lookup(ans.QuestionID)
		if !ok {
			continue
		}
		acc.Apply(q, ans.Type, ans.Payload)
	}
}

func axesFromAccum(acc Accumulator, axes []string) AxisScores {
	scores := make(AxisScores, len(axes))
	for _, axis := range axes {
		scores[axis] = clampScore(math.Round(50 + acc[axis].Sum))
	}
	return scores
}

// MergeWithAdjustments combines base core-axis scores with externally
// produced adjustments. Each adjustment is clamped to [-10,10] before it
// is applied, and the sum is re-clamped to [0,100]; missing adjustments
// count as zero. The clamp is the trust boundary: the adjustments come
// from a generation step whose output is not assumed to be in range.
func MergeWithAdjustments(base AxisScores, adjustments map[string]float64) AxisScores {
	merged := make(AxisScores, len(base))
	for axis, score := range base {
		merged[axis] = score
	}
	for _, axis := range AxisNames {
		delta := clampFloat(adjustments[axis], -10, 10)
		merged[axis] = clampScore(math.Round(float64(merged[axis]) + delta))
	}
	return merged
}

// MergeSocialWithAdjustments is the social-set counterpart of
// MergeWithAdjustments. A social axis absent from base starts at the
// neutral 50 before the adjustment is applied.
func MergeSocialWithAdjustments(base AxisScores, adjustments map[string]float64) AxisScores {
	merged := make(AxisScores, len(base))
	for axis, score := range base {
		merged[axis] = score
	}
	for _, axis := range SocialAxisNames {
		score, ok := merged[axis]
		if !ok {
			score = 50
		}
		delta := clampFloat(adjustments[axis], -10, 10)
		merged[axis] = clampScore(math.Round(float64(score) + delta))
	}
	return merged
}

func clampScore(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

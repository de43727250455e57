// Package scoring is the adaptive scoring engine behind the artist DNA
// interview: it folds heterogeneous answers into per-axis accumulators,
// resolves bounded 0..100 axis scores, selects adaptive follow-up
// questions and computes inconsistency/confidence for the final profile.
//
// Everything in this package is pure and deterministic: the same ordered
// answer list always produces the same output, and nothing here blocks,
// logs or touches shared state. Callers are responsible for serializing
// answer submissions within a session.
package scoring

import "github.com/tonearc/artistdna/internal/survey"

// AxisAccum is the running total for one axis: the signed weighted sum of
// contributions and the number of answers that touched the axis. Count
// only ever increases within a session.
type AxisAccum struct {
	Sum   float64
	Count int
}

// Accumulator holds one AxisAccum per axis of a fixed axis set. Axes
// outside the set are never inserted; contributions for them are ignored.
type Accumulator map[string]*AxisAccum

// NewAccumulator returns an empty accumulator over the 8 core trait axes.
func NewAccumulator() Accumulator {
	return newAccumulator(AxisNames)
}

// NewSocialAccumulator returns an empty accumulator over the 4 social
// magnetism axes.
func NewSocialAccumulator() Accumulator {
	return newAccumulator(SocialAxisNames)
}

func newAccumulator(axes []string) Accumulator {
	acc := make(Accumulator, len(axes))
	for _, axis := range axes {
		acc[axis] = &AxisAccum{}
	}
	return acc
}

// Reset zeroes every axis while keeping the axis set intact.
func (a Accumulator) Reset() {
	for _, acc := range a {
		acc.Sum = 0
		acc.Count = 0
	}
}

// Answer is one stored answer as the engine sees it: the question it
// belongs to, its canonical type tag and the raw decoded payload. Answers
// are folded in submission order.
type Answer struct {
	QuestionID string
	Type       string
	Payload    map[string]any
}

// Apply folds a single answer into the accumulator.
//
// Scale answers contribute delta*weight per declared axis, where delta is
// the distance from the scale midpoint. Choice answers (forced_choice,
// sjt) contribute the selected option's weights unscaled. Malformed
// payloads and unresolvable option keys are discarded without touching
// the accumulator; open answers never mutate it.
func (a Accumulator) Apply(q *survey.Question, answerType string, payload map[string]any) {
	switch answerType {
	case survey.TypeScale:
		value, ok := numberValue(payload["value"])
		if !ok {
			return
		}
		mid := 3.0
		if q.Scale != nil {
			mid = q.Scale.Midpoint()
		}
		delta := value - mid
		for axis, weight := range q.AxisWeights {
			acc, ok := a[axis]
			if !ok {
				continue
			}
			acc.Sum += delta * float64(weight)
			acc.Count++
		}
	case survey.TypeForcedChoice, survey.TypeSJT:
		key, ok := payload["key"].(string)
		if !ok {
			return
		}
		opt, ok := q.Option(key)
		if !ok {
			return
		}
		for axis, weight := range opt.AxisWeights {
			acc, ok := a[axis]
			if !ok {
				continue
			}
			acc.Sum += float64(weight)
			acc.Count++
		}
	}
}

// numberValue accepts the numeric shapes a decoded JSON payload can carry.
func numberValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

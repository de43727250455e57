package scoring

import (
	"math"
	"testing"
)

func TestComputeInconsistencyNoPairs(t *testing.T) {
	if got := ComputeInconsistency(nil); got != 0 {
		t.Errorf("empty answers = %v, want 0", got)
	}
	// A pair member alone does not count.
	one := []Answer{scaleAnswer("q09_structure_planning", 5)}
	if got := ComputeInconsistency(one); got != 0 {
		t.Errorf("half pair = %v, want 0", got)
	}
}

func TestComputeInconsistencyContradictions(t *testing.T) {
	cases := []struct {
		name string
		a, b float64
		want float64
	}{
		{"both extreme", 5, 4, 1.0},
		{"both denied", 2, 1, 0.6},
		{"coherent", 5, 1, 0},
		{"neutral", 3, 3, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			answers := []Answer{
				scaleAnswer("q09_structure_planning", tc.a),
				scaleAnswer("q10_structure_flow", tc.b),
			}
			if got := ComputeInconsistency(answers); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestComputeInconsistencyAveragesAnsweredPairs(t *testing.T) {
	answers := []Answer{
		scaleAnswer("q09_structure_planning", 5),
		scaleAnswer("q10_structure_flow", 5), // 1.0
		scaleAnswer("q11_publicness_attention", 5),
		scaleAnswer("q12_publicness_privacy", 1), // 0
	}
	if got := ComputeInconsistency(answers); got != 0.5 {
		t.Errorf("got %v, want 0.5", got)
	}
}

func TestComputeFullConfidenceBaseline(t *testing.T) {
	c := ComputeFullConfidence(ConfidenceInput{})
	if c.Overall != 0.92 {
		t.Errorf("overall = %v, want 0.92", c.Overall)
	}
	for _, axis := range AxisNames {
		if c.ByAxis[axis] != 0.92 {
			t.Errorf("%s = %v, want 0.92", axis, c.ByAxis[axis])
		}
	}
}

func TestComputeFullConfidenceDurationPenalty(t *testing.T) {
	cases := []struct {
		duration int
		want     float64
	}{
		{0, 0.92},
		{60, 0.84},  // rushed, under two minutes
		{150, 0.82}, // under three minutes takes the larger penalty
		{179, 0.82},
		{300, 0.92},
	}
	for _, tc := range cases {
		c := ComputeFullConfidence(ConfidenceInput{DurationSec: tc.duration})
		if c.Overall != tc.want {
			t.Errorf("duration %d: overall = %v, want %v", tc.duration, c.Overall, tc.want)
		}
	}
}

func TestComputeFullConfidenceRedFlags(t *testing.T) {
	c := ComputeFullConfidence(ConfidenceInput{
		RedFlags: RedFlags{SocialDesirability: 1, LowEffort: 1, Inconsistency: 1},
	})
	// 0.92 - 0.40 - 0.25 - 0.20 = 0.07, floored.
	if c.Overall != 0.30 {
		t.Errorf("overall = %v, want floor 0.30", c.Overall)
	}
}

func TestComputeFullConfidenceUsesWorstInconsistency(t *testing.T) {
	structural := ComputeFullConfidence(ConfidenceInput{Inconsistency: 0.5})
	reported := ComputeFullConfidence(ConfidenceInput{
		Inconsistency: 0.2,
		RedFlags:      RedFlags{Inconsistency: 0.5},
	})
	if structural.Overall != reported.Overall {
		t.Errorf("max() not applied: %v vs %v", structural.Overall, reported.Overall)
	}
	if structural.Overall != 0.72 {
		t.Errorf("overall = %v, want 0.72", structural.Overall)
	}
}

func TestComputeFullConfidencePerAxisPenalties(t *testing.T) {
	c := ComputeFullConfidence(ConfidenceInput{Inconsistency: 0.6})
	want := math.Round((0.92-0.40*0.6)*100) / 100 // 0.68

	if c.Overall != want {
		t.Fatalf("overall = %v, want %v", c.Overall, want)
	}
	if c.ByAxis["structure"] != 0.56 {
		t.Errorf("structure = %v, want 0.56", c.ByAxis["structure"])
	}
	for _, axis := range []string{"publicness", "conflict_style", "lyric_focus", "commercial_focus"} {
		if c.ByAxis[axis] != 0.60 {
			t.Errorf("%s = %v, want 0.60", axis, c.ByAxis[axis])
		}
	}
	for _, axis := range []string{"energy", "novelty", "darkness"} {
		if c.ByAxis[axis] != want {
			t.Errorf("%s = %v, want untouched %v", axis, c.ByAxis[axis], want)
		}
	}
}

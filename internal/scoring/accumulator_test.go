package scoring

import (
	"testing"

	"github.com/tonearc/artistdna/internal/survey"
)

func mustQuestion(t *testing.T, id string) *survey.Question {
	t.Helper()
	q, ok := survey.Lookup(id)
	if !ok {
		t.Fatalf("question %s not in bank", id)
	}
	return q
}

func TestApplyScaleAnswer(t *testing.T) {
	acc := NewAccumulator()
	q := mustQuestion(t, "q01_energy_drive") // energy weight 12

	acc.Apply(q, survey.TypeScale, map[string]any{"value": float64(5)})

	if got := acc["energy"].Sum; got != 24 {
		t.Errorf("energy sum = %v, want 24", got)
	}
	if got := acc["energy"].Count; got != 1 {
		t.Errorf("energy count = %d, want 1", got)
	}
}

func TestApplyScaleMidpointIsNeutral(t *testing.T) {
	acc := NewAccumulator()
	q := mustQuestion(t, "q01_energy_drive")

	acc.Apply(q, survey.TypeScale, map[string]any{"value": float64(3)})

	if got := acc["energy"].Sum; got != 0 {
		t.Errorf("energy sum = %v, want 0", got)
	}
	if got := acc["energy"].Count; got != 1 {
		t.Errorf("midpoint answer must still count, got %d", got)
	}
}

func TestApplyChoiceAnswerUnscaled(t *testing.T) {
	acc := NewAccumulator()
	q := mustQuestion(t, "q17_fc_unique_vs_mass")

	acc.Apply(q, survey.TypeForcedChoice, map[string]any{"key": "A"})

	if got := acc["novelty"].Sum; got != 14 {
		t.Errorf("novelty sum = %v, want 14", got)
	}
	if got := acc["commercial_focus"].Sum; got != -8 {
		t.Errorf("commercial_focus sum = %v, want -8", got)
	}
}

func TestApplyMalformedPayloads(t *testing.T) {
	q := mustQuestion(t, "q01_energy_drive")
	fc := mustQuestion(t, "q17_fc_unique_vs_mass")

	cases := []struct {
		name    string
		q       *survey.Question
		typ     string
		payload map[string]any
	}{
		{"scale missing value", q, survey.TypeScale, map[string]any{}},
		{"scale non numeric", q, survey.TypeScale, map[string]any{"value": "five"}},
		{"choice missing key", fc, survey.TypeForcedChoice, map[string]any{}},
		{"choice unknown key", fc, survey.TypeForcedChoice, map[string]any{"key": "Z"}},
		{"open never scores", q, survey.TypeOpen, map[string]any{"text": "что-то"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			acc := NewAccumulator()
			acc.Apply(tc.q, tc.typ, tc.payload)
			for axis, a := range acc {
				if a.Sum != 0 || a.Count != 0 {
					t.Errorf("axis %s mutated: sum=%v count=%d", axis, a.Sum, a.Count)
				}
			}
		})
	}
}

func TestApplyIgnoresAxesOutsideSet(t *testing.T) {
	// q26 weights social axes only; a core accumulator must stay clean.
	acc := NewAccumulator()
	q := mustQuestion(t, "q26_sjt_hate_wave")

	acc.Apply(q, survey.TypeSJT, map[string]any{"key": "B"})

	for axis, a := range acc {
		if a.Sum != 0 || a.Count != 0 {
			t.Errorf("core axis %s mutated by social-only answer", axis)
		}
	}
}

func TestResetKeepsAxisSet(t *testing.T) {
	acc := NewAccumulator()
	q := mustQuestion(t, "q01_energy_drive")
	acc.Apply(q, survey.TypeScale, map[string]any{"value": float64(5)})

	acc.Reset()

	if len(acc) != len(AxisNames) {
		t.Fatalf("axis set changed: %d axes", len(acc))
	}
	if acc["energy"].Sum != 0 || acc["energy"].Count != 0 {
		t.Errorf("reset did not zero energy: %+v", acc["energy"])
	}
}

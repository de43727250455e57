package survey

import (
	"encoding/json"
	"testing"
)

func TestBankShape(t *testing.T) {
	if len(CoreQuestions) != 37 {
		t.Errorf("core questions = %d, want 37", len(CoreQuestions))
	}
	if len(FollowupQuestions) != 7 {
		t.Errorf("followup questions = %d, want 7", len(FollowupQuestions))
	}

	seen := map[string]bool{}
	for _, q := range CoreQuestions {
		if seen[q.ID] {
			t.Errorf("duplicate question id %s", q.ID)
		}
		seen[q.ID] = true
	}
	for _, q := range FollowupQuestions {
		if seen[q.ID] {
			t.Errorf("duplicate question id %s", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestBankConsistency(t *testing.T) {
	check := func(q Question) {
		t.Helper()
		switch q.Type {
		case TypeScale:
			if q.Scale == nil {
				t.Errorf("%s: scale question without scale", q.ID)
			}
			if len(q.AxisWeights) == 0 {
				t.Errorf("%s: scale question without axis weights", q.ID)
			}
		case TypeForcedChoice, TypeSJT:
			if len(q.Options) < 2 {
				t.Errorf("%s: choice question with %d options", q.ID, len(q.Options))
			}
			for _, opt := range q.Options {
				if len(opt.AxisWeights) == 0 {
					t.Errorf("%s/%s: option without axis weights", q.ID, opt.ID)
				}
			}
		case TypeOpen:
			if len(q.Options) != 0 {
				t.Errorf("%s: open question with options", q.ID)
			}
		default:
			t.Errorf("%s: unknown type %q", q.ID, q.Type)
		}

		for _, rule := range q.FollowupRules {
			if rule.IfAxisUncertain == "" && len(rule.IfAxisConflict) == 0 {
				t.Errorf("%s: rule without condition", q.ID)
			}
			for _, id := range rule.Ask {
				if _, ok := FollowupByID(id); !ok {
					t.Errorf("%s: rule asks unknown followup %s", q.ID, id)
				}
			}
		}
	}
	for _, q := range CoreQuestions {
		check(q)
	}
	for _, q := range FollowupQuestions {
		if len(q.FollowupRules) != 0 {
			t.Errorf("%s: followups must not chain", q.ID)
		}
		check(q)
	}
}

func TestLookupCoversBothCatalogs(t *testing.T) {
	if _, ok := Lookup("q01_energy_drive"); !ok {
		t.Error("core question not resolvable")
	}
	if _, ok := Lookup("f01_energy_context"); !ok {
		t.Error("followup not resolvable through Lookup")
	}
	if _, ok := FollowupByID("q01_energy_drive"); ok {
		t.Error("core question leaked into followup catalog")
	}
	if _, ok := Lookup("q99_never_existed"); ok {
		t.Error("unknown id resolved")
	}
}

func TestScaleMidpoint(t *testing.T) {
	s := Scale{Min: 1, Max: 5}
	if got := s.Midpoint(); got != 3 {
		t.Errorf("midpoint = %v, want 3", got)
	}
}

func TestQuestionWireFormat(t *testing.T) {
	q, _ := Lookup("q17_fc_unique_vs_mass")
	b, err := json.Marshal(q)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"id", "type", "text", "options"} {
		if _, ok := m[key]; !ok {
			t.Errorf("serialized question missing %q", key)
		}
	}
	opts := m["options"].([]any)
	opt := opts[0].(map[string]any)
	if _, ok := opt["axis_weights"]; !ok {
		t.Error("option missing axis_weights")
	}
}

package scoring

import (
	"testing"

	"github.com/tonearc/artistdna/internal/survey"
)

func TestIsDontKnow(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"", true},
		{"ок", true},
		{"хз", true},
		{"Не знаю точно", true},
		{"без понятия вообще", true},
		{"за честность и прямоту", false},
		{"люди приходят за энергией", false},
	}
	for _, tc := range cases {
		if got := IsDontKnow(tc.text); got != tc.want {
			t.Errorf("IsDontKnow(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestNextFollowupUncertainAxis(t *testing.T) {
	answers := []Answer{scaleAnswer("q01_energy_drive", 3)}

	q := NextFollowup("q01_energy_drive", answers[0].Payload, answers)
	if q == nil || q.ID != "f01_energy_context" {
		t.Fatalf("got %v, want f01_energy_context", q)
	}
}

func TestNextFollowupAxisNoLongerUncertain(t *testing.T) {
	answers := []Answer{
		scaleAnswer("q02_energy_stamina", 4),
		scaleAnswer("q01_energy_drive", 5),
	}

	if q := NextFollowup("q01_energy_drive", answers[1].Payload, answers); q != nil {
		t.Fatalf("got %s, want no followup once energy has two answers", q.ID)
	}
}

func TestNextFollowupMultiAxisConflict(t *testing.T) {
	// Strong novelty answer pushes novelty up and commercial_focus down.
	answers := []Answer{scaleAnswer("q03_novelty_risk", 5)}

	q := NextFollowup("q03_novelty_risk", answers[0].Payload, answers)
	if q == nil || q.ID != "f03_tradeoff_unique_vs_mass" {
		t.Fatalf("got %v, want f03_tradeoff_unique_vs_mass", q)
	}
}

func TestNextFollowupNoConflictOnNeutral(t *testing.T) {
	answers := []Answer{scaleAnswer("q03_novelty_risk", 3)}

	if q := NextFollowup("q03_novelty_risk", answers[0].Payload, answers); q != nil {
		t.Fatalf("got %s, want nil for neutral answer", q.ID)
	}
}

func TestNextFollowupSingleAxisConflict(t *testing.T) {
	// lyric_focus touched twice with a cancelled-out sum.
	answers := []Answer{
		scaleAnswer("q07_lyric_truth", 3),
		scaleAnswer("q08_lyric_technique", 3),
	}

	q := NextFollowup("q08_lyric_technique", answers[1].Payload, answers)
	if q == nil || q.ID != "f04_lyrics_priority_check" {
		t.Fatalf("got %v, want f04_lyrics_priority_check", q)
	}
}

func TestNextFollowupSkipsAnsweredCandidates(t *testing.T) {
	answers := []Answer{
		scaleAnswer("q01_energy_drive", 3),
		choiceAnswer("f01_energy_context", "A"),
	}

	if q := NextFollowup("q01_energy_drive", answers[0].Payload, answers); q != nil {
		t.Fatalf("got %s, want nil when the only candidate is answered", q.ID)
	}
}

func TestNextFollowupDontKnowHint(t *testing.T) {
	payload := map[string]any{"text": "хз"}
	answers := []Answer{{QuestionID: "q36_open_attract", Type: survey.TypeOpen, Payload: payload}}

	q := NextFollowup("q36_open_attract", payload, answers)
	if q == nil || q.ID != "f06_attract_hint" {
		t.Fatalf("got %v, want f06_attract_hint", q)
	}

	payload = map[string]any{"text": "за искренность и живые концерты"}
	answers[0].Payload = payload
	if q := NextFollowup("q36_open_attract", payload, answers); q != nil {
		t.Fatalf("got %s, want nil for a substantive answer", q.ID)
	}
}

func TestNextFollowupUnknownQuestion(t *testing.T) {
	if q := NextFollowup("q99_never_existed", map[string]any{}, nil); q != nil {
		t.Fatalf("got %s, want nil for unknown question", q.ID)
	}
}

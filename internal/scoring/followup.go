package scoring

import (
	"strings"
	"unicode/utf8"

	"github.com/tonearc/artistdna/internal/survey"
)

// Adaptive follow-up selection. At most one follow-up question is
// surfaced per answer event; follow-up questions never carry rules of
// their own, so selection cannot recurse.

// The two open social magnetism questions get a structured hint question
// when the free-text answer is effectively "don't know".
var dontKnowHints = map[string]string{
	"q36_open_attract": "f06_attract_hint",
	"q37_open_repel":   "f07_repel_hint",
}

var dontKnowPhrases = []string{
	"не знаю",
	"не уверен",
	"хз",
	"без понятия",
	"затрудняюсь",
	"не могу",
}

const dontKnowMinRunes = 4

// IsDontKnow reports whether an open-text answer carries no usable
// signal: too short after trimming, or containing one of the fixed
// "I don't know" phrases.
func IsDontKnow(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	if utf8.RuneCountInString(t) < dontKnowMinRunes {
		return true
	}
	for _, p := range dontKnowPhrases {
		if strings.Contains(t, p) {
			return true
		}
	}
	return false
}

// NextFollowup decides which follow-up question, if any, to ask after the
// answer to questionID has been recorded. answers is the session's full
// history in submission order, including the current answer.
//
// The don't-know heuristic on the designated open questions wins over
// rule evaluation. Otherwise the answered question's rules are evaluated
// in declaration order against a fresh replay of the history; the first
// triggered rule's first not-yet-answered candidate is returned. A rule
// whose candidates are all answered does not stop evaluation of later
// rules. Nil means the caller proceeds with the default sequence.
func NextFollowup(questionID string, payload map[string]any, answers []Answer) *survey.Question {
	if hintID, ok := dontKnowHints[questionID]; ok && payload != nil {
		text, _ := payload["text"].(string)
		if IsDontKnow(text) {
			if hint, ok := survey.FollowupByID(hintID); ok {
				return hint
			}
		}
	}

	q, ok := survey.Lookup(questionID)
	if !ok || len(q.FollowupRules) == 0 {
		return nil
	}

	acc := NewAccumulator()
	replay(acc, answers)

	answered := make(map[string]bool, len(answers))
	for _, ans := range answers {
		answered[ans.QuestionID] = true
	}

	for _, rule := range q.FollowupRules {
		var triggered bool
		switch {
		case rule.IfAxisUncertain != "":
			triggered = IsAxisUncertain(acc, rule.IfAxisUncertain)
		case len(rule.IfAxisConflict) > 0:
			triggered = HasAxisConflict(acc, rule.IfAxisConflict)
		}
		if !triggered {
			continue
		}
		for _, id := range rule.Ask {
			if answered[id] {
				continue
			}
			if fq, ok := survey.FollowupByID(id); ok {
				return fq
			}
		}
	}
	return nil
}

// IsAxisUncertain reports whether fewer than two answers have touched
// the axis. Uncertainty is about evidence volume, not score value.
func IsAxisUncertain(acc Accumulator, axis string) bool {
	a, ok := acc[axis]
	return !ok || a.Count < 2
}

// HasAxisConflict detects an unresolved tension on the listed axes.
//
// For a single axis: touched at least twice yet its magnitude cancelled
// out below the neutrality threshold. For two or more axes: at least two
// have nonzero sums of opposing sign.
func HasAxisConflict(acc Accumulator, axes []string) bool {
	if len(axes) == 1 {
		a, ok := acc[axes[0]]
		if !ok || a.Count < 2 {
			return false
		}
		return abs(a.Sum) < 6
	}

	if len(axes) >= 2 {
		var positive, negative bool
		for _, axis := range axes {
			a, ok := acc[axis]
			if !ok || a.Count == 0 {
				continue
			}
			switch {
			case a.Sum > 0:
				positive = true
			case a.Sum < 0:
				negative = true
			}
		}
		return positive && negative
	}

	return false
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

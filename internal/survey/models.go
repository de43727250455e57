package survey

// Canonical answer-type tags. The question bank and the scoring engine
// speak this vocabulary only.
const (
	TypeScale        = "scale"
	TypeForcedChoice = "forced_choice"
	TypeSJT          = "sjt"
	TypeOpen         = "open"
)

// Scale is the numeric range of a scale question, conventionally 1..5.
type Scale struct {
	Min    int      `json:"min"`
	Max    int      `json:"max"`
	Labels []string `json:"labels,omitempty"`
}

// Midpoint is the neutral center of the scale. A midpoint answer
// contributes zero magnitude but still counts as answered.
func (s Scale) Midpoint() float64 {
	return float64(s.Min+s.Max) / 2
}

// Option belongs to a forced_choice or sjt question. When an option is
// chosen, the option's weights apply, not the parent question's.
type Option struct {
	ID          string         `json:"id"`
	Label       string         `json:"label"`
	AxisWeights map[string]int `json:"axis_weights"`
}

// FollowupRule decides whether an additional question should be asked
// after the parent question is answered. Exactly one of IfAxisUncertain
// or IfAxisConflict is set.
type FollowupRule struct {
	IfAxisUncertain string   `json:"if_axis_uncertain,omitempty"`
	IfAxisConflict  []string `json:"if_axis_conflict,omitempty"`
	Ask             []string `json:"ask"`
}

type Question struct {
	ID            string         `json:"id"`
	Type          string         `json:"type"`
	Text          string         `json:"text"`
	Scale         *Scale         `json:"scale,omitempty"`
	Options       []Option       `json:"options,omitempty"`
	AxisWeights   map[string]int `json:"axis_weights"`
	FollowupRules []FollowupRule `json:"followup_rules,omitempty"`
}

// Option returns the declared option with the given id, or false when the
// key does not resolve.
func (q *Question) Option(id string) (*Option, bool) {
	for i := range q.Options {
		if q.Options[i].ID == id {
			return &q.Options[i], true
		}
	}
	return nil, false
}

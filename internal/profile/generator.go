// Package profile orchestrates result generation when a session is
// finished: deterministic base scoring, LLM feature extraction and
// profile text, confidence, persistence. Every LLM failure degrades to
// a usable fallback result instead of an error.
package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tonearc/artistdna/internal/llm"
	"github.com/tonearc/artistdna/internal/scoring"
	"github.com/tonearc/artistdna/internal/session"
	"github.com/tonearc/artistdna/internal/survey"
)

var ErrNoAnswers = errors.New("profile: no answers recorded")

const (
	extractTimeout   = 25 * time.Second
	generateTimeout  = 60 * time.Second
	extractMaxTokens = 2000
	profileMaxTokens = 3000
)

// Generator produces and persists a Result for a finished session.
// A nil provider is valid and yields the fallback profile.
type Generator struct {
	store    session.Store
	provider llm.Provider
	log      zerolog.Logger
	now      func() time.Time
}

func NewGenerator(store session.Store, provider llm.Provider, log zerolog.Logger) *Generator {
	return &Generator{store: store, provider: provider, log: log, now: time.Now}
}

// Generated is the full finish/result payload handed back to clients.
type Generated struct {
	ResultID        string             `json:"result_id"`
	Axes            scoring.AxisScores `json:"axes"`
	SocialAxes      scoring.AxisScores `json:"social_axes"`
	Confidence      scoring.Confidence `json:"confidence"`
	ProfileText     string             `json:"profile_text"`
	ProfileShort    string             `json:"profile_short"`
	ProfileFull     string             `json:"profile_full"`
	PassportHero    map[string]any     `json:"passport_hero"`
	Recommendations map[string]any     `json:"recommendations"`
	Prompts         map[string]any     `json:"prompts"`
	SocialSummary   map[string]any     `json:"social_summary"`
	Tags            []string           `json:"tags"`
	RedFlags        scoring.RedFlags   `json:"red_flags"`
	Inconsistency   float64            `json:"inconsistency"`
	RegenCount      int                `json:"regen_count"`
	LLMUsed         bool               `json:"llm_used"`
}

// Generate runs the whole pipeline for one session. Regeneration is the
// same call on an already finished session: it appends a new result row.
func (g *Generator) Generate(ctx context.Context, sessionID, styleLevel string) (Generated, error) {
	if styleLevel != "hard" {
		styleLevel = "normal"
	}
	start := g.now()

	sess, err := g.store.GetSession(ctx, sessionID)
	if err != nil {
		return Generated{}, err
	}
	answers, err := g.store.ListAnswers(ctx, sessionID)
	if err != nil {
		return Generated{}, err
	}
	if len(answers) == 0 {
		return Generated{}, ErrNoAnswers
	}

	scAnswers := make([]scoring.Answer, len(answers))
	for i, a := range answers {
		scAnswers[i] = a.Scoring()
	}
	axesBase := scoring.ComputeBaseAxes(scAnswers)
	socialBase := scoring.ComputeSocialBaseAxes(scAnswers)
	structured := structureAnswers(answers)

	durationSec := 0
	if sess.StartedAt > 0 {
		durationSec = int(g.now().Unix() - sess.StartedAt)
	}

	llmUsed := true
	feats := llm.NeutralFeatures()
	if g.provider == nil {
		llmUsed = false
	} else {
		raw, err := g.extractFeatures(ctx, sess, structured, axesBase, socialBase, durationSec)
		if err != nil {
			g.log.Warn().Err(err).Str("session_id", sessionID).Msg("feature extraction failed, neutral features")
			llmUsed = false
		} else {
			feats = llm.ParseFeatures(raw)
		}
	}

	axesFinal := scoring.MergeWithAdjustments(axesBase, feats.AxisAdjustments)
	socialFinal := scoring.MergeSocialWithAdjustments(socialBase, feats.SocialAdjustments)

	inconsistency := scoring.ComputeInconsistency(scAnswers)
	conf := scoring.ComputeFullConfidence(scoring.ConfidenceInput{
		Inconsistency: inconsistency,
		RedFlags:      feats.RedFlags,
		DurationSec:   durationSec,
	})

	var doc map[string]any
	if g.provider != nil {
		raw, err := g.generateProfile(ctx, sess, styleLevel, axesFinal, socialFinal, conf, feats.Tags, structured)
		if err != nil {
			g.log.Warn().Err(err).Str("session_id", sessionID).Msg("profile generation failed, fallback profile")
			llmUsed = false
			doc = fallbackProfile()
		} else {
			doc = postProcess(raw)
		}
	} else {
		doc = fallbackProfile()
	}

	shortText := str(doc["profile_short"])
	fullText := str(doc["profile_full"])
	profileText := shortText + "\n\n" + fullText

	recs := map[string]any{}
	for k, v := range asMap(doc["recommendations"]) {
		recs[k] = v
	}
	recs["social_summary"] = asMap(doc["social_summary"])
	recs["passport_hero"] = asMap(doc["passport_hero"])
	recs["_profile_short"] = shortText
	recs["_profile_full"] = fullText
	recs["_social_axes"] = socialFinal
	recs["_meta"] = map[string]any{"status": "ready", "llm_used": llmUsed}

	saved, err := g.store.SaveResult(ctx, session.Result{
		SessionID:   sessionID,
		Axes:        axesFinal,
		SocialAxes:  socialFinal,
		Confidence:  conf,
		ProfileText: profileText,
		Recommendations: recs,
		Prompts:         asMap(doc["prompts"]),
		RawFeatures: map[string]any{
			"tags":               feats.Tags,
			"axis_adjustments":   feats.AxisAdjustments,
			"social_adjustments": feats.SocialAdjustments,
			"red_flags":          feats.RedFlags,
			"notes":              feats.Notes,
		},
	})
	if err != nil {
		return Generated{}, fmt.Errorf("save result: %w", err)
	}
	if err := g.store.FinishSession(ctx, sessionID); err != nil {
		return Generated{}, fmt.Errorf("finish session: %w", err)
	}

	g.log.Info().
		Str("session_id", sessionID).
		Str("result_id", saved.ID).
		Bool("llm_used", llmUsed).
		Dur("elapsed", g.now().Sub(start)).
		Msg("profile generated")

	return Generated{
		ResultID:        saved.ID,
		Axes:            axesFinal,
		SocialAxes:      socialFinal,
		Confidence:      conf,
		ProfileText:     profileText,
		ProfileShort:    shortText,
		ProfileFull:     fullText,
		PassportHero:    asMap(doc["passport_hero"]),
		Recommendations: asMap(doc["recommendations"]),
		Prompts:         asMap(doc["prompts"]),
		SocialSummary:   asMap(doc["social_summary"]),
		Tags:            feats.Tags,
		RedFlags:        feats.RedFlags,
		Inconsistency:   inconsistency,
		RegenCount:      saved.RegenCount,
		LLMUsed:         llmUsed,
	}, nil
}

func (g *Generator) extractFeatures(ctx context.Context, sess session.Session, structured []structuredAnswer, axesBase, socialBase scoring.AxisScores, durationSec int) (map[string]any, error) {
	payload, err := json.Marshal(map[string]any{
		"session":          map[string]any{"id": sess.ID, "locale": sess.Locale, "version": sess.Version},
		"answers":          structured,
		"axes_base":        axesBase,
		"social_axes_base": socialBase,
		"meta":             map[string]any{"duration_sec": durationSec},
	})
	if err != nil {
		return nil, err
	}
	return g.provider.GenerateJSON(ctx, llm.ExtractFeaturesSystem, string(payload), llm.CallOptions{
		Timeout:   extractTimeout,
		MaxTokens: extractMaxTokens,
	})
}

func (g *Generator) generateProfile(ctx context.Context, sess session.Session, styleLevel string, axes, social scoring.AxisScores, conf scoring.Confidence, tags []string, structured []structuredAnswer) (map[string]any, error) {
	payload, err := json.Marshal(map[string]any{
		"session":           map[string]any{"id": sess.ID, "locale": sess.Locale, "version": sess.Version},
		"style_level":       styleLevel,
		"axes_final":        axes,
		"social_axes_final": social,
		"confidence":        conf,
		"tags":              tags,
		"open_text": map[string]any{
			"identity_line": openText(structured, "q24_open_identity"),
			"nonnegotiable": openText(structured, "q25_open_nonnegotiable"),
			"attract":       openText(structured, "q36_open_attract"),
			"repel":         openText(structured, "q37_open_repel"),
		},
	})
	if err != nil {
		return nil, err
	}
	return g.provider.GenerateJSON(ctx, llm.GenerateProfileSystem, string(payload), llm.CallOptions{
		Timeout:   generateTimeout,
		MaxTokens: profileMaxTokens,
	})
}

// structuredAnswer is the question/answer shape sent to the LLM: choice
// answers carry the human label, not only the option id.
type structuredAnswer struct {
	QuestionID string `json:"question_id"`
	Type       string `json:"type"`
	Answer     any    `json:"answer"`
}

func structureAnswers(answers []session.Answer) []structuredAnswer {
	out := make([]structuredAnswer, 0, len(answers))
	for _, a := range answers {
		var v any
		switch a.Type {
		case survey.TypeScale:
			v = a.Payload["value"]
		case survey.TypeForcedChoice, survey.TypeSJT:
			key, _ := a.Payload["key"].(string)
			label := key
			if q, ok := survey.Lookup(a.QuestionID); ok {
				if opt, found := q.Option(key); found {
					label = opt.Label
				}
			}
			v = map[string]any{"key": key, "label": label}
		default:
			if s, ok := a.Payload["text"].(string); ok {
				v = s
			} else {
				v = ""
			}
		}
		out = append(out, structuredAnswer{QuestionID: a.QuestionID, Type: a.Type, Answer: v})
	}
	return out
}

func openText(structured []structuredAnswer, questionID string) string {
	for _, a := range structured {
		if a.QuestionID == questionID {
			if s, ok := a.Answer.(string); ok {
				return s
			}
			return ""
		}
	}
	return ""
}

var (
	reRunSpace    = regexp.MustCompile(`\s{2,}`)
	reRunNewlines = regexp.MustCompile(`\n{3,}`)
)

func cleanText(s string) string {
	s = reRunSpace.ReplaceAllString(s, " ")
	s = reRunNewlines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

func cleanList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, cleanText(str(it)))
	}
	return out
}

// postProcess normalizes LLM text: collapses whitespace runs and makes
// sure every taboo line starts with the required prefix.
func postProcess(doc map[string]any) map[string]any {
	if h := asMap(doc["passport_hero"]); h != nil {
		h["hook"] = cleanText(str(h["hook"]))
		h["how_people_feel_you"] = cleanText(str(h["how_people_feel_you"]))
		h["shadow"] = cleanText(str(h["shadow"]))
		h["magnet"] = cleanList(h["magnet"])
		h["repulsion"] = cleanList(h["repulsion"])
		h["taboo"] = prefixTaboos(cleanList(h["taboo"]))
		h["next_7_days"] = cleanList(h["next_7_days"])
		doc["passport_hero"] = h
	}
	if ss := asMap(doc["social_summary"]); ss != nil {
		ss["magnets"] = cleanList(ss["magnets"])
		ss["repellers"] = cleanList(ss["repellers"])
		ss["people_come_for"] = cleanText(str(ss["people_come_for"]))
		ss["people_leave_when"] = cleanText(str(ss["people_leave_when"]))
		ss["taboos"] = prefixTaboos(cleanList(ss["taboos"]))
		doc["social_summary"] = ss
	}
	doc["profile_short"] = cleanText(str(doc["profile_short"]))
	doc["profile_full"] = cleanText(str(doc["profile_full"]))
	return doc
}

func prefixTaboos(items []string) []string {
	for i, t := range items {
		if !strings.HasPrefix(t, "Нельзя:") {
			items[i] = "Нельзя: " + t
		}
	}
	return items
}

// fallbackProfile is handed out when the LLM is unavailable: the scored
// axes are still real, the text invites a regeneration.
func fallbackProfile() map[string]any {
	return map[string]any{
		"profile_short": "Базовый профиль сгенерирован. Перегенерируйте для полного AI-анализа.",
		"profile_full":  "AI-анализ был недоступен. Нажмите «Перегенерировать» для полного профиля.",
		"passport_hero": map[string]any{
			"hook":                "Твой профиль собран — перегенерируй для полной версии.",
			"how_people_feel_you": "",
			"magnet":              []string{},
			"repulsion":           []string{},
			"shadow":              "",
			"taboo":               []string{},
			"next_7_days":         []string{"Перегенерируй профиль для полного результата"},
		},
		"recommendations": map[string]any{
			"music":    map[string]any{"genres": []string{}, "tempo_range_bpm": []int{90, 140}, "mood": []string{}, "lyrics": []string{}, "do": []string{}, "avoid": []string{}},
			"content":  map[string]any{"platform_focus": []string{}, "content_pillars": []string{}, "posting_rhythm": "", "hooks": []string{}, "do": []string{}, "avoid": []string{}},
			"behavior": map[string]any{"teamwork": []string{}, "conflict_style": "", "public_replies": []string{}, "stress_protocol": []string{}},
			"visual":   map[string]any{"palette": []string{}, "materials": []string{}, "references": []string{}, "wardrobe": []string{}, "do": []string{}, "avoid": []string{}},
		},
		"prompts": map[string]any{"track_concept": "", "lyrics_seed": "", "cover_prompt": "", "reels_series": ""},
		"social_summary": map[string]any{
			"magnets":           []string{"—", "—", "—"},
			"repellers":         []string{"—", "—", "—"},
			"people_come_for":   "—",
			"people_leave_when": "—",
			"taboos":            []string{"—", "—", "—", "—", "—"},
			"scripts": map[string]any{
				"hate_reply":      []string{"—", "—"},
				"interview_style": []string{"—"},
				"conflict_style":  []string{"—"},
				"teamwork_rule":   []string{"—"},
			},
		},
	}
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

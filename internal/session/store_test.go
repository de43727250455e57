package session

import (
	"context"
	"errors"
	"testing"
)

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	sess, err := store.CreateSession(ctx, "user-1", "ru")
	if err != nil {
		t.Fatal(err)
	}
	if sess.ID == "" || sess.Status != StatusInProgress || sess.StartedAt == 0 {
		t.Fatalf("bad new session: %+v", sess)
	}

	got, err := store.GetSession(ctx, sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.UserID != "user-1" || got.Locale != "ru" {
		t.Fatalf("got %+v", got)
	}

	if err := store.FinishSession(ctx, sess.ID); err != nil {
		t.Fatal(err)
	}
	got, _ = store.GetSession(ctx, sess.ID)
	if got.Status != StatusFinished || got.FinishedAt == 0 {
		t.Fatalf("finish not recorded: %+v", got)
	}

	if _, err := store.GetSession(ctx, "nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestUpsertAnswerKeepsOrder(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	sess, _ := store.CreateSession(ctx, "user-1", "ru")

	put := func(qid string, value float64) {
		t.Helper()
		err := store.UpsertAnswer(ctx, Answer{
			SessionID:  sess.ID,
			QuestionID: qid,
			Type:       "scale",
			Payload:    map[string]any{"value": value},
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	put("q01_energy_drive", 5)
	put("q02_energy_stamina", 4)
	put("q01_energy_drive", 2) // re-answer

	answers, err := store.ListAnswers(ctx, sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(answers) != 2 {
		t.Fatalf("answers = %d, want 2", len(answers))
	}
	if answers[0].QuestionID != "q01_energy_drive" || answers[1].QuestionID != "q02_energy_stamina" {
		t.Fatalf("submission order lost: %s, %s", answers[0].QuestionID, answers[1].QuestionID)
	}
	if answers[0].Payload["value"] != float64(2) {
		t.Fatalf("payload not replaced: %v", answers[0].Payload)
	}
}

func TestSaveResultTracksRegenCount(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	sess, _ := store.CreateSession(ctx, "user-1", "ru")

	first, err := store.SaveResult(ctx, Result{SessionID: sess.ID, ProfileText: "v1"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := store.SaveResult(ctx, Result{SessionID: sess.ID, ProfileText: "v2"})
	if err != nil {
		t.Fatal(err)
	}
	if first.RegenCount != 0 || second.RegenCount != 1 {
		t.Fatalf("regen counts = %d, %d", first.RegenCount, second.RegenCount)
	}

	latest, err := store.LatestResult(ctx, sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	if latest.ProfileText != "v2" {
		t.Fatalf("latest = %q, want v2", latest.ProfileText)
	}

	byID, err := store.ResultByID(ctx, first.ID)
	if err != nil {
		t.Fatal(err)
	}
	if byID.ProfileText != "v1" {
		t.Fatalf("by id = %q, want v1", byID.ProfileText)
	}

	if _, err := store.LatestResult(ctx, "nope"); !errors.Is(err, ErrResultNotFound) {
		t.Fatalf("err = %v, want ErrResultNotFound", err)
	}
}

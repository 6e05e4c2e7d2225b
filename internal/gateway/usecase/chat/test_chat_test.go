package chat

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"astroguide/internal/gateway/entity"
	profilerepo "astroguide/internal/gateway/repository/profile"
	"astroguide/internal/guide"
)

type brokenChatStore struct {
	*profilerepo.MemoryStore
}

func (brokenChatStore) AppendChat(context.Context, entity.ChatMessage) (entity.ChatMessage, error) {
	return entity.ChatMessage{}, errors.New("database is locked")
}

func seed(t *testing.T, store profilerepo.Store) entity.Profile {
	t.Helper()
	p, err := store.CreateProfile(context.Background(), entity.Profile{
		Name:   "Ada",
		Astro:  entity.AstroData{SunSign: "Leo", MoonSign: "Pisces"},
		Design: entity.HumanDesign{Type: "Generator", Authority: "Sacral"},
	})
	if err != nil {
		t.Fatalf("CreateProfile() error = %v", err)
	}
	return p
}

func TestAskValidation(t *testing.T) {
	svc := New(Deps{Profiles: profilerepo.NewMemoryStore()}, nil)
	for _, tc := range []struct {
		id  entity.UserID
		msg string
	}{{0, "hello"}, {1, ""}} {
		_, err := svc.Ask(context.Background(), tc.id, tc.msg)
		if !errors.Is(err, entity.ErrInvalidInput) || err.Error() != "User ID and message are required" {
			t.Fatalf("Ask(%d, %q) error = %v", tc.id, tc.msg, err)
		}
	}
	if _, err := svc.Ask(context.Background(), 99, "hello"); !errors.Is(err, entity.ErrUserNotFound) {
		t.Fatalf("Ask(unknown) error = %v, want ErrUserNotFound", err)
	}
}

func TestAskComposesAndRecords(t *testing.T) {
	store := profilerepo.NewMemoryStore()
	p := seed(t, store)
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	svc := New(Deps{Profiles: store}, func() time.Time { return now })

	reply, err := svc.Ask(context.Background(), p.ID, "  What CAREER suits me?  ")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if reply.Topic != guide.TopicCareer {
		t.Fatalf("Topic = %q, want career", reply.Topic)
	}
	want := guide.ComposeResponse(p.AstroProfile(), p.DesignProfile(), guide.TopicCareer)
	if reply.Response != want {
		t.Fatalf("Response = %q, want %q", reply.Response, want)
	}

	history, err := svc.History(context.Background(), p.ID, 0)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("History() len = %d, want 1", len(history))
	}
	h := history[0]
	if h.Message != "  What CAREER suits me?  " || h.Topic != "career" || h.Response != want || !h.CreatedAt.Equal(now) {
		t.Fatalf("recorded turn = %+v", h)
	}
}

func TestAskGeneralFallback(t *testing.T) {
	store := profilerepo.NewMemoryStore()
	p := seed(t, store)
	reply, err := New(Deps{Profiles: store}, nil).Ask(context.Background(), p.ID, "hello there")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if reply.Topic != guide.TopicGeneral {
		t.Fatalf("Topic = %q, want general", reply.Topic)
	}
	if !strings.HasSuffix(reply.Response, "What specific questions do you have about your design or cosmic path?") {
		t.Fatalf("Response = %q", reply.Response)
	}
}

func TestAskWhitespaceMessageGetsGeneralAnswer(t *testing.T) {
	store := profilerepo.NewMemoryStore()
	p := seed(t, store)
	svc := New(Deps{Profiles: store}, nil)

	reply, err := svc.Ask(context.Background(), p.ID, "   ")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if reply.Topic != guide.TopicGeneral {
		t.Fatalf("Topic = %q, want general", reply.Topic)
	}
	history, err := svc.History(context.Background(), p.ID, 0)
	if err != nil || len(history) != 1 || history[0].Message != "   " {
		t.Fatalf("History() = %+v, %v", history, err)
	}
}

func TestAskSurvivesRecordFailure(t *testing.T) {
	store := brokenChatStore{MemoryStore: profilerepo.NewMemoryStore()}
	p := seed(t, store)
	reply, err := New(Deps{Profiles: store}, nil).Ask(context.Background(), p.ID, "love advice please")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if reply.Topic != guide.TopicLove || reply.Response == "" {
		t.Fatalf("reply = %+v", reply)
	}
}

func TestHistoryLimits(t *testing.T) {
	store := profilerepo.NewMemoryStore()
	p := seed(t, store)
	svc := New(Deps{Profiles: store}, nil)
	for i := 0; i < 5; i++ {
		if _, err := svc.Ask(context.Background(), p.ID, "purpose"); err != nil {
			t.Fatalf("Ask() error = %v", err)
		}
	}
	got, err := svc.History(context.Background(), p.ID, 2)
	if err != nil || len(got) != 2 {
		t.Fatalf("History(2) = %d items, %v", len(got), err)
	}
	if _, err := svc.History(context.Background(), 404, 10); !errors.Is(err, entity.ErrUserNotFound) {
		t.Fatalf("History(unknown) error = %v", err)
	}

	for in, want := range map[int]int{-1: 50, 0: 50, 10: 10, 200: 200, 1000: 200} {
		if got := ClampLimit(in); got != want {
			t.Fatalf("ClampLimit(%d) = %d, want %d", in, got, want)
		}
	}
}

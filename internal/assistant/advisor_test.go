package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"skills-radar/internal/domain"
	"skills-radar/internal/infrastructure/cache"
	"skills-radar/internal/repository"
	"skills-radar/internal/store"
)

type stubAssistant struct {
	reply   string
	err     error
	prompts []string
}

func (s *stubAssistant) SendMessage(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newAdvisorFixture(t *testing.T, stub *stubAssistant) *Advisor {
	t.Helper()
	s := store.NewMemory()
	members := repository.NewStoreMemberRepository(s)
	memberSkills := repository.NewStoreMemberSkillRepository(s)
	skills := repository.NewStoreSkillRepository(s)

	ctx := context.Background()
	if err := members.Add(ctx, domain.Member{
		ID: "m1", CorporateEmail: "jane@example.com", FullName: "Jane Doe",
		Category: domain.CategoryBuilder, AvailabilityStatus: domain.AvailabilityAvailable,
	}); err != nil {
		t.Fatalf("seed member: %v", err)
	}
	if err := skills.Add(ctx, domain.Skill{ID: "s1", Name: "Go"}); err != nil {
		t.Fatalf("seed skill: %v", err)
	}
	if err := memberSkills.Add(ctx, domain.MemberSkill{MemberID: "m1", SkillID: "s1", ProficiencyValue: "4"}); err != nil {
		t.Fatalf("seed member skill: %v", err)
	}

	snap := NewSnapshotCache(cache.NewMemory(), 0, members, memberSkills, skills)
	return NewAdvisor(stub, snap, nil)
}

func TestAdvisorAskGroundsPromptInSnapshot(t *testing.T) {
	stub := &stubAssistant{reply: "Jane knows Go."}
	adv := newAdvisorFixture(t, stub)

	answer, err := adv.Ask(context.Background(), "who knows Go?")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if answer != "Jane knows Go." {
		t.Fatalf("unexpected answer %q", answer)
	}
	if len(stub.prompts) != 1 {
		t.Fatalf("expected one model call, got %d", len(stub.prompts))
	}
	for _, want := range []string{"Jane Doe", "Go (level 4)", "who knows Go?"} {
		if !strings.Contains(stub.prompts[0], want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestAdvisorAskRejectsEmptyQuery(t *testing.T) {
	adv := newAdvisorFixture(t, &stubAssistant{})
	if _, err := adv.Ask(context.Background(), "   "); err == nil {
		t.Fatal("expected error for blank query")
	}
}

func TestAdvisorAskFallsBackWhenModelFails(t *testing.T) {
	stub := &stubAssistant{err: errors.New("rate limited")}
	adv := newAdvisorFixture(t, stub)

	answer, err := adv.Ask(context.Background(), "anything")
	if err != nil {
		t.Fatalf("fallback should not be an error: %v", err)
	}
	if answer != fallbackAnswer {
		t.Fatalf("expected fallback answer, got %q", answer)
	}
}

func TestAnalyzeAndRecommendParsesFencedJSON(t *testing.T) {
	stub := &stubAssistant{reply: "```json\n{\"responseText\": \"Staff Jane\", \"suggestions\": [\"Pair her with Bob\"]}\n```"}
	adv := newAdvisorFixture(t, stub)

	rec, err := adv.AnalyzeAndRecommend(context.Background(), "who should take the Go project?")
	if err != nil {
		t.Fatalf("AnalyzeAndRecommend: %v", err)
	}
	if rec.ResponseText != "Staff Jane" {
		t.Fatalf("unexpected response text %q", rec.ResponseText)
	}
	if len(rec.Suggestions) != 1 || rec.Suggestions[0] != "Pair her with Bob" {
		t.Fatalf("unexpected suggestions %v", rec.Suggestions)
	}
}

func TestAnalyzeAndRecommendKeepsNonJSONAsText(t *testing.T) {
	stub := &stubAssistant{reply: "I would staff Jane on the Go project."}
	adv := newAdvisorFixture(t, stub)

	rec, err := adv.AnalyzeAndRecommend(context.Background(), "staffing?")
	if err != nil {
		t.Fatalf("AnalyzeAndRecommend: %v", err)
	}
	if rec.ResponseText != "I would staff Jane on the Go project." {
		t.Fatalf("unexpected response text %q", rec.ResponseText)
	}
	if rec.Suggestions == nil || len(rec.Suggestions) != 0 {
		t.Fatalf("suggestions should be empty, got %v", rec.Suggestions)
	}
}

func TestAnalyzeAndRecommendFallsBackWhenModelFails(t *testing.T) {
	adv := newAdvisorFixture(t, &stubAssistant{err: errors.New("boom")})

	rec, err := adv.AnalyzeAndRecommend(context.Background(), "staffing?")
	if err != nil {
		t.Fatalf("fallback should not be an error: %v", err)
	}
	if rec.ResponseText != fallbackAnswer {
		t.Fatalf("expected fallback answer, got %q", rec.ResponseText)
	}
}

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"plain object", `{"a":1}`, `{"a":1}`, true},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`, true},
		{"surrounded by prose", `Sure! {"a":1} Hope that helps.`, `{"a":1}`, true},
		{"no object", "just words", "", false},
		{"broken json", `{"a":`, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractJSON(tc.in)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if tc.ok && string(got) != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
)

const fallbackAnswer = "The assistant is unavailable right now. Please try again in a moment."

type Recommendation struct {
	ResponseText string   `json:"responseText"`
	Suggestions  []string `json:"suggestions"`
}

// Advisor wraps the raw assistant with team-context prompting and
// response-shape coercion. External failures are logged and turned into a
// fallback answer; they never propagate as a crash of the caller.
type Advisor struct {
	assistant Assistant
	snapshot  *SnapshotCache
	logger    *log.Logger
}

func NewAdvisor(a Assistant, snapshot *SnapshotCache, logger *log.Logger) *Advisor {
	if logger == nil {
		logger = log.Default()
	}
	return &Advisor{assistant: a, snapshot: snapshot, logger: logger}
}

// Ask answers a free-text question grounded in the team snapshot.
func (a *Advisor) Ask(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", fmt.Errorf("empty query")
	}

	teamContext, err := a.snapshot.Get(ctx)
	if err != nil {
		a.logger.Printf("[Assistant] snapshot build failed: %v", err)
		teamContext = ""
	}

	prompt := fmt.Sprintf(
		"You are the assistant of a team skills dashboard.\n\nTeam data:\n%s\nAnswer the question concisely.\n\nQuestion: %s",
		teamContext, query,
	)
	answer, err := a.assistant.SendMessage(ctx, prompt)
	if err != nil {
		a.logger.Printf("[Assistant] call failed: %v", err)
		return fallbackAnswer, nil
	}
	return answer, nil
}

// AnalyzeAndRecommend asks for a structured answer and coerces the response
// into a Recommendation. A response that does not parse as JSON is kept
// whole as the response text with no suggestions.
func (a *Advisor) AnalyzeAndRecommend(ctx context.Context, query string) (Recommendation, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Recommendation{}, fmt.Errorf("empty query")
	}

	teamContext, err := a.snapshot.Get(ctx)
	if err != nil {
		a.logger.Printf("[Assistant] snapshot build failed: %v", err)
		teamContext = ""
	}

	prompt := fmt.Sprintf(
		"You are the assistant of a team skills dashboard.\n\nTeam data:\n%s\n"+
			"Analyze the request and reply with a JSON object shaped exactly as "+
			`{"responseText": string, "suggestions": [string]}.`+"\n\nRequest: %s",
		teamContext, query,
	)
	raw, err := a.assistant.SendMessage(ctx, prompt)
	if err != nil {
		a.logger.Printf("[Assistant] call failed: %v", err)
		return Recommendation{ResponseText: fallbackAnswer, Suggestions: []string{}}, nil
	}

	if payload, ok := ExtractJSON(raw); ok {
		var rec Recommendation
		if err := json.Unmarshal(payload, &rec); err == nil && rec.ResponseText != "" {
			if rec.Suggestions == nil {
				rec.Suggestions = []string{}
			}
			return rec, nil
		}
	}
	return Recommendation{ResponseText: strings.TrimSpace(raw), Suggestions: []string{}}, nil
}

// ExtractJSON pulls the first JSON object out of model output, tolerating
// markdown code fences around it.
func ExtractJSON(text string) ([]byte, bool) {
	t := strings.TrimSpace(text)

	if strings.HasPrefix(t, "```") {
		t = strings.TrimPrefix(t, "```json")
		t = strings.TrimPrefix(t, "```")
		if i := strings.LastIndex(t, "```"); i >= 0 {
			t = t[:i]
		}
		t = strings.TrimSpace(t)
	}

	start := strings.IndexByte(t, '{')
	end := strings.LastIndexByte(t, '}')
	if start < 0 || end <= start {
		return nil, false
	}
	candidate := []byte(t[start : end+1])
	if !json.Valid(candidate) {
		return nil, false
	}
	return candidate, true
}

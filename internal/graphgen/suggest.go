package graphgen

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/google/uuid"

	"planforge/ent"
	"planforge/internal/jsonx"
	"planforge/internal/llm"
)

// Suggestion is a proposed feature for a project.
type Suggestion struct {
	Title string `json:"title"`
	Notes string `json:"notes,omitempty"`
}

const maxSuggestions = 8

// SuggestFeatures asks the completion service for feature ideas based on the
// project description and the features it already has. A degraded AI path
// yields an empty list, never an error: autofill is strictly additive.
func (o *Orchestrator) SuggestFeatures(ctx context.Context, proj *ent.Project, existing []FeatureInfo, userID uuid.UUID) []Suggestion {
	apiKey, ok := o.decryptedKey(ctx, userID)
	if !ok {
		return nil
	}

	cfg := o.Store.Get()
	completer := o.NewCompleter(llm.Options{
		APIKey:  apiKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Timeout: time.Duration(cfg.LLM.RequestSecond) * time.Second,
	})

	text, err := completer.Complete(ctx, buildSuggestPrompt(proj, existing))
	if err != nil {
		genLogger.Warn("suggest completion failed",
			zap.String("project_id", proj.ID.String()), zap.Error(err))
		return nil
	}

	return parseSuggestions(text, existing)
}

func buildSuggestPrompt(proj *ent.Project, existing []FeatureInfo) string {
	var b strings.Builder
	b.WriteString("You are helping plan a software product.\n")
	b.WriteString("Project: " + proj.Name + "\n")
	if proj.Description != "" {
		b.WriteString("Description: " + proj.Description + "\n")
	}
	if len(existing) > 0 {
		b.WriteString("Existing features:\n")
		for _, f := range existing {
			b.WriteString("- " + f.Title + "\n")
		}
	}
	b.WriteString("\nPropose up to 8 additional features this product needs. Do not repeat existing features.\n")
	b.WriteString(`Respond with strict JSON only: {"features":[{"title":"...","notes":"..."}]}` + "\n")
	return b.String()
}

// parseSuggestions is permissive about the response shape but strict about
// duplicates against the existing feature titles.
func parseSuggestions(text string, existing []FeatureInfo) []Suggestion {
	span, ok := jsonx.FirstObject(text)
	if !ok {
		return nil
	}
	var resp struct {
		Features []Suggestion `json:"features"`
	}
	if err := json.Unmarshal([]byte(span), &resp); err != nil {
		return nil
	}

	taken := make(map[string]bool, len(existing))
	for _, f := range existing {
		taken[strings.ToLower(strings.TrimSpace(f.Title))] = true
	}

	out := make([]Suggestion, 0, len(resp.Features))
	for _, s := range resp.Features {
		s.Title = strings.TrimSpace(s.Title)
		key := strings.ToLower(s.Title)
		if s.Title == "" || taken[key] {
			continue
		}
		taken[key] = true
		out = append(out, s)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

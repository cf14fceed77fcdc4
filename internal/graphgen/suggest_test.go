package graphgen

import (
	"context"
	"testing"

	"planforge/internal/cryptox"
	"planforge/internal/llm"
)

func TestParseSuggestions(t *testing.T) {
	existing := fixedFeatures("Login")

	got := parseSuggestions(`{"features":[{"title":"Login"},{"title":"Billing","notes":"invoices"},{"title":" Billing "},{"title":""}]}`, existing)
	if len(got) != 1 || got[0].Title != "Billing" || got[0].Notes != "invoices" {
		t.Fatalf("suggestions = %+v", got)
	}

	if got := parseSuggestions("no json here", existing); got != nil {
		t.Fatalf("prose response must yield nil, got %+v", got)
	}
	if got := parseSuggestions(`{"features":"wrong shape"}`, existing); got != nil {
		t.Fatalf("bad shape must yield nil, got %+v", got)
	}
}

func TestSuggestFeatures_UsesCompleter(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	ctx := context.Background()
	u, p, feats := seedProject(t, client, "Login")

	box, err := cryptox.NewBox("3f786850e387550fdab836ed7e6dc881de23001b3c7a0c91f6e14f6aa256b7e0")
	if err != nil {
		t.Fatal(err)
	}
	sealed, err := box.Seal("sk-user-key")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := client.APICredential.Create().SetEncryptedKey(sealed).SetOwnerID(u.ID).Save(ctx); err != nil {
		t.Fatal(err)
	}

	o := NewOrchestrator(client, testStore(), box, nil)
	o.NewCompleter = func(opts llm.Options) llm.Completer {
		return llm.CompleterFunc{Label: opts.Model, Fn: func(ctx context.Context, prompt string) (string, error) {
			return `{"features":[{"title":"Billing","notes":"invoices"},{"title":"Login"}]}`, nil
		}}
	}

	infos := []FeatureInfo{{ID: feats[0].ID, Title: feats[0].Title, Notes: feats[0].Notes}}
	got := o.SuggestFeatures(ctx, p, infos, u.ID)
	if len(got) != 1 || got[0].Title != "Billing" {
		t.Fatalf("suggestions = %+v", got)
	}
}

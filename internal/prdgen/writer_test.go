package prdgen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"planforge/ent"
	entprd "planforge/ent/prd"
	"planforge/internal/config"
	"planforge/internal/cryptox"
	"planforge/internal/llm"
)

const testBoxKey = "3f786850e387550fdab836ed7e6dc881de23001b3c7a0c91f6e14f6aa256b7e0"

func testStore() *config.Store {
	cfg := &config.Config{}
	cfg.LLM.Model = "test-model"
	cfg.LLM.MaxPRDTokens = DefaultMaxTokens
	return config.NewStore(cfg)
}

func seedCredential(t *testing.T, client *ent.Client, box *cryptox.Box, owner *ent.User, key string) {
	t.Helper()
	sealed, err := box.Seal(key)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := client.APICredential.Create().
		SetEncryptedKey(sealed).
		SetKeyHint("..." + key[len(key)-4:]).
		SetOwnerID(owner.ID).
		Save(context.Background()); err != nil {
		t.Fatalf("create credential: %v", err)
	}
}

func seedGeneratingPRD(t *testing.T, client *ent.Client, featureID uuid.UUID) *ent.PRD {
	t.Helper()
	row, err := client.PRD.Create().
		SetStatus(entprd.StatusGenerating).
		SetFeatureID(featureID).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create prd: %v", err)
	}
	return row
}

func TestWriter_ReadyPath(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	ctx := context.Background()
	fx := seedGraph(t, client)
	target := fx.byTitle["Billing"]

	box, err := cryptox.NewBox(testBoxKey)
	if err != nil {
		t.Fatal(err)
	}
	seedCredential(t, client, box, fx.owner, "sk-user-key")
	row := seedGeneratingPRD(t, client, target.ID)

	var gotKey, gotPrompt string
	w := NewWriter(client, testStore(), box, nil, nil, nil)
	w.NewCompleter = func(opts llm.Options) llm.Completer {
		gotKey = opts.APIKey
		return llm.CompleterFunc{
			Label: opts.Model,
			Fn: func(ctx context.Context, prompt string) (string, error) {
				gotPrompt = prompt
				return "```json\n{\"markdown\":\"# Billing PRD\\n\\nBody.\",\"summary\":\"invoicing\"}\n```", nil
			},
		}
	}

	w.Run(fx.owner.ID, fx.project.ID, target.ID)

	if gotKey != "sk-user-key" {
		t.Fatalf("completer key = %q", gotKey)
	}
	if !strings.Contains(gotPrompt, "Billing") || !strings.Contains(gotPrompt, "Invoices") {
		t.Fatalf("prompt missing context:\n%s", gotPrompt)
	}

	row, err = client.PRD.Get(ctx, row.ID)
	if err != nil {
		t.Fatal(err)
	}
	if row.Status != entprd.StatusReady {
		t.Fatalf("status = %s, want ready", row.Status)
	}
	if row.ContentMd != "# Billing PRD\n\nBody." {
		t.Fatalf("content_md = %q", row.ContentMd)
	}
	if row.Model != "test-model" {
		t.Fatalf("model = %q", row.Model)
	}
	if row.ContentJSON["summary"] != "invoicing" {
		t.Fatalf("content_json = %+v", row.ContentJSON)
	}
	if row.ErrorMessage != "" {
		t.Fatalf("error_message = %q", row.ErrorMessage)
	}
}

func TestWriter_CompletionFailureMarksError(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	ctx := context.Background()
	fx := seedGraph(t, client)
	target := fx.byTitle["Auth"]

	box, err := cryptox.NewBox(testBoxKey)
	if err != nil {
		t.Fatal(err)
	}
	seedCredential(t, client, box, fx.owner, "sk-user-key")
	row := seedGeneratingPRD(t, client, target.ID)

	w := NewWriter(client, testStore(), box, nil, nil, nil)
	w.NewCompleter = func(opts llm.Options) llm.Completer {
		return llm.CompleterFunc{Label: opts.Model, Fn: func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("rate limited")
		}}
	}

	w.Run(fx.owner.ID, fx.project.ID, target.ID)

	row, err = client.PRD.Get(ctx, row.ID)
	if err != nil {
		t.Fatal(err)
	}
	if row.Status != entprd.StatusError {
		t.Fatalf("status = %s, want error", row.Status)
	}
	if !strings.Contains(row.ErrorMessage, "rate limited") {
		t.Fatalf("error_message = %q", row.ErrorMessage)
	}
}

func TestWriter_MissingCredentialMarksError(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	ctx := context.Background()
	fx := seedGraph(t, client)
	target := fx.byTitle["Auth"]

	box, err := cryptox.NewBox(testBoxKey)
	if err != nil {
		t.Fatal(err)
	}
	row := seedGeneratingPRD(t, client, target.ID)

	w := NewWriter(client, testStore(), box, nil, nil, nil)
	w.Run(fx.owner.ID, fx.project.ID, target.ID)

	row, err = client.PRD.Get(ctx, row.ID)
	if err != nil {
		t.Fatal(err)
	}
	if row.Status != entprd.StatusError {
		t.Fatalf("status = %s, want error (never stuck at generating)", row.Status)
	}
	if row.ErrorMessage != "no API credential configured" {
		t.Fatalf("error_message = %q", row.ErrorMessage)
	}
}

func TestParsePRDResponse(t *testing.T) {
	md, structured := parsePRDResponse("just plain prose, no json here")
	if md != "just plain prose, no json here" || structured != nil {
		t.Fatalf("plain text must be kept wholesale: %q %+v", md, structured)
	}

	md, structured = parsePRDResponse(`{"summary":"s"}`)
	if md != `{"summary":"s"}` {
		t.Fatalf("missing markdown field should keep raw text, got %q", md)
	}
	if structured["summary"] != "s" {
		t.Fatalf("structured = %+v", structured)
	}
}

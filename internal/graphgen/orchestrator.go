package graphgen

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"planforge/ent"
	"planforge/ent/apicredential"
	"planforge/ent/dependency"
	"planforge/ent/project"
	"planforge/ent/user"
	"planforge/internal/config"
	"planforge/internal/cryptox"
	"planforge/internal/jsonx"
	"planforge/internal/llm"
	"planforge/internal/logx"
	"planforge/internal/mqx"
)

var genLogger = logx.GetScope("graphgen")

// Orchestrator runs the full generation pipeline: completion call,
// normalization, layout, persistence, audit. Any failure on the AI path
// degrades to the fallback graph; persistence failures are hard errors.
type Orchestrator struct {
	Client *ent.Client
	Store  *config.Store
	Box    *cryptox.Box // nil when no credential key is configured
	MQ     mqx.Publisher

	// NewCompleter builds the completion client for one call. Overridable
	// in tests.
	NewCompleter func(opts llm.Options) llm.Completer
}

func NewOrchestrator(client *ent.Client, store *config.Store, box *cryptox.Box, mq mqx.Publisher) *Orchestrator {
	return &Orchestrator{
		Client: client,
		Store:  store,
		Box:    box,
		MQ:     mq,
		NewCompleter: func(opts llm.Options) llm.Completer {
			return llm.NewOpenAIClient(opts)
		},
	}
}

// GenerateAndPersist regenerates the project's graph from its features.
// The returned payload is always renderable: when the AI path is unavailable
// for any reason the graph degrades to one node per feature with no
// dependency edges. The only error conditions are an empty feature set and
// persistence failures.
func (o *Orchestrator) GenerateAndPersist(ctx context.Context, proj *ent.Project, feats []*ent.Feature, userID uuid.UUID) (Payload, NormalizedGraph, error) {
	if len(feats) == 0 {
		return Payload{}, NormalizedGraph{}, ErrEmptyFeatureSet
	}

	infos := make([]FeatureInfo, 0, len(feats))
	for _, f := range feats {
		infos = append(infos, FeatureInfo{ID: f.ID, Title: f.Title, Notes: f.Notes})
	}

	raw, model, ok := o.proposeGraph(ctx, proj, infos, userID)
	normalized, err := Normalize(raw, infos, !ok, model)
	if err != nil {
		return Payload{}, NormalizedGraph{}, err
	}

	payload, positions := BuildLayout(proj.Name, normalized, infos)

	if err := o.persist(ctx, proj.ID, feats, payload, positions, normalized); err != nil {
		return Payload{}, NormalizedGraph{}, err
	}

	o.publishGenerated(ctx, proj.ID, normalized, len(infos))

	return payload, normalized, nil
}

// proposeGraph runs the AI path. ok=false means fall back; the reason is
// logged but never surfaced, graph availability must not depend on the
// completion service being healthy.
func (o *Orchestrator) proposeGraph(ctx context.Context, proj *ent.Project, infos []FeatureInfo, userID uuid.UUID) (RawGraph, string, bool) {
	apiKey, ok := o.decryptedKey(ctx, userID)
	if !ok {
		genLogger.Debug("no usable credential, using fallback graph", zap.String("project_id", proj.ID.String()))
		return RawGraph{}, "", false
	}

	cfg := o.Store.Get()
	completer := o.NewCompleter(llm.Options{
		APIKey:  apiKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Timeout: time.Duration(cfg.LLM.RequestSecond) * time.Second,
	})

	prompt := BuildGraphPrompt(proj.Name, proj.Description, infos)
	text, err := completer.Complete(ctx, prompt)
	if err != nil {
		genLogger.Warn("completion failed, using fallback graph",
			zap.String("project_id", proj.ID.String()), zap.Error(err))
		return RawGraph{}, "", false
	}

	span, found := jsonx.FirstObject(text)
	if !found {
		genLogger.Warn("no JSON object in completion, using fallback graph",
			zap.String("project_id", proj.ID.String()))
		return RawGraph{}, "", false
	}
	var raw RawGraph
	if err := json.Unmarshal([]byte(span), &raw); err != nil {
		genLogger.Warn("completion JSON did not match schema, using fallback graph",
			zap.String("project_id", proj.ID.String()), zap.Error(err))
		return RawGraph{}, "", false
	}

	return raw, completer.Model(), true
}

// decryptedKey fetches and decrypts the user's completion-service API key.
// A missing or undecryptable credential is a recoverable condition.
func (o *Orchestrator) decryptedKey(ctx context.Context, userID uuid.UUID) (string, bool) {
	if o.Box == nil {
		return "", false
	}
	cred, err := o.Client.APICredential.Query().
		Where(apicredential.HasOwnerWith(user.IDEQ(userID))).
		First(ctx)
	if err != nil {
		return "", false
	}
	key, err := o.Box.Open(cred.EncryptedKey)
	if err != nil {
		genLogger.Warn("credential decrypt failed", zap.String("user_id", userID.String()), zap.Error(err))
		return "", false
	}
	return key, true
}

// persist writes the payload, feature positions, the replacement edge set
// and the audit row. Each write is a hard error: a failure aborts the
// remaining steps with no partial-success suppression. The edge replacement
// is delete-then-insert without a spanning transaction; two concurrent
// generations for one project can interleave here.
func (o *Orchestrator) persist(ctx context.Context, projectID uuid.UUID, feats []*ent.Feature, payload Payload, positions map[uuid.UUID]Position, normalized NormalizedGraph) error {
	if err := o.Client.Project.UpdateOneID(projectID).SetGraph(payload.AsMap()).Exec(ctx); err != nil {
		return err
	}

	for _, f := range feats {
		pos, ok := positions[f.ID]
		if !ok {
			continue
		}
		if err := o.Client.Feature.UpdateOneID(f.ID).SetPosX(pos.X).SetPosY(pos.Y).Exec(ctx); err != nil {
			return err
		}
	}

	if _, err := o.Client.Dependency.Delete().
		Where(dependency.HasProjectWith(project.IDEQ(projectID))).
		Exec(ctx); err != nil {
		return err
	}
	if len(normalized.Edges) > 0 {
		bulk := make([]*ent.DependencyCreate, 0, len(normalized.Edges))
		for _, e := range normalized.Edges {
			c := o.Client.Dependency.Create().
				SetProjectID(projectID).
				SetSourceID(e.Source).
				SetTargetID(e.Target)
			if e.Note != "" {
				c = c.SetNote(e.Note)
			}
			bulk = append(bulk, c)
		}
		if _, err := o.Client.Dependency.CreateBulk(bulk...).Save(ctx); err != nil {
			return err
		}
	}

	run := o.Client.GraphRun.Create().
		SetProjectID(projectID).
		SetUsedFallback(normalized.UsedFallback).
		SetDroppedEdges(normalized.DroppedEdges).
		SetFeatureCount(len(feats)).
		SetEdgeCount(len(normalized.Edges))
	if normalized.Model != "" {
		run = run.SetModel(normalized.Model)
	}
	if err := run.Exec(ctx); err != nil {
		return err
	}

	return nil
}

func (o *Orchestrator) publishGenerated(ctx context.Context, projectID uuid.UUID, normalized NormalizedGraph, featureCount int) {
	if o.MQ == nil {
		return
	}
	evt := map[string]any{
		"type":          mqx.KeyGraphGenerated,
		"project_id":    projectID.String(),
		"feature_count": featureCount,
		"edge_count":    len(normalized.Edges),
		"dropped_edges": normalized.DroppedEdges,
		"used_fallback": normalized.UsedFallback,
		"model":         normalized.Model,
	}
	b, _ := json.Marshal(evt)
	if err := o.MQ.Publish(ctx, mqx.KeyGraphGenerated, b); err != nil {
		genLogger.Sugar().Warnw("publish graph.generated failed", "err", err)
	}
}

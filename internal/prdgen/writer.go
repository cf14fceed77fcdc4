package prdgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"planforge/ent"
	"planforge/ent/apicredential"
	"planforge/ent/feature"
	"planforge/ent/prd"
	"planforge/ent/user"
	"planforge/internal/config"
	"planforge/internal/cryptox"
	"planforge/internal/esx"
	"planforge/internal/jsonx"
	"planforge/internal/llm"
	"planforge/internal/logx"
	"planforge/internal/mqx"
	"planforge/internal/redisx"
)

var prdLogger = logx.GetScope("prdgen")

// PRDIndex is the Elasticsearch index ready PRDs are published to.
const PRDIndex = "prds"

// statusCacheTTL bounds how long a cached PRD status can outlive the row.
const statusCacheTTL = 10 * time.Minute

// StatusCacheKey is the Redis key holding a feature's PRD status.
func StatusCacheKey(featureID uuid.UUID) string {
	return "prd:status:" + featureID.String()
}

// Writer runs PRD generation as a detached background job. Run never lets a
// failure escape: every error path ends in the PRD row transitioning to
// status=error so the record is never stuck at generating.
type Writer struct {
	Client *ent.Client
	Store  *config.Store
	Box    *cryptox.Box
	MQ     mqx.Publisher
	ES     *esx.Client
	RDB    *redisx.Client

	NewCompleter func(opts llm.Options) llm.Completer
}

func NewWriter(client *ent.Client, store *config.Store, box *cryptox.Box, mq mqx.Publisher, es *esx.Client, rdb *redisx.Client) *Writer {
	return &Writer{
		Client: client,
		Store:  store,
		Box:    box,
		MQ:     mq,
		ES:     es,
		RDB:    rdb,
		NewCompleter: func(opts llm.Options) llm.Completer {
			return llm.NewOpenAIClient(opts)
		},
	}
}

// Run generates the PRD for one feature. Intended to be launched with `go`
// after the HTTP handler has transitioned the record to generating; it uses
// its own background context because the request that spawned it has already
// returned.
func (w *Writer) Run(userID, projectID, featureID uuid.UUID) {
	ctx := context.Background()

	defer func() {
		if r := recover(); r != nil {
			prdLogger.Error("prd job panic", zap.String("feature_id", featureID.String()), zap.Any("panic", r))
			w.markError(ctx, featureID, fmt.Sprintf("internal error: %v", r))
		}
	}()

	if err := w.generate(ctx, userID, projectID, featureID); err != nil {
		prdLogger.Warn("prd generation failed",
			zap.String("feature_id", featureID.String()), zap.Error(err))
		w.markError(ctx, featureID, err.Error())
	}
}

func (w *Writer) generate(ctx context.Context, userID, projectID, featureID uuid.UUID) error {
	prdCtx, err := BuildContext(ctx, w.Client, userID, projectID, featureID)
	if err != nil {
		return err
	}

	cfg := w.Store.Get()
	prdCtx = Optimize(prdCtx, cfg.LLM.MaxPRDTokens)

	apiKey, err := w.decryptedKey(ctx, userID)
	if err != nil {
		return err
	}

	model := lo.Ternary(cfg.LLM.PRDModel != "", cfg.LLM.PRDModel, cfg.LLM.Model)
	completer := w.NewCompleter(llm.Options{
		APIKey:  apiKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   model,
		Timeout: time.Duration(cfg.LLM.RequestSecond) * time.Second,
	})

	text, err := completer.Complete(ctx, BuildPRDPrompt(prdCtx))
	if err != nil {
		return fmt.Errorf("completion failed: %w", err)
	}

	markdown, structured := parsePRDResponse(text)

	row, err := w.prdRow(ctx, featureID)
	if err != nil {
		return err
	}
	upd := w.Client.PRD.UpdateOneID(row.ID).
		SetStatus(prd.StatusReady).
		SetContentMd(markdown).
		SetModel(completer.Model()).
		ClearErrorMessage()
	if structured != nil {
		upd = upd.SetContentJSON(structured)
	}
	if err := upd.Exec(ctx); err != nil {
		return err
	}

	w.cacheStatus(ctx, featureID, string(prd.StatusReady))
	w.index(ctx, prdCtx, featureID, markdown, completer.Model())
	w.publish(ctx, mqx.KeyPRDReady, featureID, projectID, "")

	return nil
}

// parsePRDResponse extracts the markdown body and the structured block from
// the model output. A response that is not the requested JSON shape is kept
// wholesale as markdown rather than rejected.
func parsePRDResponse(text string) (string, map[string]any) {
	span, ok := jsonx.FirstObject(text)
	if !ok {
		return text, nil
	}
	var structured map[string]any
	if err := json.Unmarshal([]byte(span), &structured); err != nil {
		return text, nil
	}
	if md, ok := structured["markdown"].(string); ok && md != "" {
		return md, structured
	}
	return text, structured
}

func (w *Writer) decryptedKey(ctx context.Context, userID uuid.UUID) (string, error) {
	if w.Box == nil {
		return "", errors.New("no credential key configured")
	}
	cred, err := w.Client.APICredential.Query().
		Where(apicredential.HasOwnerWith(user.IDEQ(userID))).
		First(ctx)
	if err != nil {
		return "", errors.New("no API credential configured")
	}
	key, err := w.Box.Open(cred.EncryptedKey)
	if err != nil {
		return "", errors.New("stored API credential is unreadable")
	}
	return key, nil
}

func (w *Writer) prdRow(ctx context.Context, featureID uuid.UUID) (*ent.PRD, error) {
	return w.Client.PRD.Query().
		Where(prd.HasFeatureWith(feature.IDEQ(featureID))).
		Only(ctx)
}

// markError moves the PRD record to a legible error state. Best effort: if
// even this write fails there is nothing left to do but log.
func (w *Writer) markError(ctx context.Context, featureID uuid.UUID, msg string) {
	row, err := w.prdRow(ctx, featureID)
	if err != nil {
		prdLogger.Sugar().Errorw("prd row lookup failed while marking error", "feature_id", featureID, "err", err)
		return
	}
	if len(msg) > 2000 {
		msg = msg[:2000]
	}
	if err := w.Client.PRD.UpdateOneID(row.ID).
		SetStatus(prd.StatusError).
		SetErrorMessage(msg).
		Exec(ctx); err != nil {
		prdLogger.Sugar().Errorw("prd error-state write failed", "feature_id", featureID, "err", err)
		return
	}
	w.cacheStatus(ctx, featureID, string(prd.StatusError))
	w.publish(ctx, mqx.KeyPRDError, featureID, uuid.Nil, msg)
}

// CacheGeneratingStatus is called by the handler right after the row
// transitions to generating so polls can skip the database.
func (w *Writer) CacheGeneratingStatus(ctx context.Context, featureID uuid.UUID) {
	w.cacheStatus(ctx, featureID, string(prd.StatusGenerating))
}

func (w *Writer) cacheStatus(ctx context.Context, featureID uuid.UUID, status string) {
	if w.RDB == nil {
		return
	}
	if err := w.RDB.Set(ctx, StatusCacheKey(featureID), status, statusCacheTTL).Err(); err != nil {
		prdLogger.Sugar().Debugw("prd status cache write failed", "err", err)
	}
}

func (w *Writer) index(ctx context.Context, prdCtx Context, featureID uuid.UUID, markdown, model string) {
	if w.ES == nil {
		return
	}
	err := esx.IndexPRD(ctx, w.ES, PRDIndex, esx.PRDDoc{
		FeatureID:    featureID.String(),
		ProjectID:    prdCtx.ProjectID.String(),
		FeatureTitle: prdCtx.Target.Title,
		Content:      markdown,
		Model:        model,
		UpdatedAt:    time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		prdLogger.Sugar().Warnw("prd index failed", "feature_id", featureID, "err", err)
	}
}

func (w *Writer) publish(ctx context.Context, key string, featureID, projectID uuid.UUID, msg string) {
	if w.MQ == nil {
		return
	}
	evt := map[string]any{"type": key, "feature_id": featureID.String()}
	if projectID != uuid.Nil {
		evt["project_id"] = projectID.String()
	}
	if msg != "" {
		evt["error"] = msg
	}
	b, _ := json.Marshal(evt)
	if err := w.MQ.Publish(ctx, key, b); err != nil {
		prdLogger.Sugar().Warnw("publish failed", "key", key, "err", err)
	}
}

// Package esx indexes ready PRDs into Elasticsearch and serves search.
package esx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	es8 "github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/samber/lo"

	"planforge/internal/config"
)

type Client = es8.Client

func Open(cfg *config.Config) (*Client, func(), error) {
	if strings.TrimSpace(cfg.ES.Addrs) == "" {
		return nil, func() {}, nil
	}
	raw := strings.Split(cfg.ES.Addrs, ",")
	addrs := lo.FilterMap(raw, func(s string, _ int) (string, bool) {
		t := strings.TrimSpace(s)
		return t, t != ""
	})
	es, err := es8.NewClient(es8.Config{Addresses: addrs, Username: cfg.ES.Username, Password: cfg.ES.Password})
	if err != nil {
		return nil, func() {}, err
	}
	return es, func() {}, nil
}

// PRDDoc is the searchable projection of a ready PRD.
type PRDDoc struct {
	FeatureID    string `json:"feature_id"`
	ProjectID    string `json:"project_id"`
	FeatureTitle string `json:"feature_title"`
	Content      string `json:"content"`
	Model        string `json:"model,omitempty"`
	UpdatedAt    string `json:"updated_at"`
}

// IndexPRD upserts a PRD document keyed by feature id.
func IndexPRD(ctx context.Context, es *Client, index string, doc PRDDoc) error {
	if es == nil {
		return nil
	}
	b, _ := json.Marshal(doc)
	res, err := es.Index(index, bytes.NewReader(b), es.Index.WithDocumentID(doc.FeatureID), es.Index.WithContext(ctx))
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest {
		return fmtError(res)
	}
	return nil
}

// SearchPRDs runs a multi-match over feature titles and PRD bodies,
// restricted to the given project ids when any are supplied.
func SearchPRDs(ctx context.Context, es *Client, index string, query string, projectIDs []string, from, size int) (map[string]any, error) {
	if es == nil {
		return map[string]any{"hits": []any{}}, nil
	}
	match := map[string]any{"multi_match": map[string]any{"query": query, "fields": []string{"feature_title^2", "content"}}}
	var q map[string]any
	if len(projectIDs) > 0 {
		q = map[string]any{"query": map[string]any{"bool": map[string]any{
			"must":   match,
			"filter": map[string]any{"terms": map[string]any{"project_id.keyword": projectIDs}},
		}}}
	} else {
		q = map[string]any{"query": match}
	}
	b, _ := json.Marshal(q)
	res, err := es.Search(es.Search.WithContext(ctx), es.Search.WithIndex(index), es.Search.WithBody(bytes.NewReader(b)), es.Search.WithFrom(from), es.Search.WithSize(size))
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest {
		return nil, fmtError(res)
	}
	var out map[string]any
	_ = json.NewDecoder(res.Body).Decode(&out)
	return out, nil
}

func fmtError(res *esapi.Response) error { return fmt.Errorf("es error: %s", res.String()) }

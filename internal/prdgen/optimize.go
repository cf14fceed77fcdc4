package prdgen

import (
	"sort"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// DefaultMaxTokens is the context budget before trimming kicks in.
const DefaultMaxTokens = 3500

// minRetained is the floor on connected features kept by a trim.
const minRetained = 3

// Optimize greedily trims the connected-feature set when the estimated
// prompt size exceeds the budget. Under budget the context is returned
// unchanged, so the operation is idempotent. Over budget the connected
// features are ranked by notes length (a proxy for informational richness)
// and the larger of {3, half the original count} are retained; Incoming and
// Outgoing become order-preserving intersections with the retained set.
func Optimize(c Context, maxTokens int) Context {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	if c.TotalTokenEstimate <= maxTokens {
		return c
	}

	ranked := append([]FeatureRef(nil), c.Connected...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return len(ranked[i].Notes) > len(ranked[j].Notes)
	})

	keep := len(ranked) / 2
	if keep < minRetained {
		keep = minRetained
	}
	if keep > len(ranked) {
		keep = len(ranked)
	}
	c.Connected = ranked[:keep]

	retained := make(map[uuid.UUID]bool, keep)
	for _, f := range c.Connected {
		retained[f.ID] = true
	}
	c.Incoming = lo.Filter(c.Incoming, func(f FeatureRef, _ int) bool { return retained[f.ID] })
	c.Outgoing = lo.Filter(c.Outgoing, func(f FeatureRef, _ int) bool { return retained[f.ID] })

	c.TotalTokenEstimate = estimateTokens(c)
	return c
}

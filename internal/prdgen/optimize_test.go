package prdgen

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func bigContext(n int) Context {
	c := Context{
		ProjectID:   uuid.New(),
		ProjectName: "Shop",
		Target:      FeatureRef{ID: uuid.New(), Title: "Billing", Notes: "subscriptions"},
	}
	for i := 0; i < n; i++ {
		ref := FeatureRef{
			ID:    uuid.New(),
			Title: "Feature",
			// descending richness: later features carry shorter notes
			Notes: strings.Repeat("n", (n-i)*400),
		}
		c.Connected = append(c.Connected, ref)
		if i%2 == 0 {
			c.Incoming = append(c.Incoming, ref)
		} else {
			c.Outgoing = append(c.Outgoing, ref)
		}
	}
	c.TotalTokenEstimate = estimateTokens(c)
	return c
}

func TestOptimize_NoopUnderBudget(t *testing.T) {
	c := bigContext(4)
	got := Optimize(c, c.TotalTokenEstimate+100)
	if len(got.Connected) != 4 || got.TotalTokenEstimate != c.TotalTokenEstimate {
		t.Fatalf("under-budget context was modified: %+v", got)
	}
}

func TestOptimize_Idempotent(t *testing.T) {
	c := bigContext(10)
	// just over budget: one trim halves the set and lands well under it
	budget := c.TotalTokenEstimate - 1

	once := Optimize(c, budget)
	if once.TotalTokenEstimate > budget {
		t.Fatalf("fixture did not settle under budget: %d > %d", once.TotalTokenEstimate, budget)
	}
	twice := Optimize(once, budget)

	if len(twice.Connected) != len(once.Connected) {
		t.Fatalf("second pass trimmed again: %d -> %d", len(once.Connected), len(twice.Connected))
	}
	if twice.TotalTokenEstimate != once.TotalTokenEstimate {
		t.Fatalf("estimate drifted across passes: %d -> %d", once.TotalTokenEstimate, twice.TotalTokenEstimate)
	}
}

func TestOptimize_ShrinksAndKeepsRichest(t *testing.T) {
	c := bigContext(8)
	got := Optimize(c, c.TotalTokenEstimate/4)

	if len(got.Connected) != 4 {
		t.Fatalf("kept = %d, want half", len(got.Connected))
	}
	if got.TotalTokenEstimate >= c.TotalTokenEstimate {
		t.Fatalf("estimate did not shrink: %d -> %d", c.TotalTokenEstimate, got.TotalTokenEstimate)
	}
	// the richest notes come first in the fixture, so the kept set is the prefix
	for i, f := range got.Connected {
		if f.ID != c.Connected[i].ID {
			t.Fatalf("kept[%d] = %s, want richest features retained", i, f.ID)
		}
	}
}

func TestOptimize_FloorOfThree(t *testing.T) {
	c := bigContext(4)
	got := Optimize(c, 1)
	if len(got.Connected) != 3 {
		t.Fatalf("kept = %d, want floor of 3", len(got.Connected))
	}
}

func TestOptimize_DirectionalListsFollowRetained(t *testing.T) {
	c := bigContext(8)
	got := Optimize(c, c.TotalTokenEstimate/4)

	retained := map[uuid.UUID]bool{}
	for _, f := range got.Connected {
		retained[f.ID] = true
	}
	for _, f := range append(append([]FeatureRef{}, got.Incoming...), got.Outgoing...) {
		if !retained[f.ID] {
			t.Fatalf("directional list kept a trimmed feature %s", f.ID)
		}
	}
	if len(got.Incoming)+len(got.Outgoing) != len(got.Connected) {
		t.Fatalf("incoming+outgoing = %d, want %d", len(got.Incoming)+len(got.Outgoing), len(got.Connected))
	}

	// order within each direction is preserved relative to the original
	idx := map[uuid.UUID]int{}
	for i, f := range c.Incoming {
		idx[f.ID] = i
	}
	for i := 1; i < len(got.Incoming); i++ {
		if idx[got.Incoming[i-1].ID] > idx[got.Incoming[i].ID] {
			t.Fatal("incoming order not preserved")
		}
	}
}

// Package prdgen assembles a bounded-size context from the persisted
// dependency graph and drives the background PRD-writing job.
package prdgen

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"planforge/ent"
	"planforge/ent/dependency"
	"planforge/ent/feature"
	"planforge/ent/project"
	"planforge/ent/user"
)

// ErrNotFound is returned when the project is not owned by the acting user
// or the target feature does not belong to the project. Callers map it to a
// client-visible not-found; another user's data is never returned.
var ErrNotFound = errors.New("prdgen: not found")

// promptOverheadChars is the fixed cost of the prompt template itself.
const promptOverheadChars = 1000

// FeatureRef is a feature snapshot carried in a PRD context.
type FeatureRef struct {
	ID    uuid.UUID
	Title string
	Notes string
}

// Context is the assembled prompt context for one feature's PRD. Connected
// holds the one-hop neighborhood of the target; Incoming are features whose
// edges point into the target, Outgoing are features the target points to.
type Context struct {
	ProjectID          uuid.UUID
	ProjectName        string
	ProjectDescription string
	Target             FeatureRef
	Connected          []FeatureRef
	Incoming           []FeatureRef
	Outgoing           []FeatureRef
	TotalTokenEstimate int
}

// BuildContext walks the persisted edge set and assembles the PRD context
// for the target feature. The neighborhood is one hop, not a transitive
// closure.
func BuildContext(ctx context.Context, client *ent.Client, userID, projectID, featureID uuid.UUID) (Context, error) {
	proj, err := client.Project.Query().
		Where(project.IDEQ(projectID), project.HasOwnerWith(user.IDEQ(userID))).
		Only(ctx)
	if err != nil {
		return Context{}, ErrNotFound
	}

	target, err := client.Feature.Query().
		Where(feature.IDEQ(featureID), feature.HasProjectWith(project.IDEQ(projectID))).
		Only(ctx)
	if err != nil {
		return Context{}, ErrNotFound
	}

	edges, err := client.Dependency.Query().
		Where(dependency.HasProjectWith(project.IDEQ(projectID))).
		WithSource().
		WithTarget().
		Order(dependency.ByCreatedAt(), dependency.ByID()).
		All(ctx)
	if err != nil {
		return Context{}, err
	}

	out := Context{
		ProjectID:          proj.ID,
		ProjectName:        proj.Name,
		ProjectDescription: proj.Description,
		Target:             FeatureRef{ID: target.ID, Title: target.Title, Notes: target.Notes},
		Connected:          []FeatureRef{},
		Incoming:           []FeatureRef{},
		Outgoing:           []FeatureRef{},
	}

	seen := map[uuid.UUID]bool{}
	addConnected := func(f *ent.Feature) FeatureRef {
		ref := FeatureRef{ID: f.ID, Title: f.Title, Notes: f.Notes}
		if !seen[f.ID] {
			seen[f.ID] = true
			out.Connected = append(out.Connected, ref)
		}
		return ref
	}

	for _, e := range edges {
		src, dst := e.Edges.Source, e.Edges.Target
		if src == nil || dst == nil {
			continue
		}
		switch {
		case dst.ID == target.ID && src.ID != target.ID:
			out.Incoming = append(out.Incoming, addConnected(src))
		case src.ID == target.ID && dst.ID != target.ID:
			out.Outgoing = append(out.Outgoing, addConnected(dst))
		}
	}

	out.TotalTokenEstimate = estimateTokens(out)
	return out, nil
}

// estimateTokens is a chars/4 proxy for prompt cost, not a tokenizer count.
// Connected features' notes are weighted at half cost: they contribute less
// per character than the target's own notes.
func estimateTokens(c Context) int {
	chars := len(c.ProjectName) + len(c.ProjectDescription) +
		len(c.Target.Title) + len(c.Target.Notes)
	for _, f := range c.Connected {
		chars += len(f.Title) + len(f.Notes)/2
	}
	chars += promptOverheadChars
	return (chars + 3) / 4
}

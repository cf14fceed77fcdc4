package graphgen

import (
	"fmt"
	"strings"
)

// BuildGraphPrompt enumerates the project and the exact feature id/title
// pairs and asks for a dependency graph as strict JSON. The no-markdown
// instruction is advisory at best; parsing stays permissive regardless.
func BuildGraphPrompt(projectName, description string, features []FeatureInfo) string {
	var b strings.Builder

	b.WriteString("You are a product planning assistant.\n\n")
	fmt.Fprintf(&b, "Project: %s\n", projectName)
	if description != "" {
		fmt.Fprintf(&b, "Description: %s\n", description)
	}
	b.WriteString("\nFeatures (id | title):\n")
	for _, f := range features {
		fmt.Fprintf(&b, "- %s | %s\n", f.ID, f.Title)
	}

	b.WriteString(`
Propose how these features relate. Group related features using a numeric rank
and propose directed dependency edges (source feeds target), each with a short
rationale note.

Respond with strict JSON only, no markdown fences, no prose, exactly this shape:
{
  "nodes": [{"id": "<feature id>", "label": "<feature title>", "note": "<short grouping note>", "rank": 1}],
  "edges": [{"source": "<feature id>", "target": "<feature id>", "note": "<why>"}]
}

Use only the feature ids listed above. Do not invent features.
`)

	return b.String()
}

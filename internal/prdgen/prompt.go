package prdgen

import (
	"fmt"
	"strings"
)

// BuildPRDPrompt renders the assembled context into the PRD-writing prompt.
// The model is asked for a single JSON object so the response can be parsed
// the same way as the graph proposal.
func BuildPRDPrompt(c Context) string {
	var b strings.Builder

	b.WriteString("You are a senior product manager writing a PRD (product requirements document).\n\n")
	fmt.Fprintf(&b, "Project: %s\n", c.ProjectName)
	if c.ProjectDescription != "" {
		fmt.Fprintf(&b, "Project description: %s\n", c.ProjectDescription)
	}
	fmt.Fprintf(&b, "\nTarget feature: %s\n", c.Target.Title)
	if c.Target.Notes != "" {
		fmt.Fprintf(&b, "Feature notes: %s\n", c.Target.Notes)
	}

	writeDeps := func(heading string, refs []FeatureRef) {
		if len(refs) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n%s:\n", heading)
		for _, f := range refs {
			if f.Notes != "" {
				fmt.Fprintf(&b, "- %s: %s\n", f.Title, f.Notes)
			} else {
				fmt.Fprintf(&b, "- %s\n", f.Title)
			}
		}
	}
	writeDeps("Features this feature depends on", c.Incoming)
	writeDeps("Features that build on this feature", c.Outgoing)

	b.WriteString(`
Write a PRD for the target feature, taking its dependencies into account.

Respond with strict JSON only, no markdown fences, exactly this shape:
{
  "markdown": "<the full PRD as markdown>",
  "summary": "<one-paragraph summary>",
  "user_stories": ["..."],
  "acceptance_criteria": ["..."],
  "dependencies": ["<names of related features referenced>"]
}
`)

	return b.String()
}

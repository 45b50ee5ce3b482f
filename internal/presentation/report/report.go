// Package report builds human-readable extraction reports in markdown.
package report

import (
	"fmt"
	"strings"

	"github.com/otabase/asnpath/pkg/extract"
)

// Build produces a markdown report for one message's extraction results.
func Build(message string, targets []string, paths []extract.Path) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", message)
	fmt.Fprintf(&sb, "**%d** path(s) for targets: %s\n\n", len(paths), strings.Join(targets, ", "))

	if len(paths) == 0 {
		sb.WriteString("_No matching fields._\n")
		return sb.String()
	}

	sb.WriteString("| # | Path | Choices |\n")
	sb.WriteString("|---|------|--------|\n")
	for i, p := range paths {
		choices := strings.Join(p.Decisions, ", ")
		fmt.Fprintf(&sb, "| %d | `%s` | %s |\n", i+1, p.String(), choices)
	}
	return sb.String()
}

// BuildAll produces one report covering several messages, joined with
// horizontal rules.
func BuildAll(targets []string, results map[string][]extract.Path, order []string) string {
	sections := make([]string, 0, len(order))
	for _, message := range order {
		sections = append(sections, Build(message, targets, results[message]))
	}
	return strings.Join(sections, "\n---\n\n")
}

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package report renders scan results into the generated rule documents:
// patterns.md, relations.json, and the user-rules.md template. Rendering
// is a pure formatting step over the scan output.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/petar-djukic/guardian/internal/gitinfo"
	"github.com/petar-djukic/guardian/pkg/types"
)

// maxRowsPerKind caps the table rows shown for each pattern kind.
const maxRowsPerKind = 5

// File names written into the output directory.
const (
	PatternsFile  = "patterns.md"
	RelationsFile = "relations.json"
	UserRulesFile = "user-rules.md"
)

// saveKinds and inputKinds fix the section order within each family.
var (
	saveKinds  = []types.PatternKind{types.SaveRealtime, types.SaveButton, types.SaveOnClose}
	inputKinds = []types.PatternKind{types.InputDropdown, types.InputText, types.InputListSelect, types.InputCheckboxRadio}
)

// Summary reports what Write produced.
type Summary struct {
	PatternsPath  string
	RelationsPath string
	UserRulesPath string
	UserRulesKept bool // true when an existing user-rules.md was left alone
	LinesAdded    int  // patterns.md lines added vs. the previous run
	LinesRemoved  int  // patterns.md lines removed vs. the previous run
}

// Write renders result into dir, creating it if needed. patterns.md and
// relations.json are overwritten on every run; user-rules.md is written
// only when absent, since it holds hand-edited content.
func Write(dir string, result *types.ScanResult, info gitinfo.Info) (*Summary, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	sum := &Summary{
		PatternsPath:  filepath.Join(dir, PatternsFile),
		RelationsPath: filepath.Join(dir, RelationsFile),
		UserRulesPath: filepath.Join(dir, UserRulesFile),
	}

	patterns := PatternsMarkdown(result.Matches, info)
	if old, err := os.ReadFile(sum.PatternsPath); err == nil {
		sum.LinesAdded, sum.LinesRemoved = ChangeSummary(string(old), patterns)
	}
	if err := os.WriteFile(sum.PatternsPath, []byte(patterns), 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", PatternsFile, err)
	}

	relations, err := RelationsJSON(result.Graph)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", RelationsFile, err)
	}
	if err := os.WriteFile(sum.RelationsPath, relations, 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", RelationsFile, err)
	}

	if _, err := os.Stat(sum.UserRulesPath); err == nil {
		sum.UserRulesKept = true
	} else if err := os.WriteFile(sum.UserRulesPath, []byte(UserRulesTemplate()), 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", UserRulesFile, err)
	}

	return sum, nil
}

// PatternsMarkdown renders the matches grouped by family and kind as
// markdown tables.
func PatternsMarkdown(matches []types.Match, info gitinfo.Info) string {
	byKind := make(map[types.PatternKind][]types.Match)
	for _, m := range matches {
		byKind[m.Kind] = append(byKind[m.Kind], m)
	}

	var buf strings.Builder
	buf.WriteString("# Project Interaction Patterns\n\n")
	buf.WriteString("> Generated by guardian. Review and adjust for accuracy.\n")
	if info.Commit != "" {
		buf.WriteString(fmt.Sprintf("> Scanned at commit %s", info.Commit))
		if info.Branch != "" {
			buf.WriteString(fmt.Sprintf(" (%s)", info.Branch))
		}
		buf.WriteString("\n")
	}
	buf.WriteString("\n## Save Patterns\n\n")
	writeKindSections(&buf, byKind, saveKinds)

	buf.WriteString("## Input Patterns\n\n")
	writeKindSections(&buf, byKind, inputKinds)

	buf.WriteString(`## Summary

Based on the scan results, document the conventions this project follows:

1. **Save pattern**: [ ] fill in the dominant save pattern detected above
2. **Input pattern**: [ ] fill in the dominant input widgets detected above

> Edit this section to make the expected interaction patterns explicit.
`)

	return buf.String()
}

func writeKindSections(buf *strings.Builder, byKind map[types.PatternKind][]types.Match, kinds []types.PatternKind) {
	for _, kind := range kinds {
		group := byKind[kind]
		if len(group) == 0 {
			continue
		}
		buf.WriteString(fmt.Sprintf("### %s\n\n", group[0].Label))
		buf.WriteString("| File | Indicator |\n")
		buf.WriteString("|------|-----------|\n")
		rows := group
		if len(rows) > maxRowsPerKind {
			rows = rows[:maxRowsPerKind]
		}
		for _, m := range rows {
			buf.WriteString(fmt.Sprintf("| `%s` | %s |\n", m.FilePath, m.Matcher))
		}
		buf.WriteString("\n")
	}
}

// RelationsJSON serializes the dependency graph as indented JSON:
// a mapping from relative file path to {"imports": [...], "defines": [...]}.
func RelationsJSON(g *types.DependencyGraph) ([]byte, error) {
	out, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// UserRulesTemplate returns the starter content for user-rules.md.
func UserRulesTemplate() string {
	return `# User-Defined Rules

> Add project rules the AI assistant must follow.

## Code Conventions

<!-- Example:
- Use camelCase naming
- Keep functions under 50 lines
- Type annotations are required
-->

## Interaction Conventions

<!-- Example:
- All settings use realtime saving
- Use a dropdown when there are more than 5 options
- Forms must have a "Cancel" button
-->

## Architecture Conventions

<!-- Example:
- Keep UI code separate from business logic
- All API calls live under api/
- Shared components live under components/
-->

## Other Rules

<!-- Add anything else the AI assistant should respect -->
`
}

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package classify applies the rule catalogue to file content, producing
// tagged pattern matches.
package classify

import (
	"github.com/petar-djukic/guardian/internal/rules"
	"github.com/petar-djukic/guardian/pkg/types"
)

// Classify tests every rule in the requested families against content and
// returns one Match per rule that fires. With no families given, all
// families in the catalogue are applied.
//
// Classify is pure: it performs no I/O and cannot fail on well-formed
// input (any text is legal, including garbled decodes). Rules are
// evaluated independently, so several rules of the same kind may each
// contribute a Match for the same file.
func Classify(content, filePath string, cat *rules.Catalogue, families ...types.Family) []types.Match {
	if len(families) == 0 {
		families = cat.Families()
	}

	var matches []types.Match
	for _, family := range families {
		for _, rule := range cat.Family(family) {
			if !rule.Matcher.MatchString(content) {
				continue
			}
			matches = append(matches, types.Match{
				Kind:     rule.Kind,
				Label:    rule.Label,
				FilePath: filePath,
				Matcher:  rule.Pattern,
			})
		}
	}
	return matches
}

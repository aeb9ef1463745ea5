// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package symbols extracts import and declaration identifiers from source
// text across several dialects, without parsing any grammar.
package symbols

import (
	"regexp"
	"strings"

	"github.com/petar-djukic/guardian/pkg/types"
)

// A recognizer scans content for one dialect's constructs and accumulates
// identifiers into the record. Recognizers are independent: each runs
// against the full content and a recognizer that finds nothing simply
// contributes nothing.
type recognizer func(content string, rec types.FileRecord)

// recognizers lists every dialect pass in evaluation order. All of them
// run for every file; their outputs union into one record.
var recognizers = []recognizer{
	pythonImports,
	jsImports,
	pythonDefs,
	jsFuncs,
	classDefs,
}

// Extract scans content and returns the file's symbol record. Extraction
// is best-effort and never fails; an empty record means no recognizer
// found a construct.
func Extract(content string) types.FileRecord {
	rec := types.NewFileRecord()
	for _, recognize := range recognizers {
		recognize(content, rec)
	}
	return rec
}

var (
	pyImportRe = regexp.MustCompile(`(?m)^(?:from\s+(\S+)\s+)?import\s+(.+)$`)
	jsImportRe = regexp.MustCompile(`import\s+.*?from\s+['"](.+?)['"]`)
	pyFuncRe   = regexp.MustCompile(`def\s+(\w+)\s*\(`)
	jsFuncRe   = regexp.MustCompile(`(?:function\s+(\w+)|const\s+(\w+)\s*=\s*(?:async\s+)?\()`)
	classRe    = regexp.MustCompile(`class\s+(\w+)`)
)

// pythonImports handles "from MODULE import NAMES" and "import NAMES"
// forms. NAMES may be a comma-separated list; an "as ALIAS" suffix is
// discarded and only the pre-alias identifier is kept.
func pythonImports(content string, rec types.FileRecord) {
	for _, m := range pyImportRe.FindAllStringSubmatch(content, -1) {
		fromModule, names := m[1], m[2]
		if fromModule != "" {
			rec.AddImport(fromModule)
		}
		for _, name := range strings.Split(names, ",") {
			name = strings.TrimSpace(name)
			name = strings.Split(name, " as ")[0]
			rec.AddImport(strings.TrimSpace(name))
		}
	}
}

// jsImports handles "import ... from 'MODULE_PATH'"; the quoted path is
// kept verbatim, never resolved or normalized.
func jsImports(content string, rec types.FileRecord) {
	for _, m := range jsImportRe.FindAllStringSubmatch(content, -1) {
		rec.AddImport(m[1])
	}
}

func pythonDefs(content string, rec types.FileRecord) {
	for _, m := range pyFuncRe.FindAllStringSubmatch(content, -1) {
		rec.AddDefine(m[1])
	}
}

// jsFuncs handles keyword-introduced functions and name-bound arrow or
// closure declarations, optionally asynchronous.
func jsFuncs(content string, rec types.FileRecord) {
	for _, m := range jsFuncRe.FindAllStringSubmatch(content, -1) {
		if m[1] != "" {
			rec.AddDefine(m[1])
		}
		if m[2] != "" {
			rec.AddDefine(m[2])
		}
	}
}

// classDefs handles type/class declarations. Class names land in the same
// set as function names; the graph keeps no distinction between them.
func classDefs(content string, rec types.FileRecord) {
	for _, m := range classRe.FindAllStringSubmatch(content, -1) {
		rec.AddDefine(m[1])
	}
}

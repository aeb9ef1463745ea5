// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import "sort"

// FileRecord holds the symbols extracted from a single source file.
// Both fields are sets: duplicates collapse, order is irrelevant. A record
// is mutated only during its file's extraction pass.
type FileRecord struct {
	Imports map[string]struct{}
	Defines map[string]struct{}
}

// NewFileRecord returns an empty record ready for accumulation.
func NewFileRecord() FileRecord {
	return FileRecord{
		Imports: make(map[string]struct{}),
		Defines: make(map[string]struct{}),
	}
}

// AddImport records an imported module identifier. Empty strings are dropped.
func (r FileRecord) AddImport(module string) {
	if module != "" {
		r.Imports[module] = struct{}{}
	}
}

// AddDefine records a declared identifier. Empty strings are dropped.
func (r FileRecord) AddDefine(name string) {
	if name != "" {
		r.Defines[name] = struct{}{}
	}
}

// Empty reports whether the record holds no symbols at all.
func (r FileRecord) Empty() bool {
	return len(r.Imports) == 0 && len(r.Defines) == 0
}

// GraphEntry is the serialized form of a FileRecord: sets rendered as
// sorted slices.
type GraphEntry struct {
	Imports []string `json:"imports"`
	Defines []string `json:"defines"`
}

// DependencyGraph maps each successfully scanned file, keyed by its path
// relative to the scanned root, to its extracted symbols. Files that could
// not be read are absent, never present with empty entries.
type DependencyGraph struct {
	Files map[string]GraphEntry `json:"files"`
}

// EntryFor converts a FileRecord into its serialized GraphEntry.
func EntryFor(rec FileRecord) GraphEntry {
	return GraphEntry{
		Imports: sortedKeys(rec.Imports),
		Defines: sortedKeys(rec.Defines),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package graph accumulates per-file symbol records into a project-wide
// dependency graph keyed by relative file path.
package graph

import (
	"sync"

	"github.com/petar-djukic/guardian/pkg/types"
)

// Builder collects FileRecords during a scan. Record is safe for
// concurrent use so parallel workers can insert directly.
type Builder struct {
	mu    sync.Mutex
	files map[string]types.FileRecord
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{files: make(map[string]types.FileRecord)}
}

// Record inserts or overwrites the entry for relPath. Re-recording a path
// replaces the prior record (last write wins); a correct traversal visits
// each path once, so this only matters defensively.
func (b *Builder) Record(relPath string, rec types.FileRecord) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.files[relPath] = rec
}

// Len returns the number of recorded files.
func (b *Builder) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.files)
}

// Finalize renders the accumulated records as a DependencyGraph with
// sorted import/define slices. The Builder should not be used afterward.
func (b *Builder) Finalize() *types.DependencyGraph {
	b.mu.Lock()
	defer b.mu.Unlock()

	g := &types.DependencyGraph{Files: make(map[string]types.GraphEntry, len(b.files))}
	for path, rec := range b.files {
		g.Files[path] = types.EntryFor(rec)
	}
	return g
}

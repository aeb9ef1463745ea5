// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/guardian/pkg/types"
)

func recordWith(imports, defines []string) types.FileRecord {
	rec := types.NewFileRecord()
	for _, i := range imports {
		rec.AddImport(i)
	}
	for _, d := range defines {
		rec.AddDefine(d)
	}
	return rec
}

func TestBuilder_RecordAndFinalize(t *testing.T) {
	b := NewBuilder()
	b.Record("a/app.jsx", recordWith([]string{"react", "core/api"}, []string{"App"}))
	b.Record("util.py", recordWith(nil, []string{"helper"}))

	g := b.Finalize()
	require.Len(t, g.Files, 2)

	assert.Equal(t, []string{"core/api", "react"}, g.Files["a/app.jsx"].Imports, "imports are rendered sorted")
	assert.Equal(t, []string{"App"}, g.Files["a/app.jsx"].Defines)
	assert.Empty(t, g.Files["util.py"].Imports)
	assert.Equal(t, []string{"helper"}, g.Files["util.py"].Defines)
}

func TestBuilder_EmptyRecordStillPresent(t *testing.T) {
	// A file that was read but yielded no symbols gets an entry; only
	// unreadable files are absent from the graph.
	b := NewBuilder()
	b.Record("plain.html", types.NewFileRecord())

	g := b.Finalize()
	require.Contains(t, g.Files, "plain.html")
	assert.Empty(t, g.Files["plain.html"].Imports)
	assert.Empty(t, g.Files["plain.html"].Defines)
}

func TestBuilder_LastWriteWins(t *testing.T) {
	b := NewBuilder()
	b.Record("a.js", recordWith([]string{"old"}, nil))
	b.Record("a.js", recordWith([]string{"new"}, nil))

	g := b.Finalize()
	require.Len(t, g.Files, 1)
	assert.Equal(t, []string{"new"}, g.Files["a.js"].Imports)
}

func TestBuilder_ConcurrentRecord(t *testing.T) {
	b := NewBuilder()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			path := fmt.Sprintf("file%02d.js", i)
			b.Record(path, recordWith([]string{"dep"}, nil))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, b.Len())
	assert.Len(t, b.Finalize().Files, 50)
}

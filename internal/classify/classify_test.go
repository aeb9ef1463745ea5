// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/guardian/internal/rules"
	"github.com/petar-djukic/guardian/pkg/types"
)

func loadCatalogue(t *testing.T) *rules.Catalogue {
	t.Helper()
	cat, err := rules.Load()
	require.NoError(t, err)
	return cat
}

func TestClassify_SingleMatch(t *testing.T) {
	cat := loadCatalogue(t)

	matches := Classify("settings.autoSave = true", "src/settings.js", cat)

	require.Len(t, matches, 1)
	assert.Equal(t, types.SaveRealtime, matches[0].Kind)
	assert.Equal(t, "realtime save", matches[0].Label)
	assert.Equal(t, "src/settings.js", matches[0].FilePath)
	assert.Equal(t, "autoSave", matches[0].Matcher)
}

func TestClassify_NoMatch(t *testing.T) {
	cat := loadCatalogue(t)

	matches := Classify("nothing interesting here", "src/empty.js", cat)
	assert.Empty(t, matches)
}

func TestClassify_DuplicateKindNotCollapsed(t *testing.T) {
	cat := loadCatalogue(t)

	// Two distinct realtime rules fire on the same file; both matches are
	// kept so the audit trail shows which matcher detected what.
	content := "autoSave enabled; onChange = saveField"
	matches := Classify(content, "form.js", cat)

	var realtime []types.Match
	for _, m := range matches {
		if m.Kind == types.SaveRealtime {
			realtime = append(realtime, m)
		}
	}
	require.Len(t, realtime, 2)
	assert.NotEqual(t, realtime[0].Matcher, realtime[1].Matcher)
}

func TestClassify_MultipleKinds(t *testing.T) {
	cat := loadCatalogue(t)

	content := "autoSave on; componentWillUnmount() { saveAll() }"
	matches := Classify(content, "widget.jsx", cat)

	kinds := make(map[types.PatternKind]int)
	for _, m := range matches {
		kinds[m.Kind]++
	}
	assert.Equal(t, 1, kinds[types.SaveRealtime])
	assert.Equal(t, 1, kinds[types.SaveOnClose])
}

func TestClassify_FamilySubset(t *testing.T) {
	cat := loadCatalogue(t)

	// Content matching both families; only the requested family is applied.
	content := "<select onChange={autoSave}>"
	matches := Classify(content, "picker.jsx", cat, types.InputWidget)

	require.NotEmpty(t, matches)
	for _, m := range matches {
		assert.Equal(t, types.InputWidget, m.Kind.Family())
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	cat := loadCatalogue(t)

	matches := Classify("QCOMBOBOX dropdown", "panel.py", cat)

	var found bool
	for _, m := range matches {
		if m.Kind == types.InputDropdown && m.Matcher == "QComboBox" {
			found = true
		}
	}
	assert.True(t, found, "QComboBox rule should fire case-insensitively")
}

func TestClassify_GarbledContentIsLegal(t *testing.T) {
	cat := loadCatalogue(t)

	// Replacement runes from a tolerant decode are ordinary text.
	content := "�� autoSave �"
	matches := Classify(content, "weird.bin.js", cat)
	require.Len(t, matches, 1)
	assert.Equal(t, types.SaveRealtime, matches[0].Kind)
}

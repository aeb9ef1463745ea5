// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package symbols

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_PythonImports(t *testing.T) {
	content := `from pkg.sub import a, b as c
import os
import json, sys
`
	rec := Extract(content)

	assert.Contains(t, rec.Imports, "pkg.sub")
	assert.Contains(t, rec.Imports, "a")
	assert.Contains(t, rec.Imports, "b")
	assert.NotContains(t, rec.Imports, "c", "alias should be discarded")
	assert.Contains(t, rec.Imports, "os")
	assert.Contains(t, rec.Imports, "json")
	assert.Contains(t, rec.Imports, "sys")
}

func TestExtract_JSImports(t *testing.T) {
	content := `import { x } from "lib/mod"
import React from 'react'
`
	rec := Extract(content)

	assert.Contains(t, rec.Imports, "lib/mod")
	assert.Contains(t, rec.Imports, "react")
}

func TestExtract_PythonDeclarations(t *testing.T) {
	content := `def handle_click():
    pass

class Widget:
    def render(self):
        pass
`
	rec := Extract(content)

	assert.Contains(t, rec.Defines, "handle_click")
	assert.Contains(t, rec.Defines, "Widget")
	assert.Contains(t, rec.Defines, "render")
}

func TestExtract_JSDeclarations(t *testing.T) {
	content := `function renderAll(items) {}
const fetchData = async (url) => {}
const format = (n) => n.toFixed(2)
class Panel extends Component {}
`
	rec := Extract(content)

	assert.Contains(t, rec.Defines, "renderAll")
	assert.Contains(t, rec.Defines, "fetchData")
	assert.Contains(t, rec.Defines, "format")
	assert.Contains(t, rec.Defines, "Panel")
}

func TestExtract_DialectsUnion(t *testing.T) {
	// One file triggering several dialect recognizers at once; results
	// union rather than short-circuit.
	content := `import json
import { api } from "core/api"

def pyHelper():
    pass

function jsHelper() {}
`
	rec := Extract(content)

	assert.Contains(t, rec.Imports, "json")
	assert.Contains(t, rec.Imports, "core/api")
	assert.Contains(t, rec.Defines, "pyHelper")
	assert.Contains(t, rec.Defines, "jsHelper")
}

func TestExtract_DuplicatesCollapse(t *testing.T) {
	content := `import os
import os

def fn():
    pass

def fn():
    pass
`
	rec := Extract(content)

	assert.Len(t, rec.Imports, 1)
	assert.Len(t, rec.Defines, 1)
}

func TestExtract_EmptyResultIsNotAnError(t *testing.T) {
	rec := Extract("just some prose, no code constructs at all")
	assert.True(t, rec.Empty())
}

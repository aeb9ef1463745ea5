// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package rules holds the static catalogue of interaction-pattern detection
// rules. Adding a detectable pattern is a data change here (or a config
// entry), never a code change in the classifier.
package rules

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/petar-djukic/guardian/pkg/types"
)

// ErrBadRule is returned when a rule definition fails to compile or is
// missing required fields. Rule problems surface at catalogue load, before
// any file is touched.
var ErrBadRule = errors.New("invalid rule definition")

// Rule is a compiled detection rule. Matcher is tested case-insensitively
// anywhere in file content; Pattern preserves the literal text for audit
// output.
type Rule struct {
	Kind    types.PatternKind
	Matcher *regexp.Regexp
	Pattern string
	Label   string
}

// defaultDefs is the built-in rule table. Order within a family is
// preserved for deterministic match ordering; it does not affect which
// matches are produced.
var defaultDefs = []types.RuleDef{
	// Realtime saving: change handlers wired straight to persistence.
	{Family: types.SaveTrigger, Kind: types.SaveRealtime, Pattern: `onChange\s*=.*save`, Label: "realtime save"},
	{Family: types.SaveTrigger, Kind: types.SaveRealtime, Pattern: `onInput\s*=.*save`, Label: "realtime save"},
	{Family: types.SaveTrigger, Kind: types.SaveRealtime, Pattern: `@input\s*=.*save`, Label: "realtime save"},
	{Family: types.SaveTrigger, Kind: types.SaveRealtime, Pattern: `\.subscribe\(.*(save|update)`, Label: "realtime save"},
	{Family: types.SaveTrigger, Kind: types.SaveRealtime, Pattern: `debounce.*save`, Label: "realtime save"},
	{Family: types.SaveTrigger, Kind: types.SaveRealtime, Pattern: `autoSave`, Label: "realtime save"},
	{Family: types.SaveTrigger, Kind: types.SaveRealtime, Pattern: `valueChanged.*emit`, Label: "realtime save"},
	{Family: types.SaveTrigger, Kind: types.SaveRealtime, Pattern: `textChanged\.connect`, Label: "realtime save"},
	{Family: types.SaveTrigger, Kind: types.SaveRealtime, Pattern: `currentTextChanged`, Label: "realtime save"},

	// Button-driven saving.
	{Family: types.SaveTrigger, Kind: types.SaveButton, Pattern: `onClick\s*=.*save`, Label: "button save"},
	{Family: types.SaveTrigger, Kind: types.SaveButton, Pattern: `onSubmit\s*=.*save`, Label: "button save"},
	{Family: types.SaveTrigger, Kind: types.SaveButton, Pattern: `@click\s*=.*save`, Label: "button save"},
	{Family: types.SaveTrigger, Kind: types.SaveButton, Pattern: `button.*save`, Label: "button save"},
	{Family: types.SaveTrigger, Kind: types.SaveButton, Pattern: `submit.*button`, Label: "button save"},
	{Family: types.SaveTrigger, Kind: types.SaveButton, Pattern: `clicked\.connect.*save`, Label: "button save"},
	{Family: types.SaveTrigger, Kind: types.SaveButton, Pattern: `QPushButton.*Save`, Label: "button save"},

	// Save on close/teardown.
	{Family: types.SaveTrigger, Kind: types.SaveOnClose, Pattern: `onClose.*save`, Label: "save on close"},
	{Family: types.SaveTrigger, Kind: types.SaveOnClose, Pattern: `beforeUnload.*save`, Label: "save on close"},
	{Family: types.SaveTrigger, Kind: types.SaveOnClose, Pattern: `closeEvent.*save`, Label: "save on close"},
	{Family: types.SaveTrigger, Kind: types.SaveOnClose, Pattern: `onDestroy.*save`, Label: "save on close"},
	{Family: types.SaveTrigger, Kind: types.SaveOnClose, Pattern: `componentWillUnmount.*save`, Label: "save on close"},

	// Dropdown menus.
	{Family: types.InputWidget, Kind: types.InputDropdown, Pattern: `<select`, Label: "dropdown menu"},
	{Family: types.InputWidget, Kind: types.InputDropdown, Pattern: `QComboBox`, Label: "dropdown menu"},
	{Family: types.InputWidget, Kind: types.InputDropdown, Pattern: `Dropdown`, Label: "dropdown menu"},
	{Family: types.InputWidget, Kind: types.InputDropdown, Pattern: `Select\s*>`, Label: "dropdown menu"},
	{Family: types.InputWidget, Kind: types.InputDropdown, Pattern: `v-select`, Label: "dropdown menu"},
	{Family: types.InputWidget, Kind: types.InputDropdown, Pattern: `el-select`, Label: "dropdown menu"},

	// Text inputs.
	{Family: types.InputWidget, Kind: types.InputText, Pattern: `<input`, Label: "text input"},
	{Family: types.InputWidget, Kind: types.InputText, Pattern: `QLineEdit`, Label: "text input"},
	{Family: types.InputWidget, Kind: types.InputText, Pattern: `TextField`, Label: "text input"},
	{Family: types.InputWidget, Kind: types.InputText, Pattern: `TextInput`, Label: "text input"},
	{Family: types.InputWidget, Kind: types.InputText, Pattern: `v-model`, Label: "text input"},

	// List selection widgets.
	{Family: types.InputWidget, Kind: types.InputListSelect, Pattern: `QListWidget`, Label: "list selection"},
	{Family: types.InputWidget, Kind: types.InputListSelect, Pattern: `ListView`, Label: "list selection"},
	{Family: types.InputWidget, Kind: types.InputListSelect, Pattern: `ListBox`, Label: "list selection"},
	{Family: types.InputWidget, Kind: types.InputListSelect, Pattern: `<ul.*selectable`, Label: "list selection"},

	// Checkboxes and radio buttons.
	{Family: types.InputWidget, Kind: types.InputCheckboxRadio, Pattern: `<input.*type=["']checkbox`, Label: "checkbox/radio"},
	{Family: types.InputWidget, Kind: types.InputCheckboxRadio, Pattern: `<input.*type=["']radio`, Label: "checkbox/radio"},
	{Family: types.InputWidget, Kind: types.InputCheckboxRadio, Pattern: `QCheckBox`, Label: "checkbox/radio"},
	{Family: types.InputWidget, Kind: types.InputCheckboxRadio, Pattern: `QRadioButton`, Label: "checkbox/radio"},
	{Family: types.InputWidget, Kind: types.InputCheckboxRadio, Pattern: `Checkbox`, Label: "checkbox/radio"},
	{Family: types.InputWidget, Kind: types.InputCheckboxRadio, Pattern: `RadioButton`, Label: "checkbox/radio"},
}

// Catalogue holds the compiled rule tables, grouped by family. Immutable
// after Load.
type Catalogue struct {
	families map[types.Family][]Rule
	order    []types.Family
}

// Load compiles the built-in rule table plus any extra definitions from
// configuration. A definition that is incomplete or whose pattern does not
// compile returns an error wrapping ErrBadRule; nothing is scanned in that
// case.
func Load(extra ...types.RuleDef) (*Catalogue, error) {
	c := &Catalogue{
		families: make(map[types.Family][]Rule),
	}

	for _, def := range defaultDefs {
		if err := c.add(def); err != nil {
			return nil, err
		}
	}
	for _, def := range extra {
		if err := c.add(def); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *Catalogue) add(def types.RuleDef) error {
	if def.Kind == "" || def.Pattern == "" {
		return fmt.Errorf("%w: sub_kind and pattern are required", ErrBadRule)
	}
	family := def.Family
	if family == "" {
		family = def.Kind.Family()
	}

	// (?i) gives the case-insensitive, match-anywhere semantics every rule
	// shares; the stored Pattern stays as written for audit output.
	re, err := regexp.Compile("(?i)" + def.Pattern)
	if err != nil {
		return fmt.Errorf("%w: pattern %q: %v", ErrBadRule, def.Pattern, err)
	}

	if _, known := c.families[family]; !known {
		c.order = append(c.order, family)
	}
	c.families[family] = append(c.families[family], Rule{
		Kind:    def.Kind,
		Matcher: re,
		Pattern: def.Pattern,
		Label:   def.Label,
	})
	return nil
}

// Family returns the ordered rules registered for a family. The returned
// slice must not be modified.
func (c *Catalogue) Family(f types.Family) []Rule {
	return c.families[f]
}

// Families lists all families in registration order.
func (c *Catalogue) Families() []types.Family {
	return c.order
}

// Len returns the total number of compiled rules.
func (c *Catalogue) Len() int {
	n := 0
	for _, rules := range c.families {
		n += len(rules)
	}
	return n
}

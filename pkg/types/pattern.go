// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines shared types used across guardian packages.
package types

// Family identifies a named group of detection rules sharing a domain.
type Family string

const (
	// SaveTrigger groups rules that detect how a UI persists data.
	SaveTrigger Family = "save-trigger"
	// InputWidget groups rules that detect how a UI accepts input.
	InputWidget Family = "input-widget"
)

// PatternKind identifies the specific interaction pattern a rule detects.
type PatternKind string

const (
	// Save-trigger kinds.
	SaveRealtime PatternKind = "realtime"
	SaveButton   PatternKind = "button"
	SaveOnClose  PatternKind = "on_close"

	// Input-widget kinds.
	InputDropdown      PatternKind = "dropdown"
	InputText          PatternKind = "text_input"
	InputListSelect    PatternKind = "list_select"
	InputCheckboxRadio PatternKind = "checkbox_radio"
)

// Family returns the rule family a pattern kind belongs to.
func (k PatternKind) Family() Family {
	switch k {
	case SaveRealtime, SaveButton, SaveOnClose:
		return SaveTrigger
	default:
		return InputWidget
	}
}

// Match records a single detection: one rule fired at least once in one file.
// Matches are immutable facts; two rules of the same kind firing on the same
// file produce two Matches, so the Matcher field tells them apart.
type Match struct {
	Kind     PatternKind `json:"kind"`    // Pattern sub-kind
	Label    string      `json:"label"`   // Human-readable description
	FilePath string      `json:"file"`    // Path relative to the scanned root
	Matcher  string      `json:"matcher"` // Literal pattern text that fired
}

// RuleDef is an uncompiled rule definition, loadable from configuration.
// Pattern is a regular expression tested case-insensitively anywhere in
// file content.
type RuleDef struct {
	Family  Family      `mapstructure:"family" json:"family"`
	Kind    PatternKind `mapstructure:"sub_kind" json:"sub_kind"`
	Pattern string      `mapstructure:"pattern" json:"pattern"`
	Label   string      `mapstructure:"label" json:"label"`
}

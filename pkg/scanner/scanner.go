// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package scanner defines the public interface for guardian's project
// scanner: pattern classification plus dependency-graph construction over
// a source tree.
package scanner

import (
	"context"
	"errors"

	"github.com/petar-djukic/guardian/pkg/types"
)

// Error types for the Scanner API.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrBadRule       = errors.New("invalid rule definition")
	ErrRootNotFound  = errors.New("root path not found")
)

// DefaultExtensions lists the file kinds scanned when no override is
// given: the common scripting/markup/template extensions of interactive
// front-end code.
var DefaultExtensions = []string{".py", ".js", ".jsx", ".ts", ".tsx", ".vue", ".html"}

// DefaultIgnoreDirs lists the dependency/build/VCS directory names pruned
// from traversal by default.
var DefaultIgnoreDirs = []string{"node_modules", "__pycache__", ".git", "venv", "env", "dist", "build", ".next"}

// Config configures a Scanner instance. Zero values take the defaults
// above; the config is fixed for the Scanner's lifetime.
type Config struct {
	Extensions  []string        // Eligible extensions (default DefaultExtensions)
	IgnoreDirs  []string        // Pruned directory names (default DefaultIgnoreDirs)
	ExtraRules  []types.RuleDef // Rules appended to the built-in catalogue
	Concurrency int             // Parallel file workers (default NumCPU)
	NoGitignore bool            // Do not honor the root .gitignore
}

// Scanner runs project scans.
type Scanner interface {
	// Scan walks the tree rooted at root, classifies each eligible file
	// against the rule catalogue, extracts its symbols, and returns all
	// matches plus the dependency graph. Returns ErrRootNotFound when
	// root does not exist or is not a directory. Zero matches is a
	// valid, non-error result.
	Scan(ctx context.Context, root string) (*types.ScanResult, error)
}

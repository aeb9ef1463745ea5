// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package scanner

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/petar-djukic/guardian/internal/rules"
	"github.com/petar-djukic/guardian/internal/scan"
	"github.com/petar-djukic/guardian/pkg/types"
)

// New compiles the rule catalogue and returns a ready-to-use Scanner.
// A malformed rule in cfg.ExtraRules returns an error wrapping ErrBadRule;
// no scanning happens in that case.
func New(cfg Config) (Scanner, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	applyDefaults(&cfg)

	cat, err := rules.Load(cfg.ExtraRules...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRule, err)
	}

	inner := scan.New(cat, scan.Config{
		Extensions:  cfg.Extensions,
		IgnoreDirs:  cfg.IgnoreDirs,
		Concurrency: cfg.Concurrency,
		NoGitignore: cfg.NoGitignore,
	})

	return &scannerAdapter{inner: inner}, nil
}

// scannerAdapter adapts internal/scan.Scanner to the public interface.
type scannerAdapter struct {
	inner *scan.Scanner
}

func (a *scannerAdapter) Scan(ctx context.Context, root string) (*types.ScanResult, error) {
	result, err := a.inner.Scan(ctx, root)
	if errors.Is(err, scan.ErrRootNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrRootNotFound, err)
	}
	return result, err
}

// validateConfig checks the filtering lists are well-formed.
func validateConfig(cfg Config) error {
	for _, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}
	for _, dir := range cfg.IgnoreDirs {
		if strings.ContainsRune(dir, filepath.Separator) {
			return fmt.Errorf("ignore dir %q must be a base name, not a path", dir)
		}
	}
	return nil
}

// applyDefaults fills in zero-value fields with their defaults.
func applyDefaults(cfg *Config) {
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = DefaultExtensions
	}
	if len(cfg.IgnoreDirs) == 0 {
		cfg.IgnoreDirs = DefaultIgnoreDirs
	}
}

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package scan walks a project tree and feeds each eligible file through
// pattern classification and symbol extraction, aggregating the matches
// and the dependency graph into a single result.
package scan

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/petar-djukic/guardian/internal/classify"
	"github.com/petar-djukic/guardian/internal/graph"
	"github.com/petar-djukic/guardian/internal/rules"
	"github.com/petar-djukic/guardian/internal/symbols"
	"github.com/petar-djukic/guardian/pkg/types"
)

// ErrRootNotFound is returned when the scan root does not exist or is not
// a directory. It is the only fatal condition once a Scanner is built;
// everything encountered mid-scan degrades to a skipped file.
var ErrRootNotFound = errors.New("root path not found")

// Config controls traversal and filtering. All fields must be populated
// by the caller; pkg/scanner applies the defaults.
type Config struct {
	Extensions  []string // Eligible file extensions, with leading dot
	IgnoreDirs  []string // Directory base names pruned before descent
	Concurrency int      // Parallel per-file workers; <=0 means NumCPU
	NoGitignore bool     // Skip .gitignore handling at the root
}

// Scanner runs scans against a fixed catalogue and config. Safe for
// concurrent use; each Scan builds its own accumulators.
type Scanner struct {
	cat *rules.Catalogue
	cfg Config
}

// New creates a Scanner.
func New(cat *rules.Catalogue, cfg Config) *Scanner {
	return &Scanner{cat: cat, cfg: cfg}
}

// fileResult carries one worker's output for a single file.
type fileResult struct {
	relPath string
	matches []types.Match
	record  types.FileRecord
	skipped bool
}

// Scan traverses root and returns all pattern matches plus the dependency
// graph. The result is all-or-nothing: a missing root or a cancelled
// context yields an error and no partial output. Unreadable files and
// subdirectories are skipped silently and the scan continues.
func (s *Scanner) Scan(ctx context.Context, root string) (*types.ScanResult, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRootNotFound, err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrRootNotFound, root)
	}

	relPaths, skipped, err := s.collect(ctx, absRoot)
	if err != nil {
		return nil, err
	}

	concurrency := s.cfg.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	builder := graph.NewBuilder()
	results := make(map[string]fileResult, len(relPaths))

	jobs := make(chan string, len(relPaths))
	out := make(chan fileResult, len(relPaths))

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for relPath := range jobs {
				if ctx.Err() != nil {
					out <- fileResult{relPath: relPath, skipped: true}
					continue
				}
				out <- s.scanFile(absRoot, relPath)
			}
		}()
	}

	for _, p := range relPaths {
		jobs <- p
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(out)
	}()

	for fr := range out {
		results[fr.relPath] = fr
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Assemble matches in path order so repeated scans of the same tree
	// produce identical output, not just identical content.
	var allMatches []types.Match
	scanned := 0
	for _, relPath := range relPaths {
		fr := results[relPath]
		if fr.skipped {
			skipped++
			continue
		}
		scanned++
		allMatches = append(allMatches, fr.matches...)
		builder.Record(relPath, fr.record)
	}

	return &types.ScanResult{
		Matches: allMatches,
		Graph:   builder.Finalize(),
		Stats: types.ScanStats{
			FilesScanned: scanned,
			FilesSkipped: skipped,
		},
	}, nil
}

// collect gathers the relative paths of every eligible file under root.
// Ignored directories are pruned before descent; symlinks are skipped so
// the traversal cannot revisit a path through a cycle.
func (s *Scanner) collect(ctx context.Context, absRoot string) ([]string, int, error) {
	extSet := make(map[string]struct{}, len(s.cfg.Extensions))
	for _, ext := range s.cfg.Extensions {
		extSet[strings.ToLower(ext)] = struct{}{}
	}
	ignoreSet := make(map[string]struct{}, len(s.cfg.IgnoreDirs))
	for _, dir := range s.cfg.IgnoreDirs {
		ignoreSet[dir] = struct{}{}
	}

	var gi *ignore.GitIgnore
	if !s.cfg.NoGitignore {
		gi = loadGitignore(absRoot)
	}

	var relPaths []string
	skipped := 0
	seen := make(map[string]struct{})

	err := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entry or subtree, keep going
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if d.IsDir() {
			if path == absRoot {
				return nil
			}
			if _, prune := ignoreSet[d.Name()]; prune {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type()&os.ModeSymlink != 0 {
			return nil
		}

		if _, ok := extSet[strings.ToLower(filepath.Ext(d.Name()))]; !ok {
			skipped++
			return nil
		}

		relPath, relErr := filepath.Rel(absRoot, path)
		if relErr != nil {
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if gi != nil && gi.MatchesPath(relPath) {
			skipped++
			return nil
		}

		if _, dup := seen[relPath]; dup {
			return nil
		}
		seen[relPath] = struct{}{}
		relPaths = append(relPaths, relPath)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	sort.Strings(relPaths)
	return relPaths, skipped, nil
}

// scanFile reads one file tolerantly and runs classification and symbol
// extraction on its content. A file that cannot be opened is reported as
// skipped, never as an error.
func (s *Scanner) scanFile(absRoot, relPath string) fileResult {
	data, err := os.ReadFile(filepath.Join(absRoot, filepath.FromSlash(relPath)))
	if err != nil {
		return fileResult{relPath: relPath, skipped: true}
	}

	content := decodeTolerant(data)

	return fileResult{
		relPath: relPath,
		matches: classify.Classify(content, relPath, s.cat),
		record:  symbols.Extract(content),
	}
}

// decodeTolerant interprets raw bytes as UTF-8, replacing invalid
// sequences with the replacement rune. Decoding never fails.
func decodeTolerant(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}

// loadGitignore reads .gitignore at the root. A missing or unreadable
// file yields nil, which matches nothing.
func loadGitignore(absRoot string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(absRoot, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

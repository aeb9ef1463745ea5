// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package gitinfo resolves read-only repository metadata for report
// headers.
package gitinfo

import (
	gogit "github.com/go-git/go-git/v5"
)

const shortHashLen = 8

// Info identifies the commit a scan ran against. Zero value means the
// scanned root is not a git repository.
type Info struct {
	Commit string // Short HEAD hash
	Branch string // Branch name, empty on detached HEAD
}

// Head returns the HEAD commit and branch of the repository at root. Any
// failure (no repository, no commits yet) yields a zero Info; scan
// metadata is optional and never blocks a scan.
func Head(root string) Info {
	repo, err := gogit.PlainOpen(root)
	if err != nil {
		return Info{}
	}

	head, err := repo.Head()
	if err != nil {
		return Info{}
	}

	info := Info{Commit: head.Hash().String()[:shortHashLen]}
	if head.Name().IsBranch() {
		info.Branch = head.Name().Short()
	}
	return info
}

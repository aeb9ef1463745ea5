// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// ScanStats tracks traversal statistics for a completed scan.
type ScanStats struct {
	FilesScanned int `json:"files_scanned"` // Eligible files read and analyzed
	FilesSkipped int `json:"files_skipped"` // Files passed over (extension, unreadable)
}

// ScanResult holds the complete outcome of one project scan: every pattern
// match found plus the cross-file dependency graph. A result is returned
// whole or not at all; no partial results are emitted mid-scan.
type ScanResult struct {
	Matches []Match          `json:"matches"`
	Graph   *DependencyGraph `json:"graph"`
	Stats   ScanStats        `json:"stats"`
}

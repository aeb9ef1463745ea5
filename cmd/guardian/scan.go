// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/guardian/internal/gitinfo"
	"github.com/petar-djukic/guardian/internal/report"
	"github.com/petar-djukic/guardian/pkg/scanner"
	"github.com/petar-djukic/guardian/pkg/types"
)

const defaultOutputDir = ".guardian"

// newScanCmd creates the "scan" command.
func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a project for interaction patterns and dependencies",
		Long:  "Scan walks the project tree, classifies source files against the pattern catalogue, builds the dependency graph, and writes the rule documents to the output directory.",
		RunE:  runScan,
	}

	cmd.Flags().StringP("path", "p", "", "Project root to scan (required)")
	cmd.MarkFlagRequired("path")
	cmd.Flags().StringP("output", "o", "", "Output directory (default: <path>/.guardian)")
	cmd.Flags().Bool("json", false, "Print the scan result as JSON instead of writing report files")

	return cmd
}

// runScan executes the scan and renders its output.
func runScan(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("path")
	output, _ := cmd.Flags().GetString("output")
	asJSON, _ := cmd.Flags().GetBool("json")

	var extraRules []types.RuleDef
	if err := viper.UnmarshalKey("rules", &extraRules); err != nil {
		return fmt.Errorf("reading rules from config: %w", err)
	}

	s, err := scanner.New(scanner.Config{
		Extensions:  viper.GetStringSlice("ext"),
		IgnoreDirs:  viper.GetStringSlice("ignore-dir"),
		ExtraRules:  extraRules,
		Concurrency: viper.GetInt("concurrency"),
		NoGitignore: viper.GetBool("no-gitignore"),
	})
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	result, err := s.Scan(ctx, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	fmt.Fprintf(os.Stderr, "Scanned %d files (%d skipped): %d pattern matches, %d files in graph\n",
		result.Stats.FilesScanned, result.Stats.FilesSkipped, len(result.Matches), len(result.Graph.Files))

	if asJSON {
		return printResult(result)
	}

	if output == "" {
		output = filepath.Join(path, defaultOutputDir)
	}

	sum, err := report.Write(output, result, gitinfo.Head(path))
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	fmt.Printf("Wrote %s\n", sum.PatternsPath)
	if sum.LinesAdded > 0 || sum.LinesRemoved > 0 {
		fmt.Fprintf(os.Stderr, "patterns.md changed since last scan: +%d/-%d lines\n", sum.LinesAdded, sum.LinesRemoved)
	}
	fmt.Printf("Wrote %s\n", sum.RelationsPath)
	if sum.UserRulesKept {
		fmt.Printf("Kept existing %s\n", sum.UserRulesPath)
	} else {
		fmt.Printf("Wrote %s\n", sum.UserRulesPath)
	}

	return nil
}

// printResult outputs the result as JSON to stdout.
func printResult(result *types.ScanResult) error {
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

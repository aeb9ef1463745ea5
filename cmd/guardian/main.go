// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command guardian scans a project tree for UI interaction patterns and
// cross-file dependencies, and writes the generated rule documents.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "guardian",
		Short: "Project interaction-pattern and dependency scanner",
		Long:  "guardian walks a source tree, detects how the UI saves data and accepts input, and builds a lightweight cross-file dependency graph.",
	}

	// Global flags.
	rootCmd.PersistentFlags().StringSlice("ext", nil, "Eligible file extensions (default: common front-end extensions)")
	rootCmd.PersistentFlags().StringSlice("ignore-dir", nil, "Directory names pruned from traversal")
	rootCmd.PersistentFlags().Int("concurrency", 0, "Parallel file workers (default: number of CPUs)")
	rootCmd.PersistentFlags().Bool("no-gitignore", false, "Do not honor the project root .gitignore")

	// Bind flags to viper.
	viper.BindPFlag("ext", rootCmd.PersistentFlags().Lookup("ext"))
	viper.BindPFlag("ignore-dir", rootCmd.PersistentFlags().Lookup("ignore-dir"))
	viper.BindPFlag("concurrency", rootCmd.PersistentFlags().Lookup("concurrency"))
	viper.BindPFlag("no-gitignore", rootCmd.PersistentFlags().Lookup("no-gitignore"))

	// Env vars: GUARDIAN_CONCURRENCY, GUARDIAN_NO_GITIGNORE, etc.
	viper.SetEnvPrefix("GUARDIAN")
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".guardian")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	// Add commands.
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print guardian version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("guardian %s\n", version)
		},
	}
}

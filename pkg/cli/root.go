/*
Copyright © 2025 Craftbase Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/craftbase/recipesnap/pkg/logging"
)

const name = "recipesnap"

var (
	// overridden during build with ldflags
	version = "dev"
	commit  = "unknown"
)

var (
	fileFlag = &cli.StringSliceFlag{
		Name:     "file",
		Aliases:  []string{"f"},
		Usage:    "RecipeSet file to index (can be repeated)",
		Sources:  cli.EnvVars("RECIPESNAP_FILE"),
		Required: true,
	}
	formatFlag = &cli.StringFlag{
		Name:    "format",
		Usage:   "Output format (json, yaml, table)",
		Sources: cli.EnvVars("RECIPESNAP_FORMAT"),
		Value:   "json",
	}
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (defaults to stdout)",
	}
)

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Index and query crafting-recipe definitions",
		Version: fmt.Sprintf("%s (%s)", version, commit),
		Description: `recipesnap builds a point-in-time, queryable index over a set of
crafting-recipe definitions and answers typed and reverse lookups against it:
by kind, by result item, or by ingredient.`,
		Commands: []*cli.Command{
			snapshotCmd(),
			queryCmd(),
		},
	}
}

// Execute runs the CLI. It is called by main.main() exactly once.
func Execute() {
	logging.SetDefaultStructuredLogger(name, version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

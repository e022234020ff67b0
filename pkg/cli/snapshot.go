/*
Copyright © 2025 Craftbase Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/craftbase/recipesnap/pkg/serializer"
	"github.com/craftbase/recipesnap/pkg/snapshot"
	"github.com/craftbase/recipesnap/pkg/source"
)

func snapshotCmd() *cli.Command {
	return &cli.Command{
		Name:                  "snapshot",
		EnableShellCompletion: true,
		Usage:                 "Build a recipe snapshot and report its contents",
		Description: `Build a point-in-time index over the given RecipeSet files and emit a
summary report: snapshot id, per-kind recipe census, and total count.

Faulty recipe entries are skipped with a warning; they never abort the build.

# Examples

  recipesnap snapshot --file vanilla.yaml
  recipesnap snapshot -f vanilla.yaml -f addons.yaml --format table
  recipesnap snapshot -f vanilla.yaml --format yaml -o report.yaml`,
		Flags: []cli.Flag{
			fileFlag,
			formatFlag,
			outputFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format %q, supported: %v",
					outFormat, serializer.SupportedFormats())
			}

			snap, err := buildSnapshot(ctx, cmd.StringSlice("file"))
			if err != nil {
				return err
			}

			w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer w.Close()
			return w.Serialize(ctx, snap.Report())
		},
	}
}

func buildSnapshot(ctx context.Context, files []string) (*snapshot.Snapshot, error) {
	src, err := source.LoadFiles(ctx, files...)
	if err != nil {
		return nil, err
	}
	return snapshot.Build(src)
}

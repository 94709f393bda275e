// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/breedctl/internal/meta"
	"github.com/staranto/breedctl/internal/output"
)

// CountCommandAction prints "<breed> has N sub breeds" or "Unknown breed:
// <breed>" for every breed argument. Unknown breeds never fail the command.
func CountCommandAction(ctx context.Context, cmd *cli.Command) error {
	return withSession(ctx, cmd, func(ctx context.Context, s *Session) error {
		results, err := s.Lookup(ctx, cmd.Args().Slice())
		if err != nil {
			return err
		}
		results = output.FilterCounts(results, cmd.String("filter"))
		return output.SpitCounts(stdout(cmd), results, outputOptions(cmd))
	})
}

// CountCommandBuilder constructs the cli.Command definition for the "count"
// command.
func CountCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&LookupCommandBuilder{
		Name:      "count",
		Usage:     "count the sub-breeds of one or more breeds",
		UsageText: `breedctl count BREED... [options]`,
		Validator: BreedArgsValidator,
		Action:    CountCommandAction,
		Meta:      meta,
	}).Build()
}

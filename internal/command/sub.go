// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/breedctl/internal/meta"
	"github.com/staranto/breedctl/internal/output"
)

// SubCommandAction is the action handler for the "sub" subcommand. It looks up
// the sub-breeds of every breed argument and emits them per the common output
// flags. Unknown breeds are reported on stderr in text mode; the command only
// fails when none of the breeds is known.
func SubCommandAction(ctx context.Context, cmd *cli.Command) error {
	return withSession(ctx, cmd, func(ctx context.Context, s *Session) error {
		results, err := s.Lookup(ctx, cmd.Args().Slice())
		if err != nil {
			return err
		}
		results = output.FilterSubBreeds(results, cmd.String("filter"))

		opts := outputOptions(cmd)
		if err := output.SpitSubBreeds(stdout(cmd), results, opts); err != nil {
			return err
		}

		var unknown []string
		for _, r := range results {
			if !r.Found {
				unknown = append(unknown, r.Breed)
				if opts.Format == "text" {
					fmt.Fprintln(stderr(cmd), output.CountLine(r))
				}
			}
		}

		if len(unknown) == len(results) {
			return fmt.Errorf("no known breeds among: %s", strings.Join(unknown, ", "))
		}
		return nil
	})
}

// SubCommandBuilder constructs the cli.Command definition for the "sub"
// command.
func SubCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&LookupCommandBuilder{
		Name:      "sub",
		Usage:     "list the sub-breeds of one or more breeds",
		UsageText: `breedctl sub BREED... [options]`,
		Validator: BreedArgsValidator,
		Action:    SubCommandAction,
		Meta:      meta,
	}).Build()
}

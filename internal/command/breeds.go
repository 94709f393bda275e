// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/breedctl/internal/filters"
	"github.com/staranto/breedctl/internal/meta"
	"github.com/staranto/breedctl/internal/output"
)

// BreedsCommandAction lists every breed the selected source knows about.
// Listings are not cached.
func BreedsCommandAction(ctx context.Context, cmd *cli.Command) error {
	return withSession(ctx, cmd, func(ctx context.Context, s *Session) error {
		names, err := s.Source.Breeds(ctx)
		if err != nil {
			return err
		}
		names = filters.Names(names, cmd.String("filter"))
		return output.SpitList(stdout(cmd), "BREED", names, outputOptions(cmd))
	})
}

// BreedsCommandBuilder constructs the cli.Command definition for the "breeds"
// command.
func BreedsCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&LookupCommandBuilder{
		Name:      "breeds",
		Usage:     "list all known breeds",
		UsageText: `breedctl breeds [options]`,
		Action:    BreedsCommandAction,
		Meta:      meta,
	}).Build()
}

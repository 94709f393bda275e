// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/breedctl/internal/config"
	"github.com/staranto/breedctl/internal/meta"
	"github.com/staranto/breedctl/internal/version"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	// The arg[1] immediately following the binary (arg[0]) is the breedctl
	// subcommand and also represents the namespace key to be used when
	// retrieving config values. arg[1] could be -h/--help, so ignore it if it
	// appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	cfg, _ := config.Load()
	cfg.Namespace = ns

	return NewApp(meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
		Version: version.Version,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}), nil
}

// NewApp builds the root command around m.
func NewApp(m meta.Meta) *cli.Command {
	app := &cli.Command{
		Name:      "breedctl",
		Usage:     "Dog breed lookups",
		Writer:    m.Stdout,
		ErrWriter: m.Stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "breedctl version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		SubCommandBuilder(app, m),
		CountCommandBuilder(app, m),
		BreedsCommandBuilder(app, m),
		CompletionCommandBuilder(app, m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app
}

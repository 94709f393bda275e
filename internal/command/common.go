// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/staranto/breedctl/internal/breed"
	"github.com/staranto/breedctl/internal/cache"
	"github.com/staranto/breedctl/internal/config"
	"github.com/staranto/breedctl/internal/dogapi"
	"github.com/staranto/breedctl/internal/meta"
	"github.com/staranto/breedctl/internal/observe"
	"github.com/staranto/breedctl/internal/output"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

func stdout(cmd *cli.Command) io.Writer {
	if w := GetMeta(cmd).Stdout; w != nil {
		return w
	}
	return os.Stdout
}

func stderr(cmd *cli.Command) io.Writer {
	if w := GetMeta(cmd).Stderr; w != nil {
		return w
	}
	return os.Stderr
}

// outputOptions reads the output flags and drops color when stdout is not a
// terminal.
func outputOptions(cmd *cli.Command) output.Options {
	opts := output.OptionsFromCommand(cmd)
	if opts.Color {
		f, ok := stdout(cmd).(*os.File)
		if !ok || !term.IsTerminal(int(f.Fd())) {
			log.Debug("stdout is not a terminal, disabling color")
			opts.Color = false
		}
	}
	return opts
}

// NewSource returns the breed source selected by --source.
func NewSource(cmd *cli.Command) (breed.Source, error) {
	switch src := cmd.String("source"); src {
	case "local":
		return breed.Local(), nil
	case "api", "":
		return dogapi.New(
			dogapi.WithBaseURL(cmd.String("url")),
			dogapi.WithTimeout(cmd.Duration("timeout")),
		), nil
	default:
		return nil, fmt.Errorf("unknown source: %q", src)
	}
}

// Session is the lookup state of one command invocation. Every breed the
// command asks about goes through the same cache.
type Session struct {
	Source breed.Source
	Cache  *cache.Fetcher

	metrics  *observe.Metrics
	parallel int
	stats    bool
	stderr   io.Writer
	lookups  int
}

// NewSession wires the selected source behind a cache and, when requested,
// a metrics exporter.
func NewSession(ctx context.Context, cmd *cli.Command) (*Session, error) {
	src, err := NewSource(cmd)
	if err != nil {
		return nil, err
	}

	m, err := observe.New(GetMeta(cmd).Version, cmd.String("metrics"), stderr(cmd))
	if err != nil {
		return nil, err
	}

	parallel := int(cmd.Int("parallel"))
	if parallel < 1 {
		parallel = 1
	}

	s := &Session{
		Source:   src,
		Cache:    cache.New(src, cache.WithMeter(m.Meter())),
		metrics:  m,
		parallel: parallel,
		stats:    cmd.Bool("stats"),
		stderr:   stderr(cmd),
	}
	log.Debugf("session: source=%T parallel=%d", src, parallel)
	return s, nil
}

// Lookup fetches the sub-breeds of every name, preserving order. Unknown
// breeds come back with Found false; only a failure that is not a NotFound
// is returned as an error.
func (s *Session) Lookup(ctx context.Context, names []string) ([]output.Result, error) {
	results := make([]output.Result, len(names))
	s.lookups += len(names)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallel)
	for i, name := range names {
		g.Go(func() error {
			subs, err := s.Cache.SubBreeds(gctx, name)
			switch {
			case err == nil:
				results[i] = output.Result{Breed: name, Found: true, SubBreeds: subs}
			case breed.IsNotFound(err):
				log.WithField("breed", name).WithError(err).Debug("lookup failed")
				results[i] = output.Result{Breed: name}
			default:
				return fmt.Errorf("failed to look up %q: %w", name, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Close prints --stats and flushes metrics.
func (s *Session) Close(ctx context.Context) error {
	if s.stats {
		fmt.Fprintf(s.stderr, "lookups: %s, delegate calls: %s, cached breeds: %s\n",
			humanize.Comma(int64(s.lookups)),
			humanize.Comma(int64(s.Cache.CallsMade())),
			humanize.Comma(int64(s.Cache.Len())),
		)
	}
	return s.metrics.Shutdown(ctx)
}

// LookupCommandBuilder constructs a cli.Command for the lookup subcommands
// (sub, count, breeds) using a consistent pattern. The builder wires metadata,
// applies global flags, sets the config namespace and runs validators.
type LookupCommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Validator func(context.Context, *cli.Command) error
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (b *LookupCommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:      b.Name,
		Usage:     b.Usage,
		UsageText: b.UsageText,
		Metadata: map[string]any{
			"meta": b.Meta,
		},
		Flags: append(b.Flags, NewGlobalFlags(b.Name, b.Meta.Config.Source)...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			config.Config.Namespace = b.Name
			if err := GlobalFlagsValidator(ctx, c); err != nil {
				return ctx, err
			}
			if b.Validator != nil {
				return ctx, b.Validator(ctx, c)
			}
			return ctx, nil
		},
		Action: b.Action,
	}
}

// withSession runs fn with a fresh Session and always closes it.
func withSession(
	ctx context.Context,
	cmd *cli.Command,
	fn func(context.Context, *Session) error,
) (err error) {
	m := GetMeta(cmd)
	if len(m.Args) > 1 {
		log.Debugf("Executing action for %v", m.Args[1:])
	}

	s, err := NewSession(ctx, cmd)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return fn(ctx, s)
}

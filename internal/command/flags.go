// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/breedctl/internal/dogapi"
)

// configSources returns the namespaced and then global yaml sources for key,
// preceded by any env vars.
func configSources(ns, path, key string, envs ...string) cli.ValueSourceChain {
	var srcs []cli.ValueSource
	for _, e := range envs {
		srcs = append(srcs, cli.EnvVar(e))
	}
	if path != "" {
		if ns != "" {
			srcs = append(srcs, yaml.YAML(ns+"."+key, altsrc.StringSourcer(path)))
		}
		srcs = append(srcs, yaml.YAML(key, altsrc.StringSourcer(path)))
	}
	return cli.NewValueSourceChain(srcs...)
}

// NewGlobalFlags returns the flags shared by every lookup command. ns is the
// command name used as the config namespace and path is the config file.
func NewGlobalFlags(ns, path string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: configSources(ns, path, "color"),
			Value:   false,
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters (key, operator, target)",
			Sources: configSources(ns, path, "filter"),
		},
		&cli.StringFlag{
			Name:    "metrics",
			Usage:   "cache metrics exporter (none, stdout)",
			Sources: configSources(ns, path, "metrics", "BREEDCTL_METRICS"),
			Value:   "none",
			Validator: func(value string) error {
				return FlagValidators(value, MetricsValidator)
			},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: configSources(ns, path, "output"),
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator, OutputValidator)
			},
		},
		&cli.IntFlag{
			Name:    "parallel",
			Aliases: []string{"p"},
			Usage:   "maximum concurrent lookups",
			Sources: configSources(ns, path, "parallel"),
			Value:   4,
		},
		&cli.StringFlag{
			Name:    "source",
			Aliases: []string{"s"},
			Usage:   "where breeds come from (api, local)",
			Sources: configSources(ns, path, "source", "BREEDCTL_SOURCE"),
			Value:   "api",
			Validator: func(value string) error {
				return FlagValidators(value, SourceValidator)
			},
		},
		&cli.BoolFlag{
			Name:    "stats",
			Usage:   "print cache statistics to stderr",
			Sources: configSources(ns, path, "stats"),
		},
		&cli.DurationFlag{
			Name:    "timeout",
			Usage:   "http timeout for api lookups",
			Sources: configSources(ns, path, "timeout", "BREEDCTL_TIMEOUT"),
			Value:   dogapi.DefaultTimeout,
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Sources: configSources(ns, path, "titles"),
			Value:   false,
		},
		&cli.StringFlag{
			Name:    "url",
			Aliases: []string{"u"},
			Usage:   "dog api base url",
			Sources: configSources(ns, path, "url", "BREEDCTL_URL"),
			Value:   dogapi.DefaultBaseURL,
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
	}

	return
}

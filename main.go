// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"

	"github.com/staranto/breedctl/internal/command"
	"github.com/staranto/breedctl/internal/config"
	mylog "github.com/staranto/breedctl/internal/log"
	"github.com/staranto/breedctl/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain(os.Args))
}

func realMain(args []string) int {
	mylog.InitLogger()

	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "No command specified.")
		args = append(args, "--help")
	} else {
		args = mangleArguments(args)
	}

	// Short-circuit --version/-v.
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return 0
		}
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	return 0
}

// mangleArguments expands a named argument set from the config file in place.
// "breedctl sub @hounds" inserts the args listed under sub.@hounds at the
// position of @hounds. Without an explicit @set, sub.@defaults is inserted
// right after the command, ahead of anything typed on the command line.
func mangleArguments(args []string) []string {
	// We know the first two args are going to be the executable and command.
	preamble := make([]string, 2)
	copy(preamble, args[:2])

	// Short-circuit for --help/-h. If help is requested, just keep the preamble
	// and add --help flag.
	for _, a := range args {
		if a == "--help" || a == "-h" {
			return append(preamble, "--help")
		}
	}

	// Leave flags in the command slot alone, e.g. "breedctl --version".
	if strings.HasPrefix(args[1], "-") {
		return args
	}

	idx := 2
	set := "defaults"
	rest := append([]string{}, args[2:]...)

	// See if there is a @set specified. If so, that becomes the insertion point
	// and the @set entry is removed from args.
	for i, a := range rest {
		if strings.HasPrefix(a, "@") && len(a) > 1 {
			set = a[1:]
			idx += i
			rest = append(rest[:i], rest[i+1:]...)
			break
		}
	}

	out := append(preamble, rest...)

	setArgs, _ := config.GetStringSlice(args[1] + ".@" + set)
	for _, arg := range setArgs {
		parts := strings.Fields(arg)
		out = append(out[:idx], append(parts, out[idx:]...)...)
		idx += len(parts)
	}

	log.Debugf("idx=%d, set=%s, args=%v", idx, set, out)
	return out
}

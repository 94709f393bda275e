// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/breedctl/internal/observe"
	"github.com/staranto/breedctl/internal/output"
)

// Sources accepted by the --source flag.
var Sources = []string{"api", "local"}

// GlobalFlagsValidator checks the flags whose Validator hook cannot express
// the constraint.
func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	if c.Int("parallel") < 1 {
		return errors.New("--parallel must be at least 1")
	}
	if c.Duration("timeout") < 0 {
		return errors.New("--timeout must not be negative")
	}
	return nil
}

// BreedArgsValidator requires at least one breed argument.
func BreedArgsValidator(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() == 0 {
		return errors.New("at least one breed is required")
	}
	return nil
}

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// JammedFlagValidator verifies that the arg following a flag does not begin
// with '--'.  urfave/cli allows this and I don't see how to turn it off.
func JammedFlagValidator(value any) error {
	if strings.HasPrefix(value.(string), "--") {
		return errors.New("must not begin with '--'")
	}
	return nil
}

func oneOf(valid []string) FlagValidatorType {
	return func(value any) error {
		s, _ := value.(string)
		if !slices.Contains(valid, s) {
			return fmt.Errorf("must be one of %v", valid)
		}
		return nil
	}
}

func OutputValidator(value any) error {
	return oneOf(output.Formats)(value)
}

func SourceValidator(value any) error {
	return oneOf(Sources)(value)
}

func MetricsValidator(value any) error {
	return oneOf(observe.Exporters())(value)
}

// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/apex/log"
)

// filterRegex is the pattern used to parse filter expressions into key, operator, and target components.
// It matches: key + operator + target, where operator can be negated with !
// Operators are one of = ^ ~ < > @ or /, optionally prefixed with '!'.
// This allows forms like '=', '!=', '^', '!^', etc.
var filterRegex = regexp.MustCompile(`^(.*?)(!?[=^~<>@/])(.*)$`)

// Filter represents a single parsed --filter expression including the key,
// operand, optional negation and target value. An empty Key means the
// caller's default key.
type Filter struct {
	Key     string
	Negate  bool
	Operand string
	Target  string
}

// BuildFilters parses a filter specification string into a slice of Filter.
// Invalid specs (unsupported operand or malformed expression) are skipped.
func BuildFilters(spec string) []Filter {
	//nolint:prealloc
	var filters []Filter

	// If there are no filters specified, go home early.
	if spec == "" {
		return filters
	}

	// Default delimiter is ",", allow an override.
	delim := ","
	if d, ok := os.LookupEnv("BREEDCTL_FILTER_DELIM"); ok && d != "" {
		delim = d
	}

	for _, filterSpec := range strings.Split(spec, delim) {
		parts := filterRegex.FindStringSubmatch(filterSpec)

		// If a supported operand was not found, log an error and throw it away.
		if parts == nil {
			log.Error("invalid filter: " + filterSpec)
			continue
		}

		negate := strings.HasPrefix(parts[2], "!")
		if negate {
			parts[2] = strings.TrimPrefix(parts[2], "!")
		}

		filters = append(filters, Filter{
			Key:     strings.TrimSpace(parts[1]),
			Negate:  negate,
			Operand: parts[2],
			Target:  parts[3],
		})
	}

	return filters
}

// Names returns the names that pass every filter in spec, in their original
// order. Filters address a name with the key "name" or no key at all.
func Names(names []string, spec string) []string {
	filters := BuildFilters(spec)
	out := make([]string, 0, len(names))
	for _, n := range names {
		if Match(map[string]any{"name": n}, filters, "name") {
			out = append(out, n)
		}
	}
	return out
}

// Match returns true if row passes all of the provided filters. A filter
// without a key applies to defaultKey. A filter naming a key the row does not
// have is reported and skipped.
func Match(row map[string]any, filters []Filter, defaultKey string) bool {
	for _, filter := range filters {
		key := filter.Key
		if key == "" {
			key = defaultKey
		}

		value, ok := row[key]
		if !ok {
			log.Warn(fmt.Sprintf("filter key not found: %s", key))
			continue
		}
		if value == nil {
			return false
		}

		if !check(value, filter) {
			return false
		}
	}

	return true
}

// check evaluates one filter against a single row value.
func check(value any, filter Filter) bool {
	switch v := value.(type) {
	case string:
		return checkStringOperand(v, filter)
	case bool:
		return checkBoolOperand(v, filter)
	case []string, []any, map[string]any:
		return checkContainsOperand(v, filter)
	}

	if num, ok := toFloat64(value); ok {
		return checkNumericOperand(num, filter)
	}

	log.Error(fmt.Sprintf("unsupported type for filtering: %T", value))
	return false
}

// checkBoolOperand supports only equality. The target accepts anything
// strconv.ParseBool does, e.g. "true", "f", "1".
func checkBoolOperand(value bool, filter Filter) bool {
	if filter.Operand != "=" {
		log.Error("unsupported boolean operand: " + filter.Operand)
		return false
	}

	tgt, err := strconv.ParseBool(strings.TrimSpace(filter.Target))
	if err != nil {
		log.Error("invalid boolean target: " + filter.Target)
		return false
	}

	return (value == tgt) == !filter.Negate
}

// checkContainsOperand evaluates a membership style filter (operand '@')
// against slice or map values.
func checkContainsOperand(value interface{}, filter Filter) bool {
	if filter.Operand != "@" {
		log.Error("unsupported list operand: " + filter.Operand)
		return false
	}

	switch val := value.(type) {
	case []string:
		for _, item := range val {
			if item == filter.Target {
				return !filter.Negate
			}
		}
		return filter.Negate
	case []any:
		for _, item := range val {
			if item == filter.Target {
				return !filter.Negate
			}
		}
		return filter.Negate
	case map[string]any:
		_, found := val[filter.Target]
		if filter.Negate {
			return !found
		}
		return found
	default:
		log.Error(fmt.Sprintf("unsupported type for contains filtering: %T", value))
		return false
	}
}

// checkNumericOperand compares a numeric value against the filter target using
// numeric semantics. Supported operands: =, >, < and the negated form via
// filter.Negate (e.g., != is represented as Negate + "=").
func checkNumericOperand(value float64, filter Filter) bool {
	tgt, err := strconv.ParseFloat(strings.TrimSpace(filter.Target), 64)
	if err != nil {
		log.Error("invalid numeric target: " + filter.Target)
		return false
	}

	switch filter.Operand {
	case "=":
		return (value == tgt) == !filter.Negate
	case ">":
		return (value > tgt) == !filter.Negate
	case "<":
		return (value < tgt) == !filter.Negate
	default:
		log.Error("unsupported numeric operand: " + filter.Operand)
		return false
	}
}

// checkStringOperand evaluates a string comparison style filter against the
// provided value using the operand semantics.
func checkStringOperand(value string, filter Filter) bool {
	switch filter.Operand {
	case "=":
		return value == filter.Target == !filter.Negate
	case "~":
		return strings.EqualFold(value, filter.Target) == !filter.Negate
	case "^":
		return strings.HasPrefix(value, filter.Target) == !filter.Negate
	case ">":
		return value > filter.Target == !filter.Negate
	case "<":
		return value < filter.Target == !filter.Negate
	case "@":
		return strings.Contains(value, filter.Target) == !filter.Negate
	case "/":
		matched, err := regexp.MatchString(filter.Target, value)
		if err != nil {
			log.Error("invalid regex: " + filter.Target)
			return false
		}
		return matched == !filter.Negate
	default:
		log.Error("unsupported filtering operand: " + filter.Operand)
		return false
	}
}

// toFloat64 normalizes the integer and float kinds a row may carry.
func toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	default:
		return 0, false
	}
}

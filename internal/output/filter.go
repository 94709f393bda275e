// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"github.com/staranto/breedctl/internal/filters"
)

// FilterSubBreeds narrows the sub-breed names of every found result. Unknown
// breeds pass through untouched so they are still reported.
func FilterSubBreeds(results []Result, spec string) []Result {
	if spec == "" {
		return results
	}

	out := make([]Result, len(results))
	for i, r := range results {
		if r.Found {
			r.SubBreeds = filters.Names(r.SubBreeds, spec)
		}
		out[i] = r
	}
	return out
}

// FilterCounts keeps the results whose row passes spec. Rows carry the keys
// breed, found, count and sub_breeds; a filter without a key applies to
// breed. sub_breeds takes the contains operator, e.g. "sub_breeds@english".
func FilterCounts(results []Result, spec string) []Result {
	fs := filters.BuildFilters(spec)
	if len(fs) == 0 {
		return results
	}

	out := make([]Result, 0, len(results))
	for _, r := range results {
		row := map[string]any{
			"breed":      r.Breed,
			"found":      r.Found,
			"count":      r.Count(),
			"sub_breeds": r.SubBreeds,
		}
		if filters.Match(row, fs, "breed") {
			out = append(out, r)
		}
	}
	return out
}

// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package breed

import (
	"context"
	"slices"
	"sort"
)

// Static is a map backed Fetcher. Lookups are exact on the key given; callers
// that want case and whitespace folding wrap it in the caching fetcher.
type Static struct {
	data map[string][]string
}

var _ Fetcher = (*Static)(nil)

// NewStatic copies data into a new Static fetcher.
func NewStatic(data map[string][]string) *Static {
	s := &Static{data: make(map[string][]string, len(data))}
	for k, v := range data {
		s.data[k] = slices.Clone(v)
	}
	return s
}

// Local returns a Static fetcher preloaded with a small offline snapshot of the
// dog.ceo breed list.
func Local() *Static {
	return NewStatic(map[string][]string{
		"hound":      {"afghan", "basset", "blood", "english", "ibizan", "plott", "walker"},
		"bulldog":    {"boston", "english", "french"},
		"retriever":  {"chesapeake", "curly", "flatcoated", "golden"},
		"terrier":    {"american", "australian", "bedlington", "border", "cairn", "dandie", "fox", "irish", "kerryblue", "lakeland", "norfolk", "norwich", "patterdale", "russell", "scottish", "sealyham", "silky", "tibetan", "toy", "welsh", "westhighland", "wheaten", "yorkshire"},
		"poodle":     {"medium", "miniature", "standard", "toy"},
		"spaniel":    {"blenheim", "brittany", "cocker", "irish", "japanese", "sussex", "welsh"},
		"beagle":     {},
		"husky":      {},
		"pug":        {},
		"labrador":   {},
		"shepherd":   {"australian"},
		"sheepdog":   {"english", "shetland"},
		"schnauzer":  {"giant", "miniature"},
		"setter":     {"english", "gordon", "irish"},
		"mastiff":    {"bull", "english", "tibetan"},
		"springer":   {"english"},
		"wolfhound":  {"irish"},
		"greyhound":  {"italian"},
		"pointer":    {"german", "germanlonghair"},
		"corgi":      {"cardigan"},
		"dachshund":  {},
		"rottweiler": {},
	})
}

// SubBreeds returns a copy of the sub-breeds stored for breed.
func (s *Static) SubBreeds(_ context.Context, breed string) ([]string, error) {
	subs, ok := s.data[breed]
	if !ok {
		return nil, NotFound(breed, nil)
	}
	out := make([]string, len(subs))
	copy(out, subs)
	return out, nil
}

// Breeds returns the known breed names, sorted.
func (s *Static) Breeds(_ context.Context) ([]string, error) {
	names := make([]string, 0, len(s.data))
	for k := range s.data {
		names = append(names, k)
	}
	sort.Strings(names)
	return names, nil
}

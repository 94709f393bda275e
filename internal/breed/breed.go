// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package breed

import "context"

// Fetcher returns the sub-breeds of a breed.
//
// Contract:
//   - Result: the sub-breed names in the order the source reports them. An
//     empty slice with a nil error means the breed exists and has no
//     sub-breeds.
//   - Errors: every failure, whether the breed is unknown or the source could
//     not be reached or understood, is reported as a *NotFoundError.
//   - Determinism: a successful result for a breed may be cached indefinitely.
//   - Concurrency: implementations must be safe for concurrent use.
type Fetcher interface {
	SubBreeds(ctx context.Context, breed string) ([]string, error)
}

// FetcherFunc adapts an ordinary function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, breed string) ([]string, error)

// SubBreeds calls f(ctx, breed).
func (f FetcherFunc) SubBreeds(ctx context.Context, breed string) ([]string, error) {
	return f(ctx, breed)
}

// Count returns the number of sub-breeds f reports for breed. Zero is returned
// for a breed that exists but has no sub-breeds.
func Count(ctx context.Context, f Fetcher, breed string) (int, error) {
	subs, err := f.SubBreeds(ctx, breed)
	if err != nil {
		return 0, err
	}
	return len(subs), nil
}

// Lister enumerates the breeds a source knows about.
type Lister interface {
	Breeds(ctx context.Context) ([]string, error)
}

// Source is a Fetcher that can also list its breeds.
type Source interface {
	Fetcher
	Lister
}

// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/apex/log"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/singleflight"

	"github.com/staranto/breedctl/internal/breed"
)

// Fetcher wraps a breed.Fetcher and memoizes its successful results.
//
// Contract:
//   - Concurrency: safe for concurrent use. Concurrent misses for one key share
//     a single delegate call; misses for different keys run in parallel.
//   - Immutability: a stored entry is written once and never replaced. Callers
//     always receive their own copy.
//   - Errors: delegate errors are returned unchanged and never cached.
//   - Cancellation: a shared delegate call runs on the context of the caller
//     that started it. When that context ends the call, callers that joined
//     it with a live context of their own start a fresh call instead of
//     inheriting the cancellation.
type Fetcher struct {
	delegate breed.Fetcher
	meter    metric.Meter
	inst     *instruments

	mu      sync.RWMutex
	entries map[string][]string

	calls  atomic.Int64
	flight singleflight.Group
}

var _ breed.Fetcher = (*Fetcher)(nil)

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithMeter records hit, miss and error counters on m.
func WithMeter(m metric.Meter) Option {
	return func(f *Fetcher) {
		f.meter = m
	}
}

// New returns an empty caching Fetcher in front of delegate.
func New(delegate breed.Fetcher, opts ...Option) *Fetcher {
	f := &Fetcher{
		delegate: delegate,
		entries:  make(map[string][]string),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.inst = newInstruments(f.meter)
	return f
}

// SubBreeds returns the sub-breeds for b, asking the delegate only when the
// normalized key has no cached entry. The delegate is called with the
// normalized key, not with b.
func (f *Fetcher) SubBreeds(ctx context.Context, b string) ([]string, error) {
	key := NormalizeKey(b)

	if subs, ok := f.lookup(key); ok {
		log.WithField("breed", key).Debug("cache hit")
		f.inst.hit(ctx, key)
		return clone(subs), nil
	}

	for {
		res, shared, err := f.join(ctx, key)
		if err == nil {
			if shared {
				log.WithField("breed", key).Debug("shared in-flight lookup")
			}
			return clone(res.subs), nil
		}
		if !shared || !res.abandoned || ctx.Err() != nil {
			return nil, err
		}
		log.WithField("breed", key).Debug("in-flight lookup abandoned by its caller, starting another")
	}
}

// flightResult is what a shared delegate call hands to every caller waiting
// on it.
type flightResult struct {
	subs []string
	// abandoned is set when the starting caller's context ended the call.
	abandoned bool
}

// join runs or waits for the single delegate call in flight for key.
func (f *Fetcher) join(ctx context.Context, key string) (flightResult, bool, error) {
	v, err, shared := f.flight.Do(key, func() (any, error) {
		// Another flight may have stored the key after our lookup above.
		if subs, ok := f.lookup(key); ok {
			f.inst.hit(ctx, key)
			return flightResult{subs: subs}, nil
		}
		subs, err := f.fetch(ctx, key)
		return flightResult{subs: subs, abandoned: err != nil && ctx.Err() != nil}, err
	})

	//nolint:forcetypeassert
	return v.(flightResult), shared, err
}

// fetch performs one delegate call for key and stores a successful result.
func (f *Fetcher) fetch(ctx context.Context, key string) ([]string, error) {
	n := f.calls.Add(1)
	f.inst.miss(ctx, key)
	log.WithField("breed", key).Debugf("cache miss, delegate call #%d", n)

	subs, err := f.delegate.SubBreeds(ctx, key)
	if err != nil {
		f.inst.fail(ctx, key)
		log.WithField("breed", key).WithError(err).Debug("delegate failed, not caching")
		return nil, err
	}

	return f.store(key, subs), nil
}

// store records a private copy of subs under key unless an entry already
// exists, and returns whichever entry is now cached.
func (f *Fetcher) store(key string, subs []string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if existing, ok := f.entries[key]; ok {
		return existing
	}
	stored := clone(subs)
	f.entries[key] = stored
	log.WithField("breed", key).Debugf("cached %d sub-breeds", len(stored))
	return stored
}

func (f *Fetcher) lookup(key string) ([]string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	subs, ok := f.entries[key]
	return subs, ok
}

// CallsMade returns the number of delegate calls made so far.
func (f *Fetcher) CallsMade() int {
	return int(f.calls.Load())
}

// Len returns the number of cached keys.
func (f *Fetcher) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.entries)
}

// Contains reports whether b, once normalized, has a cached entry.
func (f *Fetcher) Contains(b string) bool {
	_, ok := f.lookup(NormalizeKey(b))
	return ok
}

// clone returns a non-nil copy of s.
func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

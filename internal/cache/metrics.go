// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"context"

	"github.com/apex/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Metric names recorded by Fetcher.
const (
	MetricHits   = "breedctl.cache.hits"
	MetricMisses = "breedctl.cache.misses"
	MetricErrors = "breedctl.cache.errors"
)

type instruments struct {
	hits   metric.Int64Counter
	misses metric.Int64Counter
	errors metric.Int64Counter
}

// newInstruments creates the cache counters on m. A nil meter, or a meter
// that refuses an instrument, falls back to the noop meter.
func newInstruments(m metric.Meter) *instruments {
	if m != nil {
		inst, err := buildInstruments(m)
		if err == nil {
			return inst
		}
		log.WithError(err).Warn("cache metrics disabled")
	}
	//nolint:errcheck
	inst, _ := buildInstruments(noop.NewMeterProvider().Meter("noop"))
	return inst
}

func buildInstruments(m metric.Meter) (*instruments, error) {
	hits, err := m.Int64Counter(
		MetricHits,
		metric.WithDescription("Lookups answered from the cache"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}

	misses, err := m.Int64Counter(
		MetricMisses,
		metric.WithDescription("Lookups passed to the wrapped fetcher"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	errs, err := m.Int64Counter(
		MetricErrors,
		metric.WithDescription("Wrapped fetcher calls that failed"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	return &instruments{hits: hits, misses: misses, errors: errs}, nil
}

func (i *instruments) hit(ctx context.Context, key string) {
	i.hits.Add(ctx, 1, metric.WithAttributes(attribute.String("breed", key)))
}

func (i *instruments) miss(ctx context.Context, key string) {
	i.misses.Add(ctx, 1, metric.WithAttributes(attribute.String("breed", key)))
}

func (i *instruments) fail(ctx context.Context, key string) {
	i.errors.Add(ctx, 1, metric.WithAttributes(attribute.String("breed", key)))
}

// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

package observe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

// ScopeName is the instrumentation scope of every meter handed out here.
const ScopeName = "github.com/staranto/breedctl"

// Exporters understood by New.
const (
	ExporterNone   = "none"
	ExporterStdout = "stdout"
)

// ErrUnknownExporter is returned by New for an unsupported exporter name.
var ErrUnknownExporter = errors.New("unknown metrics exporter")

// Exporters returns the accepted exporter names.
func Exporters() []string {
	return []string{ExporterNone, ExporterStdout}
}

// Metrics owns a meter provider and knows how to flush it.
type Metrics struct {
	provider metric.MeterProvider
	shutdown func(context.Context) error
}

// New returns Metrics for the named exporter. "stdout" writes JSON encoded
// metrics to w (os.Stderr when nil) when Shutdown is called. "none", or the
// empty string, records nothing.
func New(version, exporter string, w io.Writer) (*Metrics, error) {
	switch exporter {
	case ExporterNone, "":
		return &Metrics{
			provider: noop.NewMeterProvider(),
			shutdown: func(context.Context) error { return nil },
		}, nil

	case ExporterStdout:
		if w == nil {
			w = os.Stderr
		}
		exp, err := stdoutmetric.New(
			stdoutmetric.WithWriter(w),
			stdoutmetric.WithPrettyPrint(),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create stdout metrics exporter: %w", err)
		}
		return newSDK(version, sdkmetric.NewPeriodicReader(exp)), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownExporter, exporter)
	}
}

// NewWithReader returns Metrics backed by an SDK provider reading through r.
// Tests use it with a sdkmetric.ManualReader.
func NewWithReader(version string, r sdkmetric.Reader) *Metrics {
	return newSDK(version, r)
}

func newSDK(version string, r sdkmetric.Reader) *Metrics {
	res := resource.NewSchemaless(
		attribute.String("service.name", "breedctl"),
		attribute.String("service.version", version),
	)
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(r),
		sdkmetric.WithResource(res),
	)
	return &Metrics{provider: mp, shutdown: mp.Shutdown}
}

// Meter returns the breedctl meter.
func (m *Metrics) Meter() metric.Meter {
	return m.provider.Meter(ScopeName)
}

// Shutdown flushes pending metrics and releases the exporter. It is safe to
// call on a nil *Metrics.
func (m *Metrics) Shutdown(ctx context.Context) error {
	if m == nil {
		return nil
	}
	if err := m.shutdown(ctx); err != nil {
		log.WithError(err).Debug("metrics shutdown failed")
		return fmt.Errorf("failed to flush metrics: %w", err)
	}
	return nil
}

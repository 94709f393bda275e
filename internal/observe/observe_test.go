// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package observe

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/staranto/breedctl/internal/breed"
	"github.com/staranto/breedctl/internal/cache"
)

func TestNew_UnknownExporter(t *testing.T) {
	_, err := New("test", "prometheus", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownExporter)
	assert.Contains(t, err.Error(), "prometheus")
}

func TestNew_None(t *testing.T) {
	for _, name := range []string{"", ExporterNone} {
		m, err := New("test", name, nil)
		require.NoError(t, err)
		require.NotNil(t, m.Meter())
		assert.NoError(t, m.Shutdown(context.Background()))
	}
}

func TestNew_StdoutFlushesOnShutdown(t *testing.T) {
	var buf bytes.Buffer
	m, err := New("test", ExporterStdout, &buf)
	require.NoError(t, err)

	f := cache.New(breed.Local(), cache.WithMeter(m.Meter()))
	_, err = f.SubBreeds(context.Background(), "hound")
	require.NoError(t, err)
	_, err = f.SubBreeds(context.Background(), "Hound")
	require.NoError(t, err)

	require.NoError(t, m.Shutdown(context.Background()))
	assert.Contains(t, buf.String(), cache.MetricHits)
	assert.Contains(t, buf.String(), cache.MetricMisses)
	assert.Contains(t, buf.String(), "breedctl")
}

func TestNewWithReader(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	m := NewWithReader("1.2.3", reader)
	defer func() { _ = m.Shutdown(context.Background()) }()

	f := cache.New(breed.Local(), cache.WithMeter(m.Meter()))
	_, _ = f.SubBreeds(context.Background(), "cat")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.NotEmpty(t, rm.ScopeMetrics)
	assert.Equal(t, ScopeName, rm.ScopeMetrics[0].Scope.Name)

	v, ok := rm.Resource.Set().Value("service.version")
	require.True(t, ok)
	assert.Equal(t, "1.2.3", v.AsString())
}

func TestShutdown_Nil(t *testing.T) {
	var m *Metrics
	assert.NoError(t, m.Shutdown(context.Background()))
}

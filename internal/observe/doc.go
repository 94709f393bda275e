// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

// Package observe builds the OpenTelemetry meter provider used to export
// breedctl's cache metrics.
package observe

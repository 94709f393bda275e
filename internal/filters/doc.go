// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package filters implements the --filter expression language: a comma
// separated list of key, operator and target, e.g. "count>2,breed^b".
package filters

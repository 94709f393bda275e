// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

// Package output provides filtering and emission utilities used by commands
// to present breed lookups as text tables, JSON or YAML.
package output

// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

package cache

import "strings"

// NormalizeKey folds a raw breed name into its cache key by trimming
// surrounding whitespace and lowercasing. The empty string is a valid key.
func NormalizeKey(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

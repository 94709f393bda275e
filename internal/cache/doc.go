// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

// Package cache provides an in-memory, process scoped memoizing layer in front
// of a breed.Fetcher so that repeated lookups of the same breed do not hit the
// remote API again.
//
// Keys are folded (trimmed and lowercased) before lookup and the folded key is
// what the wrapped fetcher sees. Only successful results are remembered; a
// NotFound is passed straight through and the next lookup asks again. Entries
// never expire and are never evicted.
package cache

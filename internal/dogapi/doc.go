// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

// Package dogapi is a breed.Fetcher backed by the public dog.ceo REST API.
package dogapi

// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

// Package version holds the build version, set at link time with
// -ldflags "-X github.com/staranto/breedctl/internal/version.Version=...".
package version

// Version is the breedctl release version.
var Version = "0.1.0-dev"

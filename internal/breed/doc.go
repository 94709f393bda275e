// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package breed defines the sub-breed lookup contract shared by the remote
// client, the local fixture and the caching layer, along with the single
// NotFound failure kind they all report.
package breed

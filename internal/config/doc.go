// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the leave-tracker server and client.
//
// Configuration is assembled from multiple sources; later sources override
// earlier non-zero fields:
//  1. JSON config file (path from -c/-config or CONFIG)
//  2. Environment variables (a local .env file is loaded first if present)
//  3. Command-line flags
//
// The entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the terminal client.
package config

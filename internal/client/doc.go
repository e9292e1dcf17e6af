// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal leave page, client services and the background
// refresh worker into a single process lifecycle.
package client

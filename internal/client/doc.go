// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AuraCrypt Authors

// Package client implements the interactive application runtime.
//
// It wires the terminal UI, the vault service, backups, and background
// workers into a single process lifecycle.
package client

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires configuration, local storage, the REST adapter, translations,
// form validation and the client services into the terminal UI and runs
// them as a single process lifecycle.
package client

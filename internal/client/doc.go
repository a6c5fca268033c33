// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive draft editor runtime.
//
// It wires the local draft queue, the HTTP draft adapter, the connectivity
// prober and the terminal editor into a single process lifecycle.
package client

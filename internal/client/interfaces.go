// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is a runnable client application.
type Client interface {
	// Run opens the configured draft in the editor and blocks until the
	// user quits or the process is interrupted.
	Run() error
}

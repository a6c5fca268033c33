// Package utils provides general-purpose helper utilities used across
// different parts of the application: the resty HTTP client wrapper, JSON
// response writing, identifier generation and the timer seam used by
// components that schedule work.
package utils

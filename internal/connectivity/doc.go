// Package connectivity tracks whether the draft server is reachable and
// forwards online/offline transitions to autosave sessions.
//
// A [Monitor] holds the current flag and notifies [Listener]s on transitions
// only. A [Prober] is a background worker that drives the monitor from
// periodic health checks, and [Watch] binds a monitor to a session.
package connectivity

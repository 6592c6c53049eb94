// Package client implements the interactive client application runtime.
//
// It wires terminal UI flows, the session service, and the background
// notification poller into a single process lifecycle.
package client

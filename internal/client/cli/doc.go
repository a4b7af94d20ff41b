// Package cli provides the interactive JobHub command-line client.
//
// It wires configuration, local storage, the authentication API client and
// the session store behind a small REPL. A session persisted by an earlier
// run is restored at startup, so a logged-in user stays logged in.
//
// Commands:
//   - register, login (prompts; password without echo)
//   - whoami, logout
//   - help, exit | quit
//
// When a metrics address is configured, App.Run also serves Prometheus
// metrics at /metrics until the REPL exits.
package cli

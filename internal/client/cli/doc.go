// Package cli provides the interactive nxtcli terminal client.
//
// It wires configuration, the local session store, the API gateways, and an
// interactive REPL driving the account flows. Typical flow: restore a
// persisted session if one exists, then execute user commands.
//
// Key features:
//   - Login with a one-time passcode second factor
//   - Signup with a profile photo
//   - Profile view / Logout / Account deletion
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli

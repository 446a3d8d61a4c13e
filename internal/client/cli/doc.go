// Package cli provides the interactive Tafuta command-line client.
//
// It wires configuration, the persisted token store, the auth backend, and the
// session manager into a REPL that plays the role of the mobile app's screens:
// sign-in and registration when signed out, profile and sign-out when signed
// in. The prompt acts as the navigation guard, reflecting the session route.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

// Package cli provides the interactive car rental command-line client.
//
// It wires configuration, the local record store and the storefront
// services behind a small REPL. Typical flow: restore the previous session,
// browse cars, sign in, book, review bookings. Administrators additionally
// get dashboard commands.
//
// Every command counts as user activity and restarts the idle countdown.
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

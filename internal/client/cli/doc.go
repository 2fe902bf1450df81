// Package cli provides the interactive MealMate command-line client.
//
// It wires configuration, the local session store, the REST API client and
// an interactive REPL. Typical flow: restore a persisted session, then
// execute user commands until exit.
//
// Key features:
//   - Register / Login / Logout with a persisted session
//   - Password recovery via email OTP
//   - Wallet top-ups and transaction history
//   - Mess directory, plans, menus, announcements and feedback
//   - Leave requests
//   - Admin provisioning and mess photo uploads
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli

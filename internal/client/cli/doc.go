// Package cli provides the interactive SkillSwap command-line client.
//
// It wires configuration, the REST API client, the client-side router and
// the three view-models (marketplace, user list, user profile) behind a
// read–eval–print loop. Each command drives a view-model, waits for the
// requests it started, and prints the resulting state.
//
// Key features:
//   - Browse offered and requested skills, switch tabs
//   - List users and register new ones
//   - Open a user's profile by id or by path (/users/42) and add skills
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli

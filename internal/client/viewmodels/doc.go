// Package viewmodels holds the state behind the SkillSwap screens: the skill
// marketplace, the user list and a single user's profile.
//
// Each view-model exposes its state as reactive cells (loading flag, error
// message, collections, form drafts) and fills them from the backend through
// a shared task.Loop. Loads are fire-and-forget: an operation starts its
// requests and returns, and the callbacks update the cells as responses
// arrive. Call Loop.Wait to block until everything in flight has landed.
//
// All failures end up in a single Error cell as a human-readable message.
// A later failure overwrites an earlier one and nothing is retried.
// Overlapping loads are not cancelled, so a slow response from an older load
// can overwrite state written by a newer one.
package viewmodels

// Package client talks to the SkillSwap REST backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the API interface) covering the
//     calls the view-models need: skill listings, users, and skill/user
//     creation.
//  2. A concrete REST/JSON implementation (see HTTPClient) that tags every
//     request with an X-Request-ID, applies the configured timeout, logs the
//     exchange, and maps HTTP status codes to sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrNotFound, ErrBadRequest. Other non-2xx
// responses surface as *StatusError.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation.
package client

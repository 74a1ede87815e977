// Package middleware holds the global and route-level Echo middleware:
// Clerk authentication, request ids, request-scoped logging, CORS, rate
// limiting, New Relic tracing and panic recovery.
package middleware

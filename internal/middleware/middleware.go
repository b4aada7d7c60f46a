// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request ids, request logging, tracing, metrics, CORS,
// panic recovery and the per-request database session
package middleware

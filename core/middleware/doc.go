// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - CORS: stamps Access-Control-Allow-Origin/Methods/Headers onto every
//     response after the handler chain has run, whatever the status.
//   - RayID: generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//
// Both are registered globally in core/server before any feature is loaded.
package middleware

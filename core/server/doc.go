// Package server binds and runs the preview HTTP server.
//
// Binding and serving are separate steps so that the caller can react to a
// bound port (print the URL, open a browser) before the accept loop starts,
// and so that bind failures are classified before anything else happens.
//
// # Errors
//
// Listen returns *BindError for every bind failure. Address-in-use failures
// additionally match ErrPortInUse through errors.Is.
//
// # Middleware
//
// Every response passes through RayID, CORS and request logging before the
// registered features (see core/loader) handle it.
package server

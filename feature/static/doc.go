// Package static mounts the previewed site as a Fiber feature.
//
// Requests map directly onto the site root: /a/b is served from <root>/a/b.
// Directories answer with their index.html, or with a generated listing when
// no index exists. Paths that do not resolve to a file fall through to the
// application's 404 handling.
//
// # HTTP Endpoints
//
//   - GET/HEAD /* : Serves files below the site root.
package static

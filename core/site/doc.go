// Package site describes the static site being previewed: where its root
// is and which files must be present before it can be served.
//
// The precheck is a fast-fail precondition evaluated once at startup. It is
// never repeated at request time.
package site

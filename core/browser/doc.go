// Package browser opens URLs in the operator's default web browser.
//
// Opening a browser is always a convenience: callers treat failures as
// informational and print the URL for manual use instead.
package browser

// Package launcher runs the preview server startup sequence.
//
// A run enters the site root, prints the banner, verifies the required files,
// binds the port, opens a browser and then serves until its context is
// cancelled. Every outcome is reported to the operator as plain text; the
// returned Result and error let commands choose an exit status.
//
// Missing files abort the run before the port is ever bound.
package launcher

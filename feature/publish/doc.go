// Package publish uploads the previewed site to S3-compatible object storage.
//
// Publishing runs the same required-file precheck as the preview server, so
// an incomplete site is never uploaded. Every regular file below the site
// root becomes one object; hidden files and directories are skipped. Keys
// are slash-separated paths relative to the root, under an optional prefix.
//
// # Options
//
//   - DryRun: only report what would be uploaded.
//   - Prune: delete objects under the prefix that have no local counterpart.
package publish

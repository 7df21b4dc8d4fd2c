// Package catalog defines the audit catalog document model and the ways a
// catalog reaches the process: a Source yields the raw text, Parse turns it
// into a Document. Catalog text is JSON that may carry // and /* */ comments
// and trailing commas.
//
// Lint and CheckVersion are standalone checks for tooling; Parse itself only
// rejects what it cannot decode. Clone and Update maintain a git checkout
// that RepoSource reads from.
package catalog

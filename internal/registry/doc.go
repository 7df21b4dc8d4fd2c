// Package registry builds read-only lookup indices over an audit catalog and
// answers the queries record builders and validators need: which attributes
// an event carries, which request-context fields it requires, and how an
// attribute name resolves across catalogs.
//
// A catalog namespace is the default catalog plus any number of named
// overlay catalogs. Lookups try the named catalog first and fall back to the
// default one. All indices are computed once in New; afterwards a Registry
// is never modified and may be shared freely between goroutines.
package registry

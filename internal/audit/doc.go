// Package audit builds and checks audit records against a catalog registry.
// A Record names one event, carries field values and request-context
// values, renders itself in structured-data form, and reports which catalog
// requirements it violates.
package audit

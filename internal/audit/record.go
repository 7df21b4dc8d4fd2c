package audit

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"strings"

	"github.com/agentx-labs/auditcat/internal/registry"
)

// Record is one audit record for a catalog event. Field names are stored
// sanitized, the way the registry reports attribute names.
type Record struct {
	reg       *registry.Registry
	event     string // normalized event name
	catalogID string
	resolved  string // catalog the event definition was found in
	fields    []field
	context   map[string]string
}

type field struct {
	name  string
	value string
}

// NewRecord starts a record for eventName, which is normalized with
// registry.FieldName. The event must exist in catalogID or the default
// catalog.
func NewRecord(reg *registry.Registry, eventName, catalogID string) (*Record, error) {
	name := registry.FieldName(eventName)
	ev, ok := reg.Event(name, catalogID)
	if !ok {
		return nil, fmt.Errorf("starting record for %q: %w", eventName, registry.ErrEventNotFound)
	}
	return &Record{
		reg:       reg,
		event:     name,
		catalogID: catalogID,
		resolved:  ev.IndexCatalog(),
		context:   make(map[string]string),
	}, nil
}

// Event returns the normalized event name.
func (r *Record) Event() string { return r.event }

// Set assigns a field value, replacing any earlier value for the same
// sanitized name while keeping its position.
func (r *Record) Set(name, value string) *Record {
	name = registry.SanitizeName(name)
	for i := range r.fields {
		if r.fields[i].name == name {
			r.fields[i].value = value
			return r
		}
	}
	r.fields = append(r.fields, field{name: name, value: value})
	return r
}

// Get returns a field value.
func (r *Record) Get(name string) (string, bool) {
	name = registry.SanitizeName(name)
	for _, f := range r.fields {
		if f.name == name {
			return f.value, true
		}
	}
	return "", false
}

// SetContext adds request-context values, keyed by the names
// RequiredContextAttributes reports.
func (r *Record) SetContext(values map[string]string) *Record {
	maps.Copy(r.context, values)
	return r
}

// String renders the record as an RFC 5424 style structured-data element,
// e.g. [login completionStatus="Success"]. Fields keep the order they were
// first set in.
func (r *Record) String() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(r.event)
	for _, f := range r.fields {
		b.WriteByte(' ')
		b.WriteString(f.name)
		b.WriteString(`="`)
		b.WriteString(escapeParam(f.value))
		b.WriteByte('"')
	}
	b.WriteByte(']')
	return b.String()
}

// Log emits the record at Info level under the catalog its event was
// resolved from. Fields and request context go into separate groups.
func (r *Record) Log(ctx context.Context, logger *slog.Logger) {
	fields := make([]any, 0, len(r.fields))
	for _, f := range r.fields {
		fields = append(fields, slog.String(f.name, f.value))
	}
	reqCtx := make([]any, 0, len(r.context))
	for _, k := range sortedKeys(r.context) {
		reqCtx = append(reqCtx, slog.String(k, r.context[k]))
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "audit event",
		slog.String("event", r.event),
		slog.String("catalog", r.resolved),
		slog.Group("fields", fields...),
		slog.Group("context", reqCtx...))
}

var paramEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, `]`, `\]`)

func escapeParam(s string) string {
	return paramEscaper.Replace(s)
}

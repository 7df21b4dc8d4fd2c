package audit

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/agentx-labs/auditcat/internal/registry"
)

// ValidationError lists every way a record falls short of its event
// definition.
type ValidationError struct {
	Event             string
	MissingAttributes []string // required attributes without a value
	MissingContext    []string // required request-context values absent
	UnknownAttributes []string // fields the event does not declare
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.MissingAttributes) > 0 {
		parts = append(parts, "missing attributes: "+strings.Join(e.MissingAttributes, ", "))
	}
	if len(e.MissingContext) > 0 {
		parts = append(parts, "missing request context: "+strings.Join(e.MissingContext, ", "))
	}
	if len(e.UnknownAttributes) > 0 {
		parts = append(parts, "unknown attributes: "+strings.Join(e.UnknownAttributes, ", "))
	}
	return fmt.Sprintf("invalid %s record: %s", e.Event, strings.Join(parts, "; "))
}

// Validate checks the record against its event definition. It returns nil
// or a *ValidationError.
func (r *Record) Validate() error {
	info, ok := r.reg.Info(r.event, r.catalogID)
	if !ok {
		return fmt.Errorf("validating record: %w", registry.ErrEventNotFound)
	}

	declared := make(map[string]bool, len(info.AttributeNames))
	for _, name := range info.AttributeNames {
		declared[name] = true
	}

	verr := &ValidationError{Event: r.event}

	for _, ref := range info.Event.Attributes {
		attr := info.Attributes[ref.Name]
		if attr.RequestContext || !attr.Required {
			continue
		}
		if v, ok := r.Get(ref.Name); !ok || v == "" {
			verr.MissingAttributes = append(verr.MissingAttributes, registry.SanitizeName(ref.Name))
		}
	}

	for _, name := range info.RequiredContextAttributes {
		if r.context[name] == "" {
			verr.MissingContext = append(verr.MissingContext, name)
		}
	}

	for _, f := range r.fields {
		if !declared[f.name] {
			verr.UnknownAttributes = append(verr.UnknownAttributes, f.name)
		}
	}

	if len(verr.MissingAttributes) == 0 && len(verr.MissingContext) == 0 && len(verr.UnknownAttributes) == 0 {
		return nil
	}
	return verr
}

func sortedKeys(m map[string]string) []string {
	return slices.Sorted(maps.Keys(m))
}

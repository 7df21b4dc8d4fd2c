package registry

import (
	"maps"
	"slices"

	"github.com/agentx-labs/auditcat/internal/catalog"
)

// EventInfo is the load-time view of one event.
type EventInfo struct {
	Event catalog.Event

	// AttributeNames are the sanitized names of the event's non-context
	// attributes, in declaration order.
	AttributeNames []string

	// RequiredContextAttributes are the sanitized names of the required
	// request-context attributes, prefix stripped, in declaration order.
	RequiredContextAttributes []string

	// Attributes maps each referenced attribute name, unsanitized, to the
	// definition it resolved to.
	Attributes map[string]catalog.Attribute
}

// Event returns the event registered under the normalized eventName in
// catalogID, falling back to the default catalog. An empty catalogID
// searches the default catalog only.
func (r *Registry) Event(eventName, catalogID string) (catalog.Event, bool) {
	info, ok := r.lookup(eventName, catalogID)
	if !ok {
		return catalog.Event{}, false
	}
	return cloneEvent(info.event), true
}

// Info returns the full precomputed view of an event.
func (r *Registry) Info(eventName, catalogID string) (EventInfo, bool) {
	info, ok := r.lookup(eventName, catalogID)
	if !ok {
		return EventInfo{}, false
	}
	return EventInfo{
		Event:                     cloneEvent(info.event),
		AttributeNames:            slices.Clone(info.attributeNames),
		RequiredContextAttributes: slices.Clone(info.requiredContextAttributes),
		Attributes:                cloneAttributes(info.attributes),
	}, true
}

// Attribute returns the attribute of the default catalog named name.
func (r *Registry) Attribute(name string) (catalog.Attribute, bool) {
	attr, ok := r.attributes[catalog.DefaultCatalog][name]
	if !ok {
		return catalog.Attribute{}, false
	}
	return cloneAttribute(attr), true
}

// CatalogAttribute returns the attribute named name from catalogID, or from
// the default catalog when catalogID does not define it.
func (r *Registry) CatalogAttribute(name, catalogID string) (catalog.Attribute, bool) {
	attr, ok := r.resolve(name, catalogID)
	if !ok {
		return catalog.Attribute{}, false
	}
	return cloneAttribute(attr), true
}

// Attributes resolves every attribute of an event against the event's own
// catalog, ignoring catalogID beyond finding the event. The event must
// exist; an unknown event yields a *PreconditionError wrapping
// ErrEventNotFound.
func (r *Registry) Attributes(eventName, catalogID string) (map[string]catalog.Attribute, error) {
	info, ok := r.lookup(eventName, catalogID)
	if !ok {
		return nil, &PreconditionError{Op: "resolving event attributes", Event: eventName, Catalog: catalogID, Err: ErrEventNotFound}
	}

	out := make(map[string]catalog.Attribute, len(info.event.Attributes))
	for _, ref := range info.event.Attributes {
		if attr, ok := r.resolve(ref.Name, info.event.CatalogID); ok {
			out[attr.Name] = cloneAttribute(attr)
		}
	}
	return out, nil
}

// AttributeNames returns the sanitized non-context attribute names of an
// event in declaration order.
func (r *Registry) AttributeNames(eventName, catalogID string) ([]string, bool) {
	info, ok := r.lookup(eventName, catalogID)
	if !ok {
		return nil, false
	}
	return slices.Clone(info.attributeNames), true
}

// RequiredContextAttributes returns the names of the request-context fields
// an event requires, sanitized and without RequestContextPrefix.
func (r *Registry) RequiredContextAttributes(eventName, catalogID string) ([]string, bool) {
	info, ok := r.lookup(eventName, catalogID)
	if !ok {
		return nil, false
	}
	return slices.Clone(info.requiredContextAttributes), true
}

// RequestContextAttributes returns every request-context attribute keyed by
// name. When several catalogs define the same name the last definition in
// document order wins.
func (r *Registry) RequestContextAttributes() map[string]catalog.Attribute {
	return cloneAttributes(r.requestContext)
}

// Catalogs returns the ids of all catalogs that define attributes or events,
// sorted. The default catalog is always included.
func (r *Registry) Catalogs() []string {
	set := make(map[string]struct{}, len(r.events)+len(r.attributes))
	for id := range r.events {
		set[id] = struct{}{}
	}
	for id := range r.attributes {
		set[id] = struct{}{}
	}
	return slices.Sorted(maps.Keys(set))
}

// EventNames returns the normalized names of the events declared in
// catalogID itself, sorted. An empty catalogID means the default catalog.
func (r *Registry) EventNames(catalogID string) []string {
	if catalogID == "" {
		catalogID = catalog.DefaultCatalog
	}
	return slices.Sorted(maps.Keys(r.events[catalogID]))
}

// Version returns the version declared by the catalog document, if any.
func (r *Registry) Version() string {
	return r.version
}

func cloneEvent(ev catalog.Event) catalog.Event {
	ev.Aliases = slices.Clone(ev.Aliases)
	ev.Attributes = slices.Clone(ev.Attributes)
	return ev
}

func cloneAttribute(attr catalog.Attribute) catalog.Attribute {
	attr.Examples = slices.Clone(attr.Examples)
	attr.Aliases = slices.Clone(attr.Aliases)
	attr.Constraints = slices.Clone(attr.Constraints)
	return attr
}

func cloneAttributes(in map[string]catalog.Attribute) map[string]catalog.Attribute {
	out := make(map[string]catalog.Attribute, len(in))
	for name, attr := range in {
		out[name] = cloneAttribute(attr)
	}
	return out
}

package registry

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/agentx-labs/auditcat/internal/catalog"
)

// Registry holds the indices built from one catalog document. It has no
// mutating methods; every query returns copies.
type Registry struct {
	version string

	// catalog id -> attribute name -> attribute
	attributes map[string]map[string]catalog.Attribute

	// attribute name -> request-context attribute, across all catalogs
	requestContext map[string]catalog.Attribute

	// catalog id -> normalized event name -> precomputed event view
	events map[string]map[string]*eventInfo
}

// eventInfo is the per-event view computed at load time.
type eventInfo struct {
	event                     catalog.Event
	requiredContextAttributes []string
	attributeNames            []string
	attributes                map[string]catalog.Attribute
}

// New reads catalog text from src, parses it, and builds the registry.
// Every failure is an *InitializationError; no partially built registry is
// ever returned.
func New(src catalog.Source, opts ...Option) (*Registry, error) {
	o := newOptions(opts)

	text, err := src.ReadCatalog()
	if err != nil {
		return nil, &InitializationError{Op: "reading catalog", Err: err}
	}

	doc, err := catalog.Parse(text)
	if err != nil {
		return nil, &InitializationError{Op: "parsing catalog", Err: err}
	}

	return build(doc, o)
}

// NewFromDocument builds the registry from an already parsed document.
func NewFromDocument(doc *catalog.Document, opts ...Option) (*Registry, error) {
	if doc == nil {
		return nil, &InitializationError{Op: "building indices", Err: errors.New("nil catalog document")}
	}
	return build(doc, newOptions(opts))
}

func build(doc *catalog.Document, o options) (*Registry, error) {
	r := &Registry{
		version:        doc.Version,
		attributes:     make(map[string]map[string]catalog.Attribute),
		requestContext: make(map[string]catalog.Attribute),
		events:         map[string]map[string]*eventInfo{catalog.DefaultCatalog: {}},
	}

	r.indexAttributes(doc.Attributes, o.logger)
	if err := r.indexEvents(doc.Events, o.logger); err != nil {
		return nil, &InitializationError{Op: "indexing events", Err: err}
	}

	o.logger.Debug("catalog registry built",
		"version", r.version,
		"attributes", len(doc.Attributes),
		"events", len(doc.Events),
		"catalogs", len(r.events),
		"request_context_attributes", len(r.requestContext))
	return r, nil
}

// indexAttributes fills the per-catalog attribute maps and the aggregated
// request-context map. Request-context attributes are keyed by name alone,
// so a later definition replaces an earlier one from any catalog.
func (r *Registry) indexAttributes(attrs []catalog.Attribute, logger *slog.Logger) {
	for _, attr := range attrs {
		if attr.RequestContext {
			if prev, ok := r.requestContext[attr.Name]; ok {
				logger.Warn("request-context attribute redefined, keeping the later definition",
					"attribute", attr.Name,
					"catalog", attr.IndexCatalog(),
					"previous_catalog", prev.IndexCatalog())
			}
			r.requestContext[attr.Name] = attr
		}

		catalogID := attr.IndexCatalog()
		byName, ok := r.attributes[catalogID]
		if !ok {
			byName = make(map[string]catalog.Attribute)
			r.attributes[catalogID] = byName
		}
		byName[attr.Name] = attr
	}
}

// indexEvents computes an eventInfo for every event. An attribute reference
// that resolves nowhere fails the whole load.
func (r *Registry) indexEvents(events []catalog.Event, logger *slog.Logger) error {
	for _, ev := range events {
		catalogID := ev.IndexCatalog()
		byName, ok := r.events[catalogID]
		if !ok {
			byName = make(map[string]*eventInfo)
			r.events[catalogID] = byName
		}

		info := &eventInfo{
			event:                     ev,
			requiredContextAttributes: []string{},
			attributeNames:            []string{},
			attributes:                make(map[string]catalog.Attribute, len(ev.Attributes)),
		}

		for _, ref := range ev.Attributes {
			attr, ok := r.resolve(ref.Name, ev.CatalogID)
			if !ok {
				return &UnresolvedAttributeError{Event: ev.Name, Catalog: catalogID, Attribute: ref.Name}
			}
			info.attributes[ref.Name] = attr

			name := SanitizeName(ref.Name)
			switch {
			case attr.IsRequiredContext():
				info.requiredContextAttributes = append(info.requiredContextAttributes,
					strings.TrimPrefix(name, RequestContextPrefix))
			case attr.RequestContext:
				// Optional context attributes are only reachable through the attribute map.
			default:
				info.attributeNames = append(info.attributeNames, name)
			}
		}

		key := FieldName(ev.Name)
		if _, dup := byName[key]; dup {
			logger.Warn("event redefined, keeping the later definition", "event", key, "catalog", catalogID)
		}
		byName[key] = info
	}
	return nil
}

// resolve looks name up in catalogID first, then in the default catalog.
func (r *Registry) resolve(name, catalogID string) (catalog.Attribute, bool) {
	if catalogID != "" {
		if attr, ok := r.attributes[catalogID][name]; ok {
			return attr, true
		}
	}
	attr, ok := r.attributes[catalog.DefaultCatalog][name]
	return attr, ok
}

// lookup finds the event in catalogID first, then in the default catalog.
func (r *Registry) lookup(eventName, catalogID string) (*eventInfo, bool) {
	if catalogID != "" {
		if info, ok := r.events[catalogID][eventName]; ok {
			return info, true
		}
	}
	info, ok := r.events[catalog.DefaultCatalog][eventName]
	return info, ok
}

package catalog

import "encoding/json"

// DefaultCatalog is the identity of the catalog that always exists. Attributes
// and events without a catalog id belong to it.
const DefaultCatalog = "default"

// Document is the top-level parsed unit of a catalog.
type Document struct {
	Version    string      `json:"version,omitempty"`
	Attributes []Attribute `json:"attributes"`
	Events     []Event     `json:"events"`
}

// Attribute is a field definition an event may carry.
type Attribute struct {
	Name           string       `json:"name"`
	DisplayName    string       `json:"displayName,omitempty"`
	Description    string       `json:"description,omitempty"`
	DataType       string       `json:"dataType,omitempty"`
	CatalogID      string       `json:"catalogId,omitempty"`
	RequestContext bool         `json:"isRequestContext"`
	Required       bool         `json:"isRequired"`
	Indexed        bool         `json:"indexed,omitempty"`
	Sortable       bool         `json:"sortable,omitempty"`
	Examples       []string     `json:"examples,omitempty"`
	Aliases        []string     `json:"aliases,omitempty"`
	Constraints    []Constraint `json:"constraints,omitempty"`
}

// Constraint is descriptive validation metadata attached to an attribute.
// The registry carries it through untouched.
type Constraint struct {
	Type  ConstraintType `json:"constraintType"`
	Value string         `json:"value,omitempty"`
}

// ConstraintType names the kind of a Constraint (e.g., "pattern", "maxLength").
type ConstraintType struct {
	Name string `json:"name"`
}

// UnmarshalJSON accepts both the isRequestContext/isRequired keys and the
// shorter requestContext/required keys. A flag is set if either key is true.
func (a *Attribute) UnmarshalJSON(data []byte) error {
	type plain Attribute
	aux := struct {
		*plain
		ShortRequestContext *bool `json:"requestContext"`
		ShortRequired       *bool `json:"required"`
	}{plain: (*plain)(a)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.ShortRequestContext != nil {
		a.RequestContext = a.RequestContext || *aux.ShortRequestContext
	}
	if aux.ShortRequired != nil {
		a.Required = a.Required || *aux.ShortRequired
	}
	return nil
}

// IsRequiredContext reports whether the attribute is a request-context
// attribute that every record of an event must carry.
func (a Attribute) IsRequiredContext() bool {
	return a.RequestContext && a.Required
}

// EventAttribute references an Attribute by name from an Event.
type EventAttribute struct {
	Name string `json:"name"`
}

// Event is a named schema describing the attributes a record may carry.
// An empty CatalogID places the event in DefaultCatalog.
type Event struct {
	Name        string           `json:"name"`
	DisplayName string           `json:"displayName,omitempty"`
	Description string           `json:"description,omitempty"`
	CatalogID   string           `json:"catalogId,omitempty"`
	Aliases     []string         `json:"aliases,omitempty"`
	Attributes  []EventAttribute `json:"attributes,omitempty"`
}

// IndexCatalog returns the catalog id the event is indexed under.
func (e Event) IndexCatalog() string {
	if e.CatalogID == "" {
		return DefaultCatalog
	}
	return e.CatalogID
}

// IndexCatalog returns the catalog id the attribute is indexed under.
func (a Attribute) IndexCatalog() string {
	if a.CatalogID == "" {
		return DefaultCatalog
	}
	return a.CatalogID
}

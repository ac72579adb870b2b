package isoparser

import (
	"fmt"
)

// Document is a typed ISO 20022 document produced by the mapper. Field
// application is an explicit dispatch per type; there is no reflection.
type Document interface {
	// TypeID returns the registered message type id, e.g. "camt.053".
	TypeID() string
	// Apply sets one mapped parameter by name. The value has already been
	// coerced to the kind declared in the field mapping.
	Apply(field string, value interface{}) error
	// Validate enforces the type's own invariants after mapping completes.
	Validate() error
}

// PostProcessor runs after a document's flat fields are applied. It receives
// the mapper's XPath context rooted at the message root and populates
// repeated or nested substructures that do not fit the flat parameter model.
type PostProcessor func(doc Document, ctx *Context) error

// FieldMapping binds one construction parameter to an ordered XPath fallback
// chain and a coercion kind.
type FieldMapping struct {
	// Name is the parameter name, reported on mapping failures.
	Name string
	// Paths is the ordered fallback chain relative to the message root; the
	// first path yielding a non-empty value wins.
	Paths []string
	// Kind selects the coercion applied to the extracted raw string.
	Kind CoerceKind
	// Required marks parameters whose absence fails the mapping. Optional
	// parameters fall back to their declared default (absent).
	Required bool
}

// Registration binds a target type to its XML root element and field table.
type Registration struct {
	// TypeID identifies the message type, e.g. "camt.053".
	TypeID string
	// Root is the local name of the message's root element, e.g. "Stmt".
	Root string
	// Fields is the declarative field table.
	Fields []FieldMapping
	// New constructs an empty instance of the target type.
	New func() Document
	// Post optionally populates repeated/nested substructures.
	Post PostProcessor
}

// Registry holds the mapping registrations. Populate it during startup;
// once parsing begins it must be treated as read-only. Reads need no
// locking under that contract, and concurrent mutation during active
// parsing is undefined behavior.
type Registry struct {
	byType map[string]*Registration
	order  []*Registration
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byType: make(map[string]*Registration)}
}

// Register adds a registration. Registering the same type id twice is an
// error so that startup wiring mistakes surface immediately.
func (r *Registry) Register(reg Registration) error {
	if reg.TypeID == "" || reg.Root == "" {
		return fmt.Errorf("registration needs a type id and a root element")
	}
	if reg.New == nil {
		return fmt.Errorf("registration %s needs a constructor", reg.TypeID)
	}
	if _, exists := r.byType[reg.TypeID]; exists {
		return fmt.Errorf("type %s is already registered", reg.TypeID)
	}
	stored := reg
	r.byType[reg.TypeID] = &stored
	r.order = append(r.order, &stored)
	return nil
}

// MustRegister is Register for static wiring; it panics on error.
func (r *Registry) MustRegister(reg Registration) {
	if err := r.Register(reg); err != nil {
		panic(err)
	}
}

// Lookup returns the registration for a type id.
func (r *Registry) Lookup(typeID string) (*Registration, bool) {
	reg, ok := r.byType[typeID]
	return reg, ok
}

// Registrations returns all registrations in registration order.
func (r *Registry) Registrations() []*Registration {
	return r.order
}

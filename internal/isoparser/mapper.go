package isoparser

import (
	"bytes"
	"fmt"

	"gopkg.in/xmlpath.v2"

	"finwire/statement-codec/internal/logging"
	"finwire/statement-codec/internal/parsererror"
)

// Mapper turns ISO 20022 XML into typed documents by applying the registered
// field tables. It holds the registry by reference; the registry must be
// fully populated before the first Decode call and not mutated afterwards.
type Mapper struct {
	registry *Registry
	log      logging.Logger
}

// NewMapper creates a Mapper over a registry.
func NewMapper(registry *Registry, logger logging.Logger) *Mapper {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Mapper{registry: registry, log: logger}
}

// Decode resolves the document's namespace, finds the first registration
// whose root element is present, and maps the document. A document matching
// no registration fails with UnknownMessageTypeError.
func (m *Mapper) Decode(data []byte) (Document, error) {
	ns, root, err := m.prepare(data)
	if err != nil {
		return nil, err
	}

	ctx := NewContext(ns, root)
	for _, reg := range m.registry.Registrations() {
		nodes := ctx.Nodes(rootPath(reg.Root))
		if len(nodes) == 0 {
			continue
		}
		m.log.Debug("matched message root",
			logging.F(logging.FieldMessage, reg.TypeID),
			logging.F(logging.FieldNamespace, ns.URI))
		return m.mapRegistration(reg, ctx.Sub(nodes[0]))
	}
	return nil, &parsererror.UnknownMessageTypeError{
		Root:      fmt.Sprintf("(none of %d registered roots present)", len(m.registry.Registrations())),
		Namespace: ns.URI,
	}
}

// DecodeAs maps the document against one specific registered type.
func (m *Mapper) DecodeAs(typeID string, data []byte) (Document, error) {
	reg, ok := m.registry.Lookup(typeID)
	if !ok {
		return nil, &parsererror.UnknownMessageTypeError{Root: typeID}
	}

	ns, root, err := m.prepare(data)
	if err != nil {
		return nil, err
	}

	ctx := NewContext(ns, root)
	nodes := ctx.Nodes(rootPath(reg.Root))
	if len(nodes) == 0 {
		return nil, &parsererror.UnknownMessageTypeError{Root: reg.Root, Namespace: ns.URI}
	}
	return m.mapRegistration(reg, ctx.Sub(nodes[0]))
}

// prepare resolves the namespace and parses the document tree.
func (m *Mapper) prepare(data []byte) (Namespace, *xmlpath.Node, error) {
	ns, err := ResolveNamespace(data)
	if err != nil {
		return Namespace{}, nil, err
	}
	root, err := xmlpath.Parse(bytes.NewReader(data))
	if err != nil {
		return Namespace{}, nil, fmt.Errorf("failed to parse XML: %w", err)
	}
	return ns, root, nil
}

// mapRegistration applies one registration's field table to the message
// root: extract, coerce, apply, then run the post-processor and the type's
// own validation.
func (m *Mapper) mapRegistration(reg *Registration, ctx *Context) (Document, error) {
	doc := reg.New()

	for _, field := range reg.Fields {
		raw, found := ctx.First(field.Paths...)
		if !found {
			if field.Required {
				return nil, &parsererror.DocumentMappingError{
					Type:      reg.TypeID,
					Parameter: field.Name,
					Err:       errRequiredMissing,
				}
			}
			// optional parameter keeps its declared default
			continue
		}

		value, err := Coerce(field.Kind, raw)
		if err != nil {
			return nil, &parsererror.DocumentMappingError{
				Type:      reg.TypeID,
				Parameter: field.Name,
				Value:     raw,
				Err:       err,
			}
		}
		if err := doc.Apply(field.Name, value); err != nil {
			return nil, &parsererror.DocumentMappingError{
				Type:      reg.TypeID,
				Parameter: field.Name,
				Value:     raw,
				Err:       err,
			}
		}
	}

	if reg.Post != nil {
		if err := reg.Post(doc, ctx); err != nil {
			return nil, err
		}
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

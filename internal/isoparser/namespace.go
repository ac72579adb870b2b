// Package isoparser implements the ISO 20022 decoding engine: namespace
// resolution, the declarative path-mapping registry and the document mapper
// that turns CAMT/PAIN XML into typed documents.
package isoparser

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// familyMarkers identify the schema families this codec understands inside a
// namespace URI.
var familyMarkers = []string{"camt.", "pain."}

var familyPattern = regexp.MustCompile(`(camt|pain)\.\d{3}`)

// Namespace is the governing namespace of a document. An empty URI means the
// document declares none and XPath evaluation must use unprefixed names.
type Namespace struct {
	URI string
}

// IsEmpty reports whether no namespace is declared.
func (n Namespace) IsEmpty() bool {
	return n.URI == ""
}

// Family returns the schema family and type encoded in the URI, e.g.
// "camt.053", or "" when the URI carries none. Version suffixes are
// deliberately discarded: the same message shape ships under many
// version-suffixed namespaces.
func (n Namespace) Family() string {
	return familyPattern.FindString(n.URI)
}

// ResolveNamespace detects the governing namespace of an XML document from,
// in order: the root element's own namespace, an explicit xmlns attribute on
// the root, or any xmlns-prefixed attribute whose value carries a known
// schema-family marker. A document with no declaration resolves to the empty
// namespace.
func ResolveNamespace(data []byte) (Namespace, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return Namespace{}, fmt.Errorf("document has no root element")
		}
		if err != nil {
			return Namespace{}, fmt.Errorf("malformed XML: %w", err)
		}
		root, ok := token.(xml.StartElement)
		if !ok {
			continue
		}

		if root.Name.Space != "" {
			return Namespace{URI: root.Name.Space}, nil
		}
		for _, attr := range root.Attr {
			if attr.Name.Space == "" && attr.Name.Local == "xmlns" && attr.Value != "" {
				return Namespace{URI: attr.Value}, nil
			}
		}
		for _, attr := range root.Attr {
			if attr.Name.Space == "xmlns" && hasFamilyMarker(attr.Value) {
				return Namespace{URI: attr.Value}, nil
			}
		}
		return Namespace{}, nil
	}
}

func hasFamilyMarker(uri string) bool {
	for _, marker := range familyMarkers {
		if strings.Contains(uri, marker) {
			return true
		}
	}
	return false
}

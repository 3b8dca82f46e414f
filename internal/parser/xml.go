package parser

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Element is a namespace-aware XML element tree node.
//
// encoding/xml resolves prefixes while tokenizing, so Space holds the full
// namespace URI rather than the document's prefix. Text accumulates the
// character data appearing directly inside the element; child elements are
// kept in document order.
type Element struct {
	Space    string
	Local    string
	Attrs    []xml.Attr
	Text     string
	Children []*Element
}

// Parse reads an XML document into an element tree.
//
// This is the only place a decode can fail hard: a document that is not
// well-formed surfaces the encoding/xml syntax error. Everything downstream
// is permissive.
func Parse(r io.Reader) (*Element, error) {
	decoder := xml.NewDecoder(r)

	var root *Element
	var stack []*Element

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse XML: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			el := &Element{
				Space: t.Name.Space,
				Local: t.Name.Local,
				Attrs: append([]xml.Attr(nil), t.Attr...),
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			} else if root == nil {
				root = el
			}
			stack = append(stack, el)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case xml.CharData:
			// CharData is only valid until the next Token call
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("parse XML: document has no root element")
	}

	return root, nil
}

// Attr returns the value of an unprefixed attribute by local name.
func (e *Element) Attr(local string) (string, bool) {
	for _, attr := range e.Attrs {
		if attr.Name.Space == "" && attr.Name.Local == local {
			return attr.Value, true
		}
	}
	return "", false
}

// NamespacedAttr returns the value of a namespace-qualified attribute by
// local name, e.g. gml:id.
func (e *Element) NamespacedAttr(local string) (string, bool) {
	for _, attr := range e.Attrs {
		if attr.Name.Space != "" && attr.Name.Local == local {
			return attr.Value, true
		}
	}
	return "", false
}

// anyAttr returns the value of an attribute by local name regardless of
// namespace. GML emitters are inconsistent about prefixing srsName and
// srsDimension, so ambient-state capture matches permissively.
func (e *Element) anyAttr(local string) (string, bool) {
	for _, attr := range e.Attrs {
		if attr.Name.Local == local {
			return attr.Value, true
		}
	}
	return "", false
}

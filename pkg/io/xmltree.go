package io

import (
	"encoding/xml"
	stderrors "errors"
	"io"
	"slices"
	"strings"
)

// element is a generic XML tree node. Names are local names; namespaces are
// not used by any supported format.
type element struct {
	name     string
	attrs    []xml.Attr
	children []*element
	text     string
}

func newElement(name string, attrs ...xml.Attr) *element {
	return &element{name: name, attrs: attrs}
}

func xmlAttr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

// add appends children and returns e for chaining.
func (e *element) add(children ...*element) *element {
	e.children = append(e.children, children...)
	return e
}

// findChild returns the first direct child named tag, or nil.
func (e *element) findChild(tag string) *element {
	for _, c := range e.children {
		if c.name == tag {
			return c
		}
	}
	return nil
}

// findChildren returns all direct children named tag in document order.
func (e *element) findChildren(tag string) []*element {
	var out []*element
	for _, c := range e.children {
		if c.name == tag {
			out = append(out, c)
		}
	}
	return out
}

// attr returns the value of the attribute with the given local name.
func (e *element) attr(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// parseTree reads a whole document and returns its root element.
func parseTree(r io.Reader) (*element, error) {
	dec := xml.NewDecoder(r)
	var root *element
	var stack []*element

	for {
		tok, err := dec.Token()
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := newElement(t.Name.Local, slices.Clone(t.Attr)...)
			if len(stack) == 0 {
				if root != nil {
					return nil, stderrors.New("multiple root elements")
				}
				root = el
			} else {
				stack[len(stack)-1].add(el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				top.text += string(t)
			}
		}
	}

	if root == nil {
		return nil, stderrors.New("empty document")
	}
	return root, nil
}

// encode writes e and its subtree to enc. Elements without children carry
// their text as character data.
func (e *element) encode(enc *xml.Encoder) error {
	start := xml.StartElement{Name: xml.Name{Local: e.name}, Attr: e.attrs}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if len(e.children) == 0 && e.text != "" {
		if err := enc.EncodeToken(xml.CharData(e.text)); err != nil {
			return err
		}
	}
	for _, c := range e.children {
		if err := c.encode(enc); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// isXMLText reports whether s consists only of characters allowed in an
// XML 1.0 document.
func isXMLText(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return false
		case r >= 0x20 && r <= 0xD7FF:
			return false
		case r >= 0xE000 && r <= 0xFFFD:
			return false
		case r >= 0x10000 && r <= 0x10FFFF:
			return false
		}
		return true
	}) < 0
}

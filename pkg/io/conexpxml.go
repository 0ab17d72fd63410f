package io

import (
	"encoding/xml"
	"io"
	"strconv"

	"github.com/matzehuels/fcactx/pkg/errors"
	"github.com/matzehuels/fcactx/pkg/fca"
)

// ConexpXMLCodec reads and writes the XML format of the ConExp tool:
//
//	<?xml version="1.0" encoding="UTF-8"?>
//	<ConceptualSystem>
//	  <Version MajorNumber="1" MinorNumber="0"/>
//	  <Contexts>
//	    <Context Identifier="0" Type="Binary">
//	      <Attributes>
//	        <Attribute Identifier="0"><Name>flies</Name></Attribute>
//	      </Attributes>
//	      <Objects>
//	        <Object>
//	          <Name>duck</Name>
//	          <Intent><HasAttribute AttributeIdentifier="0"/></Intent>
//	        </Object>
//	      </Objects>
//	    </Context>
//	  </Contexts>
//	</ConceptualSystem>
//
// Objects refer to their attributes by identifier, never by name.
type ConexpXMLCodec struct{}

// Read decodes a ConExp document. The Contexts element must hold exactly
// one Context; zero or several fail with ErrCodeAmbiguousDocument. Missing
// Attributes or Objects elements denote empty sets.
func (ConexpXMLCodec) Read(r io.Reader) (*fca.Context, error) {
	root, err := parseTree(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "%s: parse", FormatConexpXML)
	}
	if root.name != "ConceptualSystem" {
		return nil, malformedXML("root element is %s, want ConceptualSystem", root.name)
	}
	contexts := root.findChild("Contexts")
	if contexts == nil {
		return nil, malformedXML("missing Contexts element")
	}
	ctxs := contexts.findChildren("Context")
	switch {
	case len(ctxs) == 0:
		return nil, errors.New(errors.ErrCodeAmbiguousDocument, "%s: no context specified", FormatConexpXML)
	case len(ctxs) > 1:
		return nil, errors.New(errors.ErrCodeAmbiguousDocument, "%s: more than one context specified", FormatConexpXML)
	}
	ctx := ctxs[0]

	names := make(map[string]string)
	var attributes []string
	if el := ctx.findChild("Attributes"); el != nil {
		for _, a := range el.findChildren("Attribute") {
			id, ok := a.attr("Identifier")
			if !ok {
				return nil, malformedXML("Attribute without Identifier")
			}
			if _, dup := names[id]; dup {
				return nil, malformedXML("duplicate attribute identifier %q", id)
			}
			name := a.findChild("Name")
			if name == nil {
				return nil, malformedXML("attribute %q has no Name", id)
			}
			names[id] = name.text
			attributes = append(attributes, name.text)
		}
	}

	var objects []string
	var incidence []fca.Pair
	if el := ctx.findChild("Objects"); el != nil {
		for _, o := range el.findChildren("Object") {
			name := o.findChild("Name")
			if name == nil {
				return nil, malformedXML("Object without Name")
			}
			g := name.text
			objects = append(objects, g)

			intent := o.findChild("Intent")
			if intent == nil {
				continue
			}
			for _, has := range intent.findChildren("HasAttribute") {
				ref, ok := has.attr("AttributeIdentifier")
				if !ok {
					return nil, malformedXML("HasAttribute of object %q without AttributeIdentifier", g)
				}
				m, ok := names[ref]
				if !ok {
					return nil, malformedXML("object %q references unknown attribute identifier %q", g, ref)
				}
				incidence = append(incidence, fca.Pair{Object: g, Attribute: m})
			}
		}
	}

	return fca.New(objects, attributes, incidence)
}

// Write encodes c. Attributes are numbered from 0 in canonical order.
// Names containing characters that XML cannot carry fail with
// ErrCodeInvalidContext.
func (ConexpXMLCodec) Write(c *fca.Context, w io.Writer) error {
	ids := make(map[string]string, c.AttributeCount())
	attrs := newElement("Attributes")
	for j, m := range c.Attributes() {
		if !isXMLText(m) {
			return errors.New(errors.ErrCodeInvalidContext, "attribute name %q is not representable in XML", m)
		}
		id := strconv.Itoa(j)
		ids[m] = id
		attrs.add(newElement("Attribute", xmlAttr("Identifier", id)).add(textElement("Name", m)))
	}

	objs := newElement("Objects")
	for _, g := range c.Objects() {
		if !isXMLText(g) {
			return errors.New(errors.ErrCodeInvalidContext, "object name %q is not representable in XML", g)
		}
		intent := newElement("Intent")
		for _, m := range c.Intent(g) {
			intent.add(newElement("HasAttribute", xmlAttr("AttributeIdentifier", ids[m])))
		}
		objs.add(newElement("Object").add(textElement("Name", g), intent))
	}

	root := newElement("ConceptualSystem").add(
		newElement("Version", xmlAttr("MajorNumber", "1"), xmlAttr("MinorNumber", "0")),
		newElement("Contexts").add(
			newElement("Context", xmlAttr("Identifier", "0"), xmlAttr("Type", "Binary")).add(attrs, objs),
		),
	)

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := root.encode(enc); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func textElement(name, text string) *element {
	e := newElement(name)
	e.text = text
	return e
}

func malformedXML(msg string, args ...any) error {
	return errors.Malformed(FormatConexpXML, 0, msg, args...)
}

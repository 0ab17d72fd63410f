package io

import (
	"io"
	"slices"

	"github.com/matzehuels/fcactx/pkg/errors"
	"github.com/matzehuels/fcactx/pkg/fca"

	"gopkg.in/yaml.v3"
)

type yamlContext struct {
	Objects    []string            `yaml:"objects"`
	Attributes []string            `yaml:"attributes"`
	Incidence  map[string][]string `yaml:"incidence,omitempty"`
}

// YAMLCodec reads and writes contexts as a YAML mapping:
//
//	objects: [duck, eagle]
//	attributes: [flies, swims]
//	incidence:
//	  duck: [flies, swims]
//	  eagle: [flies]
//
// Objects without attributes are omitted from incidence.
type YAMLCodec struct{}

// Read decodes a YAML context.
func (YAMLCodec) Read(r io.Reader) (*fca.Context, error) {
	var yc yamlContext
	if err := yaml.NewDecoder(r).Decode(&yc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "%s: decode", FormatYAML)
	}

	var incidence []fca.Pair
	for _, g := range yc.Objects {
		for _, m := range yc.Incidence[g] {
			incidence = append(incidence, fca.Pair{Object: g, Attribute: m})
		}
	}
	for g := range yc.Incidence {
		if !slices.Contains(yc.Objects, g) {
			return nil, errors.Malformed(FormatYAML, 0, "incidence references unknown object %q", g)
		}
	}

	c, err := fca.New(yc.Objects, yc.Attributes, incidence)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "%s: incidence", FormatYAML)
	}
	return c, nil
}

// Write encodes c with two-space indentation.
func (YAMLCodec) Write(c *fca.Context, w io.Writer) error {
	yc := yamlContext{
		Objects:    c.Objects(),
		Attributes: c.Attributes(),
		Incidence:  make(map[string][]string),
	}
	for _, g := range yc.Objects {
		if intent := c.Intent(g); len(intent) > 0 {
			yc.Incidence[g] = intent
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&yc); err != nil {
		enc.Close()
		return errors.Wrap(errors.ErrCodeIO, err, "%s: encode", FormatYAML)
	}
	return enc.Close()
}

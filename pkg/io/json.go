package io

import (
	"encoding/json"
	"io"

	"github.com/matzehuels/fcactx/pkg/errors"
	"github.com/matzehuels/fcactx/pkg/fca"
)

type jsonContext struct {
	Objects       []string        `json:"objects"`
	Attributes    []string        `json:"attributes"`
	AdjacencyList []jsonAdjacency `json:"adjacency-list"`
}

type jsonAdjacency struct {
	Object     string   `json:"object"`
	Attributes []string `json:"attributes"`
}

// JSONCodec reads and writes contexts as a JSON object:
//
//	{
//	  "objects": ["duck", "eagle"],
//	  "attributes": ["flies", "swims"],
//	  "adjacency-list": [
//	    {"object": "duck", "attributes": ["flies", "swims"]},
//	    {"object": "eagle", "attributes": ["flies"]}
//	  ]
//	}
//
// Objects without attributes may be left out of the adjacency list.
type JSONCodec struct{}

// Read decodes a JSON context. An adjacency entry naming an unknown object
// or attribute is malformed input.
func (JSONCodec) Read(r io.Reader) (*fca.Context, error) {
	var data jsonContext
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "%s: decode", FormatJSON)
	}

	var incidence []fca.Pair
	for _, adj := range data.AdjacencyList {
		for _, m := range adj.Attributes {
			incidence = append(incidence, fca.Pair{Object: adj.Object, Attribute: m})
		}
	}
	c, err := fca.New(data.Objects, data.Attributes, incidence)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "%s: adjacency-list", FormatJSON)
	}
	return c, nil
}

// Write encodes c with two-space indentation. Every object gets an
// adjacency entry, in canonical order.
func (JSONCodec) Write(c *fca.Context, w io.Writer) error {
	out := jsonContext{
		Objects:       c.Objects(),
		Attributes:    c.Attributes(),
		AdjacencyList: make([]jsonAdjacency, 0, c.ObjectCount()),
	}
	for _, g := range out.Objects {
		out.AdjacencyList = append(out.AdjacencyList, jsonAdjacency{Object: g, Attributes: c.Intent(g)})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "%s: encode", FormatJSON)
	}
	return nil
}

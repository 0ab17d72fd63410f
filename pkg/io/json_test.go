package io

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/fcactx/pkg/errors"
	"github.com/matzehuels/fcactx/pkg/fca"
)

func TestJSONRead(t *testing.T) {
	input := `{
  "objects": ["duck", "eagle", "stone"],
  "attributes": ["flies", "swims"],
  "adjacency-list": [
    {"object": "eagle", "attributes": ["flies"]},
    {"object": "duck", "attributes": ["swims", "flies", "swims"]}
  ]
}`
	c, err := (JSONCodec{}).Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if got := c.Objects(); !slices.Equal(got, []string{"duck", "eagle", "stone"}) {
		t.Errorf("Objects() = %v", got)
	}
	if c.Size() != 3 {
		t.Errorf("Size() = %d, want 3", c.Size())
	}
	if len(c.Intent("stone")) != 0 {
		t.Errorf("Intent(stone) = %v, want none", c.Intent("stone"))
	}
}

func TestJSONReadMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"syntax", `{"objects": [`},
		{"wrong type", `{"objects": "duck"}`},
		{"unknown object", `{"objects": [], "attributes": ["m"], "adjacency-list": [{"object": "g", "attributes": ["m"]}]}`},
		{"unknown attribute", `{"objects": ["g"], "attributes": [], "adjacency-list": [{"object": "g", "attributes": ["m"]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := (JSONCodec{}).Read(strings.NewReader(tt.input))
			if c != nil {
				t.Error("Read() returned a context")
			}
			if !errors.Is(err, errors.ErrCodeMalformedInput) {
				t.Errorf("Read() error = %v, want %s", err, errors.ErrCodeMalformedInput)
			}
		})
	}
}

func TestJSONWrite(t *testing.T) {
	c, _ := fca.New([]string{"duck", "stone"}, []string{"flies", "swims"}, []fca.Pair{
		{Object: "duck", Attribute: "swims"},
		{Object: "duck", Attribute: "flies"},
	})

	var buf bytes.Buffer
	if err := (JSONCodec{}).Write(c, &buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var got jsonContext
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if len(got.AdjacencyList) != 2 {
		t.Fatalf("adjacency-list has %d entries, want one per object", len(got.AdjacencyList))
	}
	if adj := got.AdjacencyList[0]; adj.Object != "duck" || !slices.Equal(adj.Attributes, []string{"flies", "swims"}) {
		t.Errorf("adjacency-list[0] = %+v", adj)
	}
	if !strings.HasPrefix(buf.String(), "{\n  \"objects\"") {
		t.Errorf("Write() is not indented:\n%s", buf.String())
	}
}

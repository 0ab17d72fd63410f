package io

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/fcactx/pkg/errors"
	"github.com/matzehuels/fcactx/pkg/fca"
)

func TestNamedBinaryCSVRead(t *testing.T) {
	input := ",flies,swims\nduck,1,1\neagle,1,0\n\"stone, grey\",0,0\n"

	c, err := (NamedBinaryCSVCodec{}).Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got := c.Objects(); !slices.Equal(got, []string{"duck", "eagle", "stone, grey"}) {
		t.Errorf("Objects() = %v", got)
	}
	if got := c.Attributes(); !slices.Equal(got, []string{"flies", "swims"}) {
		t.Errorf("Attributes() = %v", got)
	}
	if c.Size() != 3 {
		t.Errorf("Size() = %d, want 3", c.Size())
	}
}

func TestNamedBinaryCSVWrite(t *testing.T) {
	c, _ := fca.New([]string{"duck", "eagle"}, []string{"flies", "swims"}, []fca.Pair{
		{Object: "duck", Attribute: "flies"},
		{Object: "duck", Attribute: "swims"},
		{Object: "eagle", Attribute: "flies"},
	})

	var buf bytes.Buffer
	if err := (NamedBinaryCSVCodec{}).Write(c, &buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	want := ",flies,swims\nduck,1,1\neagle,1,0\n"
	if buf.String() != want {
		t.Errorf("Write() = %q, want %q", buf.String(), want)
	}
}

func TestNamedBinaryCSVWriteCarriageReturn(t *testing.T) {
	tests := []struct {
		name       string
		objects    []string
		attributes []string
	}{
		{"object", []string{"a\r\nb", "a\nb"}, []string{"m"}},
		{"attribute", []string{"g"}, []string{"m\r\nx"}},
		{"lone carriage return", []string{"a\rb"}, []string{"m"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := fca.New(tt.objects, tt.attributes, nil)
			if err != nil {
				t.Fatal(err)
			}
			var buf bytes.Buffer
			err = (NamedBinaryCSVCodec{}).Write(c, &buf)
			if !errors.Is(err, errors.ErrCodeInvalidContext) {
				t.Errorf("Write() error = %v, want %s", err, errors.ErrCodeInvalidContext)
			}
			if buf.Len() != 0 {
				t.Errorf("Write() wrote %q before failing", buf.String())
			}
		})
	}

	// A plain line feed survives quoting.
	c, _ := fca.New([]string{"a\nb"}, []string{"m"}, []fca.Pair{{Object: "a\nb", Attribute: "m"}})
	var buf bytes.Buffer
	if err := (NamedBinaryCSVCodec{}).Write(c, &buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	got, err := (NamedBinaryCSVCodec{}).Read(&buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !fca.Equal(got, c) {
		t.Errorf("round trip changed objects to %q", got.Objects())
	}
}

func TestNamedBinaryCSVReadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"empty", "", "empty input"},
		{"named corner", "x,m\ng,1\n", "header must start with an empty cell"},
		{"short row", ",m1,m2\ng,1\n", "line 2: row has 2 cells, want 3"},
		{"long row", ",m1\ng,1,0\n", "row has 3 cells, want 2"},
		{"bad cell", ",m1,m2\ng,1,0\nh,0,yes\n", `line 3: cell 3 is "yes"`},
		{"bad quoting", ",m1\n\"g,1\n", "row"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := (NamedBinaryCSVCodec{}).Read(strings.NewReader(tt.input))
			if c != nil {
				t.Error("Read() returned a context")
			}
			if !errors.Is(err, errors.ErrCodeMalformedInput) {
				t.Fatalf("Read() error = %v, want %s", err, errors.ErrCodeMalformedInput)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Read() error = %q, want %q", err, tt.wantMsg)
			}
		})
	}
}

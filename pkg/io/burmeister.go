package io

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/matzehuels/fcactx/pkg/errors"
	"github.com/matzehuels/fcactx/pkg/fca"
)

// BurmeisterCodec reads and writes the Burmeister cross-table format:
//
//	B
//	<context name, usually blank>
//	<number of objects>
//	<number of attributes>
//	<blank line>
//	<one object name per line>
//	<one attribute name per line>
//	<one row per object, 'X' for incidence and '.' otherwise>
//
// Rows and columns follow the name order, which is what makes the format
// round-trip.
type BurmeisterCodec struct{}

// Read decodes a Burmeister context. The name line is ignored, rows may be
// longer than the attribute count, and both 'X' and 'x' mark an incidence.
func (BurmeisterCodec) Read(r io.Reader) (*fca.Context, error) {
	lr := newLineReader(FormatBurmeister, r)

	header, err := lr.next("B header")
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(header, "B") {
		return nil, lr.errorf("missing B header, got %q", header)
	}
	if _, err := lr.next("context name line"); err != nil {
		return nil, err
	}
	n, err := lr.count("object count")
	if err != nil {
		return nil, err
	}
	m, err := lr.count("attribute count")
	if err != nil {
		return nil, err
	}
	sep, err := lr.next("blank line")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(sep) != "" {
		return nil, lr.errorf("expected blank line after header, got %q", sep)
	}

	objects := make([]string, n)
	for i := range objects {
		if objects[i], err = lr.next("object name"); err != nil {
			return nil, err
		}
	}
	attributes := make([]string, m)
	for j := range attributes {
		if attributes[j], err = lr.next("attribute name"); err != nil {
			return nil, err
		}
	}

	rows := make([][]bool, n)
	for i := range rows {
		line, err := lr.next("incidence row for " + strconv.Quote(objects[i]))
		if err != nil {
			return nil, err
		}
		if len(line) < m {
			return nil, lr.errorf("row for object %q has %d columns, want %d", objects[i], len(line), m)
		}
		rows[i] = make([]bool, m)
		for j := 0; j < m; j++ {
			rows[i][j] = line[j] == 'X' || line[j] == 'x'
		}
	}

	return fca.FromRows(objects, attributes, rows)
}

// Write encodes c. Names containing line breaks cannot be represented and
// fail with ErrCodeInvalidContext.
func (BurmeisterCodec) Write(c *fca.Context, w io.Writer) error {
	objects, attributes := c.Objects(), c.Attributes()
	for _, g := range objects {
		if err := errors.ValidateLineName("object", g); err != nil {
			return err
		}
	}
	for _, m := range attributes {
		if err := errors.ValidateLineName("attribute", m); err != nil {
			return err
		}
	}

	bw := bufio.NewWriter(w)
	bw.WriteString("B\n\n")
	bw.WriteString(strconv.Itoa(len(objects)) + "\n")
	bw.WriteString(strconv.Itoa(len(attributes)) + "\n\n")
	for _, g := range objects {
		bw.WriteString(g + "\n")
	}
	for _, m := range attributes {
		bw.WriteString(m + "\n")
	}
	row := make([]byte, len(attributes)+1)
	row[len(attributes)] = '\n'
	for _, r := range c.Rows() {
		for j, has := range r {
			row[j] = '.'
			if has {
				row[j] = 'X'
			}
		}
		bw.Write(row)
	}
	return bw.Flush()
}

package io

import (
	"encoding/csv"
	stderrors "errors"
	"io"
	"strings"

	"github.com/matzehuels/fcactx/pkg/errors"
	"github.com/matzehuels/fcactx/pkg/fca"
)

// NamedBinaryCSVCodec reads and writes a cross table as CSV with names:
//
//	,flies,swims
//	duck,1,1
//	eagle,1,0
//
// The header's first cell is empty; every other row starts with an object
// name followed by one 0/1 cell per attribute.
type NamedBinaryCSVCodec struct{}

// Read decodes a named binary CSV context.
func (NamedBinaryCSVCodec) Read(r io.Reader) (*fca.Context, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if stderrors.Is(err, io.EOF) {
		return nil, errors.Malformed(FormatNamedBinaryCSV, 0, "empty input")
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "%s: header", FormatNamedBinaryCSV)
	}
	if header[0] != "" {
		return nil, errors.Malformed(FormatNamedBinaryCSV, 1, "header must start with an empty cell, got %q", header[0])
	}
	attributes := header[1:]

	var objects []string
	var rows [][]bool
	for {
		rec, err := cr.Read()
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "%s: row", FormatNamedBinaryCSV)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) != len(header) {
			return nil, errors.Malformed(FormatNamedBinaryCSV, line, "row has %d cells, want %d", len(rec), len(header))
		}
		row := make([]bool, len(attributes))
		for j, cell := range rec[1:] {
			switch cell {
			case "1":
				row[j] = true
			case "0":
			default:
				return nil, errors.Malformed(FormatNamedBinaryCSV, line, "cell %d is %q, want 0 or 1", j+2, cell)
			}
		}
		objects = append(objects, rec[0])
		rows = append(rows, row)
	}

	return fca.FromRows(objects, attributes, rows)
}

// Write encodes c. A context without attributes has an empty header row,
// which CSV cannot tell apart from a blank line, so it is rejected with
// ErrCodeInvalidContext. So are names containing a carriage return: CSV
// readers turn a quoted "\r\n" into "\n".
func (NamedBinaryCSVCodec) Write(c *fca.Context, w io.Writer) error {
	if c.AttributeCount() == 0 {
		return errors.New(errors.ErrCodeInvalidContext, "%s cannot represent a context without attributes", FormatNamedBinaryCSV)
	}
	for _, g := range c.Objects() {
		if strings.ContainsRune(g, '\r') {
			return errors.New(errors.ErrCodeInvalidContext, "object name %q contains a carriage return", g)
		}
	}
	for _, m := range c.Attributes() {
		if strings.ContainsRune(m, '\r') {
			return errors.New(errors.ErrCodeInvalidContext, "attribute name %q contains a carriage return", m)
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{""}, c.Attributes()...)); err != nil {
		return err
	}
	objects := c.Objects()
	rec := make([]string, c.AttributeCount()+1)
	for i, row := range c.Rows() {
		rec[0] = objects[i]
		for j, has := range row {
			rec[j+1] = "0"
			if has {
				rec[j+1] = "1"
			}
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

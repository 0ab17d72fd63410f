package fca

import (
	"slices"

	"github.com/matzehuels/fcactx/pkg/errors"
)

// Pair is a single incidence: Object has Attribute.
type Pair struct {
	Object    string
	Attribute string
}

// Context is an immutable formal context.
//
// The zero value is an empty context with no objects and no attributes.
type Context struct {
	objects    []string
	attributes []string
	objIndex   map[string]int
	attrIndex  map[string]int
	rows       [][]bool // rows[i][j]: objects[i] has attributes[j]
	size       int      // number of incidences
}

// New builds a context from objects, attributes and incidence pairs.
//
// Declaration order of objects and attributes becomes the canonical order.
// Repeated names collapse onto their first occurrence and repeated pairs are
// counted once. A pair naming an unknown object or attribute fails with
// ErrCodeInvalidContext; no context is returned in that case.
func New(objects, attributes []string, incidence []Pair) (*Context, error) {
	c := newEmpty(objects, attributes)
	for _, p := range incidence {
		i, ok := c.objIndex[p.Object]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidContext, "incidence references unknown object %q", p.Object)
		}
		j, ok := c.attrIndex[p.Attribute]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidContext, "incidence references unknown attribute %q", p.Attribute)
		}
		c.set(i, j)
	}
	return c, nil
}

// FromRows builds a context from a cross table. rows[i][j] states whether
// objects[i] has attributes[j]. There must be exactly one row per object name
// and one column per attribute name. When names repeat, the rows of the
// repeated object are merged into the first occurrence.
func FromRows(objects, attributes []string, rows [][]bool) (*Context, error) {
	if len(rows) != len(objects) {
		return nil, errors.New(errors.ErrCodeInvalidContext, "got %d rows for %d objects", len(rows), len(objects))
	}
	c := newEmpty(objects, attributes)
	for i, row := range rows {
		if len(row) != len(attributes) {
			return nil, errors.New(errors.ErrCodeInvalidContext, "row %d has %d columns, want %d", i+1, len(row), len(attributes))
		}
		oi := c.objIndex[objects[i]]
		for j, has := range row {
			if has {
				c.set(oi, c.attrIndex[attributes[j]])
			}
		}
	}
	return c, nil
}

func newEmpty(objects, attributes []string) *Context {
	c := &Context{
		objIndex:  make(map[string]int, len(objects)),
		attrIndex: make(map[string]int, len(attributes)),
	}
	for _, g := range objects {
		if _, dup := c.objIndex[g]; dup {
			continue
		}
		c.objIndex[g] = len(c.objects)
		c.objects = append(c.objects, g)
	}
	for _, m := range attributes {
		if _, dup := c.attrIndex[m]; dup {
			continue
		}
		c.attrIndex[m] = len(c.attributes)
		c.attributes = append(c.attributes, m)
	}
	c.rows = make([][]bool, len(c.objects))
	for i := range c.rows {
		c.rows[i] = make([]bool, len(c.attributes))
	}
	return c
}

func (c *Context) set(i, j int) {
	if !c.rows[i][j] {
		c.rows[i][j] = true
		c.size++
	}
}

// Objects returns the object names in canonical order.
func (c *Context) Objects() []string { return slices.Clone(c.objects) }

// Attributes returns the attribute names in canonical order.
func (c *Context) Attributes() []string { return slices.Clone(c.attributes) }

// ObjectCount returns |G|.
func (c *Context) ObjectCount() int { return len(c.objects) }

// AttributeCount returns |M|.
func (c *Context) AttributeCount() int { return len(c.attributes) }

// Size returns |I|, the number of incidences.
func (c *Context) Size() int { return c.size }

// HasObject reports whether g is an object of the context.
func (c *Context) HasObject(g string) bool {
	_, ok := c.objIndex[g]
	return ok
}

// HasAttribute reports whether m is an attribute of the context.
func (c *Context) HasAttribute(m string) bool {
	_, ok := c.attrIndex[m]
	return ok
}

// Incident reports whether object g has attribute m.
// Unknown names are never incident.
func (c *Context) Incident(g, m string) bool {
	i, ok := c.objIndex[g]
	if !ok {
		return false
	}
	j, ok := c.attrIndex[m]
	if !ok {
		return false
	}
	return c.rows[i][j]
}

// Incidence returns all pairs, object-major in canonical order.
func (c *Context) Incidence() []Pair {
	pairs := make([]Pair, 0, c.size)
	for i, g := range c.objects {
		for j, m := range c.attributes {
			if c.rows[i][j] {
				pairs = append(pairs, Pair{Object: g, Attribute: m})
			}
		}
	}
	return pairs
}

// Rows returns a copy of the cross table in canonical order.
func (c *Context) Rows() [][]bool {
	rows := make([][]bool, len(c.rows))
	for i, row := range c.rows {
		rows[i] = slices.Clone(row)
	}
	return rows
}

// Density returns |I| / (|G|·|M|), or 0 when either set is empty.
func (c *Context) Density() float64 {
	cells := len(c.objects) * len(c.attributes)
	if cells == 0 {
		return 0
	}
	return float64(c.size) / float64(cells)
}

// Equal reports whether a and b have the same objects, attributes and
// incidence, irrespective of order.
func Equal(a, b *Context) bool {
	if len(a.objects) != len(b.objects) || len(a.attributes) != len(b.attributes) || a.size != b.size {
		return false
	}
	for _, g := range a.objects {
		if !b.HasObject(g) {
			return false
		}
	}
	for _, m := range a.attributes {
		if !b.HasAttribute(m) {
			return false
		}
	}
	for i, g := range a.objects {
		for j, m := range a.attributes {
			if a.rows[i][j] && !b.Incident(g, m) {
				return false
			}
		}
	}
	return true
}

package fca

import (
	"github.com/matzehuels/fcactx/pkg/errors"
)

// Dual swaps the roles of objects and attributes: (M, G, I⁻¹).
func (c *Context) Dual() *Context {
	d := newEmpty(c.attributes, c.objects)
	for i := range c.objects {
		for j := range c.attributes {
			if c.rows[i][j] {
				d.set(j, i)
			}
		}
	}
	return d
}

// Invert returns the complementary context (G, M, (G×M) \ I).
func (c *Context) Invert() *Context {
	inv := newEmpty(c.objects, c.attributes)
	for i := range c.objects {
		for j := range c.attributes {
			if !c.rows[i][j] {
				inv.set(i, j)
			}
		}
	}
	return inv
}

// Apposition places b's cross table to the right of a's. Both contexts must
// have the same object set and disjoint attribute sets. The result keeps a's
// object order and lists a's attributes before b's.
func Apposition(a, b *Context) (*Context, error) {
	if !sameNames(a.objIndex, b.objects) {
		return nil, errors.New(errors.ErrCodeInvalidContext, "apposition requires equal object sets")
	}
	for _, m := range b.attributes {
		if a.HasAttribute(m) {
			return nil, errors.New(errors.ErrCodeInvalidContext, "apposition requires disjoint attribute sets, %q occurs in both", m)
		}
	}

	attrs := make([]string, 0, len(a.attributes)+len(b.attributes))
	attrs = append(attrs, a.attributes...)
	attrs = append(attrs, b.attributes...)
	out := newEmpty(a.objects, attrs)
	for i, g := range a.objects {
		for j, m := range a.attributes {
			if a.rows[i][j] {
				out.set(i, out.attrIndex[m])
			}
		}
		bi := b.objIndex[g]
		for j, m := range b.attributes {
			if b.rows[bi][j] {
				out.set(i, out.attrIndex[m])
			}
		}
	}
	return out, nil
}

// Subposition places b's cross table below a's. Both contexts must have the
// same attribute set and disjoint object sets.
func Subposition(a, b *Context) (*Context, error) {
	if !sameNames(a.attrIndex, b.attributes) {
		return nil, errors.New(errors.ErrCodeInvalidContext, "subposition requires equal attribute sets")
	}
	for _, g := range b.objects {
		if a.HasObject(g) {
			return nil, errors.New(errors.ErrCodeInvalidContext, "subposition requires disjoint object sets, %q occurs in both", g)
		}
	}

	d, err := Apposition(a.Dual(), b.Dual())
	if err != nil {
		return nil, err
	}
	return d.Dual(), nil
}

func sameNames(index map[string]int, names []string) bool {
	if len(index) != len(names) {
		return false
	}
	for _, n := range names {
		if _, ok := index[n]; !ok {
			return false
		}
	}
	return true
}

package fca

// ObjectDerivation returns the attributes shared by every object in objs, in
// canonical attribute order. The derivation of the empty set is the whole
// attribute set. Names that are not objects of the context have no
// attributes, so including one yields the empty set.
func (c *Context) ObjectDerivation(objs ...string) []string {
	keep := make([]bool, len(c.attributes))
	for j := range keep {
		keep[j] = true
	}
	for _, g := range objs {
		i, ok := c.objIndex[g]
		if !ok {
			return []string{}
		}
		for j := range keep {
			keep[j] = keep[j] && c.rows[i][j]
		}
	}
	out := []string{}
	for j, m := range c.attributes {
		if keep[j] {
			out = append(out, m)
		}
	}
	return out
}

// AttributeDerivation returns the objects having every attribute in attrs,
// in canonical object order. It is the dual of [Context.ObjectDerivation].
func (c *Context) AttributeDerivation(attrs ...string) []string {
	keep := make([]bool, len(c.objects))
	for i := range keep {
		keep[i] = true
	}
	for _, m := range attrs {
		j, ok := c.attrIndex[m]
		if !ok {
			return []string{}
		}
		for i := range keep {
			keep[i] = keep[i] && c.rows[i][j]
		}
	}
	out := []string{}
	for i, g := range c.objects {
		if keep[i] {
			out = append(out, g)
		}
	}
	return out
}

// Intent returns the attributes of a single object.
func (c *Context) Intent(g string) []string {
	if !c.HasObject(g) {
		return []string{}
	}
	return c.ObjectDerivation(g)
}

// Extent returns the objects having a single attribute.
func (c *Context) Extent(m string) []string {
	if !c.HasAttribute(m) {
		return []string{}
	}
	return c.AttributeDerivation(m)
}

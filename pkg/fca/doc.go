// Package fca provides the formal context, the base data structure of
// Formal Concept Analysis.
//
// # Overview
//
// A formal context is a triple (G, M, I): a set of objects G, a set of
// attributes M and an incidence relation I ⊆ G × M stating which object has
// which attribute. Every serialization format in [github.com/matzehuels/fcactx/pkg/io]
// reads into and writes from a [Context].
//
// # Construction
//
// Contexts are built atomically with [New] from a complete triple, or with
// [FromRows] from a positional cross table:
//
//	c, err := fca.New(
//	    []string{"duck", "eagle"},
//	    []string{"flies", "swims"},
//	    []fca.Pair{{"duck", "flies"}, {"duck", "swims"}, {"eagle", "flies"}},
//	)
//
// Objects and attributes keep their declaration order. Sets are still sets:
// a repeated name collapses onto its first occurrence, and equality with
// [Equal] ignores order entirely. Positional formats rely on the order to
// round-trip.
//
// # Immutability
//
// A [Context] never changes after construction. Accessors return copies, and
// transformations such as [Context.Dual], [Context.Invert], [Apposition] and
// [Subposition] return new values. A Context is therefore safe for concurrent
// readers.
//
// # Derivation
//
// The derivation operators map a set of objects to the attributes they all
// share ([Context.ObjectDerivation]) and a set of attributes to the objects
// having all of them ([Context.AttributeDerivation]). [Context.Intent] and
// [Context.Extent] are the single-element shorthands used by row-oriented
// writers.
package fca

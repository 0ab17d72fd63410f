// Package pkg provides the libraries behind fcactx, a toolkit for formal
// contexts as used in Formal Concept Analysis.
//
// # Overview
//
// A formal context is a set of objects, a set of attributes, and the
// incidence relation saying which object has which attribute. The pkg
// directory is organized into these areas:
//
//  1. [fca] - The context model, derivation operators and transformations
//  2. [io] - The format registry, format detection and all codecs
//  3. [errors] - Error codes shared by every package
//  4. [observability] - Hooks for logging or metrics of codec activity
//  5. [buildinfo] - Version information injected at build time
//
// # Architecture
//
// The typical data flow through fcactx:
//
//	context file (any registered format)
//	         ↓
//	    [io] package (detect format, decode)
//	         ↓
//	    [fca] package (query, dualize, combine)
//	         ↓
//	    [io] package (encode in a named format)
//
// # Quick Start
//
// Convert a Burmeister file to ConExp XML:
//
//	import (
//	    "github.com/matzehuels/fcactx/pkg/io"
//	)
//
//	c, format, err := io.ImportFile("animals.cxt")
//	if err != nil {
//	    return err
//	}
//	log.Printf("read %s: %d objects", format, c.ObjectCount())
//	err = io.ExportFile(io.FormatConexpXML, c.Dual(), "animals-dual.xml")
//
// # Adding Formats
//
// A format is a detection predicate over the leading lines of a file plus a
// codec. Register both with [io.RegisterFormat]; predicates are tried in
// registration order, so the built-ins keep priority over later additions.
package pkg

// Package io reads and writes formal contexts in several textual formats.
//
// # Overview
//
// Writing always names the format explicitly. Reading never does: the
// leading lines of the input are run through a [Registry] of detection
// predicates and the first matching format decodes the content. Programs
// can therefore accept any supported file without asking the user what it
// is.
//
//	c, format, err := io.ImportFile("animals.cxt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = io.ExportFile(io.FormatConexpXML, c, "animals.xml")
//
// # Formats
//
// Built-in formats, in detection priority:
//
//   - burmeister: fixed-layout cross table ([BurmeisterCodec])
//   - conexp-xml: the XML format of ConExp ([ConexpXMLCodec])
//   - json: objects, attributes and an adjacency list ([JSONCodec])
//   - named-binary-csv: CSV cross table with a name row and column ([NamedBinaryCSVCodec])
//   - yaml: objects, attributes and an incidence mapping ([YAMLCodec])
//
// # Detection
//
// A [Predicate] sees at most the first 16 lines (and 4 KiB) of the input.
// Predicates are tried in registration order and the first match wins; there
// is no specificity scoring. Registering a broad predicate before a narrow
// one shadows the narrow one.
//
// # Extending
//
// New formats register a predicate and a [Codec]:
//
//	err := io.RegisterFormat("slf", isSLF, slfCodec{})
//
// Registration is safe to run concurrently with reads. Use [NewRegistry] and
// [RegisterBuiltins] for an isolated registry, e.g. in tests.
//
// # Errors
//
// All failures carry a code from [github.com/matzehuels/fcactx/pkg/errors]:
// ErrCodeUnknownFormat for writes to an unregistered format,
// ErrCodeUndeterminedFormat for unrecognized input, ErrCodeMalformedInput for
// structural violations, and ErrCodeAmbiguousDocument for ConExp documents
// without exactly one context. Reads either return a complete context or an
// error, never both; writes never emit partial output.
package io

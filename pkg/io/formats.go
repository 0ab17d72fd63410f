package io

import (
	"regexp"
	"strings"
)

// Built-in format identifiers.
const (
	FormatBurmeister     = "burmeister"
	FormatConexpXML      = "conexp-xml"
	FormatJSON           = "json"
	FormatNamedBinaryCSV = "named-binary-csv"
	FormatYAML           = "yaml"
)

// RegisterBuiltins registers the built-in formats on r in detection
// priority order: burmeister, conexp-xml, json, named-binary-csv, yaml.
func RegisterBuiltins(r *Registry) error {
	builtins := []struct {
		name   string
		detect Predicate
		codec  Codec
	}{
		{FormatBurmeister, isBurmeister, BurmeisterCodec{}},
		{FormatConexpXML, isConexpXML, ConexpXMLCodec{}},
		{FormatJSON, isJSON, JSONCodec{}},
		{FormatNamedBinaryCSV, isNamedBinaryCSV, NamedBinaryCSVCodec{}},
		{FormatYAML, isYAML, YAMLCodec{}},
	}
	for _, b := range builtins {
		if err := r.Register(b.name, b.detect); err != nil {
			return err
		}
		if err := r.RegisterCodec(b.name, b.codec); err != nil {
			return err
		}
	}
	return nil
}

// isBurmeister matches a first line starting with 'B'.
func isBurmeister(lines []string) bool {
	return len(lines) > 0 && strings.HasPrefix(lines[0], "B")
}

var xmlDeclRegex = regexp.MustCompile(`^\s*<\?xml\b.*\?>`)

// isConexpXML matches an XML declaration on the first non-blank line and a
// ConceptualSystem start tag on the first or second one.
func isConexpXML(lines []string) bool {
	head := nonBlank(lines, 2)
	if len(head) == 0 || !xmlDeclRegex.MatchString(head[0]) {
		return false
	}
	for _, l := range head {
		if strings.Contains(l, "<ConceptualSystem") {
			return true
		}
	}
	return false
}

// isJSON matches a first non-blank line opening an object.
func isJSON(lines []string) bool {
	head := nonBlank(lines, 1)
	return len(head) == 1 && strings.HasPrefix(strings.TrimSpace(head[0]), "{")
}

// isNamedBinaryCSV matches a header row whose corner cell is empty.
func isNamedBinaryCSV(lines []string) bool {
	return len(lines) > 0 && strings.HasPrefix(lines[0], ",")
}

// isYAML matches a document marker or one of the top-level context keys on
// the first line that is neither blank nor a comment.
func isYAML(lines []string) bool {
	for _, l := range lines {
		t := strings.TrimSpace(l)
		if t == "" || strings.HasPrefix(t, "#") {
			continue
		}
		if t == "---" {
			return true
		}
		for _, key := range []string{"objects:", "attributes:", "incidence:"} {
			if strings.HasPrefix(l, key) {
				return true
			}
		}
		return false
	}
	return false
}

// nonBlank returns up to n leading lines that contain more than whitespace.
func nonBlank(lines []string, n int) []string {
	var out []string
	for _, l := range lines {
		if len(out) == n {
			break
		}
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

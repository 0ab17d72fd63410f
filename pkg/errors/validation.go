package errors

import (
	"regexp"
	"strings"
)

// formatNameRegex matches format identifiers: lowercase words joined by dashes.
var formatNameRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidateFormatName validates a format identifier before registration.
//
// Format identifiers are how callers select a writer, so they are kept
// simple and shell-friendly:
//   - No empty identifiers
//   - Maximum length of 64 characters
//   - Lowercase ASCII letters, digits and single dashes only
func ValidateFormatName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidFormat, "format name cannot be empty")
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidFormat, "format name too long (max 64 characters)")
	}

	if !formatNameRegex.MatchString(name) {
		return New(ErrCodeInvalidFormat, "invalid format name: %q", name)
	}

	return nil
}

// ValidateLineName checks that an object or attribute name fits on a single
// line. Line-oriented formats cannot represent names containing line breaks.
// kind is "object" or "attribute" and only affects the message.
func ValidateLineName(kind, name string) error {
	if strings.ContainsAny(name, "\r\n") {
		return New(ErrCodeInvalidContext, "%s name %q contains a line break", kind, name)
	}
	return nil
}

package io

import (
	"bufio"
	"bytes"
	stderrors "errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/matzehuels/fcactx/pkg/errors"
	"github.com/matzehuels/fcactx/pkg/fca"
	"github.com/matzehuels/fcactx/pkg/observability"
)

const (
	// detectBytes bounds how much of a source is buffered for detection.
	detectBytes = 4096
	// detectLines bounds how many leading lines predicates see.
	detectLines = 16
)

// Write serializes c in the named format to w.
//
// The codec is looked up before anything is written: an unregistered name
// fails with ErrCodeUnknownFormat and w is left untouched. The encoding is
// produced in memory first, so a codec error also leaves w untouched.
func (r *Registry) Write(name string, c *fca.Context, w io.Writer) error {
	data, err := r.encode(name, c)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", name)
	}
	return nil
}

func (r *Registry) encode(name string, c *fca.Context) ([]byte, error) {
	codec, ok := r.Codec(name)
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownFormat, "unknown format %q", name)
	}
	if c == nil {
		return nil, errors.New(errors.ErrCodeInvalidContext, "nil context")
	}

	start := time.Now()
	var buf bytes.Buffer
	err := codec.Write(c, &buf)
	observability.Codec().OnWrite(name, buf.Len(), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Read detects the format of src and decodes it. source names src in error
// messages and hook events, typically a file path.
//
// Detection only looks at the leading lines of src. They are buffered and
// handed to the codec together with the rest of the stream, so src does not
// need to be seekable. Content that no predicate recognizes fails with
// ErrCodeUndeterminedFormat.
func (r *Registry) Read(src io.Reader, source string) (*fca.Context, string, error) {
	br := bufio.NewReaderSize(src, detectBytes)
	lines, err := peekLines(br)
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeIO, err, "read %s", source)
	}

	name, ok := r.Detect(lines)
	observability.Codec().OnDetect(source, name, ok)
	if !ok {
		return nil, "", errors.New(errors.ErrCodeUndeterminedFormat, "cannot determine format of %s", source)
	}
	codec, ok := r.Codec(name)
	if !ok {
		return nil, name, errors.New(errors.ErrCodeUnknownFormat, "no codec registered for format %q of %s", name, source)
	}

	start := time.Now()
	c, err := codec.Read(br)
	if err != nil {
		observability.Codec().OnRead(name, 0, 0, time.Since(start), err)
		return nil, name, err
	}
	observability.Codec().OnRead(name, c.ObjectCount(), c.AttributeCount(), time.Since(start), nil)
	return c, name, nil
}

// peekLines returns up to detectLines leading lines of br without consuming
// them. When the window fills up, the line crossing its edge is returned
// truncated; predicates accept any prefix of the content.
func peekLines(br *bufio.Reader) ([]string, error) {
	buf, err := br.Peek(detectBytes)
	if err != nil && !stderrors.Is(err, io.EOF) && !stderrors.Is(err, bufio.ErrBufferFull) {
		return nil, err
	}

	lines := strings.Split(string(buf), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) > detectLines {
		lines = lines[:detectLines]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines, nil
}

// ImportFile reads the context stored at path, detecting its format.
// It returns the context and the detected format name. The file is closed
// on every path.
func (r *Registry) ImportFile(path string) (*fca.Context, string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, "", errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return r.Read(f, path)
}

// ExportFile writes c in the named format to path. Nothing is created when
// the format is unknown or encoding fails.
func (r *Registry) ExportFile(name string, c *fca.Context, path string) error {
	data, err := r.encode(name, c)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}

// Default is the process-wide registry holding the built-in formats.
var Default = NewRegistry()

func init() {
	if err := RegisterBuiltins(Default); err != nil {
		panic(err)
	}
}

// RegisterFormat adds a format to the [Default] registry. Either detect or
// codec may be nil to leave that side unchanged.
func RegisterFormat(name string, detect Predicate, codec Codec) error {
	if detect != nil {
		if err := Default.Register(name, detect); err != nil {
			return err
		}
	}
	if codec != nil {
		return Default.RegisterCodec(name, codec)
	}
	return nil
}

// Formats lists the formats of the [Default] registry in detection priority.
func Formats() []string { return Default.Formats() }

// DetectFormat runs the [Default] registry's predicates over lines.
func DetectFormat(lines []string) (string, bool) { return Default.Detect(lines) }

// WriteContext writes c in the named format to w using the [Default] registry.
func WriteContext(name string, c *fca.Context, w io.Writer) error {
	return Default.Write(name, c, w)
}

// ReadContext decodes r using the [Default] registry, detecting the format.
func ReadContext(r io.Reader) (*fca.Context, error) {
	c, _, err := Default.Read(r, "input")
	return c, err
}

// ImportFile reads a context file using the [Default] registry.
func ImportFile(path string) (*fca.Context, string, error) {
	return Default.ImportFile(path)
}

// ExportFile writes a context file using the [Default] registry.
func ExportFile(name string, c *fca.Context, path string) error {
	return Default.ExportFile(name, c, path)
}

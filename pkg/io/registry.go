package io

import (
	"io"
	"slices"
	"sync"

	"github.com/matzehuels/fcactx/pkg/errors"
	"github.com/matzehuels/fcactx/pkg/fca"
)

// Predicate decides from the leading lines of a source whether the source
// is in a particular format. Predicates must be pure: they are called
// concurrently and may see any prefix of the content.
type Predicate func(lines []string) bool

// Codec reads and writes one on-disk format.
//
// Read consumes r and returns a complete context or an error; it never
// returns a partial context. Write serializes c to w.
type Codec interface {
	Read(r io.Reader) (*fca.Context, error)
	Write(c *fca.Context, w io.Writer) error
}

type format struct {
	detect Predicate
	codec  Codec
}

// Registry maps format identifiers to detection predicates and codecs.
//
// Formats are kept in registration order, which is also the detection
// priority: [Registry.Detect] returns the first format whose predicate
// matches. A more general predicate must therefore be registered after the
// more specific ones it would otherwise shadow.
//
// Registry is safe for concurrent use. Each registration is applied as a
// single step, so a concurrent detection sees either the old or the new
// entry, never a half-registered one.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	formats map[string]format
}

// NewRegistry creates an empty registry. Use [RegisterBuiltins] to add the
// formats shipped with this package.
func NewRegistry() *Registry {
	return &Registry{formats: make(map[string]format)}
}

// Register sets the detection predicate for name, inserting the format at
// the end of the priority order if it is new. Re-registering replaces the
// predicate and keeps the original position. A nil predicate leaves the
// format undetectable but still writable.
func (r *Registry) Register(name string, detect Predicate) error {
	return r.update(name, func(f *format) { f.detect = detect })
}

// RegisterCodec sets the reader/writer for name, inserting the format at the
// end of the priority order if it is new.
func (r *Registry) RegisterCodec(name string, codec Codec) error {
	return r.update(name, func(f *format) { f.codec = codec })
}

func (r *Registry) update(name string, apply func(*format)) error {
	if err := errors.ValidateFormatName(name); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	f, exists := r.formats[name]
	apply(&f)
	r.formats[name] = f
	if !exists {
		r.order = append(r.order, name)
	}
	return nil
}

// Formats returns all registered identifiers in priority order.
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// Detect returns the first format, in priority order, whose predicate
// accepts lines. ok is false if no predicate matches.
func (r *Registry) Detect(lines []string) (name string, ok bool) {
	type candidate struct {
		name   string
		detect Predicate
	}

	r.mu.RLock()
	candidates := make([]candidate, 0, len(r.order))
	for _, n := range r.order {
		if d := r.formats[n].detect; d != nil {
			candidates = append(candidates, candidate{n, d})
		}
	}
	r.mu.RUnlock()

	for _, c := range candidates {
		if c.detect(lines) {
			return c.name, true
		}
	}
	return "", false
}

// Codec returns the codec registered for name.
func (r *Registry) Codec(name string) (Codec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.formats[name]
	if !ok || f.codec == nil {
		return nil, false
	}
	return f.codec, true
}

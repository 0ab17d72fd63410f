// Package observability provides hooks for metrics, tracing, and logging of
// codec activity.
//
// The codec layer has no hard dependency on any logging or metrics backend.
// Consumers register a [CodecHooks] implementation at startup and receive an
// event for every format detection, read and write:
//
//	func main() {
//	    observability.SetCodecHooks(&myHooks{})
//	    // ... run application
//	}
//
// The io package emits events:
//
//	observability.Codec().OnDetect(source, format, ok)
//	observability.Codec().OnRead(format, objects, attributes, duration, err)
package observability

import (
	"sync"
	"time"
)

// CodecHooks receives events from the format registry and codecs.
type CodecHooks interface {
	// OnDetect records a detection attempt on source. ok is false when no
	// registered format recognized it.
	OnDetect(source, format string, ok bool)

	// OnRead records a completed read, successful or not.
	OnRead(format string, objects, attributes int, duration time.Duration, err error)

	// OnWrite records a completed write of n bytes.
	OnWrite(format string, n int, duration time.Duration, err error)
}

// NoopCodecHooks is a no-op implementation of CodecHooks.
type NoopCodecHooks struct{}

func (NoopCodecHooks) OnDetect(string, string, bool)                 {}
func (NoopCodecHooks) OnRead(string, int, int, time.Duration, error) {}
func (NoopCodecHooks) OnWrite(string, int, time.Duration, error)     {}

var (
	codecHooks CodecHooks = NoopCodecHooks{}
	hooksMu    sync.RWMutex
)

// SetCodecHooks registers custom codec hooks. A nil value is ignored.
// This should be called once at application startup.
func SetCodecHooks(h CodecHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		codecHooks = h
	}
}

// Codec returns the registered codec hooks.
func Codec() CodecHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return codecHooks
}

// Reset restores the no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	codecHooks = NoopCodecHooks{}
}

package registry

import (
	"sync/atomic"

	"github.com/agentx-labs/auditcat/internal/catalog"
)

// Holder publishes a single Registry to concurrent readers. Readers see
// either ErrNotInitialized or a fully built registry.
type Holder struct {
	current atomic.Pointer[Registry]
}

// Load builds a registry from src and publishes it. A holder publishes at
// most once; later calls return ErrAlreadyInitialized.
func (h *Holder) Load(src catalog.Source, opts ...Option) (*Registry, error) {
	if h.current.Load() != nil {
		return nil, ErrAlreadyInitialized
	}
	r, err := New(src, opts...)
	if err != nil {
		return nil, err
	}
	if !h.current.CompareAndSwap(nil, r) {
		return nil, ErrAlreadyInitialized
	}
	return r, nil
}

// Registry returns the published registry.
func (h *Holder) Registry() (*Registry, error) {
	r := h.current.Load()
	if r == nil {
		return nil, ErrNotInitialized
	}
	return r, nil
}

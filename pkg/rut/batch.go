package rut

import (
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrymomot/rutkit/pkg/sanitizer"
)

// Hook post-processes the result of a batch construction.
type Hook func([]RUT) []RUT

// Maker builds RUTs in bulk and runs its registered hooks, in registration
// order, over every batch result. A Maker is safe for concurrent use.
type Maker struct {
	mu    sync.RWMutex
	hooks []Hook
}

// NewMaker returns a Maker with the given hooks registered.
func NewMaker(hooks ...Hook) *Maker {
	m := &Maker{}
	for _, h := range hooks {
		m.After(h)
	}
	return m
}

// After registers a hook. Nil hooks are ignored.
func (m *Maker) After(h Hook) {
	if h == nil {
		return
	}
	m.mu.Lock()
	m.hooks = append(m.hooks, h)
	m.mu.Unlock()
}

// Hooks returns a copy of the registered hooks.
func (m *Maker) Hooks() []Hook {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.hooks)
}

// FlushHooks removes every registered hook.
func (m *Maker) FlushHooks() {
	m.mu.Lock()
	m.hooks = nil
	m.mu.Unlock()
}

// WithoutHooks returns a Maker with no hooks, for a single call that must
// skip post-processing:
//
//	ruts := maker.WithoutHooks().MakeMany(inputs...)
func (m *Maker) WithoutHooks() *Maker {
	return &Maker{}
}

// MakeMany builds one RUT per input. Inputs that cannot be parsed become
// absent RUTs, so the result always has one slot per input before hooks run.
// A single slice argument is unpacked one level; pass a lone body and check
// character as rut.Pair, since []any{num, vd} alone is read as two inputs.
func (m *Maker) MakeMany(inputs ...any) []RUT {
	return m.runHooks(makeEach(unpack(inputs)))
}

// MakeValid works like MakeMany but drops every RUT that is not valid.
func (m *Maker) MakeValid(inputs ...any) []RUT {
	return m.runHooks(sanitizer.FilterSlice(makeEach(unpack(inputs)), RUT.IsValid))
}

// MakeAll works like MakeMany but fails with a *BatchError when any input
// does not produce a valid RUT. Hooks only run on success.
func (m *Maker) MakeAll(inputs ...any) ([]RUT, error) {
	values := unpack(inputs)
	ruts := makeEach(values)

	var causes []error
	for i, r := range ruts {
		switch {
		case !r.set:
			causes = append(causes, fmt.Errorf("element %d: %w", i, ErrMalformedInput))
		case !r.IsValid():
			causes = append(causes, fmt.Errorf("element %d (%s): %w", i, r.Raw(), ErrChecksumMismatch))
		}
	}

	if len(causes) > 0 {
		batchErr := &BatchError{
			Expected: len(values),
			Actual:   len(values) - len(causes),
			Causes:   causes,
		}
		if len(values) == 1 {
			batchErr.Value = values[0]
		}
		return nil, batchErr
	}

	return m.runHooks(ruts), nil
}

func (m *Maker) runHooks(ruts []RUT) []RUT {
	for _, h := range m.Hooks() {
		ruts = h(ruts)
	}
	return ruts
}

func makeEach(values []any) []RUT {
	return sanitizer.TransformSlice(values, Make)
}

var std = NewMaker()

// Default returns the process-wide Maker used by the package-level batch functions.
func Default() *Maker { return std }

// MakeMany calls MakeMany on the default Maker.
func MakeMany(inputs ...any) []RUT { return std.MakeMany(inputs...) }

// MakeValid calls MakeValid on the default Maker.
func MakeValid(inputs ...any) []RUT { return std.MakeValid(inputs...) }

// MakeAll calls MakeAll on the default Maker.
func MakeAll(inputs ...any) ([]RUT, error) { return std.MakeAll(inputs...) }

// After registers a hook on the default Maker.
func After(h Hook) { std.After(h) }

// FlushHooks removes every hook from the default Maker.
func FlushHooks() { std.FlushHooks() }

// WithoutHooks returns a Maker without hooks.
func WithoutHooks() *Maker { return std.WithoutHooks() }

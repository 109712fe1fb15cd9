package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/shophub/shopkit/pkg/storage"
)

// storageKey is the durable key holding the serialized line list.
const storageKey = "cart"

// Engine owns the cart lines and their derived totals. All mutations are
// serialized by an internal mutex and persist the full line list before
// returning, so readers never observe a partially-applied change and a
// restart never loses a confirmed one.
type Engine struct {
	mu     sync.RWMutex
	store  storage.Storage
	logger *slog.Logger
	lines  []Line
	totals Totals
}

// Option is a functional option for configuring the Engine
type Option func(*Engine)

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine backed by store, rehydrating any previously
// persisted cart. A missing or unreadable durable copy yields an empty cart.
func NewEngine(ctx context.Context, store storage.Storage, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.rehydrate(ctx)
	e.totals = CalculateTotals(e.lines)
	return e
}

// Add appends item as a new line, or merges its quantity into the existing
// line for the same product. Lines keep the order in which products were
// first added.
func (e *Engine) Add(ctx context.Context, item Line) error {
	if !item.valid() {
		return ErrInvalidLine
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	next := slices.Clone(e.lines)
	if i := slices.IndexFunc(next, func(l Line) bool { return l.ProductID == item.ProductID }); i >= 0 {
		next[i].Quantity += item.Quantity
	} else {
		next = append(next, item)
	}

	return e.commit(ctx, next)
}

// Remove deletes the line for productID. Removing an absent product is a no-op.
func (e *Engine) Remove(ctx context.Context, productID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := slices.DeleteFunc(slices.Clone(e.lines), func(l Line) bool {
		return l.ProductID == productID
	})
	if len(next) == len(e.lines) {
		return nil
	}

	return e.commit(ctx, next)
}

// SetQuantity overwrites the quantity of the line for productID. A quantity
// below one is rejected and the existing quantity stays unchanged.
func (e *Engine) SetQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	i := slices.IndexFunc(e.lines, func(l Line) bool { return l.ProductID == productID })
	if i < 0 {
		return nil
	}

	next := slices.Clone(e.lines)
	next[i].Quantity = quantity
	return e.commit(ctx, next)
}

// Clear empties the cart, resets all totals to zero, and erases the durable copy.
func (e *Engine) Clear(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.store.Remove(ctx, storageKey); err != nil {
		return errors.Join(ErrPersistFailed, err)
	}

	e.lines = nil
	e.totals = CalculateTotals(nil)
	return nil
}

// Lines returns a copy of the current line list in first-added order.
func (e *Engine) Lines() []Line {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.lines)
}

// Totals returns the current derived pricing.
func (e *Engine) Totals() Totals {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.totals
}

// Count returns the total quantity across all lines.
func (e *Engine) Count() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	count := 0
	for _, line := range e.lines {
		count += line.Quantity
	}
	return count
}

// commit persists next and, only once durable, installs it together with the
// recomputed totals. Caller must hold e.mu.
func (e *Engine) commit(ctx context.Context, next []Line) error {
	data, err := json.Marshal(next)
	if err != nil {
		return errors.Join(ErrPersistFailed, err)
	}
	if err := e.store.Set(ctx, storageKey, string(data)); err != nil {
		return errors.Join(ErrPersistFailed, err)
	}

	e.lines = next
	e.totals = CalculateTotals(next)
	return nil
}

// rehydrate loads the persisted line list, dropping lines that would violate
// the cart's validity rules.
func (e *Engine) rehydrate(ctx context.Context) {
	raw, err := e.store.Get(ctx, storageKey)
	if err != nil {
		if !storage.IsNotFound(err) {
			e.logger.WarnContext(ctx, "failed to read persisted cart", slog.Any("error", err))
		}
		return
	}

	var lines []Line
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		e.logger.WarnContext(ctx, "discarding corrupt persisted cart", slog.Any("error", err))
		return
	}

	e.lines = slices.DeleteFunc(lines, func(l Line) bool { return !l.valid() })
}

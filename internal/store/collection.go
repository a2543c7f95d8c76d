package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"cylaba/internal/metrics"
	"cylaba/pkg/logger"
)

// Options configures a Collection.
type Options struct {
	// StrictReads turns unreadable or undecodable documents into errors
	// instead of empty collections.
	StrictReads bool
	Logger      *logger.Logger
}

// Collection is one named JSON array of T. Every read-modify-write cycle of
// the process runs under the collection's lock; create one Collection per
// name and share it.
type Collection[T any] struct {
	name    string
	backend Backend
	strict  bool
	log     *logger.Logger
	mu      sync.RWMutex
}

// NewCollection binds name to backend.
func NewCollection[T any](name string, backend Backend, opts Options) *Collection[T] {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Collection[T]{
		name:    name,
		backend: backend,
		strict:  opts.StrictReads,
		log:     log.WithComponent("store").WithFields("collection", name),
	}
}

// Name returns the collection name.
func (c *Collection[T]) Name() string { return c.name }

// Load returns every record in stored order. A missing document is an empty
// collection. Unless the collection is strict, so is a broken one.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.load(ctx)
}

// Save replaces the whole document with records.
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(ctx, records)
}

// Update loads the collection, passes it to fn and saves what fn returns.
// Nothing is written if fn fails. No other Update or Save of this
// collection runs in between.
func (c *Collection[T]) Update(ctx context.Context, fn func([]T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load(ctx)
	if err != nil {
		return err
	}
	records, err = fn(records)
	if err != nil {
		return err
	}
	return c.save(ctx, records)
}

// Seed writes initial if the document does not exist yet and reports
// whether it did.
func (c *Collection[T]) Seed(ctx context.Context, initial []T) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.backend.Read(ctx, c.name)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, ErrNotExist):
		if err := c.save(ctx, initial); err != nil {
			return false, err
		}
		c.log.Infow("Seeded collection", "records", len(initial))
		return true, nil
	default:
		return false, fmt.Errorf("failed to check collection %s: %w", c.name, err)
	}
}

func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	data, err := c.backend.Read(ctx, c.name)
	if errors.Is(err, ErrNotExist) {
		c.log.Warnw("Collection document missing, using empty collection")
		return []T{}, nil
	}
	if err != nil {
		return c.failOpen(fmt.Errorf("failed to read collection %s: %w", c.name, err))
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return c.failOpen(fmt.Errorf("%w: %s: %v", ErrCorrupt, c.name, err))
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func (c *Collection[T]) failOpen(err error) ([]T, error) {
	if c.strict {
		c.log.Errorw("Collection read failed", "error", err)
		return nil, err
	}
	metrics.FailOpenReads.WithLabelValues(c.name).Inc()
	c.log.Warnw("Collection read failed, using empty collection", "error", err)
	return []T{}, nil
}

func (c *Collection[T]) save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		metrics.CollectionWrites.WithLabelValues(c.name, "error").Inc()
		return fmt.Errorf("failed to encode collection %s: %w", c.name, err)
	}
	if err := c.backend.Write(ctx, c.name, data); err != nil {
		metrics.CollectionWrites.WithLabelValues(c.name, "error").Inc()
		c.log.Errorw("Collection write failed", "error", err)
		return fmt.Errorf("failed to save collection %s: %w", c.name, err)
	}
	metrics.CollectionWrites.WithLabelValues(c.name, "ok").Inc()
	return nil
}

package store

import (
	"context"
	"sync"
)

// Repository is the persistence surface a Collection reconciles against.
// T is the entity type, P its sparse update type.
type Repository[T, P any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, id string, patch P) (T, error)
	Delete(ctx context.Context, id string) error
}

// insertFunc places a freshly created item into an ordered slice, matching
// the ordering the repository's List returns.
type insertFunc[T any] func(items []T, item T) []T

// prepend places new items first, for collections listed newest-first.
func prepend[T any](items []T, item T) []T {
	return append([]T{item}, items...)
}

// insertSorted keeps the slice ordered by less, placing the new item before
// the first element it should precede.
func insertSorted[T any](less func(a, b T) bool) insertFunc[T] {
	return func(items []T, item T) []T {
		at := len(items)
		for i := range items {
			if less(item, items[i]) {
				at = i
				break
			}
		}
		items = append(items, item)
		copy(items[at+1:], items[at:])
		items[at] = item
		return items
	}
}

// Collection is one entity's in-memory cache plus its repository. Every
// mutator calls the repository first and touches the cache only on success,
// so the cache never drifts ahead of the database.
type Collection[T, P any] struct {
	mu     sync.Mutex
	items  []T
	repo   Repository[T, P]
	id     func(T) string
	insert insertFunc[T]
}

func NewCollection[T, P any](repo Repository[T, P], id func(T) string, insert insertFunc[T]) *Collection[T, P] {
	return &Collection[T, P]{repo: repo, id: id, insert: insert}
}

// All returns a snapshot copy of the cached items.
func (c *Collection[T, P]) All() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the cached item with the given id, if present.
func (c *Collection[T, P]) Get(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if c.id(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T, P]) Create(ctx context.Context, item T) (T, error) {
	created, err := c.repo.Create(ctx, item)
	if err != nil {
		var zero T
		return zero, err
	}
	c.mu.Lock()
	c.items = c.insert(c.items, created)
	c.mu.Unlock()
	return created, nil
}

func (c *Collection[T, P]) Update(ctx context.Context, id string, patch P) (T, error) {
	updated, err := c.repo.Update(ctx, id, patch)
	if err != nil {
		var zero T
		return zero, err
	}
	c.mu.Lock()
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items[i] = updated
			break
		}
	}
	c.mu.Unlock()
	return updated, nil
}

func (c *Collection[T, P]) Delete(ctx context.Context, id string) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		return err
	}
	c.mu.Lock()
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
	return nil
}

// load fetches the full collection but does not install it; the returned
// closure applies the replacement. LoadAll uses this split to keep a refresh
// all-or-nothing across collections.
func (c *Collection[T, P]) load(ctx context.Context) (func(), error) {
	items, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return func() {
		c.mu.Lock()
		c.items = items
		c.mu.Unlock()
	}, nil
}

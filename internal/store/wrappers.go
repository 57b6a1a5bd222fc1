package store

import (
	"context"
	"sync"

	"github.com/venstudio/studio-backend/internal/domain"
)

// FeedbackRepository is the append-only persistence surface for client
// feedback.
type FeedbackRepository interface {
	List(ctx context.Context) ([]domain.ClientFeedback, error)
	Create(ctx context.Context, f domain.ClientFeedback) (domain.ClientFeedback, error)
}

// FeedbackCollection caches client feedback. Entries are newest-first and
// never edited or removed.
type FeedbackCollection struct {
	mu    sync.Mutex
	items []domain.ClientFeedback
	repo  FeedbackRepository
}

func NewFeedbackCollection(repo FeedbackRepository) *FeedbackCollection {
	return &FeedbackCollection{repo: repo}
}

func (c *FeedbackCollection) All() []domain.ClientFeedback {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.ClientFeedback, len(c.items))
	copy(out, c.items)
	return out
}

func (c *FeedbackCollection) Create(ctx context.Context, f domain.ClientFeedback) (domain.ClientFeedback, error) {
	created, err := c.repo.Create(ctx, f)
	if err != nil {
		return domain.ClientFeedback{}, err
	}
	c.mu.Lock()
	c.items = prepend(c.items, created)
	c.mu.Unlock()
	return created, nil
}

func (c *FeedbackCollection) load(ctx context.Context) (func(), error) {
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

// NotificationRepository is the persistence surface for notifications,
// whose mutation set differs from plain CRUD.
type NotificationRepository interface {
	List(ctx context.Context) ([]domain.Notification, error)
	Create(ctx context.Context, n domain.Notification) (domain.Notification, error)
	MarkAsRead(ctx context.Context, id string) (domain.Notification, error)
	MarkAllAsRead(ctx context.Context) error
	Delete(ctx context.Context, id string) error
}

// NotificationCollection caches notifications newest-first.
type NotificationCollection struct {
	mu    sync.Mutex
	items []domain.Notification
	repo  NotificationRepository
}

func NewNotificationCollection(repo NotificationRepository) *NotificationCollection {
	return &NotificationCollection{repo: repo}
}

func (c *NotificationCollection) All() []domain.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Notification, len(c.items))
	copy(out, c.items)
	return out
}

func (c *NotificationCollection) Create(ctx context.Context, n domain.Notification) (domain.Notification, error) {
	created, err := c.repo.Create(ctx, n)
	if err != nil {
		return domain.Notification{}, err
	}
	c.mu.Lock()
	c.items = prepend(c.items, created)
	c.mu.Unlock()
	return created, nil
}

func (c *NotificationCollection) MarkAsRead(ctx context.Context, id string) (domain.Notification, error) {
	updated, err := c.repo.MarkAsRead(ctx, id)
	if err != nil {
		return domain.Notification{}, err
	}
	c.mu.Lock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i] = updated
			break
		}
	}
	c.mu.Unlock()
	return updated, nil
}

func (c *NotificationCollection) MarkAllAsRead(ctx context.Context) error {
	if err := c.repo.MarkAllAsRead(ctx); err != nil {
		return err
	}
	c.mu.Lock()
	for i := range c.items {
		c.items[i].IsRead = true
	}
	c.mu.Unlock()
	return nil
}

func (c *NotificationCollection) Delete(ctx context.Context, id string) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		return err
	}
	c.mu.Lock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
	return nil
}

func (c *NotificationCollection) load(ctx context.Context) (func(), error) {
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

// ProfileRepository is the persistence surface for the singleton profile.
type ProfileRepository interface {
	Get(ctx context.Context) (*domain.Profile, error)
	Upsert(ctx context.Context, p domain.Profile) (domain.Profile, error)
}

// ProfileStore holds the single studio profile, nil until one is saved.
type ProfileStore struct {
	mu      sync.Mutex
	profile *domain.Profile
	repo    ProfileRepository
}

func NewProfileStore(repo ProfileRepository) *ProfileStore {
	return &ProfileStore{repo: repo}
}

// Get returns a copy of the held profile, or nil when none exists.
func (s *ProfileStore) Get() *domain.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

func (s *ProfileStore) Save(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	saved, err := s.repo.Upsert(ctx, p)
	if err != nil {
		return domain.Profile{}, err
	}
	s.mu.Lock()
	s.profile = &saved
	s.mu.Unlock()
	return saved, nil
}

func (s *ProfileStore) load(ctx context.Context) (func(), error) {
	p, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return func() {
		s.mu.Lock()
		s.profile = p
		s.mu.Unlock()
	}, nil
}

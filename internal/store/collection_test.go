package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venstudio/studio-backend/internal/domain"
)

// fakeRepo is an in-memory Repository for exercising collection reconcile
// rules without a database.
type fakeRepo[T, P any] struct {
	items   []T
	nextID  int
	setID   func(*T, string)
	applyFn func(*T, P)
	getID   func(T) string

	listErr   error
	createErr error
	updateErr error
	deleteErr error
}

func (f *fakeRepo[T, P]) List(ctx context.Context) ([]T, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]T, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeRepo[T, P]) Create(ctx context.Context, item T) (T, error) {
	if f.createErr != nil {
		var zero T
		return zero, f.createErr
	}
	f.nextID++
	f.setID(&item, string(rune('a'+f.nextID)))
	f.items = append(f.items, item)
	return item, nil
}

func (f *fakeRepo[T, P]) Update(ctx context.Context, id string, patch P) (T, error) {
	if f.updateErr != nil {
		var zero T
		return zero, f.updateErr
	}
	for i := range f.items {
		if f.getID(f.items[i]) == id {
			f.applyFn(&f.items[i], patch)
			return f.items[i], nil
		}
	}
	var zero T
	return zero, domain.ErrNotFound
}

func (f *fakeRepo[T, P]) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.items {
		if f.getID(f.items[i]) == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func newLeadFake() *fakeRepo[domain.Lead, domain.LeadUpdate] {
	return &fakeRepo[domain.Lead, domain.LeadUpdate]{
		setID: func(l *domain.Lead, id string) { l.ID = id },
		getID: func(l domain.Lead) string { return l.ID },
		applyFn: func(l *domain.Lead, u domain.LeadUpdate) {
			if u.Status != nil {
				l.Status = *u.Status
			}
			if u.Notes != nil {
				l.Notes = *u.Notes
			}
		},
	}
}

func newLeadCollection(repo *fakeRepo[domain.Lead, domain.LeadUpdate]) *Collection[domain.Lead, domain.LeadUpdate] {
	return NewCollection[domain.Lead, domain.LeadUpdate](repo,
		func(l domain.Lead) string { return l.ID }, prepend[domain.Lead])
}

func TestCollectionCreatePrepends(t *testing.T) {
	repo := newLeadFake()
	col := newLeadCollection(repo)

	ctx := context.Background()
	first, err := col.Create(ctx, domain.Lead{Name: "Tia"})
	require.NoError(t, err)
	second, err := col.Create(ctx, domain.Lead{Name: "Andi"})
	require.NoError(t, err)

	all := col.All()
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID, "newest entry sits first")
	assert.Equal(t, first.ID, all[1].ID)
}

func TestCollectionCreateFailureLeavesCacheUntouched(t *testing.T) {
	repo := newLeadFake()
	col := newLeadCollection(repo)

	ctx := context.Background()
	_, err := col.Create(ctx, domain.Lead{Name: "Tia"})
	require.NoError(t, err)

	repo.createErr = errors.New("connection refused")
	_, err = col.Create(ctx, domain.Lead{Name: "Andi"})
	require.Error(t, err)

	assert.Len(t, col.All(), 1, "failed create must not appear in the cache")
}

func TestCollectionUpdateReplacesByID(t *testing.T) {
	repo := newLeadFake()
	col := newLeadCollection(repo)

	ctx := context.Background()
	lead, err := col.Create(ctx, domain.Lead{Name: "Tia", Status: domain.LeadStatusNew})
	require.NoError(t, err)

	status := domain.LeadStatusConverted
	updated, err := col.Update(ctx, lead.ID, domain.LeadUpdate{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.LeadStatusConverted, updated.Status)

	got, ok := col.Get(lead.ID)
	require.True(t, ok)
	assert.Equal(t, domain.LeadStatusConverted, got.Status)
}

func TestCollectionDelete(t *testing.T) {
	repo := newLeadFake()
	col := newLeadCollection(repo)

	ctx := context.Background()
	lead, err := col.Create(ctx, domain.Lead{Name: "Tia"})
	require.NoError(t, err)

	require.NoError(t, col.Delete(ctx, lead.ID))
	assert.Empty(t, col.All())

	err = col.Delete(ctx, lead.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "repeat delete surfaces the repository error")
}

func TestCollectionSortedInsert(t *testing.T) {
	repo := &fakeRepo[domain.Asset, domain.AssetUpdate]{
		setID: func(a *domain.Asset, id string) { a.ID = id },
		getID: func(a domain.Asset) string { return a.ID },
		applyFn: func(a *domain.Asset, u domain.AssetUpdate) {},
	}
	col := NewCollection[domain.Asset, domain.AssetUpdate](repo,
		func(a domain.Asset) string { return a.ID },
		insertSorted(func(a, b domain.Asset) bool { return a.Name < b.Name }))

	ctx := context.Background()
	for _, name := range []string{"Tripod", "Camera", "Lens"} {
		_, err := col.Create(ctx, domain.Asset{Name: name, PurchaseDate: time.Now()})
		require.NoError(t, err)
	}

	all := col.All()
	require.Len(t, all, 3)
	assert.Equal(t, "Camera", all[0].Name)
	assert.Equal(t, "Lens", all[1].Name)
	assert.Equal(t, "Tripod", all[2].Name)
}

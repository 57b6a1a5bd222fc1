package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/venstudio/studio-backend/internal/domain"
	"github.com/venstudio/studio-backend/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeRepo is a minimal in-memory repository for handler tests.
type fakeRepo[T, P any] struct {
	items  []T
	nextID int
	setID  func(*T, string)
	getID  func(T) string
	apply  func(*T, P)

	createErr error
}

func (f *fakeRepo[T, P]) List(ctx context.Context) ([]T, error) {
	return append([]T{}, f.items...), nil
}

func (f *fakeRepo[T, P]) Create(ctx context.Context, item T) (T, error) {
	if f.createErr != nil {
		var zero T
		return zero, f.createErr
	}
	f.nextID++
	f.setID(&item, fmt.Sprintf("id-%d", f.nextID))
	f.items = append(f.items, item)
	return item, nil
}

func (f *fakeRepo[T, P]) Update(ctx context.Context, id string, patch P) (T, error) {
	for i := range f.items {
		if f.getID(f.items[i]) == id {
			if f.apply != nil {
				f.apply(&f.items[i], patch)
			}
			return f.items[i], nil
		}
	}
	var zero T
	return zero, domain.ErrNotFound
}

func (f *fakeRepo[T, P]) Delete(ctx context.Context, id string) error {
	for i := range f.items {
		if f.getID(f.items[i]) == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeFeedbackRepo struct {
	items []domain.ClientFeedback
}

func (f *fakeFeedbackRepo) List(ctx context.Context) ([]domain.ClientFeedback, error) {
	return append([]domain.ClientFeedback{}, f.items...), nil
}

func (f *fakeFeedbackRepo) Create(ctx context.Context, fb domain.ClientFeedback) (domain.ClientFeedback, error) {
	fb.ID = fmt.Sprintf("fb-%d", len(f.items)+1)
	f.items = append(f.items, fb)
	return fb, nil
}

// newTestStore wires a store over in-memory fakes for the entities the
// handler tests touch.
func newTestStore() *store.Store {
	return store.New(store.Repositories{
		Clients: &fakeRepo[domain.Client, domain.ClientUpdate]{
			setID: func(c *domain.Client, id string) { c.ID = id },
			getID: func(c domain.Client) string { return c.ID },
		},
		Projects: &fakeRepo[domain.Project, domain.ProjectUpdate]{
			setID: func(p *domain.Project, id string) { p.ID = id },
			getID: func(p domain.Project) string { return p.ID },
			apply: func(p *domain.Project, u domain.ProjectUpdate) {
				if u.Revisions != nil {
					p.Revisions = *u.Revisions
				}
			},
		},
		Packages: &fakeRepo[domain.Package, domain.PackageUpdate]{
			setID: func(p *domain.Package, id string) { p.ID = id },
			getID: func(p domain.Package) string { return p.ID },
		},
		TeamMembers: &fakeRepo[domain.TeamMember, domain.TeamMemberUpdate]{
			setID: func(m *domain.TeamMember, id string) { m.ID = id },
			getID: func(m domain.TeamMember) string { return m.ID },
		},
		Transactions: &fakeRepo[domain.Transaction, domain.TransactionUpdate]{
			setID: func(tx *domain.Transaction, id string) { tx.ID = id },
			getID: func(tx domain.Transaction) string { return tx.ID },
		},
		Leads: &fakeRepo[domain.Lead, domain.LeadUpdate]{
			setID: func(l *domain.Lead, id string) { l.ID = id },
			getID: func(l domain.Lead) string { return l.ID },
		},
		Contracts: &fakeRepo[domain.Contract, domain.ContractUpdate]{
			setID: func(c *domain.Contract, id string) { c.ID = id },
			getID: func(c domain.Contract) string { return c.ID },
		},
		Cards: &fakeRepo[domain.Card, domain.CardUpdate]{
			setID: func(c *domain.Card, id string) { c.ID = id },
			getID: func(c domain.Card) string { return c.ID },
		},
		Feedback: &fakeFeedbackRepo{},
	})
}

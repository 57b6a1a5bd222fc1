package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venstudio/studio-backend/internal/domain"
)

type fakeFeedbackRepo struct {
	items   []domain.ClientFeedback
	listErr error
	onList  func()
}

func (f *fakeFeedbackRepo) List(ctx context.Context) ([]domain.ClientFeedback, error) {
	if f.onList != nil {
		f.onList()
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.ClientFeedback{}, f.items...), nil
}

func (f *fakeFeedbackRepo) Create(ctx context.Context, fb domain.ClientFeedback) (domain.ClientFeedback, error) {
	fb.ID = "fb1"
	f.items = append(f.items, fb)
	return fb, nil
}

type fakeNotificationRepo struct {
	items   []domain.Notification
	listErr error
}

func (f *fakeNotificationRepo) List(ctx context.Context) ([]domain.Notification, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.Notification{}, f.items...), nil
}

func (f *fakeNotificationRepo) Create(ctx context.Context, n domain.Notification) (domain.Notification, error) {
	n.ID = "n1"
	f.items = append(f.items, n)
	return n, nil
}

func (f *fakeNotificationRepo) MarkAsRead(ctx context.Context, id string) (domain.Notification, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].IsRead = true
			return f.items[i], nil
		}
	}
	return domain.Notification{}, domain.ErrNotFound
}

func (f *fakeNotificationRepo) MarkAllAsRead(ctx context.Context) error {
	for i := range f.items {
		f.items[i].IsRead = true
	}
	return nil
}

func (f *fakeNotificationRepo) Delete(ctx context.Context, id string) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeProfileRepo struct {
	profile *domain.Profile
	getErr  error
}

func (f *fakeProfileRepo) Get(ctx context.Context) (*domain.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.profile, nil
}

func (f *fakeProfileRepo) Upsert(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	f.profile = &p
	return p, nil
}

func crudFake[T, P any](setID func(*T, string), getID func(T) string) *fakeRepo[T, P] {
	return &fakeRepo[T, P]{setID: setID, getID: getID, applyFn: func(*T, P) {}}
}

type testRepos struct {
	Repositories
	clients  *fakeRepo[domain.Client, domain.ClientUpdate]
	projects *fakeRepo[domain.Project, domain.ProjectUpdate]
	cards    *fakeRepo[domain.Card, domain.CardUpdate]
}

func newTestRepos() testRepos {
	clients := crudFake[domain.Client, domain.ClientUpdate](
		func(c *domain.Client, id string) { c.ID = id }, func(c domain.Client) string { return c.ID })
	projects := crudFake[domain.Project, domain.ProjectUpdate](
		func(p *domain.Project, id string) { p.ID = id }, func(p domain.Project) string { return p.ID })
	cards := crudFake[domain.Card, domain.CardUpdate](
		func(c *domain.Card, id string) { c.ID = id }, func(c domain.Card) string { return c.ID })

	return testRepos{
		Repositories: Repositories{
			Users: crudFake[domain.User, domain.UserUpdate](
				func(u *domain.User, id string) { u.ID = id }, func(u domain.User) string { return u.ID }),
			Clients:  clients,
			Projects: projects,
			Packages: crudFake[domain.Package, domain.PackageUpdate](
				func(p *domain.Package, id string) { p.ID = id }, func(p domain.Package) string { return p.ID }),
			AddOns: crudFake[domain.AddOn, domain.AddOnUpdate](
				func(a *domain.AddOn, id string) { a.ID = id }, func(a domain.AddOn) string { return a.ID }),
			TeamMembers: crudFake[domain.TeamMember, domain.TeamMemberUpdate](
				func(m *domain.TeamMember, id string) { m.ID = id }, func(m domain.TeamMember) string { return m.ID }),
			Transactions: crudFake[domain.Transaction, domain.TransactionUpdate](
				func(tx *domain.Transaction, id string) { tx.ID = id }, func(tx domain.Transaction) string { return tx.ID }),
			Cards: cards,
			Pockets: crudFake[domain.FinancialPocket, domain.FinancialPocketUpdate](
				func(p *domain.FinancialPocket, id string) { p.ID = id }, func(p domain.FinancialPocket) string { return p.ID }),
			PromoCodes: crudFake[domain.PromoCode, domain.PromoCodeUpdate](
				func(p *domain.PromoCode, id string) { p.ID = id }, func(p domain.PromoCode) string { return p.ID }),
			Leads: crudFake[domain.Lead, domain.LeadUpdate](
				func(l *domain.Lead, id string) { l.ID = id }, func(l domain.Lead) string { return l.ID }),
			Assets: crudFake[domain.Asset, domain.AssetUpdate](
				func(a *domain.Asset, id string) { a.ID = id }, func(a domain.Asset) string { return a.ID }),
			Contracts: crudFake[domain.Contract, domain.ContractUpdate](
				func(c *domain.Contract, id string) { c.ID = id }, func(c domain.Contract) string { return c.ID }),
			SocialPosts: crudFake[domain.SocialMediaPost, domain.SocialMediaPostUpdate](
				func(p *domain.SocialMediaPost, id string) { p.ID = id }, func(p domain.SocialMediaPost) string { return p.ID }),
			SOPs: crudFake[domain.SOP, domain.SOPUpdate](
				func(s *domain.SOP, id string) { s.ID = id }, func(s domain.SOP) string { return s.ID }),
			Feedback:      &fakeFeedbackRepo{},
			Notifications: &fakeNotificationRepo{},
			Profile:       &fakeProfileRepo{},
		},
		clients:  clients,
		projects: projects,
		cards:    cards,
	}
}

func TestLoadAllPopulatesEveryCollection(t *testing.T) {
	repos := newTestRepos()
	repos.clients.items = []domain.Client{{ID: "c1", Name: "Andi"}}
	repos.projects.items = []domain.Project{{ID: "pr1", ProjectName: "Akad"}}

	st := New(repos.Repositories)
	require.NoError(t, st.LoadAll(context.Background()))

	assert.Len(t, st.Clients.All(), 1)
	assert.Len(t, st.Projects.All(), 1)
	assert.Empty(t, st.Cards.All())
	assert.NoError(t, st.Err())
	assert.False(t, st.Loading())
}

func TestLoadAllIsAllOrNothing(t *testing.T) {
	repos := newTestRepos()
	st := New(repos.Repositories)

	// Establish a cache, then make the repos disagree with it.
	created, err := st.Clients.Create(context.Background(), domain.Client{Name: "Andi"})
	require.NoError(t, err)
	repos.clients.items = []domain.Client{{ID: "other", Name: "Someone Else"}}

	repos.projects.listErr = errors.New("timeout")
	repos.cards.listErr = errors.New("timeout")

	err = st.LoadAll(context.Background())
	require.Error(t, err)
	assert.EqualError(t, err, "load failed for cards, projects")
	assert.Equal(t, err, st.Err())

	all := st.Clients.All()
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID, "no collection is replaced when any fetch fails")
}

func TestLoadAllClearsPreviousError(t *testing.T) {
	repos := newTestRepos()
	st := New(repos.Repositories)

	repos.projects.listErr = errors.New("timeout")
	require.Error(t, st.LoadAll(context.Background()))
	require.Error(t, st.Err())

	repos.projects.listErr = nil
	fb := repos.Repositories.Feedback.(*fakeFeedbackRepo)
	var (
		called          bool
		inFlightErr     error
		inFlightLoading bool
	)
	fb.onList = func() {
		called = true
		inFlightErr = st.Err()
		inFlightLoading = st.Loading()
	}

	require.NoError(t, st.LoadAll(context.Background()))
	require.True(t, called)
	assert.NoError(t, inFlightErr, "starting a refresh clears the previous error")
	assert.True(t, inFlightLoading)
	assert.NoError(t, st.Err())
}

func TestNotificationCollectionMarkAllAsRead(t *testing.T) {
	repos := newTestRepos()
	st := New(repos.Repositories)

	ctx := context.Background()
	_, err := st.Notifications.Create(ctx, domain.Notification{Title: "New booking"})
	require.NoError(t, err)

	require.NoError(t, st.Notifications.MarkAllAsRead(ctx))
	for _, n := range st.Notifications.All() {
		assert.True(t, n.IsRead)
	}
}

func TestProfileStoreSave(t *testing.T) {
	repos := newTestRepos()
	st := New(repos.Repositories)

	assert.Nil(t, st.Profile.Get())

	saved, err := st.Profile.Save(context.Background(), domain.Profile{CompanyName: "Ven Studio"})
	require.NoError(t, err)
	assert.Equal(t, "Ven Studio", saved.CompanyName)

	got := st.Profile.Get()
	require.NotNil(t, got)
	assert.Equal(t, "Ven Studio", got.CompanyName)
}

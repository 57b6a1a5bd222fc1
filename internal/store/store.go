package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/venstudio/studio-backend/internal/domain"
)

// Repositories bundles every persistence surface the store reconciles
// against. Tests swap in fakes.
type Repositories struct {
	Users         Repository[domain.User, domain.UserUpdate]
	Clients       Repository[domain.Client, domain.ClientUpdate]
	Projects      Repository[domain.Project, domain.ProjectUpdate]
	Packages      Repository[domain.Package, domain.PackageUpdate]
	AddOns        Repository[domain.AddOn, domain.AddOnUpdate]
	TeamMembers   Repository[domain.TeamMember, domain.TeamMemberUpdate]
	Transactions  Repository[domain.Transaction, domain.TransactionUpdate]
	Cards         Repository[domain.Card, domain.CardUpdate]
	Pockets       Repository[domain.FinancialPocket, domain.FinancialPocketUpdate]
	PromoCodes    Repository[domain.PromoCode, domain.PromoCodeUpdate]
	Leads         Repository[domain.Lead, domain.LeadUpdate]
	Assets        Repository[domain.Asset, domain.AssetUpdate]
	Contracts     Repository[domain.Contract, domain.ContractUpdate]
	SocialPosts   Repository[domain.SocialMediaPost, domain.SocialMediaPostUpdate]
	SOPs          Repository[domain.SOP, domain.SOPUpdate]
	Feedback      FeedbackRepository
	Notifications NotificationRepository
	Profile       ProfileRepository
}

// Store is the application's in-memory working set: one collection per
// entity, each backed by its repository. All access goes through an
// explicit *Store instance.
type Store struct {
	Users         *Collection[domain.User, domain.UserUpdate]
	Clients       *Collection[domain.Client, domain.ClientUpdate]
	Projects      *Collection[domain.Project, domain.ProjectUpdate]
	Packages      *Collection[domain.Package, domain.PackageUpdate]
	AddOns        *Collection[domain.AddOn, domain.AddOnUpdate]
	TeamMembers   *Collection[domain.TeamMember, domain.TeamMemberUpdate]
	Transactions  *Collection[domain.Transaction, domain.TransactionUpdate]
	Cards         *Collection[domain.Card, domain.CardUpdate]
	Pockets       *Collection[domain.FinancialPocket, domain.FinancialPocketUpdate]
	PromoCodes    *Collection[domain.PromoCode, domain.PromoCodeUpdate]
	Leads         *Collection[domain.Lead, domain.LeadUpdate]
	Assets        *Collection[domain.Asset, domain.AssetUpdate]
	Contracts     *Collection[domain.Contract, domain.ContractUpdate]
	SocialPosts   *Collection[domain.SocialMediaPost, domain.SocialMediaPostUpdate]
	SOPs          *Collection[domain.SOP, domain.SOPUpdate]
	Feedback      *FeedbackCollection
	Notifications *NotificationCollection
	Profile       *ProfileStore

	mu      sync.Mutex
	loading bool
	err     error
}

func New(r Repositories) *Store {
	return &Store{
		Users:   NewCollection(r.Users, func(u domain.User) string { return u.ID }, prepend[domain.User]),
		Clients: NewCollection(r.Clients, func(c domain.Client) string { return c.ID }, prepend[domain.Client]),
		Projects: NewCollection(r.Projects, func(p domain.Project) string { return p.ID }, prepend[domain.Project]),
		Packages: NewCollection(r.Packages, func(p domain.Package) string { return p.ID }, prepend[domain.Package]),
		AddOns:   NewCollection(r.AddOns, func(a domain.AddOn) string { return a.ID }, prepend[domain.AddOn]),
		TeamMembers: NewCollection(r.TeamMembers, func(m domain.TeamMember) string { return m.ID }, prepend[domain.TeamMember]),
		Transactions: NewCollection(r.Transactions, func(t domain.Transaction) string { return t.ID },
			insertSorted(func(a, b domain.Transaction) bool { return a.Date.After(b.Date) })),
		Cards:   NewCollection(r.Cards, func(c domain.Card) string { return c.ID }, prepend[domain.Card]),
		Pockets: NewCollection(r.Pockets, func(p domain.FinancialPocket) string { return p.ID }, prepend[domain.FinancialPocket]),
		PromoCodes: NewCollection(r.PromoCodes, func(p domain.PromoCode) string { return p.ID }, prepend[domain.PromoCode]),
		Leads:      NewCollection(r.Leads, func(l domain.Lead) string { return l.ID }, prepend[domain.Lead]),
		Assets: NewCollection(r.Assets, func(a domain.Asset) string { return a.ID },
			insertSorted(func(a, b domain.Asset) bool { return a.Name < b.Name })),
		Contracts: NewCollection(r.Contracts, func(c domain.Contract) string { return c.ID }, prepend[domain.Contract]),
		SocialPosts: NewCollection(r.SocialPosts, func(p domain.SocialMediaPost) string { return p.ID },
			insertSorted(func(a, b domain.SocialMediaPost) bool { return a.ScheduledDate.After(b.ScheduledDate) })),
		SOPs: NewCollection(r.SOPs, func(s domain.SOP) string { return s.ID },
			insertSorted(func(a, b domain.SOP) bool { return a.Title < b.Title })),
		Feedback:      NewFeedbackCollection(r.Feedback),
		Notifications: NewNotificationCollection(r.Notifications),
		Profile:       NewProfileStore(r.Profile),
	}
}

type loader interface {
	load(ctx context.Context) (func(), error)
}

func (s *Store) loaders() map[string]loader {
	return map[string]loader{
		"users":         s.Users,
		"clients":       s.Clients,
		"projects":      s.Projects,
		"packages":      s.Packages,
		"addOns":        s.AddOns,
		"teamMembers":   s.TeamMembers,
		"transactions":  s.Transactions,
		"cards":         s.Cards,
		"pockets":       s.Pockets,
		"promoCodes":    s.PromoCodes,
		"leads":         s.Leads,
		"assets":        s.Assets,
		"contracts":     s.Contracts,
		"socialPosts":   s.SocialPosts,
		"sops":          s.SOPs,
		"feedback":      s.Feedback,
		"notifications": s.Notifications,
		"profile":       s.Profile,
	}
}

// LoadAll refreshes every collection from storage concurrently. The refresh
// is all-or-nothing: if any fetch fails, no collection is replaced and the
// returned error names the entities that failed.
func (s *Store) LoadAll(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()

	var (
		wg      sync.WaitGroup
		resMu   sync.Mutex
		applies []func()
		failed  []string
	)
	for name, l := range s.loaders() {
		wg.Add(1)
		go func(name string, l loader) {
			defer wg.Done()
			apply, err := l.load(ctx)
			resMu.Lock()
			defer resMu.Unlock()
			if err != nil {
				log.Error().Err(err).Str("entity", name).Msg("load failed")
				failed = append(failed, name)
				return
			}
			applies = append(applies, apply)
		}(name, l)
	}
	wg.Wait()

	var err error
	if len(failed) > 0 {
		sort.Strings(failed)
		err = fmt.Errorf("load failed for %s", strings.Join(failed, ", "))
	} else {
		for _, apply := range applies {
			apply()
		}
	}

	s.mu.Lock()
	s.loading = false
	s.err = err
	s.mu.Unlock()
	return err
}

// Loading reports whether a LoadAll is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the error from the most recent LoadAll, nil on success.
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

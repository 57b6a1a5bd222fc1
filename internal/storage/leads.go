package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/venstudio/studio-backend/internal/domain"
)

const (
	leadTable = "leads"
	leadCols  = "id, name, contact_channel, location, status, date, notes"
)

// LeadRepository provides persistence operations for leads.
type LeadRepository struct {
	db *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

type leadRow struct {
	id             string
	name           string
	contactChannel string
	location       string
	status         string
	date           time.Time
	notes          sql.NullString
}

func leadRowFrom(l domain.Lead) leadRow {
	return leadRow{
		id:             l.ID,
		name:           l.Name,
		contactChannel: string(l.ContactChannel),
		location:       l.Location,
		status:         string(l.Status),
		date:           l.Date,
		notes:          nullText(l.Notes),
	}
}

func (r leadRow) toDomain() (domain.Lead, error) {
	channel, err := domain.ParseContactChannel(r.contactChannel)
	if err != nil {
		return domain.Lead{}, err
	}
	status, err := domain.ParseLeadStatus(r.status)
	if err != nil {
		return domain.Lead{}, err
	}
	return domain.Lead{
		ID:             r.id,
		Name:           r.name,
		ContactChannel: channel,
		Location:       r.location,
		Status:         status,
		Date:           r.date,
		Notes:          text(r.notes),
	}, nil
}

func scanLead(s scanner) (domain.Lead, error) {
	var r leadRow
	if err := s.Scan(&r.id, &r.name, &r.contactChannel, &r.location,
		&r.status, &r.date, &r.notes); err != nil {
		return domain.Lead{}, err
	}
	return r.toDomain()
}

func (repo *LeadRepository) List(ctx context.Context) ([]domain.Lead, error) {
	q := "SELECT " + leadCols + " FROM leads ORDER BY created_at DESC"
	return queryList(ctx, repo.db, leadTable, q, scanLead)
}

func (repo *LeadRepository) Create(ctx context.Context, l domain.Lead) (domain.Lead, error) {
	r := leadRowFrom(l)
	const q = `
INSERT INTO leads (name, contact_channel, location, status, date, notes)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + leadCols
	args := []any{r.name, r.contactChannel, r.location, r.status, r.date, r.notes}
	return insertOne(ctx, repo.db, leadTable, q, args, scanLead)
}

func leadSets(u domain.LeadUpdate) map[string]any {
	sets := map[string]any{}
	if u.Name != nil {
		sets["name"] = *u.Name
	}
	if u.ContactChannel != nil {
		sets["contact_channel"] = string(*u.ContactChannel)
	}
	if u.Location != nil {
		sets["location"] = *u.Location
	}
	if u.Status != nil {
		sets["status"] = string(*u.Status)
	}
	if u.Date != nil {
		sets["date"] = *u.Date
	}
	if u.Notes != nil {
		sets["notes"] = nullText(*u.Notes)
	}
	return sets
}

func (repo *LeadRepository) Update(ctx context.Context, id string, u domain.LeadUpdate) (domain.Lead, error) {
	return updateOne(ctx, repo.db, leadTable, id, leadSets(u), leadCols, scanLead)
}

func (repo *LeadRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, repo.db, leadTable, id)
}

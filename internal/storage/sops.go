package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/venstudio/studio-backend/internal/domain"
)

const (
	sopTable = "sops"
	sopCols  = "id, title, category, content, last_updated"
)

// SOPRepository provides persistence operations for standard operating
// procedure documents.
type SOPRepository struct {
	db *sql.DB
}

func NewSOPRepository(db *sql.DB) *SOPRepository {
	return &SOPRepository{db: db}
}

type sopRow struct {
	id          string
	title       string
	category    string
	content     string
	lastUpdated time.Time
}

func (r sopRow) toDomain() (domain.SOP, error) {
	return domain.SOP{
		ID:          r.id,
		Title:       r.title,
		Category:    r.category,
		Content:     r.content,
		LastUpdated: r.lastUpdated,
	}, nil
}

func scanSOP(s scanner) (domain.SOP, error) {
	var r sopRow
	if err := s.Scan(&r.id, &r.title, &r.category, &r.content, &r.lastUpdated); err != nil {
		return domain.SOP{}, err
	}
	return r.toDomain()
}

func (repo *SOPRepository) List(ctx context.Context) ([]domain.SOP, error) {
	q := "SELECT " + sopCols + " FROM sops ORDER BY title ASC"
	return queryList(ctx, repo.db, sopTable, q, scanSOP)
}

func (repo *SOPRepository) Create(ctx context.Context, s domain.SOP) (domain.SOP, error) {
	const q = `
INSERT INTO sops (title, category, content, last_updated)
VALUES ($1, $2, $3, now())
RETURNING ` + sopCols
	args := []any{s.Title, s.Category, s.Content}
	return insertOne(ctx, repo.db, sopTable, q, args, scanSOP)
}

func sopSets(u domain.SOPUpdate) map[string]any {
	// Any edit refreshes last_updated.
	sets := map[string]any{"last_updated": time.Now().UTC()}
	if u.Title != nil {
		sets["title"] = *u.Title
	}
	if u.Category != nil {
		sets["category"] = *u.Category
	}
	if u.Content != nil {
		sets["content"] = *u.Content
	}
	return sets
}

func (repo *SOPRepository) Update(ctx context.Context, id string, u domain.SOPUpdate) (domain.SOP, error) {
	return updateOne(ctx, repo.db, sopTable, id, sopSets(u), sopCols, scanSOP)
}

func (repo *SOPRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, repo.db, sopTable, id)
}

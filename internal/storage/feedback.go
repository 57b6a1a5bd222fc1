package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/venstudio/studio-backend/internal/domain"
)

const (
	feedbackTable = "client_feedback"
	feedbackCols  = "id, client_name, satisfaction, rating, feedback, date"
)

// FeedbackRepository stores client feedback. Feedback is append-only, so
// there is no update or delete.
type FeedbackRepository struct {
	db *sql.DB
}

func NewFeedbackRepository(db *sql.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

type feedbackRow struct {
	id           string
	clientName   string
	satisfaction string
	rating       int
	feedback     string
	date         time.Time
}

func (r feedbackRow) toDomain() (domain.ClientFeedback, error) {
	sat, err := domain.ParseSatisfaction(r.satisfaction)
	if err != nil {
		return domain.ClientFeedback{}, err
	}
	return domain.ClientFeedback{
		ID:           r.id,
		ClientName:   r.clientName,
		Satisfaction: sat,
		Rating:       r.rating,
		Feedback:     r.feedback,
		Date:         r.date,
	}, nil
}

func scanFeedback(s scanner) (domain.ClientFeedback, error) {
	var r feedbackRow
	if err := s.Scan(&r.id, &r.clientName, &r.satisfaction, &r.rating,
		&r.feedback, &r.date); err != nil {
		return domain.ClientFeedback{}, err
	}
	return r.toDomain()
}

func (repo *FeedbackRepository) List(ctx context.Context) ([]domain.ClientFeedback, error) {
	q := "SELECT " + feedbackCols + " FROM client_feedback ORDER BY date DESC"
	return queryList(ctx, repo.db, feedbackTable, q, scanFeedback)
}

func (repo *FeedbackRepository) Create(ctx context.Context, f domain.ClientFeedback) (domain.ClientFeedback, error) {
	const q = `
INSERT INTO client_feedback (client_name, satisfaction, rating, feedback, date)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + feedbackCols
	args := []any{f.ClientName, string(f.Satisfaction), f.Rating, f.Feedback, f.Date}
	return insertOne(ctx, repo.db, feedbackTable, q, args, scanFeedback)
}

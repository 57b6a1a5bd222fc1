package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/venstudio/studio-backend/internal/domain"
)

const (
	socialTable = "social_media_posts"
	socialCols  = "id, project_id, client_name, post_type, platform, scheduled_date, caption, media_url, status, notes"
)

// SocialPostRepository provides persistence operations for planned social
// media posts.
type SocialPostRepository struct {
	db *sql.DB
}

func NewSocialPostRepository(db *sql.DB) *SocialPostRepository {
	return &SocialPostRepository{db: db}
}

type socialRow struct {
	id            string
	projectID     string
	clientName    string
	postType      string
	platform      string
	scheduledDate time.Time
	caption       string
	mediaURL      sql.NullString
	status        string
	notes         sql.NullString
}

func socialRowFrom(p domain.SocialMediaPost) socialRow {
	return socialRow{
		id:            p.ID,
		projectID:     p.ProjectID,
		clientName:    p.ClientName,
		postType:      string(p.PostType),
		platform:      p.Platform,
		scheduledDate: p.ScheduledDate,
		caption:       p.Caption,
		mediaURL:      nullText(p.MediaURL),
		status:        string(p.Status),
		notes:         nullText(p.Notes),
	}
}

func (r socialRow) toDomain() (domain.SocialMediaPost, error) {
	postType, err := domain.ParsePostType(r.postType)
	if err != nil {
		return domain.SocialMediaPost{}, err
	}
	status, err := domain.ParsePostStatus(r.status)
	if err != nil {
		return domain.SocialMediaPost{}, err
	}
	return domain.SocialMediaPost{
		ID:            r.id,
		ProjectID:     r.projectID,
		ClientName:    r.clientName,
		PostType:      postType,
		Platform:      r.platform,
		ScheduledDate: r.scheduledDate,
		Caption:       r.caption,
		MediaURL:      text(r.mediaURL),
		Status:        status,
		Notes:         text(r.notes),
	}, nil
}

func scanSocialPost(s scanner) (domain.SocialMediaPost, error) {
	var r socialRow
	if err := s.Scan(&r.id, &r.projectID, &r.clientName, &r.postType,
		&r.platform, &r.scheduledDate, &r.caption, &r.mediaURL,
		&r.status, &r.notes); err != nil {
		return domain.SocialMediaPost{}, err
	}
	return r.toDomain()
}

func (repo *SocialPostRepository) List(ctx context.Context) ([]domain.SocialMediaPost, error) {
	q := "SELECT " + socialCols + " FROM social_media_posts ORDER BY scheduled_date DESC"
	return queryList(ctx, repo.db, socialTable, q, scanSocialPost)
}

func (repo *SocialPostRepository) Create(ctx context.Context, p domain.SocialMediaPost) (domain.SocialMediaPost, error) {
	r := socialRowFrom(p)
	const q = `
INSERT INTO social_media_posts (project_id, client_name, post_type, platform, scheduled_date, caption, media_url, status, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + socialCols
	args := []any{r.projectID, r.clientName, r.postType, r.platform,
		r.scheduledDate, r.caption, r.mediaURL, r.status, r.notes}
	return insertOne(ctx, repo.db, socialTable, q, args, scanSocialPost)
}

func socialSets(u domain.SocialMediaPostUpdate) map[string]any {
	sets := map[string]any{}
	if u.ProjectID != nil {
		sets["project_id"] = *u.ProjectID
	}
	if u.ClientName != nil {
		sets["client_name"] = *u.ClientName
	}
	if u.PostType != nil {
		sets["post_type"] = string(*u.PostType)
	}
	if u.Platform != nil {
		sets["platform"] = *u.Platform
	}
	if u.ScheduledDate != nil {
		sets["scheduled_date"] = *u.ScheduledDate
	}
	if u.Caption != nil {
		sets["caption"] = *u.Caption
	}
	if u.MediaURL != nil {
		sets["media_url"] = nullText(*u.MediaURL)
	}
	if u.Status != nil {
		sets["status"] = string(*u.Status)
	}
	if u.Notes != nil {
		sets["notes"] = nullText(*u.Notes)
	}
	return sets
}

func (repo *SocialPostRepository) Update(ctx context.Context, id string, u domain.SocialMediaPostUpdate) (domain.SocialMediaPost, error) {
	return updateOne(ctx, repo.db, socialTable, id, socialSets(u), socialCols, scanSocialPost)
}

func (repo *SocialPostRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, repo.db, socialTable, id)
}

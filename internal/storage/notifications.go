package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/venstudio/studio-backend/internal/domain"
)

const (
	notificationTable = "notifications"
	notificationCols  = "id, title, message, timestamp, is_read, icon, link_view, link_action"
)

// NotificationRepository provides persistence operations for in-app
// notifications.
type NotificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

type notificationRow struct {
	id         string
	title      string
	message    string
	timestamp  time.Time
	isRead     bool
	icon       string
	linkView   sql.NullString
	linkAction []byte
}

func notificationRowFrom(n domain.Notification) (notificationRow, error) {
	r := notificationRow{
		id:        n.ID,
		title:     n.Title,
		message:   n.Message,
		timestamp: n.Timestamp,
		isRead:    n.IsRead,
		icon:      n.Icon,
	}
	if n.Link != nil {
		r.linkView = nullText(n.Link.View)
		if len(n.Link.Action) > 0 {
			var err error
			if r.linkAction, err = jsonb("link_action", n.Link.Action); err != nil {
				return notificationRow{}, err
			}
		}
	}
	return r, nil
}

func (r notificationRow) toDomain() (domain.Notification, error) {
	n := domain.Notification{
		ID:        r.id,
		Title:     r.title,
		Message:   r.message,
		Timestamp: r.timestamp,
		IsRead:    r.isRead,
		Icon:      r.icon,
	}
	if r.linkView.Valid {
		link := &domain.NotificationLink{View: r.linkView.String}
		if err := fromJSONB("link_action", r.linkAction, &link.Action); err != nil {
			return domain.Notification{}, err
		}
		n.Link = link
	}
	return n, nil
}

func scanNotification(s scanner) (domain.Notification, error) {
	var r notificationRow
	if err := s.Scan(&r.id, &r.title, &r.message, &r.timestamp,
		&r.isRead, &r.icon, &r.linkView, &r.linkAction); err != nil {
		return domain.Notification{}, err
	}
	return r.toDomain()
}

func (repo *NotificationRepository) List(ctx context.Context) ([]domain.Notification, error) {
	q := "SELECT " + notificationCols + " FROM notifications ORDER BY timestamp DESC"
	return queryList(ctx, repo.db, notificationTable, q, scanNotification)
}

func (repo *NotificationRepository) Create(ctx context.Context, n domain.Notification) (domain.Notification, error) {
	r, err := notificationRowFrom(n)
	if err != nil {
		return domain.Notification{}, err
	}
	const q = `
INSERT INTO notifications (title, message, timestamp, is_read, icon, link_view, link_action)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + notificationCols
	args := []any{r.title, r.message, r.timestamp, r.isRead, r.icon, r.linkView, r.linkAction}
	return insertOne(ctx, repo.db, notificationTable, q, args, scanNotification)
}

// MarkAsRead flags a single notification as read and returns the updated row.
func (repo *NotificationRepository) MarkAsRead(ctx context.Context, id string) (domain.Notification, error) {
	return updateOne(ctx, repo.db, notificationTable, id,
		map[string]any{"is_read": true}, notificationCols, scanNotification)
}

// MarkAllAsRead flags every unread notification as read.
func (repo *NotificationRepository) MarkAllAsRead(ctx context.Context) error {
	const q = `UPDATE notifications SET is_read = true, updated_at = now() WHERE is_read = false`
	if _, err := repo.db.ExecContext(ctx, q); err != nil {
		log.Error().Err(err).Str("table", notificationTable).Msg("mark all as read failed")
		return fmt.Errorf("mark all read %s: %w", notificationTable, err)
	}
	return nil
}

func (repo *NotificationRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, repo.db, notificationTable, id)
}

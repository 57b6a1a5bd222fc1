package storage

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notificationColumns() []string {
	return []string{"id", "title", "message", "timestamp", "is_read", "icon",
		"link_view", "link_action"}
}

func TestNotificationRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewNotificationRepository(db)

	ts := time.Date(2025, 7, 10, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM notifications ORDER BY timestamp DESC`).
		WillReturnRows(sqlmock.NewRows(notificationColumns()).
			AddRow("n1", "New booking", "Andi booked a session", ts, false, "booking",
				"projects", []byte(`{"projectId":"pr1"}`)).
			AddRow("n2", "Heads up", "Deadline tomorrow", ts, true, "deadline", nil, nil))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.NotNil(t, got[0].Link)
	assert.Equal(t, "projects", got[0].Link.View)
	assert.Equal(t, "pr1", got[0].Link.Action["projectId"])
	assert.Nil(t, got[1].Link, "NULL link_view means no link")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_MarkAsRead(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewNotificationRepository(db)

	ts := time.Date(2025, 7, 10, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		`UPDATE notifications SET updated_at = now(), is_read = $2 WHERE id = $1 RETURNING `+notificationCols)).
		WithArgs("n1", true).
		WillReturnRows(sqlmock.NewRows(notificationColumns()).
			AddRow("n1", "New booking", "Andi booked a session", ts, true, "booking", nil, nil))

	got, err := repo.MarkAsRead(context.Background(), "n1")
	require.NoError(t, err)
	assert.True(t, got.IsRead)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_MarkAllAsRead(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewNotificationRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE notifications SET is_read = true, updated_at = now() WHERE is_read = false`)).
		WillReturnResult(sqlmock.NewResult(0, 4))

	require.NoError(t, repo.MarkAllAsRead(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

package storage

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venstudio/studio-backend/internal/domain"
)

func profileColumnNames() []string {
	return []string{"full_name", "email", "phone", "company_name", "website",
		"address", "bank_account", "authorized_signer", "id_number", "bio",
		"income_categories", "expense_categories", "project_types", "event_types",
		"asset_categories", "sop_categories", "project_status_config",
		"notification_settings", "security_settings", "briefing_template",
		"terms_and_conditions", "contract_template"}
}

func profileRowValues() []driverValue {
	return []driverValue{"Ven", "ven@studio.id", "0812", "Ven Studio", nil,
		"Jakarta", "BCA 123", nil, nil, nil,
		[]byte(`["DP Proyek"]`), []byte(`["Transport"]`), []byte(`["Wedding"]`), []byte(`["Akad"]`),
		[]byte(`["Camera"]`), []byte(`["Editing"]`), []byte(`[]`),
		[]byte(`{"newProject":true,"paymentConfirmation":true,"deadlineReminder":false}`),
		[]byte(`{"twoFactorEnabled":false}`), nil, nil, nil}
}

type driverValue = driver.Value

func TestProfileRepository_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewProfileRepository(db)

	t.Run("returns nil when none saved", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM profile LIMIT 1`).
			WillReturnRows(sqlmock.NewRows(profileColumnNames()))

		p, err := repo.Get(context.Background())
		require.NoError(t, err)
		assert.Nil(t, p)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps the stored record", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM profile LIMIT 1`).
			WillReturnRows(sqlmock.NewRows(profileColumnNames()).
				AddRow(profileRowValues()...))

		p, err := repo.Get(context.Background())
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "Ven Studio", p.CompanyName)
		assert.Equal(t, "", p.Website, "NULL website reads back as empty string")
		assert.Equal(t, []string{"DP Proyek"}, p.IncomeCategories)
		assert.Equal(t, []domain.ProjectStatusConfig{}, p.ProjectStatusConfig)
		assert.True(t, p.NotificationSettings.NewProject)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates query errors", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM profile`).
			WillReturnError(sql.ErrConnDone)

		_, err := repo.Get(context.Background())
		require.Error(t, err)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProfileRepository_Upsert(t *testing.T) {
	profile := domain.Profile{
		FullName:    "Ven",
		Email:       "ven@studio.id",
		Phone:       "0812",
		CompanyName: "Ven Studio",
		Address:     "Jakarta",
		BankAccount: "BCA 123",
	}

	t.Run("updates the existing record", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewProfileRepository(db)

		mock.ExpectQuery(`UPDATE profile SET`).
			WillReturnRows(sqlmock.NewRows(profileColumnNames()).
				AddRow(profileRowValues()...))

		saved, err := repo.Upsert(context.Background(), profile)
		require.NoError(t, err)
		assert.Equal(t, "Ven Studio", saved.CompanyName)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("falls back to insert when no record exists", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewProfileRepository(db)

		mock.ExpectQuery(`UPDATE profile SET`).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(`INSERT INTO profile`).
			WillReturnRows(sqlmock.NewRows(profileColumnNames()).
				AddRow(profileRowValues()...))

		saved, err := repo.Upsert(context.Background(), profile)
		require.NoError(t, err)
		assert.Equal(t, "Ven", saved.FullName)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venstudio/studio-backend/internal/domain"
)

func TestProjectRowRoundTrip(t *testing.T) {
	deadline := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	p := domain.Project{
		ID:            "pr1",
		ProjectName:   "Akad Andi & Sari",
		ClientID:      "c1",
		ClientName:    "Andi",
		ProjectType:   "Wedding",
		PackageID:     "pkg1",
		PackageName:   "Silver",
		Date:          time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC),
		DeadlineDate:  &deadline,
		Location:      "Bandung",
		Progress:      40,
		Status:        "Editing",
		TotalCost:     12000000,
		AmountPaid:    6000000,
		PaymentStatus: domain.PaymentStatusPartial,
		Team: []domain.AssignedMember{
			{MemberID: "m1", Name: "Budi", Role: "Photographer", Fee: 1500000},
		},
		Revisions: []domain.Revision{
			{ID: "r1", AdminNotes: "tone", Status: domain.RevisionStatusPending},
		},
		ClientSubStatusNotes: map[string]string{"Editing": "warna kurang warm"},
	}

	r, err := projectRowFrom(p)
	require.NoError(t, err)
	got, err := r.toDomain()
	require.NoError(t, err)

	assert.Equal(t, p.ProjectName, got.ProjectName)
	require.NotNil(t, got.DeadlineDate)
	assert.Equal(t, deadline, *got.DeadlineDate)
	assert.Equal(t, p.Team, got.Team)
	assert.Equal(t, p.Revisions, got.Revisions)
	assert.Equal(t, p.ClientSubStatusNotes, got.ClientSubStatusNotes)
}

func TestProjectRowDefaults(t *testing.T) {
	// A bare row, as a sparse insert would produce: nested blobs NULL,
	// optional text NULL.
	r := projectRow{
		id:            "pr1",
		projectName:   "Prewedding Tia",
		clientID:      "c2",
		clientName:    "Tia",
		projectType:   "Prewedding",
		date:          time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC),
		status:        "New",
		paymentStatus: "Unpaid",
	}

	got, err := r.toDomain()
	require.NoError(t, err)

	assert.Nil(t, got.DeadlineDate)
	assert.Equal(t, "", got.Notes)
	assert.Equal(t, []domain.AddOn{}, got.AddOns, "NULL blob reads back as empty slice, not nil")
	assert.Equal(t, []domain.AssignedMember{}, got.Team)
	assert.Equal(t, []domain.Revision{}, got.Revisions)
	assert.Equal(t, map[string]string{}, got.ClientSubStatusNotes)
	assert.Equal(t, domain.PaymentStatusUnpaid, got.PaymentStatus)
}

func TestProjectRowRejectsUnknownPaymentStatus(t *testing.T) {
	r := projectRow{id: "pr1", paymentStatus: "Lunas Banget"}

	_, err := r.toDomain()
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
}

func TestProjectRowRejectsCorruptBlob(t *testing.T) {
	r := projectRow{
		id:            "pr1",
		paymentStatus: "Unpaid",
		revisions:     []byte(`{not json`),
	}

	_, err := r.toDomain()
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
	assert.Contains(t, err.Error(), "revisions")
}

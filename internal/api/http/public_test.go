package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venstudio/studio-backend/internal/domain"
	"github.com/venstudio/studio-backend/internal/store"
)

func publicRouter(st *store.Store) *gin.Engine {
	r := gin.New()
	NewPublicHandler(st).RegisterRoutes(r.Group("/public"))
	return r
}

func sendJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return sendJSON(t, r, http.MethodPost, path, body)
}

func patchJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return sendJSON(t, r, http.MethodPatch, path, body)
}

func TestPublicBooking(t *testing.T) {
	st := newTestStore()
	pkg, err := st.Packages.Create(context.Background(), domain.Package{Name: "Silver"})
	require.NoError(t, err)

	r := publicRouter(st)

	w := postJSON(t, r, "/public/booking", gin.H{
		"clientName":  "Andi",
		"email":       "andi@mail.com",
		"phone":       "0812",
		"projectName": "Akad Andi & Sari",
		"projectType": "Wedding",
		"location":    "Bandung",
		"date":        time.Date(2025, 9, 20, 0, 0, 0, 0, time.UTC),
		"packageId":   pkg.ID,
		"totalCost":   12000000,
		"dpAmount":    4000000,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	clients := st.Clients.All()
	require.Len(t, clients, 1)
	assert.NotEmpty(t, clients[0].PortalAccessID, "booking issues a portal token")

	projects := st.Projects.All()
	require.Len(t, projects, 1)
	assert.Equal(t, clients[0].ID, projects[0].ClientID)
	assert.Equal(t, "Silver", projects[0].PackageName)
	assert.Equal(t, domain.PaymentStatusPartial, projects[0].PaymentStatus)

	txs := st.Transactions.All()
	require.Len(t, txs, 1, "a down payment books an income transaction")
	assert.Equal(t, 4000000.0, txs[0].Amount)
	assert.Equal(t, domain.TransactionIncome, txs[0].Type)

	leads := st.Leads.All()
	require.Len(t, leads, 1)
	assert.Equal(t, domain.LeadStatusConverted, leads[0].Status)
}

func TestPublicBookingWithoutDownPayment(t *testing.T) {
	st := newTestStore()
	r := publicRouter(st)

	w := postJSON(t, r, "/public/booking", gin.H{
		"clientName":  "Tia",
		"email":       "tia@mail.com",
		"phone":       "0813",
		"projectName": "Prewedding Tia",
		"projectType": "Prewedding",
		"date":        time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		"packageId":   "missing-package",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	projects := st.Projects.All()
	require.Len(t, projects, 1)
	assert.Equal(t, domain.PaymentStatusUnpaid, projects[0].PaymentStatus)
	assert.Empty(t, projects[0].PackageName, "unknown package id leaves the name blank")
	assert.Empty(t, st.Transactions.All())
}

func TestPublicBookingRejectsIncompleteBody(t *testing.T) {
	st := newTestStore()
	r := publicRouter(st)

	w := postJSON(t, r, "/public/booking", gin.H{"clientName": "Andi"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, st.Clients.All())
}

func TestPublicLead(t *testing.T) {
	st := newTestStore()
	r := publicRouter(st)

	t.Run("creates a new lead", func(t *testing.T) {
		w := postJSON(t, r, "/public/leads", gin.H{
			"name":           "Sari",
			"contactChannel": "Instagram",
			"location":       "Jakarta",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		leads := st.Leads.All()
		require.Len(t, leads, 1)
		assert.Equal(t, domain.LeadStatusNew, leads[0].Status)
		assert.Equal(t, domain.ChannelInstagram, leads[0].ContactChannel)
	})

	t.Run("rejects an unknown channel", func(t *testing.T) {
		w := postJSON(t, r, "/public/leads", gin.H{
			"name":           "Sari",
			"contactChannel": "Telegraph",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPublicFeedback(t *testing.T) {
	st := newTestStore()
	r := publicRouter(st)

	t.Run("stores valid feedback", func(t *testing.T) {
		w := postJSON(t, r, "/public/feedback", gin.H{
			"clientName":   "Andi",
			"satisfaction": "VerySatisfied",
			"rating":       5,
			"feedback":     "Hasilnya bagus sekali",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		require.Len(t, st.Feedback.All(), 1)
	})

	t.Run("rejects an out-of-range rating", func(t *testing.T) {
		w := postJSON(t, r, "/public/feedback", gin.H{
			"clientName":   "Andi",
			"satisfaction": "Satisfied",
			"rating":       9,
			"feedback":     "x",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPublicRevisionSubmit(t *testing.T) {
	st := newTestStore()
	deadline := time.Date(2025, 9, 25, 0, 0, 0, 0, time.UTC)
	project, err := st.Projects.Create(context.Background(), domain.Project{
		ProjectName: "Akad",
		Revisions: []domain.Revision{
			{ID: "rev1", AdminNotes: "tone down the highlights", Deadline: deadline, Status: domain.RevisionStatusPending},
			{ID: "rev2", AdminNotes: "crop the group photos", Deadline: deadline, Status: domain.RevisionStatusPending},
		},
	})
	require.NoError(t, err)

	r := publicRouter(st)

	t.Run("records the freelancer submission and stamps completion", func(t *testing.T) {
		w := patchJSON(t, r, "/public/revisions", gin.H{
			"projectId":       project.ID,
			"revisionId":      "rev1",
			"freelancerNotes": "sudah selesai, cek link",
			"driveLink":       "https://drive.example/rev1",
			"status":          "Completed",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		got, ok := st.Projects.Get(project.ID)
		require.True(t, ok)
		require.Len(t, got.Revisions, 2)
		rev := got.Revisions[0]
		assert.Equal(t, "sudah selesai, cek link", rev.FreelancerNotes)
		assert.Equal(t, "https://drive.example/rev1", rev.DriveLink)
		assert.Equal(t, domain.RevisionStatusCompleted, rev.Status)
		require.NotNil(t, rev.CompletedDate, "completing a round stamps its date")
		assert.Equal(t, "tone down the highlights", rev.AdminNotes, "admin fields stay untouched")
	})

	t.Run("a round still in progress carries no completion date", func(t *testing.T) {
		w := patchJSON(t, r, "/public/revisions", gin.H{
			"projectId":  project.ID,
			"revisionId": "rev2",
			"driveLink":  "https://drive.example/rev2",
			"status":     "InProgress",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		got, ok := st.Projects.Get(project.ID)
		require.True(t, ok)
		rev := got.Revisions[1]
		assert.Equal(t, domain.RevisionStatusInProgress, rev.Status)
		assert.Nil(t, rev.CompletedDate)
	})

	t.Run("unknown revision is a 404", func(t *testing.T) {
		w := patchJSON(t, r, "/public/revisions", gin.H{
			"projectId":  project.ID,
			"revisionId": "missing",
			"status":     "InProgress",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown project is a 404", func(t *testing.T) {
		w := patchJSON(t, r, "/public/revisions", gin.H{
			"projectId":  "missing",
			"revisionId": "rev1",
			"status":     "InProgress",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown status is a 400", func(t *testing.T) {
		w := patchJSON(t, r, "/public/revisions", gin.H{
			"projectId":  project.ID,
			"revisionId": "rev1",
			"status":     "Selesai Total",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

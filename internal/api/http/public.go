package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/venstudio/studio-backend/internal/domain"
	"github.com/venstudio/studio-backend/internal/store"
)

// PublicHandler serves the unauthenticated forms: booking, lead capture,
// feedback and freelancer revision submissions.
type PublicHandler struct {
	store *store.Store
}

func NewPublicHandler(st *store.Store) *PublicHandler {
	return &PublicHandler{store: st}
}

type bookingRequest struct {
	ClientName  string    `json:"clientName" binding:"required"`
	Email       string    `json:"email" binding:"required"`
	Phone       string    `json:"phone" binding:"required"`
	Instagram   string    `json:"instagram"`
	ProjectName string    `json:"projectName" binding:"required"`
	ProjectType string    `json:"projectType" binding:"required"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date" binding:"required"`
	PackageID   string    `json:"packageId" binding:"required"`
	TotalCost   float64   `json:"totalCost"`
	DPAmount    float64   `json:"dpAmount"`
}

// Booking creates the client, their project, the down-payment transaction
// when one was made, and a converted lead, in that order. Later failures do
// not roll back earlier writes; the admin reconciles partial bookings by
// hand, as before.
func (h *PublicHandler) Booking(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	ctx := c.Request.Context()
	now := time.Now().UTC()

	client, err := h.store.Clients.Create(ctx, domain.Client{
		Name:           req.ClientName,
		Email:          req.Email,
		Phone:          req.Phone,
		Instagram:      req.Instagram,
		Since:          now,
		Status:         domain.ClientStatusActive,
		ClientType:     domain.ClientTypeDirect,
		LastContact:    now,
		PortalAccessID: uuid.New().String(),
	})
	if err != nil {
		writeError(c, "clients", "public-booking", err)
		return
	}

	packageName := ""
	if pkg, ok := h.store.Packages.Get(req.PackageID); ok {
		packageName = pkg.Name
	}

	paymentStatus := domain.PaymentStatusUnpaid
	if req.DPAmount > 0 {
		paymentStatus = domain.PaymentStatusPartial
	}
	project, err := h.store.Projects.Create(ctx, domain.Project{
		ProjectName:   req.ProjectName,
		ClientID:      client.ID,
		ClientName:    client.Name,
		ProjectType:   req.ProjectType,
		PackageID:     req.PackageID,
		PackageName:   packageName,
		Date:          req.Date,
		Location:      req.Location,
		Status:        "New",
		TotalCost:     req.TotalCost,
		AmountPaid:    req.DPAmount,
		PaymentStatus: paymentStatus,
	})
	if err != nil {
		writeError(c, "projects", "public-booking", err)
		return
	}

	if req.DPAmount > 0 {
		_, err = h.store.Transactions.Create(ctx, domain.Transaction{
			Date:        now,
			Description: "DP " + project.ProjectName,
			Amount:      req.DPAmount,
			Type:        domain.TransactionIncome,
			ProjectID:   project.ID,
			Category:    "DP Proyek",
			Method:      domain.MethodTransfer,
		})
		if err != nil {
			writeError(c, "transactions", "public-booking", err)
			return
		}
	}

	_, err = h.store.Leads.Create(ctx, domain.Lead{
		Name:           client.Name,
		ContactChannel: domain.ChannelWebsite,
		Location:       req.Location,
		Status:         domain.LeadStatusConverted,
		Date:           now,
		Notes:          "Booking form: " + project.ProjectName,
	})
	if err != nil {
		writeError(c, "leads", "public-booking", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"client":  client,
		"project": project,
	})
}

type leadRequest struct {
	Name           string `json:"name" binding:"required"`
	ContactChannel string `json:"contactChannel" binding:"required"`
	Location       string `json:"location"`
	Notes          string `json:"notes"`
}

func (h *PublicHandler) Lead(c *gin.Context) {
	var req leadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	channel, err := domain.ParseContactChannel(req.ContactChannel)
	if err != nil {
		writeError(c, "leads", "public-lead", err)
		return
	}
	lead, err := h.store.Leads.Create(c.Request.Context(), domain.Lead{
		Name:           req.Name,
		ContactChannel: channel,
		Location:       req.Location,
		Status:         domain.LeadStatusNew,
		Date:           time.Now().UTC(),
		Notes:          req.Notes,
	})
	if err != nil {
		writeError(c, "leads", "public-lead", err)
		return
	}
	c.JSON(http.StatusCreated, lead)
}

type feedbackRequest struct {
	ClientName   string `json:"clientName" binding:"required"`
	Satisfaction string `json:"satisfaction" binding:"required"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Feedback     string `json:"feedback" binding:"required"`
}

func (h *PublicHandler) Feedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	sat, err := domain.ParseSatisfaction(req.Satisfaction)
	if err != nil {
		writeError(c, "client_feedback", "public-feedback", err)
		return
	}
	created, err := h.store.Feedback.Create(c.Request.Context(), domain.ClientFeedback{
		ClientName:   req.ClientName,
		Satisfaction: sat,
		Rating:       req.Rating,
		Feedback:     req.Feedback,
		Date:         time.Now().UTC(),
	})
	if err != nil {
		writeError(c, "client_feedback", "public-feedback", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

type revisionSubmitRequest struct {
	ProjectID       string `json:"projectId" binding:"required"`
	RevisionID      string `json:"revisionId" binding:"required"`
	FreelancerNotes string `json:"freelancerNotes"`
	DriveLink       string `json:"driveLink"`
	Status          string `json:"status" binding:"required"`
}

// SubmitRevision records a freelancer's work on an existing revision round:
// their notes, the drive link, and the new status. Moving a round to
// Completed stamps its completion date.
func (h *PublicHandler) SubmitRevision(c *gin.Context) {
	var req revisionSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	status, err := domain.ParseRevisionStatus(req.Status)
	if err != nil {
		writeError(c, "projects", "public-revision", err)
		return
	}
	project, ok := h.store.Projects.Get(req.ProjectID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}

	revisions := append([]domain.Revision{}, project.Revisions...)
	found := false
	for i := range revisions {
		if revisions[i].ID != req.RevisionID {
			continue
		}
		revisions[i].FreelancerNotes = req.FreelancerNotes
		revisions[i].DriveLink = req.DriveLink
		revisions[i].Status = status
		if status == domain.RevisionStatusCompleted {
			now := time.Now().UTC()
			revisions[i].CompletedDate = &now
		}
		found = true
		break
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "revision not found"})
		return
	}

	updated, err := h.store.Projects.Update(c.Request.Context(), project.ID,
		domain.ProjectUpdate{Revisions: &revisions})
	if err != nil {
		writeError(c, "projects", "public-revision", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *PublicHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/booking", h.Booking)
	rg.POST("/leads", h.Lead)
	rg.POST("/feedback", h.Feedback)
	rg.PATCH("/revisions", h.SubmitRevision)
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venstudio/studio-backend/internal/domain"
	"github.com/venstudio/studio-backend/internal/store"
)

// RegisterAdmin wires the session-protected admin surface under the given
// group: one CRUD block per entity plus the odd-shaped resources
// (feedback, notifications, profile) and the bulk snapshot.
func RegisterAdmin(rg *gin.RouterGroup, st *store.Store) {
	registerResource(rg.Group("/users"), "users", st.Users)
	registerResource(rg.Group("/clients"), "clients", st.Clients)
	registerResource(rg.Group("/projects"), "projects", st.Projects)
	registerResource(rg.Group("/packages"), "packages", st.Packages)
	registerResource(rg.Group("/add-ons"), "add_ons", st.AddOns)
	registerResource(rg.Group("/team-members"), "team_members", st.TeamMembers)
	registerResource(rg.Group("/transactions"), "transactions", st.Transactions)
	registerResource(rg.Group("/cards"), "cards", st.Cards)
	registerResource(rg.Group("/pockets"), "financial_pockets", st.Pockets)
	registerResource(rg.Group("/promo-codes"), "promo_codes", st.PromoCodes)
	registerResource(rg.Group("/leads"), "leads", st.Leads)
	registerResource(rg.Group("/assets"), "assets", st.Assets)
	registerResource(rg.Group("/contracts"), "contracts", st.Contracts)
	registerResource(rg.Group("/social-posts"), "social_media_posts", st.SocialPosts)
	registerResource(rg.Group("/sops"), "sops", st.SOPs)

	rg.GET("/feedback", func(c *gin.Context) {
		c.JSON(http.StatusOK, st.Feedback.All())
	})

	registerNotifications(rg.Group("/notifications"), st.Notifications)
	registerProfile(rg.Group("/profile"), st.Profile)

	rg.POST("/data/refresh", func(c *gin.Context) {
		if err := st.LoadAll(c.Request.Context()); err != nil {
			writeError(c, "store", "refresh", err)
			return
		}
		c.Status(http.StatusNoContent)
	})
}

func registerNotifications(rg *gin.RouterGroup, col *store.NotificationCollection) {
	rg.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, col.All())
	})
	rg.POST("", func(c *gin.Context) {
		var n domain.Notification
		if err := c.ShouldBindJSON(&n); err != nil {
			writeBindError(c, err)
			return
		}
		created, err := col.Create(c.Request.Context(), n)
		if err != nil {
			writeError(c, "notifications", "create", err)
			return
		}
		c.JSON(http.StatusCreated, created)
	})
	rg.POST("/:id/read", func(c *gin.Context) {
		updated, err := col.MarkAsRead(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, "notifications", "mark-read", err)
			return
		}
		c.JSON(http.StatusOK, updated)
	})
	rg.POST("/read-all", func(c *gin.Context) {
		if err := col.MarkAllAsRead(c.Request.Context()); err != nil {
			writeError(c, "notifications", "mark-all-read", err)
			return
		}
		c.Status(http.StatusNoContent)
	})
	rg.DELETE("/:id", func(c *gin.Context) {
		if err := col.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, "notifications", "delete", err)
			return
		}
		c.Status(http.StatusNoContent)
	})
}

func registerProfile(rg *gin.RouterGroup, ps *store.ProfileStore) {
	rg.GET("", func(c *gin.Context) {
		p := ps.Get()
		if p == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not set up"})
			return
		}
		c.JSON(http.StatusOK, p)
	})
	rg.PUT("", func(c *gin.Context) {
		var p domain.Profile
		if err := c.ShouldBindJSON(&p); err != nil {
			writeBindError(c, err)
			return
		}
		saved, err := ps.Save(c.Request.Context(), p)
		if err != nil {
			writeError(c, "profile", "save", err)
			return
		}
		c.JSON(http.StatusOK, saved)
	})
}

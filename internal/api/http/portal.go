package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venstudio/studio-backend/internal/domain"
	"github.com/venstudio/studio-backend/internal/store"
)

// PortalHandler serves the token-scoped read views for clients and
// freelancers. The access ID is the only credential; an unknown one is a
// plain 404.
type PortalHandler struct {
	store *store.Store
}

func NewPortalHandler(st *store.Store) *PortalHandler {
	return &PortalHandler{store: st}
}

type clientPortalResponse struct {
	Client    domain.Client     `json:"client"`
	Projects  []domain.Project  `json:"projects"`
	Contracts []domain.Contract `json:"contracts"`
}

func (h *PortalHandler) ClientPortal(c *gin.Context) {
	accessID := c.Param("accessId")

	var client *domain.Client
	for _, cl := range h.store.Clients.All() {
		if cl.PortalAccessID == accessID {
			client = &cl
			break
		}
	}
	if client == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	projects := []domain.Project{}
	for _, p := range h.store.Projects.All() {
		if p.ClientID == client.ID {
			projects = append(projects, p)
		}
	}
	contracts := []domain.Contract{}
	for _, ct := range h.store.Contracts.All() {
		if ct.ClientID == client.ID {
			contracts = append(contracts, ct)
		}
	}

	c.JSON(http.StatusOK, clientPortalResponse{
		Client:    *client,
		Projects:  projects,
		Contracts: contracts,
	})
}

type freelancerPortalResponse struct {
	Member   domain.TeamMember `json:"member"`
	Projects []domain.Project  `json:"projects"`
}

func (h *PortalHandler) FreelancerPortal(c *gin.Context) {
	accessID := c.Param("accessId")

	var member *domain.TeamMember
	for _, m := range h.store.TeamMembers.All() {
		if m.PortalAccessID == accessID {
			member = &m
			break
		}
	}
	if member == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	projects := []domain.Project{}
	for _, p := range h.store.Projects.All() {
		for _, am := range p.Team {
			if am.MemberID == member.ID {
				projects = append(projects, p)
				break
			}
		}
	}

	c.JSON(http.StatusOK, freelancerPortalResponse{
		Member:   *member,
		Projects: projects,
	})
}

func (h *PortalHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/portal/:accessId", h.ClientPortal)
	r.GET("/freelancer-portal/:accessId", h.FreelancerPortal)
}

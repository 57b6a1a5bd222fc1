package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venstudio/studio-backend/internal/domain"
	"github.com/venstudio/studio-backend/internal/store"
)

func portalRouter(st *store.Store) *gin.Engine {
	r := gin.New()
	NewPortalHandler(st).RegisterRoutes(r)
	return r
}

func getPath(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestClientPortal(t *testing.T) {
	st := newTestStore()
	ctx := context.Background()

	client, err := st.Clients.Create(ctx, domain.Client{
		Name: "Andi", PortalAccessID: "token-andi",
	})
	require.NoError(t, err)
	other, err := st.Clients.Create(ctx, domain.Client{
		Name: "Tia", PortalAccessID: "token-tia",
	})
	require.NoError(t, err)

	_, err = st.Projects.Create(ctx, domain.Project{ProjectName: "Akad", ClientID: client.ID})
	require.NoError(t, err)
	_, err = st.Projects.Create(ctx, domain.Project{ProjectName: "Prewedding", ClientID: other.ID})
	require.NoError(t, err)
	_, err = st.Contracts.Create(ctx, domain.Contract{ContractNumber: "VP/2025/001", ClientID: client.ID})
	require.NoError(t, err)

	r := portalRouter(st)

	t.Run("returns only that client's records", func(t *testing.T) {
		w := getPath(r, "/portal/token-andi")
		require.Equal(t, http.StatusOK, w.Code)

		var resp clientPortalResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, client.ID, resp.Client.ID)
		require.Len(t, resp.Projects, 1)
		assert.Equal(t, "Akad", resp.Projects[0].ProjectName)
		require.Len(t, resp.Contracts, 1)
	})

	t.Run("unknown token is a plain 404", func(t *testing.T) {
		w := getPath(r, "/portal/bogus")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestFreelancerPortal(t *testing.T) {
	st := newTestStore()
	ctx := context.Background()

	member, err := st.TeamMembers.Create(ctx, domain.TeamMember{
		Name: "Budi", Role: "Photographer", PortalAccessID: "token-budi",
	})
	require.NoError(t, err)

	_, err = st.Projects.Create(ctx, domain.Project{
		ProjectName: "Akad",
		Team:        []domain.AssignedMember{{MemberID: member.ID, Name: "Budi"}},
	})
	require.NoError(t, err)
	_, err = st.Projects.Create(ctx, domain.Project{ProjectName: "Unassigned"})
	require.NoError(t, err)

	r := portalRouter(st)

	t.Run("returns the member and their projects", func(t *testing.T) {
		w := getPath(r, "/freelancer-portal/token-budi")
		require.Equal(t, http.StatusOK, w.Code)

		var resp freelancerPortalResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, member.ID, resp.Member.ID)
		require.Len(t, resp.Projects, 1)
		assert.Equal(t, "Akad", resp.Projects[0].ProjectName)
	})

	t.Run("unknown token is a plain 404", func(t *testing.T) {
		w := getPath(r, "/freelancer-portal/bogus")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

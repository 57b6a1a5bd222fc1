package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venstudio/studio-backend/internal/store"
)

// registerResource wires the standard CRUD routes for one collection:
// GET list, POST create, PATCH sparse update, DELETE.
func registerResource[T, P any](rg *gin.RouterGroup, name string, col *store.Collection[T, P]) {
	rg.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, col.All())
	})

	rg.POST("", func(c *gin.Context) {
		var item T
		if err := c.ShouldBindJSON(&item); err != nil {
			writeBindError(c, err)
			return
		}
		created, err := col.Create(c.Request.Context(), item)
		if err != nil {
			writeError(c, name, "create", err)
			return
		}
		c.JSON(http.StatusCreated, created)
	})

	rg.PATCH("/:id", func(c *gin.Context) {
		var patch P
		if err := c.ShouldBindJSON(&patch); err != nil {
			writeBindError(c, err)
			return
		}
		updated, err := col.Update(c.Request.Context(), c.Param("id"), patch)
		if err != nil {
			writeError(c, name, "update", err)
			return
		}
		c.JSON(http.StatusOK, updated)
	})

	rg.DELETE("/:id", func(c *gin.Context) {
		if err := col.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, name, "delete", err)
			return
		}
		c.Status(http.StatusNoContent)
	})
}

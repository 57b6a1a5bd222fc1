package bootstrap

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	httpapi "github.com/venstudio/studio-backend/internal/api/http"
	"github.com/venstudio/studio-backend/internal/api/http/middleware"
	"github.com/venstudio/studio-backend/internal/auth"
	"github.com/venstudio/studio-backend/internal/store"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *sql.DB
	Redis       *redis.Client
	Store       *store.Store
	Auth        *auth.Service
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	authHandler := httpapi.NewAuthHandler(dep.Auth)

	api := r.Group("/api/v1")
	authHandler.RegisterRoutes(api)

	protected := api.Group("")
	protected.Use(auth.Middleware(dep.Auth))
	httpapi.RegisterAdmin(protected, dep.Store)

	public := r.Group("/public")
	public.Use(middleware.RateLimitMiddleware(rate.Limit(1), 5))
	httpapi.NewPublicHandler(dep.Store).RegisterRoutes(public)

	httpapi.NewPortalHandler(dep.Store).RegisterRoutes(r)

	return r
}

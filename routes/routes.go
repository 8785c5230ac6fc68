package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/armory-api/auth"
	"github.com/junaidrashid-git/armory-api/middleware"
	"github.com/junaidrashid-git/armory-api/notify"
	"github.com/junaidrashid-git/armory-api/services"
	"github.com/rs/zerolog/log"
)

// Deps is everything the HTTP layer needs from the process.
type Deps struct {
	Services     *services.Services
	Tokens       *auth.Tokens
	AuthDisabled bool
	Hub          *notify.Hub
	Images       http.FileSystem
	CORSOrigins  []string
}

// NewRouter builds the engine with logging, recovery, CORS and every route.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(log.Logger), gin.Recovery())

	// Allow large spreadsheet and image uploads
	r.MaxMultipartMemory = 64 << 20

	r.Use(cors.New(corsConfig(d.CORSOrigins)))

	if d.Images != nil {
		r.StaticFS("/images", d.Images)
	}

	SetupRoutes(r, d)
	return r
}

// SetupRoutes is the single entry point that wires up every /api/v1 group.
func SetupRoutes(r *gin.Engine, d Deps) {
	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if d.Hub != nil {
		api.GET("/ws", d.Hub.Handler())
	}

	// Public auth routes (no middleware)
	SetupAuthRoutes(api, d)

	secured := api.Group("")
	secured.Use(middleware.ValidateToken(d.Tokens, d.AuthDisabled))

	SetupCatalogRoutes(api, secured, d.Services)
	SetupCartRoutes(secured, d.Services.Carts)
	SetupOrderRoutes(secured, d.Services.Orders)
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

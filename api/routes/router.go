// api/routes/router.go
package routes

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "tourly/docs"
	"tourly/internal/admin"
	"tourly/internal/auth"
	"tourly/internal/bookings"
	"tourly/internal/catalog"
	"tourly/internal/contacts"
	"tourly/internal/notifications"
	"tourly/internal/shared/config"
	"tourly/internal/shared/database"
	"tourly/internal/shared/middleware"
	"tourly/internal/trips"
	"tourly/pkg/cache"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	cache     cache.Service
	publisher notifications.Publisher
	catalog   *catalog.Catalog

	bookingService bookings.Service
	contactService contacts.Service
	authService    auth.Service
}

// NewRouter builds the services shared by the route groups. publisher may be
// nil, in which case notifications are dropped.
func NewRouter(cfg *config.Config, db *database.DB, publisher notifications.Publisher) (*Router, error) {
	r := &Router{
		config:    cfg,
		db:        db,
		publisher: publisher,
		catalog:   catalog.Default(),
	}

	if db.Redis != nil {
		r.cache = cache.NewService(db.Redis)
	}

	var bookingRepo bookings.Repository
	var contactRepo contacts.Repository
	if db.MongoDB != nil {
		bookingRepo = bookings.NewMongoRepository(db.MongoDB)
		contactRepo = contacts.NewMongoRepository(db.MongoDB)
	} else {
		bookingRepo = bookings.NewRepository(db.PostgreSQL)
		contactRepo = contacts.NewRepository(db.PostgreSQL)
	}
	r.bookingService = bookings.NewService(bookingRepo, r.cache, publisher, r.catalog)
	r.contactService = contacts.NewService(contactRepo, r.cache, publisher)

	authService, err := auth.NewService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth: %w", err)
	}
	r.authService = authService

	return r, nil
}

func (r *Router) BookingService() bookings.Service {
	return r.bookingService
}

func (r *Router) ContactService() contacts.Service {
	return r.contactService
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := engine.Group(r.config.GetAPIBasePath())
	{
		adminGroup := api.Group("/admin")
		adminGroup.Use(middleware.JWTAuth(r.config), middleware.RequireAdmin())

		r.setupAuthRoutes(api)
		r.setupTripRoutes(api)
		r.setupBookingRoutes(api, adminGroup)
		r.setupContactRoutes(api, adminGroup)
		r.setupAdminRoutes(adminGroup)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "tourly-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "tourly-backend",
			"store":     r.db.StoreName(),
			"cache":     r.cache != nil,
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":        "operational",
			"api_version":   r.config.APIVersion,
			"timestamp":     time.Now(),
			"notifications": notifications.HealthReport(c.Request.Context(), r.publisher),
		})
	})
}

func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authController := auth.NewController(r.authService)
	auth.NewRouter(authController, r.config).SetupRoutes(rg)
}

func (r *Router) setupTripRoutes(rg *gin.RouterGroup) {
	tripService := trips.NewService(r.catalog, r.cache)
	trips.SetupTripRoutes(rg, trips.NewController(tripService))
}

func (r *Router) setupBookingRoutes(public, adminGroup *gin.RouterGroup) {
	bookings.SetupBookingRoutes(public, adminGroup, bookings.NewController(r.bookingService))
}

func (r *Router) setupContactRoutes(public, adminGroup *gin.RouterGroup) {
	contacts.SetupContactRoutes(public, adminGroup, contacts.NewController(r.contactService))
}

func (r *Router) setupAdminRoutes(adminGroup *gin.RouterGroup) {
	exporter := admin.NewExporter(r.config.Admin.PDFFontPath)
	adminService := admin.NewService(r.bookingService, r.contactService, r.cache, exporter)
	admin.SetupAdminRoutes(adminGroup, admin.NewController(adminService))
}

package delivery

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cherry-12345/naksh-jewels/config"
	"github.com/cherry-12345/naksh-jewels/internal/middleware"
)

// NewRouter assembles the full HTTP surface. main starts the listener; tests
// exercise the returned engine directly through httptest.
func NewRouter(cfg *config.Config, logger *logrus.Logger, products *ProductHandler, cart *CartHandler) *gin.Engine {
	router := gin.New()
	router.RedirectTrailingSlash = false

	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Errorf("Panic recovered: %v", recovered)
		body := Envelope{Success: false, Error: "Internal Server Error"}
		if !cfg.IsProduction() {
			body.Stack = string(debug.Stack())
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	}))
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "x-user-id"},
	}))
	router.Use(middleware.RequestLogger(logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, Envelope{
			Success:   true,
			Message:   "Server is running",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := router.Group("/api")
	api.Use(middleware.UserIdentity())
	products.RegisterRoutes(api)
	cart.RegisterRoutes(api)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, Envelope{
			Success: false,
			Error:   "Route " + c.Request.URL.Path + " not found",
		})
	})

	return router
}

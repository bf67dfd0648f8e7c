package handlers

import (
	"net/http"

	recipes "recipes_api"
	"recipes_api/internal/logger"
	"recipes_api/internal/metrics"
	"recipes_api/internal/service"
	"recipes_api/internal/validators"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services  *service.Service
	validator *validators.RecipeValidator
	log       *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies. log may be nil.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{
		services:  services,
		validator: validators.NewRecipeValidator(),
		log:       log,
	}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(
		gin.CustomRecovery(h.recoverPanic),
		metrics.Middleware(),
		h.requestLogger,
		cors.Default(),
	)
	router.NoRoute(h.notFound)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", h.health)

	router.POST("/login", h.login)
	h.registerRecipeRoutes(router)

	// snapshot feed over WebSocket (HTTP upgrade) on the same port
	router.GET("/ws/recipes", h.wsRecipes)

	return router
}

// Reads are public; writes go through the token verifier.
func (h *Handler) registerRecipeRoutes(r *gin.Engine) {
	rec := r.Group("/recipes")
	{
		rec.GET("", h.allRecipes)
		rec.POST("", h.userIdMiddleware, h.saveRecipe)
		rec.GET("/:id", h.fetchRecipe)
		rec.PATCH("/:id", h.userIdMiddleware, h.updateRecipe)
		rec.DELETE("/:id", h.userIdMiddleware, h.deleteRecipe)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  statusOK,
	})
}

func (h *Handler) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, recipes.Fail(msgRouteNotFound))
}

package routes

import (
	"net/http"
	"time"

	_ "gestao_cortinas/docs"
	"gestao_cortinas/internal/adapter/http/handlers"
	"gestao_cortinas/internal/adapter/http/middleware"
	"gestao_cortinas/internal/domain/entities"
	"gestao_cortinas/internal/infrastructure/logger"
	"gestao_cortinas/internal/infrastructure/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Ambiente     *handlers.AmbienteHandler
	Obra         *handlers.ObraHandler
	User         *handlers.UserHandler
	Notification *handlers.NotificationHandler
	Mounting     *handlers.MountingOptionHandler
}

type Options struct {
	JWTSecret   string
	CORSOrigins []string
	Log         *logger.Logger
	Metrics     *metrics.Metrics
}

// NewRouter builds the gin engine with middlewares, public endpoints and the authenticated /v1 API.
func NewRouter(h Handlers, opts Options) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, opts)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Metrics.Registry(), promhttp.HandlerOpts{})))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	api := v1.Group("", middleware.Auth(opts.JWTSecret))
	managerOnly := middleware.RequireRole(entities.RoleGerente)
	addWorkflowRoutes(api, h.Ambiente, h.Obra, managerOnly)
	addUserRoutes(api, h.User, managerOnly)
	addNotificationRoutes(api, h.Notification)
	addMountingRoutes(api, h.Mounting, managerOnly)

	return router
}

func setMiddlewares(router *gin.Engine, opts Options) {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		if opts.Log != nil {
			opts.Log.Error("[http] recovered from panic", "panic", recovered, "path", c.Request.URL.Path)
		}
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.RequestLogger(opts.Log))
	router.Use(middleware.Metrics(opts.Metrics))
	if len(opts.CORSOrigins) == 0 {
		return
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     opts.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

package routes

import (
	"net/http"

	_ "nfe_backoffice/docs"
	"nfe_backoffice/internal/adapter/http/handlers"
	"nfe_backoffice/internal/adapter/http/middleware"
	"nfe_backoffice/internal/infrastructure/logger"
	"nfe_backoffice/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth         *handlers.AuthHandler
	Company      *handlers.CompanyHandler
	Documents    *handlers.DocumentHandler
	Emissions    *handlers.EmissionHandler
	PostEmission *handlers.PostEmissionHandler
	Options      *handlers.OptionHandler
	Status       *handlers.StatusHandler
}

type Dependencies struct {
	Logger   *zap.Logger
	Tokens   middleware.TokenParser
	Metrics  *metrics.Recorder
	Handlers Handlers
	Swagger  bool
}

// NewRouter builds the gin engine. Only /v1/ping, /v1/auth/login, /metrics and
// the swagger UI are public; everything else requires a bearer token.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, deps)

	if deps.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	v1.POST("/auth/login", deps.Handlers.Auth.Login)

	protected := v1.Group("")
	protected.Use(middleware.RequireAuth(deps.Tokens))
	protected.GET("/auth/me", deps.Handlers.Auth.Me)
	protected.GET("/company", deps.Handlers.Company.GetCurrent)
	addDocumentRoutes(protected, deps.Handlers)
	addEmissionRoutes(protected, deps.Handlers.Emissions)
	addOptionRoutes(protected, deps.Handlers.Options)
	addStatusRoutes(protected, deps.Handlers.Status)

	return router
}

func setMiddlewares(router *gin.Engine, deps Dependencies) {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	router.Use(logger.Recovery(log))
	router.Use(logger.GinMiddleware(log))
	if deps.Metrics != nil {
		router.Use(deps.Metrics.GinMiddleware())
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

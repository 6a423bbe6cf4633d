package handlers

import (
	"net/http"

	"github.com/Murlidhar08/settlr-sub001/cmd/docs"
	portssvc "github.com/Murlidhar08/settlr-sub001/internal/core/ports/services"
	"github.com/Murlidhar08/settlr-sub001/internal/middleware"
	"github.com/Murlidhar08/settlr-sub001/internal/platform/config"
	"github.com/Murlidhar08/settlr-sub001/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RouteOptions carries the optional cross-cutting middleware dependencies.
type RouteOptions struct {
	RateLimiter   *limiter.Limiter
	PosthogClient *utils.PosthogClientWrapper
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	opts RouteOptions,
) {
	RegisterValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	var limited []gin.HandlerFunc
	if opts.RateLimiter != nil {
		limited = append(limited, middleware.RateLimit(opts.RateLimiter))
	}

	registerAuthRoutes(r, services.Identity, limited...)

	setupAPIV1Routes(r, cfg, services, limited, opts.PosthogClient)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	limited []gin.HandlerFunc,
	posthogClient *utils.PosthogClientWrapper,
) {
	chain := append([]gin.HandlerFunc{}, limited...)
	chain = append(chain, middleware.AuthMiddleware(cfg.JWTSecret))
	if posthogClient.IsInitialized() {
		chain = append(chain, middleware.PosthogMiddleware(posthogClient))
	}
	v1 := r.Group("/api/v1", chain...)

	registerBusinessRoutes(v1, service.Business, service.Identity)
	registerAccountRoutes(v1, service.Account, service.Balance)
	registerBalanceRoutes(v1, service.Balance)
	registerTransactionRoutes(v1, service.Transaction)
	registerPartyRoutes(v1, service.Party)
	registerSettingsRoutes(v1, service.Settings)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

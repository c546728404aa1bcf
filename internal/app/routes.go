package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/promostack/storefront-core/internal/middleware"
	"github.com/promostack/storefront-core/internal/modules/analytics"
	"github.com/promostack/storefront-core/internal/modules/auth"
	"github.com/promostack/storefront-core/internal/modules/category"
	"github.com/promostack/storefront-core/internal/modules/landing"
	"github.com/promostack/storefront-core/internal/modules/product"
	"github.com/promostack/storefront-core/internal/modules/profile"
	"github.com/promostack/storefront-core/internal/modules/settings"
	"github.com/promostack/storefront-core/internal/modules/setup"
	"github.com/promostack/storefront-core/internal/modules/storage"
	pkgredis "github.com/promostack/storefront-core/internal/pkg/redis"
	"github.com/promostack/storefront-core/internal/pkg/response"
)

const apiPrefix = "/api/v1"

func (a *App) registerRoutes(rc *pkgredis.Client) error {
	r := a.router
	db := a.db
	authMW := middleware.Auth(db)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	// Shared services
	settingsSvc := settings.NewService(db)
	if err := settingsSvc.SeedAdminEmails(a.cfg.AdminEmails); err != nil {
		return err
	}

	// One-time login codes complete before any route matching.
	r.Use(middleware.CodeExchange(rc))

	api := r.Group(apiPrefix)
	api.Use(middleware.OptionalAuth(db))

	// Anonymous public GETs are served from a short-TTL Redis cache.
	api.Use(middleware.HTTPCache(rc.Raw(), 15*time.Second, []string{
		apiPrefix + "/setup",
		apiPrefix + "/admin/*",
		apiPrefix + "/profile",
	}))

	// Public storefront
	productH := product.NewHandler(product.NewService(db, rc, a.logger))
	productH.RegisterRoutes(api)

	categoryH := category.NewHandler(category.NewService(db))
	categoryH.RegisterRoutes(api)

	landingH := landing.NewHandler(landing.NewService(db))
	landingH.RegisterRoutes(api, authMW)

	setup.NewHandler(setup.NewService(db, a.logger)).RegisterRoutes(api)

	// Accounts
	auth.NewHandler(auth.NewService(db, rc)).RegisterRoutes(api, authMW)
	profile.NewHandler(profile.NewService(db)).RegisterRoutes(api, authMW)

	if a.cfg.S3.Bucket != "" {
		storageSvc, err := storage.NewService(a.cfg.S3)
		if err != nil {
			return err
		}
		storage.NewHandler(storageSvc).RegisterRoutes(api, authMW)
	} else {
		a.logger.Warn("s3 bucket not configured, image uploads disabled")
		storage.NewHandler(nil).RegisterRoutes(api, authMW)
	}

	// Admin console, gated by the allow-list.
	admin := api.Group("/admin")
	admin.Use(middleware.AdminGate(db, settingsSvc))

	productH.RegisterAdminRoutes(admin)
	categoryH.RegisterAdminRoutes(admin)
	landingH.RegisterAdminRoutes(admin)
	analytics.NewHandler(analytics.NewService(db)).RegisterAdminRoutes(admin)
	settings.NewHandler(settingsSvc).RegisterAdminRoutes(admin)

	admin.DELETE("/cache", func(c *gin.Context) {
		deleted, err := middleware.PurgeHTTPCache(c.Request.Context(), rc.Raw())
		if err != nil {
			response.InternalError(c, err)
			return
		}
		response.OK(c, gin.H{"deleted": deleted})
	})

	a.logger.Info("routes registered", zap.String("prefix", apiPrefix))
	return nil
}

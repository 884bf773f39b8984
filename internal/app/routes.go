package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sman1gebog/web-core/internal/middleware"
	"github.com/sman1gebog/web-core/internal/modules/auth/auth"
	"github.com/sman1gebog/web-core/internal/modules/content/extracurricular"
	"github.com/sman1gebog/web-core/internal/modules/content/facility"
	"github.com/sman1gebog/web-core/internal/modules/content/gallery"
	"github.com/sman1gebog/web-core/internal/modules/content/news"
	"github.com/sman1gebog/web-core/internal/modules/content/sections"
	"github.com/sman1gebog/web-core/internal/modules/content/staff"
	"github.com/sman1gebog/web-core/internal/modules/storage/upload"
	"github.com/sman1gebog/web-core/internal/modules/system/health"
	"github.com/sman1gebog/web-core/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router
	db := a.db
	authMW := middleware.Auth(db)

	r.NoRoute(func(c *gin.Context) {
		response.NotFoundMsg(c, "Not found")
	})

	r.Static("/uploads", a.cfg.UploadsDir)

	api := r.Group("/api")
	api.Use(middleware.OptionalAuth(db))
	api.Use(middleware.HTTPCache(a.rdb, middleware.HTTPCacheOptions{
		TTL:     15 * time.Second,
		Disable: a.cfg.IsDev(),
		SkipPaths: []string{
			"/api/login",
			"/api/logout",
			"/api/upload",
			"/api/test-db",
		},
	}))

	health.RegisterRoutes(api, db)
	auth.NewHandler(auth.NewService(db)).RegisterRoutes(api, authMW)

	uploadSvc := upload.NewService(db, a.cfg.UploadsDir, a.cfg.PublicURL, a.logger)
	upload.NewHandler(uploadSvc).RegisterRoutes(api, authMW)

	news.NewHandler(news.NewService(db, uploadSvc)).RegisterRoutes(api, authMW)
	staff.NewHandler(staff.NewService(db, uploadSvc)).RegisterRoutes(api, authMW)
	facility.NewHandler(facility.NewService(db, uploadSvc)).RegisterRoutes(api, authMW)
	extracurricular.NewHandler(extracurricular.NewService(db, uploadSvc)).RegisterRoutes(api, authMW)
	gallery.NewHandler(gallery.NewService(db, uploadSvc)).RegisterRoutes(api, authMW)

	sections.NewProfileHandler(db).RegisterRoutes(api, authMW)
	sections.NewPPDBHandler(db).RegisterRoutes(api, authMW)
}

package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/fendiRahmans/portofolio-api/api/swagger"
	"github.com/fendiRahmans/portofolio-api/internal/handler"
	"github.com/fendiRahmans/portofolio-api/internal/middleware"
	"github.com/fendiRahmans/portofolio-api/internal/service"
	"github.com/fendiRahmans/portofolio-api/pkg/config"
)

// Deps holds everything the router needs wired in.
type Deps struct {
	Auth      *handler.AuthHandler
	Public    *handler.PublicHandler
	TechStack *handler.TechStackHandler
	Career    *handler.CareerHandler
	Contact   *handler.ContactHandler
	Setting   *handler.SettingHandler
	About     *handler.AboutHandler
	Dashboard *handler.DashboardHandler

	AuthService *service.AuthService
	Metrics     *middleware.MetricsCollector
	DB          *sqlx.DB
}

// Register mounts the full route tree on the engine.
func Register(r *gin.Engine, cfg *config.Config, deps Deps) {
	prefix := cfg.APIPrefix
	if prefix == "" {
		prefix = "/api/v1"
	}

	guard := middleware.Guard{
		AdminPrefix:   prefix + "/admin",
		LoginPath:     prefix + "/auth/login",
		DashboardPath: prefix + "/admin/dashboard/stats",
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if deps.DB != nil {
			if err := deps.DB.PingContext(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if deps.Metrics != nil {
		r.GET("/metrics", deps.Metrics.Handler())
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(prefix)
	api.Use(middleware.Session(deps.AuthService))

	api.GET("/tech-stacks", deps.Public.ListTechStacks)
	api.GET("/careers", deps.Public.ListCareers)
	api.GET("/about", deps.Public.GetAbout)
	api.GET("/site/summary", deps.Public.SiteSummary)
	api.POST("/contacts", deps.Public.SubmitContact)

	auth := api.Group("/auth")
	{
		auth.POST("/login", middleware.RedirectIfAuthenticated(guard), deps.Auth.Login)
		auth.POST("/logout", deps.Auth.Logout)
		auth.GET("/me", deps.Auth.Me)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.RequireSession(guard))
	{
		admin.GET("/tech-stacks", deps.TechStack.List)
		admin.POST("/tech-stacks", deps.TechStack.Create)
		admin.PUT("/tech-stacks/:id", deps.TechStack.Update)
		admin.DELETE("/tech-stacks/:id", deps.TechStack.Delete)

		admin.GET("/careers", deps.Career.List)
		admin.POST("/careers", deps.Career.Create)
		admin.PUT("/careers/:id", deps.Career.Update)
		admin.DELETE("/careers/:id", deps.Career.Delete)

		admin.GET("/contacts", deps.Contact.List)
		admin.PATCH("/contacts/:id/status", deps.Contact.UpdateStatus)
		admin.DELETE("/contacts/:id", deps.Contact.Delete)
		admin.GET("/contacts/export/csv", deps.Contact.ExportCSV)
		admin.GET("/contacts/export/pdf", deps.Contact.ExportPDF)

		admin.GET("/settings", deps.Setting.List)
		admin.POST("/settings", deps.Setting.Create)
		admin.GET("/settings/by-name/:name", deps.Setting.GetByName)
		admin.PUT("/settings/availability", deps.Setting.ToggleAvailability)
		admin.PUT("/settings/:id", deps.Setting.Update)
		admin.DELETE("/settings/:id", deps.Setting.Delete)

		admin.GET("/about", deps.About.Get)
		admin.PUT("/about", deps.About.Upsert)

		admin.GET("/dashboard/stats", deps.Dashboard.Stats)
	}
}

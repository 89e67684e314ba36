// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/adanechmulugeta192-sudo/bushtechs/internal/auth"
	"github.com/adanechmulugeta192-sudo/bushtechs/internal/backup"
	"github.com/adanechmulugeta192-sudo/bushtechs/internal/config"
	"github.com/adanechmulugeta192-sudo/bushtechs/internal/db"
	"github.com/adanechmulugeta192-sudo/bushtechs/internal/handlers"
	"github.com/adanechmulugeta192-sudo/bushtechs/internal/middleware"
	"github.com/adanechmulugeta192-sudo/bushtechs/internal/search"
	"github.com/adanechmulugeta192-sudo/bushtechs/internal/theme"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Start and manage the BushTechs HTTP server",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if config.GetString("database.type") == "sqlite" {
			if err := search.InitFTSIndex(db.GetDB()); err != nil {
				log.Printf("search index unavailable: %v", err)
			}
		}

		var scheduler *backup.Scheduler
		if config.GetBool("backups.enable_auto_backup") {
			manager := backup.NewManager(config.GetString("backups.path"))
			scheduler = backup.NewScheduler(manager, config.GetString("database.path"), config.GetInt("backups.retention"))
			if interval := config.GetDuration("backups.interval"); interval > 0 {
				scheduler.SetInterval(interval)
			}
			scheduler.Start()
			log.Println("Backup scheduler started")
		}

		r := buildRouter()

		httpAddr := fmt.Sprintf(":%s", config.GetString("server.http_port"))
		fmt.Printf("Starting HTTP server on %s\n", httpAddr)
		if err := r.Run(httpAddr); err != nil {
			if scheduler != nil {
				scheduler.Stop()
			}
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	},
}

// buildRouter assembles the middleware stack and every route the server
// exposes: the public JSON API, the auth and admin API, the server-rendered
// pages, and static uploads.
func buildRouter() *gin.Engine {
	r := gin.Default()

	r.Use(middleware.IPFilterMiddleware(config.GetStringSlice("server.blocked_ips")))
	r.Use(middleware.SecurityHeadersMiddleware())
	if config.GetBool("server.tls_enabled") {
		r.Use(middleware.HTTPSRedirectMiddleware())
	}
	r.Use(middleware.SiteSettingsMiddleware(db.GetDB()))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = config.GetStringSlice("server.cors_origins")
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", auth.TokenHeader)
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsCfg))

	limiter := middleware.NewRateLimiter(config.GetInt("contact.rate_limit_per_minute"), time.Minute)
	r.Use(middleware.RateLimitMiddleware(limiter, "/api/auth/login", "/api/contact", "/contact"))

	r.GET("/health", handlers.HealthHandler)

	r.GET("/favicon.ico", func(c *gin.Context) {
		svg := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
			<rect x="10" y="10" width="80" height="80" rx="16" fill="#1565c0"/>
			<text x="50" y="68" font-family="sans-serif" font-size="52" font-weight="bold" fill="#fff" text-anchor="middle">B</text>
		</svg>`
		c.Data(200, "image/svg+xml", []byte(svg))
	})

	// Public JSON API consumed by the admin panel's read views
	api := r.Group("/api")
	{
		api.GET("/projects", handlers.ListProjectsHandler)
		api.GET("/services", handlers.ListServicesHandler)
		api.GET("/team", handlers.ListTeamHandler)
		api.GET("/partners", handlers.ListPartnersHandler)
		api.GET("/testimonials", handlers.ListTestimonialsHandler)
		api.GET("/mission-vision", handlers.GetMissionVisionHandler)
		api.GET("/about-info", handlers.GetAboutInfoHandler)
		api.POST("/contact", handlers.SubmitContactHandler)

		api.POST("/auth/login", handlers.LoginHandler)

		authed := api.Group("/")
		authed.Use(auth.RequireAuth())
		{
			authed.PUT("/auth/change-password", handlers.ChangePasswordHandler)
			authed.POST("/auth/update-picture", handlers.UpdatePictureHandler)

			// Partner and testimonial mutations live outside the admin
			// prefix but still require a token.
			authed.POST("/partners", handlers.CreatePartnerHandler)
			authed.PUT("/partners/:id", handlers.UpdatePartnerHandler)
			authed.DELETE("/partners/:id", handlers.DeletePartnerHandler)
			authed.POST("/testimonials", handlers.CreateTestimonialHandler)
			authed.PUT("/testimonials/:id", handlers.UpdateTestimonialHandler)
			authed.DELETE("/testimonials/:id", handlers.DeleteTestimonialHandler)

			authed.PUT("/mission-vision", handlers.UpsertMissionVisionHandler)
			authed.PUT("/about-info", handlers.UpsertAboutInfoHandler)
		}

		admin := api.Group("/admin")
		admin.Use(auth.RequireAuth())
		{
			admin.POST("/projects", handlers.CreateProjectHandler)
			admin.PUT("/projects/:id", handlers.UpdateProjectHandler)
			admin.DELETE("/projects/:id", handlers.DeleteProjectHandler)
			admin.POST("/services", handlers.CreateServiceHandler)
			admin.PUT("/services/:id", handlers.UpdateServiceHandler)
			admin.DELETE("/services/:id", handlers.DeleteServiceHandler)
			admin.POST("/team", handlers.CreateTeamMemberHandler)
			admin.PUT("/team/:id", handlers.UpdateTeamMemberHandler)
			admin.DELETE("/team/:id", handlers.DeleteTeamMemberHandler)

			admin.GET("/contact-submissions", handlers.ListContactSubmissionsHandler)
			admin.DELETE("/contact-submissions/:id", handlers.DeleteContactSubmissionHandler)
			admin.GET("/media", handlers.ListMediaHandler)
		}
	}

	// Server-rendered public pages share one theme controller persisted
	// under the state directory.
	controller := theme.New(theme.NewFileStore(config.GetString("storage.state_dir")))
	pages := handlers.NewPages(controller)
	r.GET("/", pages.Home)
	r.GET("/about-us", pages.About)
	r.GET("/mission-vision", pages.MissionVision)
	r.GET("/core-values", pages.CoreValues)
	r.GET("/technologies", pages.Technologies)
	r.GET("/services", pages.Services)
	r.GET("/projects", pages.Projects)
	r.GET("/contact", pages.Contact)
	r.POST("/contact", handlers.SubmitContactHandler)
	r.GET("/search", pages.Search)

	themeHandlers := handlers.NewThemeHandlers(controller)
	r.GET("/theme", themeHandlers.Get)
	r.POST("/theme/toggle", themeHandlers.Toggle)

	r.GET("/uploads/*filepath", handlers.ServeUploadedFile)

	return r
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}

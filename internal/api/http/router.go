package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kazi-link/job-portal/internal/api/http/handlers"
	"github.com/kazi-link/job-portal/internal/auth"
	"github.com/kazi-link/job-portal/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Seekers        *handlers.SeekersHandler
	Postings       *handlers.PostingsHandler
	Applications   *handlers.ApplicationsHandler
	Advertisements *handlers.AdvertisementsHandler
	Chat           *handlers.ChatHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/users/register", cfg.Users.Register)
	authGroup.Post("/users/login", cfg.Users.Login)

	authProtected := authGroup.Group("", cfg.AuthMiddleware.Handle)
	authProtected.Post("/password/change", cfg.Users.ChangePassword)
	authProtected.Get("/users/me", cfg.Users.Me)
	authProtected.Get("/users", auth.RequireAdmin(), cfg.Users.ListUsers)
	authProtected.Patch("/users/:id/activation", auth.RequireAdmin(), cfg.Users.SetActive)

	api := app.Group("/api")

	// public browsing
	api.Get("/postings", cfg.Postings.ListPostings)
	api.Get("/categories", cfg.Postings.ListCategories)
	api.Get("/job-types", cfg.Postings.ListJobTypes)
	api.Get("/advertisements", cfg.Advertisements.ListAds)
	api.Get("/advertisements/:id", cfg.Advertisements.GetAd)
	api.Get("/testimonials", cfg.Advertisements.ListTestimonials)
	api.Get("/testimonials/:id", cfg.Advertisements.GetTestimonial)

	protected := api.Group("", cfg.AuthMiddleware.Handle)

	seekers := protected.Group("/seekers")
	seekers.Post("", auth.RequireRole(domain.RoleJobSeeker), cfg.Seekers.CreateProfile)
	seekers.Get("/me", auth.RequireRole(domain.RoleJobSeeker), cfg.Seekers.GetOwnProfile)
	seekers.Put("/me", auth.RequireRole(domain.RoleJobSeeker), cfg.Seekers.UpdateProfile)
	seekers.Patch("/:id/activation", cfg.Seekers.SetActive)
	seekers.Get("/:id", cfg.Seekers.GetProfile)
	seekers.Get("", auth.RequireAdmin(), cfg.Seekers.ListProfiles)

	postings := protected.Group("/postings")
	postings.Post("", auth.RequireRole(domain.RoleJobOffer, domain.RoleEmployee, domain.RoleAdmin), cfg.Postings.CreatePosting)
	postings.Get("/mine", cfg.Postings.ListOwnPostings)
	postings.Get("/:id", cfg.Postings.GetPosting)
	postings.Patch("/:id", cfg.Postings.UpdatePosting)
	postings.Post("/:id/close", cfg.Postings.ClosePosting)
	postings.Delete("/:id", cfg.Postings.DeletePosting)
	postings.Get("/:id/applications", cfg.Applications.ListForPosting)

	protected.Post("/categories", auth.RequireAdmin(), cfg.Postings.CreateCategory)
	protected.Post("/job-types", auth.RequireAdmin(), cfg.Postings.CreateJobType)

	applications := protected.Group("/applications")
	applications.Post("", auth.RequireRole(domain.RoleJobSeeker), cfg.Applications.Submit)
	applications.Get("", cfg.Applications.ListMine)
	applications.Get("/all", auth.RequireAdmin(), cfg.Applications.ListAll)
	applications.Get("/:id", cfg.Applications.Get)
	applications.Patch("/:id/status", cfg.Applications.UpdateStatus)
	applications.Patch("/:id/documents", cfg.Applications.UpdateDocuments)
	applications.Put("/:id/accept", cfg.Applications.Accept)
	applications.Put("/:id/reject", cfg.Applications.Reject)
	applications.Put("/:id/shortlist", cfg.Applications.Shortlist)
	applications.Put("/:id/withdraw", cfg.Applications.Withdraw)
	applications.Delete("/:id", cfg.Applications.Delete)

	protected.Post("/advertisements", cfg.Advertisements.CreateAd)
	protected.Put("/advertisements/:id", cfg.Advertisements.UpdateAd)
	protected.Delete("/advertisements/:id", cfg.Advertisements.DeleteAd)

	protected.Post("/testimonials", cfg.Advertisements.CreateTestimonial)
	protected.Delete("/testimonials/:id", cfg.Advertisements.DeleteTestimonial)

	chat := protected.Group("/chat")
	chat.Post("/rooms", cfg.Chat.GetOrCreateRoom)
	chat.Get("/rooms", cfg.Chat.ListRooms)
	chat.Get("/rooms/:id/messages", cfg.Chat.ListMessages)
	chat.Post("/rooms/:id/messages", cfg.Chat.SendMessage)
	chat.Get("/notifications", cfg.Chat.ListNotifications)
	chat.Post("/notifications/:id/read", cfg.Chat.MarkNotificationRead)
}

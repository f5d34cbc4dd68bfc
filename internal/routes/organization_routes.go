package routes

import (
	"sport-attendance-backend/internal/handler"
	"sport-attendance-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupOrganizationRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)
	hdl := handler.NewOrganizationHandler(repo, userRepo)

	api := app.Group("/api/organizations")

	api.Post("/", hdl.CreateOrganization)
	api.Get("/", hdl.GetOrganizations)
	api.Get("/:id", hdl.GetOrganization)
	api.Put("/:id", hdl.UpdateOrganization)
	api.Delete("/:id", hdl.DeleteOrganization)
	api.Get("/:id/members", hdl.GetOrgMembers)

	// Join lewat enroll code, bukan lewat id organisasi
	app.Post("/api/join-organization", hdl.JoinOrganization)
}

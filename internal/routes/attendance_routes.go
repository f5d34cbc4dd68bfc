package routes

import (
	"sport-attendance-backend/internal/handler"
	"sport-attendance-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewAttendanceRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)
	hdl := handler.NewAttendanceHandler(repo, orgRepo, userRepo)

	api := app.Group("/api/attendance-sessions")

	api.Post("/", hdl.CreateSession)
	api.Get("/:id", hdl.GetSession)
	api.Put("/:id/close", hdl.CloseSession)
	api.Get("/:id/records", hdl.GetSessionRecords)

	app.Post("/api/attendance-records", hdl.RecordAttendance)

	// Rekap per organisasi
	app.Get("/api/organizations/:id/attendance-sessions", hdl.GetOrgSessions)
	app.Get("/api/organizations/:id/attendance-records", hdl.GetOrgRecords)
}

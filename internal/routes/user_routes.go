package routes

import (
	"sport-attendance-backend/internal/handler"
	"sport-attendance-backend/internal/repository"
	"sport-attendance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewUserRepository(db)
	uc := usecase.NewUserUsecase(repo)
	hdl := handler.NewUserHandler(uc, repo)

	api := app.Group("/api/users")

	api.Post("/register", hdl.Register)
	api.Post("/login", hdl.Login)
	api.Get("/", hdl.GetUsers)
	api.Get("/:id", hdl.GetUser)
	api.Put("/:id", hdl.UpdateUser)
	api.Delete("/:id", hdl.DeleteUser)
}

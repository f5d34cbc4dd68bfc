package main

import (
	"fmt"
	"sport-attendance-backend/config"
	"sport-attendance-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("1. Memulai aplikasi... Mencoba load .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	fmt.Println("2. Mencoba koneksi ke Database...")
	config.ConnectDB()
	fmt.Println("3. Database berhasil terhubung! Menyiapkan routes...")

	app := fiber.New()

	// Middleware Global
	app.Use(cors.New())   // Agar API bisa diakses dari domain/port lain
	app.Use(logger.New()) // Agar log request muncul di terminal (Debugging)

	routes.SetupUserRoutes(app, config.DB)
	routes.SetupOrganizationRoutes(app, config.DB)
	routes.SetupAttendanceRoutes(app, config.DB)

	port := config.GetEnvAsInt("PORT", 3000)
	fmt.Printf("4. Server siap! Menunggu request di port :%d\n", port)
	app.Listen(fmt.Sprintf(":%d", port))
}

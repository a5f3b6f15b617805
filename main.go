package main

import (
	"log"

	"wisata_booking/database"
	"wisata_booking/helper"
	"wisata_booking/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // payment proofs and destination images
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	helper.StartBookingScheduler()
	defer helper.StopBookingScheduler()
	helper.StartSessionSweeper()
	defer helper.StopSessionSweeper()

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":8002"))
}

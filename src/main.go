package main

import (
	"fmt"
	"log"
	"net/url"
	"os"

	_ "benefits-event-backend/docs"
	"benefits-event-backend/src/database"
	"benefits-event-backend/src/middleware"
	"benefits-event-backend/src/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

// @title        Benefits Event Check-In API
// @version      1.0
// @description  Employee directory, door check-in, and session registration for a single-day benefits event.
func main() {

	err := database.Connect()
	if err != nil {
		log.Fatalf("Error connecting to the record store: %v", err)
	}

	app := fiber.New()

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "*"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, x-admin-password",
		AllowCredentials: false,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app, database.Store, middleware.EnvPasswordVerifier())

	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888"
	}

	log.Println("Server is running on port " + appURI)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI)))
	if err != nil {
		log.Fatal(err)
	}

}

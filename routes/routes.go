package routes

import (
	"github.com/gofiber/fiber/v2"

	"cakesim/handlers"
	"cakesim/middleware"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// Session lifecycle
	api.Post("/sessions", handlers.HandleCreateSession)

	// Everything below operates on the caller's own session.
	sess := api.Group("/session", middleware.SessionRequired)
	sess.Get("/history", handlers.HandleGetHistory)
	sess.Get("/records", handlers.HandleGetRecords)
	sess.Get("/tomorrow", handlers.HandleGetTomorrow)
	sess.Get("/budget", handlers.HandleGetBudget)
	sess.Post("/predict", handlers.HandlePredict)
	sess.Post("/order", handlers.HandleOrder)
	sess.Delete("/", handlers.HandleDeleteSession)
}

package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lockgoal/lockgoal-api/internal/handlers"
	"github.com/lockgoal/lockgoal-api/internal/middleware"
)

func Setup(app *fiber.App) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.Register)
	auth.Post("/login", handlers.Login)

	protected := api.Group("/", middleware.Protected())

	protected.Get("/me", handlers.GetMe)
	protected.Put("/me", handlers.UpdateProfile)

	goals := protected.Group("/goals")
	goals.Get("/", handlers.GetGoals)
	goals.Post("/", handlers.CreateGoal)
	goals.Put("/", handlers.SetGoals)
	goals.Get("/types", handlers.GetGoalTypes)
	goals.Put("/:id", handlers.UpdateGoal)
	goals.Delete("/:id", handlers.DeleteGoal)
	goals.Post("/:id/progress", handlers.IncrementProgress)

	apps := protected.Group("/apps")
	apps.Get("/", handlers.GetApps)
	apps.Put("/", handlers.SetApps)
	apps.Post("/:appId/toggle", handlers.ToggleApp)

	subscription := protected.Group("/subscription")
	subscription.Get("/", handlers.GetSubscription)
	subscription.Post("/purchase", handlers.Purchase)

	onboarding := protected.Group("/onboarding")
	onboarding.Get("/", handlers.GetOnboarding)
	onboarding.Post("/advance", handlers.AdvanceOnboarding)
	onboarding.Post("/back", handlers.BackOnboarding)
	onboarding.Put("/step", handlers.GoToOnboardingStep)
	onboarding.Post("/complete", handlers.CompleteOnboarding)
	onboarding.Post("/reset", handlers.ResetOnboarding)

	// Device token for shield sync push messages
	protected.Post("/device-token", handlers.RegisterDeviceToken)
}

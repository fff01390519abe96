package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lockgoal/lockgoal-api/internal/database"
	"github.com/lockgoal/lockgoal-api/internal/middleware"
	"github.com/lockgoal/lockgoal-api/internal/models"
)

// OnboardingTotalSteps is the number of onboarding screens.
const OnboardingTotalSteps = 5

func onboardingJSON(u models.User) fiber.Map {
	return fiber.Map{
		"isComplete":  u.OnboardingComplete,
		"currentStep": u.OnboardingStep,
		"totalSteps":  OnboardingTotalSteps,
	}
}

func loadUser(c *fiber.Ctx) (models.User, error) {
	var user models.User
	err := database.DB.First(&user, middleware.GetUserID(c)).Error
	return user, err
}

func saveOnboarding(c *fiber.Ctx, user models.User, step int, complete bool) error {
	user.OnboardingStep = step
	user.OnboardingComplete = complete
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save onboarding state",
		})
	}
	return c.JSON(onboardingJSON(user))
}

func GetOnboarding(c *fiber.Ctx) error {
	user, err := loadUser(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(onboardingJSON(user))
}

// AdvanceOnboarding moves to the next step, clamped to the last one.
func AdvanceOnboarding(c *fiber.Ctx) error {
	user, err := loadUser(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	step := user.OnboardingStep + 1
	if step > OnboardingTotalSteps-1 {
		step = OnboardingTotalSteps - 1
	}
	return saveOnboarding(c, user, step, user.OnboardingComplete)
}

// BackOnboarding moves to the previous step, clamped to the first one.
func BackOnboarding(c *fiber.Ctx) error {
	user, err := loadUser(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	step := user.OnboardingStep - 1
	if step < 0 {
		step = 0
	}
	return saveOnboarding(c, user, step, user.OnboardingComplete)
}

// GoToOnboardingStep jumps to a specific step, clamped to range.
func GoToOnboardingStep(c *fiber.Ctx) error {
	user, err := loadUser(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req struct {
		Step int `json:"step"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	step := req.Step
	if step < 0 {
		step = 0
	}
	if step > OnboardingTotalSteps-1 {
		step = OnboardingTotalSteps - 1
	}
	return saveOnboarding(c, user, step, user.OnboardingComplete)
}

func CompleteOnboarding(c *fiber.Ctx) error {
	user, err := loadUser(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	return saveOnboarding(c, user, user.OnboardingStep, true)
}

func ResetOnboarding(c *fiber.Ctx) error {
	user, err := loadUser(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	return saveOnboarding(c, user, 0, false)
}

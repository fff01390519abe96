package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lockgoal/lockgoal-api/internal/database"
	"github.com/lockgoal/lockgoal-api/internal/middleware"
	"github.com/lockgoal/lockgoal-api/internal/models"
)

// GetSubscription returns the user's entitlement state.
func GetSubscription(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var sub models.Subscription
	if err := database.DB.Where("user_id = ?", userID).First(&sub).Error; err != nil {
		return c.JSON(fiber.Map{"isSubscribed": false})
	}

	return c.JSON(fiber.Map{
		"isSubscribed":  sub.Active,
		"plan":          sub.Plan,
		"entitlementId": sub.EntitlementID,
		"purchasedAt":   sub.PurchasedAt,
	})
}

// Purchase records a paywall purchase. Payment is mocked: any valid plan
// succeeds and grants the matching entitlement.
func Purchase(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.PurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Plan != "monthly" && req.Plan != "yearly" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Plan must be monthly or yearly",
		})
	}

	now := time.Now()

	var sub models.Subscription
	err := database.DB.Where("user_id = ?", userID).First(&sub).Error
	if err != nil {
		sub = models.Subscription{UserID: userID}
	}

	sub.Plan = req.Plan
	sub.EntitlementID = "lockgoal_" + req.Plan
	sub.Active = true
	sub.PurchasedAt = &now

	if err := database.DB.Save(&sub).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to record purchase",
		})
	}

	return c.JSON(fiber.Map{
		"isSubscribed":  true,
		"plan":          sub.Plan,
		"entitlementId": sub.EntitlementID,
		"purchasedAt":   sub.PurchasedAt,
	})
}

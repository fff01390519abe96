package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lockgoal/lockgoal-api/internal/database"
	"github.com/lockgoal/lockgoal-api/internal/middleware"
	"github.com/lockgoal/lockgoal-api/internal/models"
)

// CatalogApp is one entry of the selectable-apps catalog shown during
// onboarding.
type CatalogApp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// AppCatalog lists the distracting apps a user can shield.
var AppCatalog = []CatalogApp{
	{ID: "instagram", Name: "Instagram", Icon: "📷"},
	{ID: "tiktok", Name: "TikTok", Icon: "🎵"},
	{ID: "twitter", Name: "X", Icon: "🐦"},
	{ID: "youtube", Name: "YouTube", Icon: "▶️"},
	{ID: "facebook", Name: "Facebook", Icon: "👤"},
	{ID: "snapchat", Name: "Snapchat", Icon: "👻"},
	{ID: "reddit", Name: "Reddit", Icon: "🤖"},
	{ID: "netflix", Name: "Netflix", Icon: "🎬"},
}

func inCatalog(appID string) bool {
	for _, a := range AppCatalog {
		if a.ID == appID {
			return true
		}
	}
	return false
}

func blockedAppIDs(userID uuid.UUID) []string {
	var apps []models.BlockedApp
	database.DB.Where("user_id = ?", userID).Order("created_at").Find(&apps)

	ids := make([]string, len(apps))
	for i, a := range apps {
		ids[i] = a.AppID
	}
	return ids
}

// GetApps returns the catalog plus the user's current blocked set.
func GetApps(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	return c.JSON(fiber.Map{
		"catalog":       AppCatalog,
		"blockedAppIds": blockedAppIDs(userID),
	})
}

// ToggleApp adds the app to the blocked set if absent, removes it if
// present, then re-syncs the shield.
func ToggleApp(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	appID := c.Params("appId")

	if !inCatalog(appID) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown app",
		})
	}

	var existing models.BlockedApp
	err := database.DB.Where("user_id = ? AND app_id = ?", userID, appID).First(&existing).Error
	if err == nil {
		database.DB.Delete(&existing)
	} else {
		if err := database.DB.Create(&models.BlockedApp{UserID: userID, AppID: appID}).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update blocked apps",
			})
		}
	}

	st, _ := loadGoalState(userID)
	syncShield(userID, st.Ledger.Met)

	return c.JSON(fiber.Map{"blockedAppIds": blockedAppIDs(userID)})
}

// SetApps replaces the blocked set wholesale, as the onboarding app
// picker does.
func SetApps(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.SetBlockedAppsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	for _, id := range req.AppIDs {
		if !inCatalog(id) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unknown app: " + id,
			})
		}
	}

	database.DB.Where("user_id = ?", userID).Delete(&models.BlockedApp{})
	for _, id := range req.AppIDs {
		database.DB.Create(&models.BlockedApp{UserID: userID, AppID: id})
	}

	st, _ := loadGoalState(userID)
	syncShield(userID, st.Ledger.Met)

	return c.JSON(fiber.Map{"blockedAppIds": blockedAppIDs(userID)})
}

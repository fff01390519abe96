package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lockgoal/lockgoal-api/internal/clock"
	"github.com/lockgoal/lockgoal-api/internal/core"
	"github.com/lockgoal/lockgoal-api/internal/database"
	"github.com/lockgoal/lockgoal-api/internal/middleware"
	"github.com/lockgoal/lockgoal-api/internal/models"
	"github.com/lockgoal/lockgoal-api/internal/services"
	"github.com/lockgoal/lockgoal-api/internal/store"
)

// Package-level collaborators, set once at startup.
var (
	States store.Store
	Day    clock.Clock
)

// Init wires the persistent store and clock used by the goal handlers.
func Init(s store.Store, c clock.Clock) {
	States = s
	Day = c
}

func stateKey(userID uuid.UUID) string {
	return "goals:" + userID.String()
}

// loadGoalState loads the user's goal state and runs the day-boundary
// check before anything reads or mutates it. Missing or unreadable blobs
// yield the default empty state.
func loadGoalState(userID uuid.UUID) (*core.State, string) {
	today := Day.Today()

	st := core.NewState()
	blob, ok, err := States.Load(stateKey(userID))
	if err != nil {
		log.Printf("goals: failed to load state for %s: %v", userID, err)
	} else if ok {
		if decoded, err := core.DecodeState(blob); err != nil {
			log.Printf("goals: corrupt state blob for %s: %v", userID, err)
		} else {
			st = decoded
		}
	}

	st.CheckAndUpdateStreak(today)
	return st, today
}

// saveGoalState persists the full state after a mutation.
func saveGoalState(userID uuid.UUID, st *core.State) error {
	blob, err := st.Encode()
	if err != nil {
		return err
	}
	return States.Save(stateKey(userID), blob)
}

// syncShield pushes the shield decision for this user to their device,
// fire-and-forget.
func syncShield(userID uuid.UUID, goalsMet bool) {
	var apps []models.BlockedApp
	database.DB.Where("user_id = ?", userID).Order("created_at").Find(&apps)

	appIDs := make([]string, len(apps))
	for i, a := range apps {
		appIDs[i] = a.AppID
	}

	if services.Shield != nil {
		go services.Shield.Sync(userID, goalsMet, appIDs)
	}
}

// snapshot is the read model the app renders from.
func snapshot(st *core.State) fiber.Map {
	goals := st.Ledger.Goals
	if goals == nil {
		goals = []core.Goal{}
	}
	history := st.Tracker.History
	if history == nil {
		history = []core.HistoryEntry{}
	}
	// The app expects null, not "", before the first completion.
	var lastCompleted interface{}
	if st.Tracker.LastCompletedDate != "" {
		lastCompleted = st.Tracker.LastCompletedDate
	}
	return fiber.Map{
		"dailyGoals":        goals,
		"isGoalMet":         st.Ledger.Met,
		"streak":            st.Tracker.Streak,
		"lastCompletedDate": lastCompleted,
		"history":           history,
	}
}

// GetGoals returns the current goal and streak snapshot.
func GetGoals(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	st, _ := loadGoalState(userID)
	// The day-boundary check may have reset progress; persist it so the
	// next load sees the same baseline.
	if err := saveGoalState(userID, st); err != nil {
		log.Printf("goals: failed to save state for %s: %v", userID, err)
	}

	return c.JSON(snapshot(st))
}

// GetGoalTypes returns the fixed goal-type catalog.
func GetGoalTypes(c *fiber.Ctx) error {
	return c.JSON(core.GoalTypes)
}

type createGoalRequest struct {
	Title  string `json:"title"`
	Target int    `json:"target"`
	Type   string `json:"type"`
}

// CreateGoal adds one goal to the set.
func CreateGoal(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req createGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title is required",
		})
	}

	st, _ := loadGoalState(userID)
	goal := st.Ledger.AddGoal(req.Title, req.Target, req.Type)

	if err := saveGoalState(userID, st); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save goals",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(goal)
}

// SetGoals replaces the whole goal set. Used by onboarding to seed the
// initial goals; any prior set is wiped.
func SetGoals(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var seeds []core.GoalSeed
	if err := c.BodyParser(&seeds); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	for _, s := range seeds {
		if s.Title == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Every goal needs a title",
			})
		}
	}

	st, _ := loadGoalState(userID)
	wasMet := st.Ledger.Met
	st.Ledger.SetGoals(seeds)

	if err := saveGoalState(userID, st); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save goals",
		})
	}

	if wasMet != st.Ledger.Met {
		syncShield(userID, st.Ledger.Met)
	}

	return c.JSON(snapshot(st))
}

// UpdateGoal applies title/target edits to one goal. An unknown id is a
// no-op, mirroring the client stores.
func UpdateGoal(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	goalID := c.Params("id")

	var upd core.GoalUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	st, _ := loadGoalState(userID)
	wasMet := st.Ledger.Met
	st.Ledger.UpdateGoal(goalID, upd)

	if err := saveGoalState(userID, st); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save goals",
		})
	}

	if wasMet != st.Ledger.Met {
		syncShield(userID, st.Ledger.Met)
	}

	return c.JSON(snapshot(st))
}

// DeleteGoal removes one goal. Unknown id is a no-op.
func DeleteGoal(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	goalID := c.Params("id")

	st, _ := loadGoalState(userID)
	wasMet := st.Ledger.Met
	st.Ledger.RemoveGoal(goalID)

	if err := saveGoalState(userID, st); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save goals",
		})
	}

	if wasMet != st.Ledger.Met {
		syncShield(userID, st.Ledger.Met)
	}

	return c.JSON(snapshot(st))
}

type progressRequest struct {
	Amount *int `json:"amount"`
}

// IncrementProgress records progress against one goal. When the whole set
// becomes met for the first time today, the streak updates and the shield
// is cleared on the device.
func IncrementProgress(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	goalID := c.Params("id")

	var req progressRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	amount := 1
	if req.Amount != nil {
		amount = *req.Amount
	}

	st, today := loadGoalState(userID)
	becameMet := st.IncrementProgress(goalID, amount, today)

	if err := saveGoalState(userID, st); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save goals",
		})
	}

	if becameMet {
		syncShield(userID, true)
	}

	return c.JSON(snapshot(st))
}

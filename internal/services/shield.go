package services

import (
	"context"
	"log"
	"strconv"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"github.com/lockgoal/lockgoal-api/internal/database"
	"github.com/lockgoal/lockgoal-api/internal/models"
	"google.golang.org/api/option"
)

// ShieldService tells a user's device to apply or clear the app shield.
// The backend never restricts apps itself; it sends an FCM data message
// carrying the goals-met flag and the blocked-app identifiers, and the
// device's native screen-time layer does the rest.
type ShieldService struct {
	client *messaging.Client
}

// Global shield service instance
var Shield *ShieldService

// InitShield initializes the FCM-backed shield gateway.
// Returns nil gracefully if no service account is configured (dev mode).
func InitShield(serviceAccountPath string) error {
	if serviceAccountPath == "" {
		log.Println("Shield: No FCM service account configured, shield sync disabled")
		Shield = &ShieldService{client: nil}
		return nil
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(serviceAccountPath))
	if err != nil {
		log.Printf("Shield: Failed to initialize Firebase app: %v", err)
		Shield = &ShieldService{client: nil}
		return nil
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		log.Printf("Shield: Failed to get messaging client: %v", err)
		Shield = &ShieldService{client: nil}
		return nil
	}

	Shield = &ShieldService{client: client}
	log.Println("Shield: FCM shield sync enabled")
	return nil
}

// Sync pushes the current shield decision to the user's device: clear the
// shield when goals are met, apply it to the given apps otherwise.
// Callers run this in a goroutine; failures are logged, never surfaced.
// No-op if FCM is not configured or the user has no device token.
func (s *ShieldService) Sync(userID uuid.UUID, goalsMet bool, appIDs []string) {
	if s.client == nil {
		return
	}

	var user models.User
	if err := database.DB.Select("fcm_token").First(&user, userID).Error; err != nil {
		return
	}

	if user.FCMToken == "" {
		return
	}

	msg := &messaging.Message{
		Token: user.FCMToken,
		Data: map[string]string{
			"type":     "shield_sync",
			"goalsMet": strconv.FormatBool(goalsMet),
			"appIds":   strings.Join(appIDs, ","),
		},
	}

	_, err := s.client.Send(context.Background(), msg)
	if err != nil {
		log.Printf("Shield: Failed to sync user %s: %v", userID, err)
	}
}

package model

import "github.com/google/uuid"

// generateUUID creates a new display ID.
func generateUUID() string {
	return uuid.New().String()
}

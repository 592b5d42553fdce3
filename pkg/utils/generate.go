package utils

import (
	"github.com/google/uuid"
)

// GenerateScheduleCode returns the unique code handed out for a new booking.
// Collision probability is negligible and not checked.
func GenerateScheduleCode() string {
	return uuid.New().String()
}

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

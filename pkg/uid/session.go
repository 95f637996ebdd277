package uid

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateSessionID returns a random game session ID without dashes
func GenerateSessionID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// IsSessionID reports whether id looks like one of ours
func IsSessionID(id string) bool {
	if len(id) != 32 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

package utils

import "github.com/google/uuid"

// GenerateID returns a new unique row identifier. All stored rows (bids,
// participants, matches, snapshots) share this ID scheme.
func GenerateID() string {
	return uuid.NewString()
}

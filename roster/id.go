package roster

import (
	"time"

	"github.com/nhaseem/taskman/internal/ids"
)

// GenerateID creates a unique 8-character alphanumeric ID from a seed
// and timestamp. Uniqueness holds even when many records are minted
// within the same operation, such as a bulk staff import.
func GenerateID(seed string, timestamp time.Time) string {
	return ids.GenerateUnique(seed, timestamp, ids.DefaultLength)
}

// Package ids generates short unique record identifiers.
package ids

import (
	"crypto/sha256"
	"encoding/base32"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// DefaultLength is the standard length for generated IDs.
const DefaultLength = 8

var sequence atomic.Uint64

// Generate creates a deterministic, lowercase base32 ID derived from input.
func Generate(input string, length int) string {
	hash := sha256.Sum256([]byte(input))
	encoded := base32.StdEncoding.EncodeToString(hash[:])
	if length <= 0 {
		return ""
	}
	if length > len(encoded) {
		length = len(encoded)
	}
	return strings.ToLower(encoded[:length])
}

// GenerateUnique derives an ID from input and timestamp, mixing in a
// process-wide sequence number so that IDs minted in rapid succession
// (for example during a bulk import) never collide.
func GenerateUnique(input string, timestamp time.Time, length int) string {
	seq := sequence.Add(1)
	return Generate(input+timestamp.Format(time.RFC3339Nano)+strconv.FormatUint(seq, 10), length)
}

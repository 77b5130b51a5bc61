// Package session tracks per-user last-activity timestamps for the idle
// timeout. The tracker is advisory: signed token expiry stays authoritative
// for request validity, and a missing or unreachable cache never rejects a
// request.
package session

import (
	"log"
	"time"

	"github.com/connectedautocare/quoteapi/internal/pkg/cache"
)

// MaxInactive is the idle window after which a session counts as stale.
const MaxInactive = 24 * time.Hour

const keyPrefix = "session:activity:"

// Touch records activity for a user. Best effort: cache failures are logged
// and ignored.
func Touch(userID string) {
	err := cache.Set(keyPrefix+userID, time.Now().UTC().Format(time.RFC3339), MaxInactive)
	if err != nil {
		log.Printf("session: failed to record activity for user %s: %v", userID, err)
	}
}

// LastActivity returns the recorded last-activity time for a user. The
// second return value is false when nothing is recorded or the cache is
// unavailable.
func LastActivity(userID string) (time.Time, bool) {
	val, err := cache.Get(keyPrefix + userID)
	if err != nil {
		return time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// IsValid reports whether the user showed activity within the idle window.
// Unknown users are treated as valid because tracking is advisory only.
func IsValid(userID string) bool {
	last, ok := LastActivity(userID)
	if !ok {
		return true
	}
	return time.Since(last) < MaxInactive
}

// Clear drops the activity record, e.g. on logout.
func Clear(userID string) {
	if err := cache.Delete(keyPrefix + userID); err != nil {
		log.Printf("session: failed to clear activity for user %s: %v", userID, err)
	}
}

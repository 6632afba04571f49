package id

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// New generates a ULID string for user IDs. ULIDs sort lexicographically by
// creation time, which keeps the users table partition keys time-ordered
// without a separate created-at sort key.
func New() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}

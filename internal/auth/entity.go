// AngelaMos | 2026
// entity.go

package auth

import (
	"time"
)

// Token is the stored form of the opaque bearer credential. Exactly one row
// exists per user; the plaintext key is never persisted, only its SHA-256
// hash.
type Token struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	TokenHash string    `db:"token_hash"`
	CreatedAt time.Time `db:"created_at"`
}

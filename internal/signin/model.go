package signin

import "time"

// MaxVerifyAttempts bounds how many wrong codes may be tried against a single
// issued token before it is discarded.
const MaxVerifyAttempts = 5

// VerificationToken is a pending email sign-in. Only the bcrypt hash of the
// code is stored.
type VerificationToken struct {
	ID         string    `bson:"_id,omitempty"`
	Identifier string    `bson:"identifier"`
	TokenHash  string    `bson:"token_hash"`
	Attempts   int       `bson:"attempts"`
	ExpiresAt  time.Time `bson:"expires_at"`
	CreatedAt  time.Time `bson:"created_at"`
}

func (t VerificationToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

type CodeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

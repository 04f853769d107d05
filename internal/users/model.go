package users

import "time"

type User struct {
	ID            string     `bson:"_id,omitempty" json:"id"`
	Name          string     `bson:"name,omitempty" json:"name,omitempty"`
	Image         string     `bson:"image,omitempty" json:"image,omitempty"`
	Email         string     `bson:"email" json:"email"`
	EmailVerified *time.Time `bson:"email_verified,omitempty" json:"emailVerified,omitempty"`
	IsAnonymous   bool       `bson:"is_anonymous" json:"isAnonymous"`
	Role          string     `bson:"role" json:"role"`
	CreatedAt     time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time  `bson:"updated_at" json:"updatedAt"`
}

// CreateRequest describes a new identity. Role defaults to "user".
type CreateRequest struct {
	Name        string `json:"name"`
	Image       string `json:"image"`
	Email       string `json:"email" validate:"required,email"`
	IsAnonymous bool   `json:"isAnonymous"`
	Role        string `json:"role" validate:"omitempty,oneof=admin user member"`
}

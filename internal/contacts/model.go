package contacts

import "time"

const (
	StatusNew = "new"

	TypeCallback     = "callback"
	TypeConsultation = "consultation"
	TypePartnership  = "partnership"
	TypeSupport      = "support"
	TypeOther        = "other"
)

var validTypes = map[string]struct{}{
	TypeCallback:     {},
	TypeConsultation: {},
	TypePartnership:  {},
	TypeSupport:      {},
	TypeOther:        {},
}

func IsValidType(value string) bool {
	_, ok := validTypes[value]
	return ok
}

// ContactRequest is a message left through the public contact or callback
// form. Status is owned by the server and by back-office tooling.
type ContactRequest struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	Company     string    `bson:"company,omitempty" json:"company,omitempty"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Message     string    `bson:"message" json:"message"`
	RequestType string    `bson:"request_type" json:"requestType"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}

// CreateRequest is the public form payload. It deliberately has no status.
// Phone becomes mandatory for callback requests.
type CreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Company     string `json:"company"`
	Phone       string `json:"phone" validate:"omitempty,phone"`
	Message     string `json:"message" validate:"required"`
	RequestType string `json:"requestType" validate:"required,oneof=callback consultation partnership support other"`
}

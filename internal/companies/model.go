package companies

import "time"

type Company struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Logo      string    `bson:"logo,omitempty" json:"logo,omitempty"`
	Industry  string    `bson:"industry,omitempty" json:"industry,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

type CreateRequest struct {
	Name     string `json:"name" validate:"required"`
	Logo     string `json:"logo"`
	Industry string `json:"industry"`
}

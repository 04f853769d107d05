package casestudies

import "time"

type Metric struct {
	Label string `bson:"label" json:"label" validate:"required"`
	Value string `bson:"value" json:"value" validate:"required"`
}

type CaseStudy struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Client    string    `bson:"client" json:"client"`
	Industry  string    `bson:"industry" json:"industry"`
	Challenge string    `bson:"challenge" json:"challenge"`
	Solution  string    `bson:"solution" json:"solution"`
	Results   []string  `bson:"results" json:"results"`
	Metrics   []Metric  `bson:"metrics" json:"metrics"`
	Image     string    `bson:"image,omitempty" json:"image,omitempty"`
	Featured  bool      `bson:"featured,omitempty" json:"featured,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// CreateRequest keeps the order of Results and Metrics as submitted. Every
// metric needs both a label and a value.
type CreateRequest struct {
	Title     string   `json:"title" validate:"required"`
	Client    string   `json:"client" validate:"required"`
	Industry  string   `json:"industry" validate:"required"`
	Challenge string   `json:"challenge" validate:"required"`
	Solution  string   `json:"solution" validate:"required"`
	Results   []string `json:"results" validate:"dive,required"`
	Metrics   []Metric `json:"metrics" validate:"dive"`
	Image     string   `json:"image"`
	Featured  *bool    `json:"featured"`
}

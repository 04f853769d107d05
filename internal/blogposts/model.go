package blogposts

import "time"

// BlogPost is a news or blog entry. Published is stored but not used to
// filter listings; the front end decides what to show.
type BlogPost struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Excerpt   string    `bson:"excerpt" json:"excerpt"`
	Content   string    `bson:"content" json:"content"`
	Author    string    `bson:"author" json:"author"`
	Category  string    `bson:"category" json:"category"`
	Image     string    `bson:"image,omitempty" json:"image,omitempty"`
	Published bool      `bson:"published" json:"published"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

type CreateRequest struct {
	Title     string `json:"title" validate:"required"`
	Excerpt   string `json:"excerpt" validate:"required"`
	Content   string `json:"content" validate:"required"`
	Author    string `json:"author" validate:"required"`
	Category  string `json:"category" validate:"required"`
	Image     string `json:"image"`
	Published *bool  `json:"published" validate:"required"`
}

package entities

import "time"

// Post is a blog post authored in the admin editor.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (slug-index): slug
//
// ViewCount is maintained by an atomic ADD update on the posts table; readers
// never write it through the normal update path.

type Post struct {
	ID        string   `json:"id"`
	Slug      string   `json:"slug"`
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	Excerpt   string   `json:"excerpt,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Published bool     `json:"published"`
	ViewCount int64    `json:"view_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

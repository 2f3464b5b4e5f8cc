package response

import (
	"time"

	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/domain/blogcast"
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/domain/entities"
)

type PostResponse struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Excerpt   string    `json:"excerpt,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Published bool      `json:"published"`
	ViewCount int64     `json:"view_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	WordCount     int `json:"word_count"`
	ListenMinutes int `json:"listen_minutes"`
}

func FromPost(p entities.Post) PostResponse {
	words := blogcast.WordCount(p.Body)
	return PostResponse{
		ID:            p.ID,
		Slug:          p.Slug,
		Title:         p.Title,
		Body:          p.Body,
		Excerpt:       p.Excerpt,
		Tags:          p.Tags,
		Published:     p.Published,
		ViewCount:     p.ViewCount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		WordCount:     words,
		ListenMinutes: blogcast.ListenMinutes(words),
	}
}

// PostListItemResponse omits the body so list views stay light.

type PostListItemResponse struct {
	ID            string    `json:"id"`
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	Excerpt       string    `json:"excerpt,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	Published     bool      `json:"published"`
	ViewCount     int64     `json:"view_count"`
	CreatedAt     time.Time `json:"created_at"`
	WordCount     int       `json:"word_count"`
	ListenMinutes int       `json:"listen_minutes"`
}

func FromPostList(posts []entities.Post) []PostListItemResponse {
	out := make([]PostListItemResponse, 0, len(posts))
	for _, p := range posts {
		words := blogcast.WordCount(p.Body)
		out = append(out, PostListItemResponse{
			ID:            p.ID,
			Slug:          p.Slug,
			Title:         p.Title,
			Excerpt:       p.Excerpt,
			Tags:          p.Tags,
			Published:     p.Published,
			ViewCount:     p.ViewCount,
			CreatedAt:     p.CreatedAt,
			WordCount:     words,
			ListenMinutes: blogcast.ListenMinutes(words),
		})
	}
	return out
}

package request

// PostRequest is the editor save payload, used for both create and update.

type PostRequest struct {
	Slug      string   `json:"slug" binding:"required"`
	Title     string   `json:"title" binding:"required"`
	Body      string   `json:"body" binding:"required"`
	Excerpt   string   `json:"excerpt"`
	Tags      []string `json:"tags"`
	Published bool     `json:"published"`
}

package response

import (
	"strings"
	"testing"
	"time"

	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/domain/entities"
)

func TestFromPost(t *testing.T) {
	now := time.Now().UTC()
	p := entities.Post{
		ID:        "post-1",
		Slug:      "hello",
		Title:     "Hello",
		Body:      strings.Repeat("word ", 9500),
		Published: true,
		ViewCount: 12,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromPost(p)
	if res.ID != "post-1" || res.Slug != "hello" || res.ViewCount != 12 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.WordCount != 9500 {
		t.Fatalf("expected 9500 words, got %d", res.WordCount)
	}
	// 9500 words is exactly one hour of blogcast.
	if res.ListenMinutes != 60 {
		t.Fatalf("expected 60 listen minutes, got %d", res.ListenMinutes)
	}
}

func TestFromPostList_OmitsBody(t *testing.T) {
	posts := []entities.Post{{ID: "a", Slug: "a", Body: "one two three"}}
	res := FromPostList(posts)
	if len(res) != 1 {
		t.Fatalf("expected one item, got %d", len(res))
	}
	if res[0].WordCount != 3 || res[0].ListenMinutes != 1 {
		t.Fatalf("unexpected estimates: %+v", res[0])
	}
}

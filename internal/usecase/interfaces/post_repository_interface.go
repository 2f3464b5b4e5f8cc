package interfaces

import (
	"context"

	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/domain/entities"
)

// IPostRepository abstracts DynamoDB persistence for Post.
//
// IncrementViews is the one counter-style write in the system: a single
// atomic ADD on the stored row, keyed by post id.

type IPostRepository interface {
	Create(ctx context.Context, p entities.Post) (entities.Post, error)
	GetBySlug(ctx context.Context, slug string) (entities.Post, error)
	List(ctx context.Context, publishedOnly bool) ([]entities.Post, error)
	Update(ctx context.Context, p entities.Post) (entities.Post, error)
	IncrementViews(ctx context.Context, id string) error
}

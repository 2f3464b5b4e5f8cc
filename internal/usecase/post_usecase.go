package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/domain/entities"
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPostNotFound      = errors.New("post not found")
	ErrInvalidPostSlug   = errors.New("invalid post slug")
	ErrMissingPostFields = errors.New("title and body are required")
	ErrPostAlreadyExists = errors.New("post already exists for this slug")
)

// PostInput is the editor payload for creating or updating a post.

type PostInput struct {
	Slug      string
	Title     string
	Body      string
	Excerpt   string
	Tags      []string
	Published bool
}

// IPostUseCase exposes the blog surface: the admin editor writes, the public
// site reads and records views.

type IPostUseCase interface {
	Create(ctx context.Context, in PostInput) (entities.Post, error)
	Update(ctx context.Context, in PostInput) (entities.Post, error)
	GetBySlug(ctx context.Context, slug string) (entities.Post, error)
	List(ctx context.Context, publishedOnly bool) ([]entities.Post, error)
	RecordView(ctx context.Context, slug string) (entities.Post, error)
}

type PostUseCase struct {
	repo interfaces.IPostRepository
}

var _ IPostUseCase = (*PostUseCase)(nil)

func NewPostUseCase(repo interfaces.IPostRepository) *PostUseCase {
	return &PostUseCase{repo: repo}
}

func (u *PostUseCase) Create(ctx context.Context, in PostInput) (entities.Post, error) {
	in.Slug = strings.TrimSpace(strings.ToLower(in.Slug))
	in.Title = strings.TrimSpace(in.Title)
	if in.Slug == "" {
		return entities.Post{}, ErrInvalidPostSlug
	}
	if in.Title == "" || strings.TrimSpace(in.Body) == "" {
		return entities.Post{}, ErrMissingPostFields
	}

	// Enforce: one post per slug.
	if existing, err := u.repo.GetBySlug(ctx, in.Slug); err != nil {
		return entities.Post{}, err
	} else if existing.ID != "" {
		return entities.Post{}, ErrPostAlreadyExists
	}

	now := time.Now().UTC()
	p := entities.Post{
		ID:        uuid.NewString(),
		Slug:      in.Slug,
		Title:     in.Title,
		Body:      in.Body,
		Excerpt:   strings.TrimSpace(in.Excerpt),
		Tags:      in.Tags,
		Published: in.Published,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, p)
}

func (u *PostUseCase) Update(ctx context.Context, in PostInput) (entities.Post, error) {
	in.Slug = strings.TrimSpace(strings.ToLower(in.Slug))
	in.Title = strings.TrimSpace(in.Title)
	if in.Slug == "" {
		return entities.Post{}, ErrInvalidPostSlug
	}
	if in.Title == "" || strings.TrimSpace(in.Body) == "" {
		return entities.Post{}, ErrMissingPostFields
	}

	existing, err := u.repo.GetBySlug(ctx, in.Slug)
	if err != nil {
		return entities.Post{}, err
	}
	if existing.ID == "" {
		return entities.Post{}, ErrPostNotFound
	}

	existing.Title = in.Title
	existing.Body = in.Body
	existing.Excerpt = strings.TrimSpace(in.Excerpt)
	existing.Tags = in.Tags
	existing.Published = in.Published
	existing.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, existing)
}

func (u *PostUseCase) GetBySlug(ctx context.Context, slug string) (entities.Post, error) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" {
		return entities.Post{}, ErrInvalidPostSlug
	}

	p, err := u.repo.GetBySlug(ctx, slug)
	if err != nil {
		return entities.Post{}, err
	}
	if p.ID == "" {
		return entities.Post{}, ErrPostNotFound
	}
	return p, nil
}

func (u *PostUseCase) List(ctx context.Context, publishedOnly bool) ([]entities.Post, error) {
	return u.repo.List(ctx, publishedOnly)
}

// RecordView bumps the post's view counter. A failed increment is logged and
// swallowed: analytics must never break the read path.
func (u *PostUseCase) RecordView(ctx context.Context, slug string) (entities.Post, error) {
	p, err := u.GetBySlug(ctx, slug)
	if err != nil {
		return entities.Post{}, err
	}

	if err := u.repo.IncrementViews(ctx, p.ID); err != nil {
		log.Printf("[post][usecase] view increment failed slug=%s id=%s err=%v", p.Slug, p.ID, err)
		return p, nil
	}
	p.ViewCount++
	return p, nil
}

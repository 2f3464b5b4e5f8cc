package handlers

import (
	"errors"
	"net/http"

	request "github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/adapter/http/dto/request"
	response "github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/adapter/http/dto/response"
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/usecase"
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPostPayload = pkg.NewDomainErrorSimple("INVALID_POST_INPUT", "Invalid post payload", http.StatusBadRequest)

// PostHandler serves the blog: public reads plus the admin editor.

type PostHandler struct {
	usecase usecase.IPostUseCase
}

func NewPostHandler(uc usecase.IPostUseCase) *PostHandler {
	return &PostHandler{usecase: uc}
}

// ListPublishedPosts is the public blog index.
func (h *PostHandler) ListPublishedPosts(c *gin.Context) {
	posts, err := h.usecase.List(c.Request.Context(), true)
	if err != nil {
		appErr := mapPostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPostList(posts))
}

// ListAllPosts is the editor's index, drafts included.
func (h *PostHandler) ListAllPosts(c *gin.Context) {
	posts, err := h.usecase.List(c.Request.Context(), false)
	if err != nil {
		appErr := mapPostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPostList(posts))
}

func (h *PostHandler) GetPostBySlug(c *gin.Context) {
	post, err := h.usecase.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		appErr := mapPostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPost(post))
}

// RecordView bumps the view counter for a post. The increment itself is
// best-effort; only an unknown slug fails here.
func (h *PostHandler) RecordView(c *gin.Context) {
	post, err := h.usecase.RecordView(c.Request.Context(), c.Param("slug"))
	if err != nil {
		appErr := mapPostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPost(post))
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	var payload request.PostRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPostPayload.HTTPStatus, errInvalidPostPayload.ToHTTPError())
		return
	}

	post, err := h.usecase.Create(c.Request.Context(), postInput(payload))
	if err != nil {
		appErr := mapPostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPost(post))
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	var payload request.PostRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPostPayload.HTTPStatus, errInvalidPostPayload.ToHTTPError())
		return
	}

	post, err := h.usecase.Update(c.Request.Context(), postInput(payload))
	if err != nil {
		appErr := mapPostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPost(post))
}

func postInput(payload request.PostRequest) usecase.PostInput {
	return usecase.PostInput{
		Slug:      payload.Slug,
		Title:     payload.Title,
		Body:      payload.Body,
		Excerpt:   payload.Excerpt,
		Tags:      payload.Tags,
		Published: payload.Published,
	}
}

func mapPostError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPostSlug), errors.Is(err, usecase.ErrMissingPostFields):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPostAlreadyExists):
		return pkg.NewDomainErrorSimple("POST_ALREADY_EXISTS", "A post already exists for this slug", http.StatusConflict)
	case errors.Is(err, usecase.ErrPostNotFound):
		return pkg.NewDomainErrorSimple("POST_NOT_FOUND", "Post not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

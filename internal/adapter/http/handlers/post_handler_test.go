package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/adapter/http/handlers/mocks"
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/domain/entities"
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPostHandler_PublicReads(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list published", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPostUseCase(ctrl)
		h := NewPostHandler(uc)

		r := gin.New()
		r.GET("/v1/posts", h.ListPublishedPosts)

		uc.EXPECT().List(gomock.Any(), true).Return([]entities.Post{{ID: "post-1", Slug: "hello", Published: true}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/posts", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get by slug not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPostUseCase(ctrl)
		h := NewPostHandler(uc)

		r := gin.New()
		r.GET("/v1/posts/:slug", h.GetPostBySlug)

		uc.EXPECT().GetBySlug(gomock.Any(), "missing").Return(entities.Post{}, usecase.ErrPostNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/posts/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("record view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPostUseCase(ctrl)
		h := NewPostHandler(uc)

		r := gin.New()
		r.POST("/v1/posts/:slug/views", h.RecordView)

		uc.EXPECT().RecordView(gomock.Any(), "hello").Return(entities.Post{ID: "post-1", Slug: "hello", ViewCount: 13}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/posts/hello/views", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["view_count"] != 13.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestPostHandler_AdminWrites(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPostUseCase(ctrl)
		h := NewPostHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/posts", h.CreatePost)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/posts", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create duplicate slug", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPostUseCase(ctrl)
		h := NewPostHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/posts", h.CreatePost)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Post{}, usecase.ErrPostAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/posts", bytes.NewBufferString(`{"slug":"hello","title":"Hello","body":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPostUseCase(ctrl)
		h := NewPostHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/posts", h.CreatePost)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Post{ID: "post-1", Slug: "hello", Title: "Hello", Body: "one two three"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/posts", bytes.NewBufferString(`{"slug":"hello","title":"Hello","body":"one two three"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["slug"] != "hello" || body["word_count"] != 3.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("update unknown slug", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPostUseCase(ctrl)
		h := NewPostHandler(uc)

		r := gin.New()
		r.PUT("/v1/admin/posts", h.UpdatePost)

		uc.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Post{}, usecase.ErrPostNotFound)

		req := httptest.NewRequest(http.MethodPut, "/v1/admin/posts", bytes.NewBufferString(`{"slug":"missing","title":"x","body":"y"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapPostError(t *testing.T) {
	if got := mapPostError(usecase.ErrInvalidPostSlug); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPostError(usecase.ErrPostAlreadyExists); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapPostError(usecase.ErrPostNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapPostError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}

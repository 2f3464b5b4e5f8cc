package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/adapter/http/handlers/mocks"
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/domain/entities"
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/domain/pipeline"
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProjectHandler_CreateProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/projects", h.CreateProject)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/projects", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown client type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/projects", h.CreateProject)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/projects", bytes.NewBufferString(`{"book_title":"Dust","client_name":"Iris","client_type":"Walkup"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/projects", h.CreateProject)

		now := time.Now().UTC()
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusPending, ClientType: entities.ClientTypeAudition, BookTitle: "Dust", ClientName: "Iris", CreatedAt: now, UpdatedAt: now}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/projects", bytes.NewBufferString(`{"book_title":"Dust","client_name":"Iris"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "p-1" || body["status"] != "pending" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestProjectHandler_ListProjects(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("all projects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/projects", h.ListProjects)

		uc.EXPECT().List(gomock.Any()).Return([]entities.Project{{ID: "p-1"}, {ID: "p-2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/projects", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("filtered by status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/projects", h.ListProjects)

		uc.EXPECT().ListByStatus(gomock.Any(), entities.ProjectStatusProduction).Return([]entities.Project{{ID: "p-1", Status: entities.ProjectStatusProduction}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/projects?status=production", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestProjectHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/projects/:id/approve", h.ApproveProject)

		uc.EXPECT().Approve(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusOnboarding}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/projects/p-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("approve out of order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/projects/:id/approve", h.ApproveProject)

		uc.EXPECT().Approve(gomock.Any(), "p-1").Return(entities.Project{}, pipeline.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/projects/p-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("reject without confirm", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/projects/:id/reject", h.RejectProject)

		uc.EXPECT().Reject(gomock.Any(), "p-1", false).Return(entities.Project{}, usecase.ErrRejectNotConfirmed)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/projects/p-1/reject", bytes.NewBufferString(`{"confirm":false}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("book roster", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/projects/:id/book", h.BookProject)

		uc.EXPECT().Book(gomock.Any(), "p-1", entities.ClientTypeRoster, "Podium Audio").Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusOnboarding, ClientType: entities.ClientTypeRoster, RosterProducer: "Podium Audio", ProductionStatus: entities.ProductionStatusPreProduction}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/projects/p-1/book", bytes.NewBufferString(`{"booking_type":"Roster","roster_producer":"Podium Audio"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["roster_producer"] != "Podium Audio" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("book unknown type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/projects/:id/book", h.BookProject)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/projects/p-1/book", bytes.NewBufferString(`{"booking_type":"Walkup"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestMapProjectError(t *testing.T) {
	if got := mapProjectError(usecase.ErrInvalidProjectID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapProjectError(usecase.ErrRejectNotConfirmed); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapProjectError(pipeline.ErrInvalidTransition); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapProjectError(pipeline.ErrNotAudition); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapProjectError(usecase.ErrProjectNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapProjectError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}

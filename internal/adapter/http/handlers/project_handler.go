package handlers

import (
	"errors"
	"net/http"

	request "github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/adapter/http/dto/request"
	response "github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/adapter/http/dto/response"
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/domain/entities"
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/domain/pipeline"
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/usecase"
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidProjectPayload = pkg.NewDomainErrorSimple("INVALID_PROJECT_INPUT", "Invalid project payload", http.StatusBadRequest)

// ProjectHandler handles HTTP requests for the booking/production pipeline.
//
// Mutating endpoints return only the updated row; the admin UI re-fetches the
// list afterwards instead of patching its local copy.

type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

// CreateProject handles audition-intake submissions.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var payload request.CreateProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	clientType, err := payload.ResolveClientType()
	if err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.Create(c.Request.Context(), usecase.CreateProjectInput{
		BookTitle:       payload.BookTitle,
		ClientName:      payload.ClientName,
		Email:           payload.Email,
		ClientType:      clientType,
		WordCount:       payload.WordCount,
		DaysNeeded:      payload.DaysNeeded,
		NarrationStyle:  payload.NarrationStyle,
		DiscountApplied: payload.DiscountApplied,
		Notes:           payload.Notes,
		StartDate:       payload.StartDate,
		EndDate:         payload.EndDate,
	})
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProject(project))
}

// ListProjects returns the full pipeline, optionally filtered by ?status=.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	var (
		projects []entities.Project
		err      error
	)
	if status := c.Query("status"); status != "" {
		projects, err = h.usecase.ListByStatus(c.Request.Context(), entities.ProjectStatus(status))
	} else {
		projects, err = h.usecase.List(c.Request.Context())
	}
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProjects(projects))
}

// ListAuditions returns the audition-intake view: pending, audition-sourced.
func (h *ProjectHandler) ListAuditions(c *gin.Context) {
	projects, err := h.usecase.ListAuditions(c.Request.Context())
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProjects(projects))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

func (h *ProjectHandler) ApproveProject(c *gin.Context) {
	project, err := h.usecase.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

// RejectProject archives a project. The body must carry confirm=true;
// archiving is terminal.
func (h *ProjectHandler) RejectProject(c *gin.Context) {
	var payload request.RejectProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.Reject(c.Request.Context(), c.Param("id"), payload.Confirm)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

func (h *ProjectHandler) BookProject(c *gin.Context) {
	var payload request.BookProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	bookingType, err := payload.ResolveBookingType()
	if err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.Book(c.Request.Context(), c.Param("id"), bookingType, payload.RosterProducer)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

func mapProjectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrMissingProjectFields),
		errors.Is(err, usecase.ErrInvalidProjectStatus),
		errors.Is(err, usecase.ErrInvalidProducerOnBook):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRejectNotConfirmed):
		return pkg.NewDomainErrorSimple("REJECT_NOT_CONFIRMED", "Archiving must be explicitly confirmed", http.StatusBadRequest)
	case errors.Is(err, pipeline.ErrInvalidTransition),
		errors.Is(err, pipeline.ErrNotAudition),
		errors.Is(err, pipeline.ErrInvalidBookingType),
		errors.Is(err, pipeline.ErrUnknownStatus):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Action is not valid for the project's current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"errors"
	"net/http"

	request "github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/adapter/http/dto/request"
	response "github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/adapter/http/dto/response"
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/domain/finance"
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/usecase"
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)

// FinanceHandler handles invoices and the derived pipeline income summary.

type FinanceHandler struct {
	usecase usecase.IFinanceUseCase
}

func NewFinanceHandler(uc usecase.IFinanceUseCase) *FinanceHandler {
	return &FinanceHandler{usecase: uc}
}

func (h *FinanceHandler) CreateInvoice(c *gin.Context) {
	var payload request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	inv, err := h.usecase.CreateInvoice(c.Request.Context(), usecase.CreateInvoiceInput{
		ProjectID:     payload.ProjectID,
		TotalAmount:   payload.TotalAmount,
		PozotronRate:  payload.PozotronRate,
		PFHCount:      payload.PFHCount,
		OtherExpenses: payload.OtherExpenses,
		EstTaxRate:    payload.EstTaxRate,
	})
	if err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoice(inv))
}

func (h *FinanceHandler) ListInvoicesByProject(c *gin.Context) {
	invoices, err := h.usecase.ListByProjectID(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

// GetSummary recomputes the pipeline totals from the full current invoice
// set. An empty pipeline is a 404, deliberately distinct from a zero-income
// summary.
func (h *FinanceHandler) GetSummary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSummary(summary))
}

func mapFinanceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID),
		errors.Is(err, usecase.ErrInvalidInvoiceProject),
		errors.Is(err, usecase.ErrInvalidInvoiceAmount),
		errors.Is(err, usecase.ErrInvalidInvoiceRates):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotBillable):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_BILLABLE", "Only production projects can be invoiced", http.StatusConflict)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, finance.ErrNoActivePipeline):
		return pkg.NewDomainErrorSimple("NO_ACTIVE_PIPELINE", "No invoices in the pipeline", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/inmatic/invoices_accounting_app/internal/apperrors"
	"github.com/inmatic/invoices_accounting_app/internal/core/domain"
	portssvc "github.com/inmatic/invoices_accounting_app/internal/core/ports/services"
	"github.com/inmatic/invoices_accounting_app/internal/dto"
	"github.com/inmatic/invoices_accounting_app/internal/middleware"
)

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

// newInvoiceHandler creates a new invoiceHandler.
func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{
		invoiceService: is,
	}
}

// RegisterInvoiceRoutes registers routes related to invoices. Reads go on the
// public group; mutations on the protected (authenticated) group.
func RegisterInvoiceRoutes(public, protected *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	public.GET("/invoices", h.listInvoices)
	public.GET("/invoices/:invoiceID", h.getInvoice)
	public.GET("/invoices/:invoiceID/accounting-entries", h.getAccountingEntries)

	protected.POST("/invoices", h.createInvoice)
	protected.PUT("/invoices/:invoiceID", h.updateInvoice)
	protected.DELETE("/invoices/:invoiceID", h.deleteInvoice)
}

func parseInvoiceID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("invoiceID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invoice ID must be an integer"})
		return 0, false
	}
	return id, true
}

// respondValidationError writes the full field->message map for validation
// failures and a plain message otherwise.
func respondValidationError(c *gin.Context, err error) {
	var verrs apperrors.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": verrs})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// listInvoices godoc
// @Summary List invoices
// @Description Lists all invoices. With no filters the local store is returned, synchronizing from the payment API when empty. state/start_date/end_date restrict the result.
// @Tags invoices
// @Produce json
// @Param state query string false "Filter by invoice state"
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Unrecognized state filter"
// @Failure 500 {object} map[string]string "Failed to list invoices"
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state := c.Query("state")
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	var (
		invoices []domain.Invoice
		err      error
	)
	if state == "" && startDate == "" && endDate == "" {
		invoices, err = h.invoiceService.ListInvoices(c.Request.Context())
	} else {
		invoices, err = h.invoiceService.FilterInvoices(c.Request.Context(), state, startDate, endDate)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidFilter) {
			logger.Warn("Rejected invoice list filter", slog.String("state", state))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Payment API returned invalid invoices", slog.String("error", err.Error()))
			respondValidationError(c, err)
			return
		}
		logger.Error("Failed to list invoices", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list invoices"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvoiceResponse(invoices))
}

// getInvoice godoc
// @Summary Get an invoice by id
// @Tags invoices
// @Produce json
// @Param invoiceID path int true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to retrieve invoice"
// @Router /invoices/{invoiceID} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID, ok := parseInvoiceID(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
			return
		}
		logger.Error("Failed to get invoice", slog.Int64("invoice_id", invoiceID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve invoice"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// createInvoice godoc
// @Summary Create a new invoice
// @Description Validates and persists a new invoice. State defaults to draft.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Validation failed"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create invoice"
// @Security BearerAuth
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.invoiceService.CreateInvoice(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating invoice", slog.String("error", err.Error()))
			respondValidationError(c, err)
			return
		}
		logger.Error("Failed to create invoice", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invoice"})
		return
	}

	logger.Info("Invoice created", slog.Int64("invoice_id", created.ID))
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(created))
}

// updateInvoice godoc
// @Summary Update an invoice
// @Description Merges the supplied fields onto the invoice and re-validates the result. Partial bodies are allowed.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoiceID path int true "Invoice ID"
// @Param invoice body dto.UpdateInvoiceRequest true "Fields to update"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Validation failed"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to update invoice"
// @Security BearerAuth
// @Router /invoices/{invoiceID} [put]
func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID, ok := parseInvoiceID(c)
	if !ok {
		return
	}

	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updated, err := h.invoiceService.UpdateInvoice(c.Request.Context(), invoiceID, req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error updating invoice", slog.Int64("invoice_id", invoiceID), slog.String("error", err.Error()))
			respondValidationError(c, err)
		default:
			logger.Error("Failed to update invoice", slog.Int64("invoice_id", invoiceID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update invoice"})
		}
		return
	}

	logger.Info("Invoice updated", slog.Int64("invoice_id", invoiceID))
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(updated))
}

// deleteInvoice godoc
// @Summary Delete an invoice
// @Tags invoices
// @Produce json
// @Param invoiceID path int true "Invoice ID"
// @Success 200 {object} dto.DeleteInvoiceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to delete invoice"
// @Security BearerAuth
// @Router /invoices/{invoiceID} [delete]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID, ok := parseInvoiceID(c)
	if !ok {
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), invoiceID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
			return
		}
		logger.Error("Failed to delete invoice", slog.Int64("invoice_id", invoiceID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete invoice"})
		return
	}

	logger.Info("Invoice deleted", slog.Int64("invoice_id", invoiceID))
	c.JSON(http.StatusOK, dto.DeleteInvoiceResponse{
		Message: "Invoice " + strconv.FormatInt(invoiceID, 10) + " deleted successfully",
	})
}

// getAccountingEntries godoc
// @Summary Get accounting entries for an invoice
// @Description Derives the ledger postings for a paid invoice, falling back to the payment API when the invoice is unknown locally.
// @Tags invoices
// @Produce json
// @Param invoiceID path int true "Invoice ID"
// @Success 200 {object} dto.AccountingEntriesResponse
// @Failure 400 {object} map[string]string "Invoice is not paid"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to generate accounting entries"
// @Router /invoices/{invoiceID}/accounting-entries [get]
func (h *invoiceHandler) getAccountingEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID, ok := parseInvoiceID(c)
	if !ok {
		return
	}

	entries, err := h.invoiceService.GenerateAccountingEntries(c.Request.Context(), invoiceID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		case errors.Is(err, domain.ErrInvoiceNotPaid):
			c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvoiceNotPaid.Error()})
		default:
			logger.Error("Failed to generate accounting entries", slog.Int64("invoice_id", invoiceID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate accounting entries"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountingEntriesResponse(entries))
}

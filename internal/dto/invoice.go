package dto

import (
	"time"

	"github.com/inmatic/invoices_accounting_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest defines the data needed to create a new invoice.
// The monetary fields are pointers so that a VAT of zero still satisfies the
// required check. Field names follow the payment API wire contract.
type CreateInvoiceRequest struct {
	Provider   string           `json:"provider" binding:"required"`
	Concept    string           `json:"concept" binding:"required"`
	BaseValue  *decimal.Decimal `json:"base_value" binding:"required"`
	VAT        *decimal.Decimal `json:"vat" binding:"required"`
	TotalValue *decimal.Decimal `json:"total_value" binding:"required"`
	Date       string           `json:"date" binding:"required,datetime=2006-01-02"`
	State      string           `json:"state" binding:"omitempty,invoicestate"`
}

// UpdateInvoiceRequest carries a partial update: nil fields keep their
// persisted value. The merged record is re-validated before saving.
type UpdateInvoiceRequest struct {
	Provider   *string          `json:"provider"`
	Concept    *string          `json:"concept"`
	BaseValue  *decimal.Decimal `json:"base_value"`
	VAT        *decimal.Decimal `json:"vat"`
	TotalValue *decimal.Decimal `json:"total_value"`
	Date       *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	State      *string          `json:"state" binding:"omitempty,invoicestate"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	ID            int64           `json:"id"`
	Provider      string          `json:"provider"`
	Concept       string          `json:"concept"`
	BaseValue     decimal.Decimal `json:"base_value"`
	VAT           decimal.Decimal `json:"vat"`
	TotalValue    decimal.Decimal `json:"total_value"`
	Date          string          `json:"date"` // YYYY-MM-DD
	State         string          `json:"state"`
	CreatedAt     time.Time       `json:"created_at"`
	LastUpdatedAt time.Time       `json:"last_updated_at"`
}

// DeleteInvoiceResponse confirms a successful deletion.
type DeleteInvoiceResponse struct {
	Message string `json:"message"`
}

// ToInvoiceResponse converts a domain.Invoice to an InvoiceResponse DTO
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            inv.ID,
		Provider:      inv.Provider,
		Concept:       inv.Concept,
		BaseValue:     inv.BaseValue,
		VAT:           inv.VAT,
		TotalValue:    inv.TotalValue,
		Date:          inv.Date.Format(time.DateOnly),
		State:         string(inv.State),
		CreatedAt:     inv.CreatedAt,
		LastUpdatedAt: inv.LastUpdatedAt,
	}
}

// ToListInvoiceResponse converts a slice of domain.Invoice to a slice of InvoiceResponse DTOs
func ToListInvoiceResponse(invoices []domain.Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = ToInvoiceResponse(&inv)
	}
	return res
}

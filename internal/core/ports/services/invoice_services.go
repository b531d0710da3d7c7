package services

import (
	"context"

	"github.com/inmatic/invoices_accounting_app/internal/core/domain"
	"github.com/inmatic/invoices_accounting_app/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoice data
type InvoiceReaderSvc interface {
	// ListInvoices returns all locally persisted invoices. When the local
	// store is empty it synchronizes from the external payment API first
	// (all-or-nothing) and returns the synced set.
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)

	// GetInvoice retrieves a single invoice by id.
	GetInvoice(ctx context.Context, invoiceID int64) (*domain.Invoice, error)

	// FilterInvoices lists invoices restricted by the raw query values.
	// An unrecognized state yields apperrors.ErrInvalidFilter; unparseable
	// dates are ignored as filters.
	FilterInvoices(ctx context.Context, state, startDate, endDate string) ([]domain.Invoice, error)

	// GenerateAccountingEntries derives the ledger postings for an invoice,
	// falling back to the external payment API when the invoice is not
	// persisted locally.
	GenerateAccountingEntries(ctx context.Context, invoiceID int64) ([]domain.AccountingEntry, error)
}

// InvoiceWriterSvc defines write operations for invoice data
type InvoiceWriterSvc interface {
	// CreateInvoice validates and persists a new invoice.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error)

	// UpdateInvoice merges the partial fields onto the persisted invoice,
	// re-validates the merged record and persists it.
	UpdateInvoice(ctx context.Context, invoiceID int64, req dto.UpdateInvoiceRequest, updaterUserID string) (*domain.Invoice, error)

	// DeleteInvoice removes the invoice (hard delete).
	DeleteInvoice(ctx context.Context, invoiceID int64) error
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}

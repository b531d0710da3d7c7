package repositories

import (
	"context"

	"github.com/inmatic/invoices_accounting_app/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves a single invoice by its id.
	// Returns apperrors.ErrNotFound when no row exists.
	FindInvoiceByID(ctx context.Context, invoiceID int64) (*domain.Invoice, error)

	// FindInvoices retrieves invoices matching the filter, ordered by id.
	// A zero filter returns all invoices.
	FindInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// CreateInvoice persists a new invoice and returns it with its assigned id.
	CreateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error)

	// UpdateInvoice persists the full merged invoice row identified by its id.
	// Returns apperrors.ErrNotFound when no row exists.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error

	// DeleteInvoice removes the invoice. Returns apperrors.ErrNotFound when
	// no row exists.
	DeleteInvoice(ctx context.Context, invoiceID int64) error

	// UpsertInvoices inserts or updates the given invoices keyed by their id
	// inside a single database transaction. Either every record is committed
	// or none are.
	UpsertInvoices(ctx context.Context, invoices []domain.Invoice) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}

// InvoiceRepositoryWithTx extends InvoiceRepositoryFacade with transaction capabilities
type InvoiceRepositoryWithTx interface {
	InvoiceRepositoryFacade
	TransactionManager
}

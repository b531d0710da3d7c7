package clients

import (
	"context"

	"github.com/inmatic/invoices_accounting_app/internal/core/domain"
)

// PaymentAPIClient is the contract with the external payment API the system
// synchronizes with. It mirrors the invoice operation set over JSON/HTTP.
// Implementations must surface non-2xx responses as errors (404 maps to
// apperrors.ErrNotFound, other failures wrap apperrors.ErrUpstream) and never
// retry silently.
type PaymentAPIClient interface {
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
	GetInvoice(ctx context.Context, invoiceID int64) (*domain.Invoice, error)
	CreateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error)
	UpdateInvoice(ctx context.Context, invoiceID int64, invoice domain.Invoice) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, invoiceID int64) error
	FilterInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error)

	// GetAccountingEntries fetches the derived ledger postings for an invoice.
	// The upstream responds either with a bare list or an object carrying an
	// "entries" key; implementations normalize both shapes.
	GetAccountingEntries(ctx context.Context, invoiceID int64) ([]domain.AccountingEntry, error)
}

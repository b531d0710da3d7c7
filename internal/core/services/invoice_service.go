package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/inmatic/invoices_accounting_app/internal/apperrors"
	"github.com/inmatic/invoices_accounting_app/internal/core/domain"
	portsclients "github.com/inmatic/invoices_accounting_app/internal/core/ports/clients"
	portsrepo "github.com/inmatic/invoices_accounting_app/internal/core/ports/repositories"
	portssvc "github.com/inmatic/invoices_accounting_app/internal/core/ports/services"
	"github.com/inmatic/invoices_accounting_app/internal/dto"
	"github.com/inmatic/invoices_accounting_app/internal/middleware"
)

// InvoiceService orchestrates invoice CRUD, validation, accounting entry
// derivation and the fallback synchronization with the external payment API.
// The repository exclusively owns persisted records; the service never caches
// state across calls.
type InvoiceService struct {
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	paymentAPI  portsclients.PaymentAPIClient // may be nil when no upstream is configured
}

// NewInvoiceService creates a new InvoiceService. paymentAPI may be nil, in
// which case the external fallback paths are disabled.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, paymentAPI portsclients.PaymentAPIClient) portssvc.InvoiceSvcFacade {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		paymentAPI:  paymentAPI,
	}
}

var _ portssvc.InvoiceSvcFacade = (*InvoiceService)(nil)

// ListInvoices returns all locally persisted invoices. When the repository is
// empty and a payment API client is configured, it fetches the upstream
// invoice list, validates every record, and mirrors the whole batch into the
// repository in a single transaction before returning it. The import is
// strict: one invalid record rejects the entire batch.
func (s *InvoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.FindInvoices(ctx, domain.InvoiceFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	if len(invoices) > 0 || s.paymentAPI == nil {
		return invoices, nil
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	logger.Info("Local invoice store is empty, synchronizing from payment API")

	fetched, err := s.paymentAPI.ListInvoices(ctx)
	if err != nil {
		logger.Error("Failed to fetch invoices from payment API", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch invoices from payment API: %w", err)
	}
	if len(fetched) == 0 {
		return invoices, nil
	}

	now := time.Now().UTC()
	for i := range fetched {
		if fetched[i].State == "" {
			fetched[i].State = domain.DefaultInvoiceState
		}
		if err := fetched[i].Validate(); err != nil {
			return nil, fmt.Errorf("invoice %d from payment API is invalid: %w", fetched[i].ID, err)
		}
		fetched[i].CreatedAt = now
		fetched[i].LastUpdatedAt = now
	}

	if err := s.invoiceRepo.UpsertInvoices(ctx, fetched); err != nil {
		return nil, fmt.Errorf("failed to mirror payment API invoices: %w", err)
	}

	logger.Info("Synchronized invoices from payment API", slog.Int("count", len(fetched)))
	return fetched, nil
}

// GetInvoice retrieves a single invoice by id.
func (s *InvoiceService) GetInvoice(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice %d: %w", invoiceID, err)
	}
	return invoice, nil
}

// CreateInvoice validates the candidate record and persists it. The state
// defaults to draft when the caller supplies none. All violated invariants
// are reported together.
func (s *InvoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error) {
	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		// Binding guarantees the format; this guards direct service callers.
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidation)
	}

	state := domain.DefaultInvoiceState
	if req.State != "" {
		state = domain.InvoiceState(req.State)
	}

	now := time.Now().UTC()
	invoice := domain.Invoice{
		Provider:   req.Provider,
		Concept:    req.Concept,
		BaseValue:  *req.BaseValue,
		VAT:        *req.VAT,
		TotalValue: *req.TotalValue,
		Date:       date,
		State:      state,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := invoice.Validate(); err != nil {
		return nil, err
	}

	created, err := s.invoiceRepo.CreateInvoice(ctx, invoice)
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	return created, nil
}

// UpdateInvoice loads the persisted record, merges the partial fields onto
// it, re-validates the merged whole and persists it. The record is unchanged
// when validation fails.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, invoiceID int64, req dto.UpdateInvoiceRequest, updaterUserID string) (*domain.Invoice, error) {
	existing, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find invoice %d for update: %w", invoiceID, err)
	}

	merged := *existing
	if req.Provider != nil {
		merged.Provider = *req.Provider
	}
	if req.Concept != nil {
		merged.Concept = *req.Concept
	}
	if req.BaseValue != nil {
		merged.BaseValue = *req.BaseValue
	}
	if req.VAT != nil {
		merged.VAT = *req.VAT
	}
	if req.TotalValue != nil {
		merged.TotalValue = *req.TotalValue
	}
	if req.Date != nil {
		date, perr := time.Parse(time.DateOnly, *req.Date)
		if perr != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidation)
		}
		merged.Date = date
	}
	if req.State != nil {
		merged.State = domain.InvoiceState(*req.State)
	}

	if err := merged.Validate(); err != nil {
		return nil, err
	}

	merged.LastUpdatedAt = time.Now().UTC()
	merged.LastUpdatedBy = updaterUserID

	if err := s.invoiceRepo.UpdateInvoice(ctx, merged); err != nil {
		return nil, fmt.Errorf("failed to update invoice %d: %w", invoiceID, err)
	}
	return &merged, nil
}

// DeleteInvoice removes the invoice. Hard delete, no tombstone.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, invoiceID int64) error {
	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID); err != nil {
		return fmt.Errorf("failed to delete invoice %d: %w", invoiceID, err)
	}
	return nil
}

// FilterInvoices lists invoices restricted by state and/or date range. An
// unrecognized state is rejected with ErrInvalidFilter. Unparseable dates are
// deliberately ignored as filters rather than treated as errors, and the date
// range only applies when both ends parse.
func (s *InvoiceService) FilterInvoices(ctx context.Context, state, startDate, endDate string) ([]domain.Invoice, error) {
	var filter domain.InvoiceFilter

	if state != "" {
		parsed, err := domain.ParseInvoiceState(state)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidFilter, err.Error())
		}
		filter.State = &parsed
	}

	start, startErr := time.Parse(time.DateOnly, startDate)
	end, endErr := time.Parse(time.DateOnly, endDate)
	if startErr == nil && endErr == nil {
		filter.StartDate = &start
		filter.EndDate = &end
	} else if startDate != "" || endDate != "" {
		middleware.GetLoggerFromCtx(ctx).Warn("Ignoring unparseable date filters",
			slog.String("start_date", startDate), slog.String("end_date", endDate))
	}

	invoices, err := s.invoiceRepo.FindInvoices(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to filter invoices: %w", err)
	}
	return invoices, nil
}

// GenerateAccountingEntries derives the ledger postings for an invoice. The
// local store is tried first; when the invoice is unknown locally the
// external payment API is consulted and its response normalized into the same
// shape. NotFound is returned when neither source has data.
func (s *InvoiceService) GenerateAccountingEntries(ctx context.Context, invoiceID int64) ([]domain.AccountingEntry, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err == nil {
		entries, gerr := domain.GenerateAccountingEntries(*invoice)
		if gerr != nil {
			return nil, gerr
		}
		return entries, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find invoice %d for accounting entries: %w", invoiceID, err)
	}

	if s.paymentAPI == nil {
		return nil, apperrors.ErrNotFound
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	logger.Info("Invoice not found locally, fetching accounting entries from payment API", slog.Int64("invoice_id", invoiceID))

	entries, cerr := s.paymentAPI.GetAccountingEntries(ctx, invoiceID)
	if cerr != nil {
		if errors.Is(cerr, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error("Failed to fetch accounting entries from payment API",
			slog.Int64("invoice_id", invoiceID), slog.String("error", cerr.Error()))
		return nil, fmt.Errorf("failed to fetch accounting entries for invoice %d: %w", invoiceID, cerr)
	}
	return entries, nil
}

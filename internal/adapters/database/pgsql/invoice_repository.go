package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/inmatic/invoices_accounting_app/internal/apperrors"
	"github.com/inmatic/invoices_accounting_app/internal/core/domain"
	portsrepo "github.com/inmatic/invoices_accounting_app/internal/core/ports/repositories"
	"github.com/inmatic/invoices_accounting_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

// NewInvoiceRepository creates a new repository for invoice data.
func NewInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryWithTx {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxInvoiceRepository implements portsrepo.InvoiceRepositoryWithTx
var _ portsrepo.InvoiceRepositoryWithTx = (*PgxInvoiceRepository)(nil)

// Helper to convert domain.Invoice to models.Invoice
func toModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		ID:         d.ID,
		Provider:   d.Provider,
		Concept:    d.Concept,
		BaseValue:  d.BaseValue,
		VAT:        d.VAT,
		TotalValue: d.TotalValue,
		Date:       d.Date,
		State:      string(d.State),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// Helper to convert models.Invoice to domain.Invoice
func toDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		ID:         m.ID,
		Provider:   m.Provider,
		Concept:    m.Concept,
		BaseValue:  m.BaseValue,
		VAT:        m.VAT,
		TotalValue: m.TotalValue,
		Date:       m.Date,
		State:      domain.InvoiceState(m.State),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const invoiceColumns = `id, provider, concept, base_value, vat, total_value, date, state, created_at, created_by, last_updated_at, last_updated_by`

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.ID,
		&m.Provider,
		&m.Concept,
		&m.BaseValue,
		&m.VAT,
		&m.TotalValue,
		&m.Date,
		&m.State,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// CreateInvoice inserts a new invoice row and returns the invoice with its
// database-assigned id.
func (r *PgxInvoiceRepository) CreateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	m := toModelInvoice(invoice)
	query := `
		INSERT INTO invoices (provider, concept, base_value, vat, total_value, date, state, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.Provider,
		m.Concept,
		m.BaseValue,
		m.VAT,
		m.TotalValue,
		m.Date,
		m.State,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	).Scan(&m.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert invoice: %w", err)
	}

	created := toDomainInvoice(m)
	return &created, nil
}

// FindInvoiceByID retrieves a single invoice by its id.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1;`

	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by ID %d: %w", invoiceID, err)
	}

	invoice := toDomainInvoice(m)
	return &invoice, nil
}

// FindInvoices retrieves invoices matching the filter, ordered by id.
// State and date range combine with logical AND; a zero filter returns all rows.
func (r *PgxInvoiceRepository) FindInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error) {
	var (
		conditions []string
		args       []any
	)

	if filter.State != nil {
		args = append(args, string(*filter.State))
		conditions = append(conditions, "state = $"+strconv.Itoa(len(args)))
	}
	if filter.StartDate != nil && filter.EndDate != nil {
		args = append(args, *filter.StartDate)
		conditions = append(conditions, "date >= $"+strconv.Itoa(len(args)))
		args = append(args, *filter.EndDate)
		conditions = append(conditions, "date <= $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + invoiceColumns + ` FROM invoices`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		invoices = append(invoices, toDomainInvoice(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read invoice rows: %w", err)
	}

	return invoices, nil
}

// UpdateInvoice persists the full merged invoice row.
func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := toModelInvoice(invoice)
	query := `
		UPDATE invoices
		SET provider = $2, concept = $3, base_value = $4, vat = $5, total_value = $6, date = $7, state = $8,
		    last_updated_at = $9, last_updated_by = $10
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ID,
		m.Provider,
		m.Concept,
		m.BaseValue,
		m.VAT,
		m.TotalValue,
		m.Date,
		m.State,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update invoice %d: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteInvoice removes the invoice row. Hard delete.
func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM invoices WHERE id = $1;`, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %d: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpsertInvoices inserts or updates the given invoices keyed by their
// externally-supplied id inside one database transaction, so the batch either
// fully commits or fully rolls back.
func (r *PgxInvoiceRepository) UpsertInvoices(ctx context.Context, invoices []domain.Invoice) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored if the transaction commits successfully.
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO invoices (id, provider, concept, base_value, vat, total_value, date, state, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			provider = EXCLUDED.provider,
			concept = EXCLUDED.concept,
			base_value = EXCLUDED.base_value,
			vat = EXCLUDED.vat,
			total_value = EXCLUDED.total_value,
			date = EXCLUDED.date,
			state = EXCLUDED.state,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	batch := &pgx.Batch{}
	for _, invoice := range invoices {
		m := toModelInvoice(invoice)
		batch.Queue(query,
			m.ID,
			m.Provider,
			m.Concept,
			m.BaseValue,
			m.VAT,
			m.TotalValue,
			m.Date,
			m.State,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for range invoices {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("failed to upsert invoice batch: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close upsert batch: %w", err)
	}

	// Keep the id sequence ahead of externally-supplied ids so later local
	// inserts do not collide.
	if _, err := tx.Exec(ctx, `SELECT setval('invoices_id_seq', (SELECT GREATEST(MAX(id), 1) FROM invoices));`); err != nil {
		return fmt.Errorf("failed to advance invoice id sequence: %w", err)
	}

	return r.Commit(ctx, tx)
}

// Package paymentapi implements the HTTP client for the external payment API
// the invoice store synchronizes with. The upstream is treated as untrusted:
// every non-2xx response surfaces as an error and nothing is retried silently.
package paymentapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/inmatic/invoices_accounting_app/internal/apperrors"
	"github.com/inmatic/invoices_accounting_app/internal/core/domain"
	portsclients "github.com/inmatic/invoices_accounting_app/internal/core/ports/clients"
	"github.com/shopspring/decimal"
)

// DefaultTimeout bounds every request to the payment API.
const DefaultTimeout = 30 * time.Second

// Client talks JSON over HTTP to the payment API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a payment API client for the given base URL. A zero
// timeout falls back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("payment API base URL cannot be empty")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

var _ portsclients.PaymentAPIClient = (*Client)(nil)

// wireInvoice is the payment API's invoice representation.
type wireInvoice struct {
	ID         int64           `json:"id"`
	Provider   string          `json:"provider"`
	Concept    string          `json:"concept"`
	BaseValue  decimal.Decimal `json:"base_value"`
	VAT        decimal.Decimal `json:"vat"`
	TotalValue decimal.Decimal `json:"total_value"`
	Date       string          `json:"date"`
	State      string          `json:"state"`
}

func (w wireInvoice) toDomain() (domain.Invoice, error) {
	date, err := time.Parse(time.DateOnly, w.Date)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("%w: invoice %d has invalid date %q", apperrors.ErrValidation, w.ID, w.Date)
	}
	return domain.Invoice{
		ID:         w.ID,
		Provider:   w.Provider,
		Concept:    w.Concept,
		BaseValue:  w.BaseValue,
		VAT:        w.VAT,
		TotalValue: w.TotalValue,
		Date:       date,
		State:      domain.InvoiceState(w.State),
	}, nil
}

func fromDomain(inv domain.Invoice) wireInvoice {
	return wireInvoice{
		ID:         inv.ID,
		Provider:   inv.Provider,
		Concept:    inv.Concept,
		BaseValue:  inv.BaseValue,
		VAT:        inv.VAT,
		TotalValue: inv.TotalValue,
		Date:       inv.Date.Format(time.DateOnly),
		State:      string(inv.State),
	}
}

// do performs one request and returns the response body after status checks.
// 404 maps to ErrNotFound; any other non-2xx status wraps ErrUpstream.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	endpoint := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode payment API request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build payment API request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %s", apperrors.ErrUpstream, method, path, err.Error())
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: reading response: %s", apperrors.ErrUpstream, method, path, err.Error())
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, apperrors.ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%w: %s %s returned status %d", apperrors.ErrUpstream, method, path, resp.StatusCode)
	}

	return data, nil
}

func (c *Client) decodeInvoiceList(data []byte) ([]domain.Invoice, error) {
	var wires []wireInvoice
	if err := json.Unmarshal(data, &wires); err != nil {
		return nil, fmt.Errorf("%w: malformed invoice list payload: %s", apperrors.ErrUpstream, err.Error())
	}

	invoices := make([]domain.Invoice, 0, len(wires))
	for _, w := range wires {
		inv, err := w.toDomain()
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

func (c *Client) decodeInvoice(data []byte) (*domain.Invoice, error) {
	var w wireInvoice
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: malformed invoice payload: %s", apperrors.ErrUpstream, err.Error())
	}
	inv, err := w.toDomain()
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// ListInvoices fetches the full upstream invoice list.
func (c *Client) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	data, err := c.do(ctx, http.MethodGet, "invoices/list/", nil, nil)
	if err != nil {
		return nil, err
	}
	return c.decodeInvoiceList(data)
}

// GetInvoice fetches a single upstream invoice.
func (c *Client) GetInvoice(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	data, err := c.do(ctx, http.MethodGet, fmt.Sprintf("invoice/%d/", invoiceID), nil, nil)
	if err != nil {
		return nil, err
	}
	return c.decodeInvoice(data)
}

// CreateInvoice submits a new invoice upstream.
func (c *Client) CreateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	data, err := c.do(ctx, http.MethodPost, "invoices/create/", nil, fromDomain(invoice))
	if err != nil {
		return nil, err
	}
	return c.decodeInvoice(data)
}

// UpdateInvoice updates an existing upstream invoice.
func (c *Client) UpdateInvoice(ctx context.Context, invoiceID int64, invoice domain.Invoice) (*domain.Invoice, error) {
	data, err := c.do(ctx, http.MethodPut, fmt.Sprintf("invoices/%d", invoiceID), nil, fromDomain(invoice))
	if err != nil {
		return nil, err
	}
	return c.decodeInvoice(data)
}

// DeleteInvoice removes an upstream invoice.
func (c *Client) DeleteInvoice(ctx context.Context, invoiceID int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("invoices/%d", invoiceID), nil, nil)
	return err
}

// FilterInvoices lists upstream invoices restricted by the filter.
func (c *Client) FilterInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error) {
	query := url.Values{}
	if filter.State != nil {
		query.Set("state", string(*filter.State))
	}
	if filter.StartDate != nil {
		query.Set("start_date", filter.StartDate.Format(time.DateOnly))
	}
	if filter.EndDate != nil {
		query.Set("end_date", filter.EndDate.Format(time.DateOnly))
	}

	data, err := c.do(ctx, http.MethodGet, "invoices", query, nil)
	if err != nil {
		return nil, err
	}
	return c.decodeInvoiceList(data)
}

// wireEntry is a single posting as returned by the payment API.
type wireEntry struct {
	Account     string          `json:"account"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// GetAccountingEntries fetches the derived postings for an invoice. The
// upstream responds either with a bare list or an object carrying an
// "entries" key; both shapes are normalized.
func (c *Client) GetAccountingEntries(ctx context.Context, invoiceID int64) ([]domain.AccountingEntry, error) {
	data, err := c.do(ctx, http.MethodGet, fmt.Sprintf("invoices/%d/accounting-entries", invoiceID), nil, nil)
	if err != nil {
		return nil, err
	}

	var wires []wireEntry
	if err := json.Unmarshal(data, &wires); err != nil {
		var wrapped struct {
			Entries []wireEntry `json:"entries"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return nil, fmt.Errorf("%w: malformed accounting entries payload: %s", apperrors.ErrUpstream, err.Error())
		}
		wires = wrapped.Entries
	}

	entries := make([]domain.AccountingEntry, len(wires))
	for i, w := range wires {
		entries[i] = domain.AccountingEntry{
			Account:     domain.AccountingCode(w.Account),
			Description: w.Description,
			Amount:      w.Amount,
		}
	}
	return entries, nil
}

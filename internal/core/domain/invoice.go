package domain

import (
	"fmt"
	"time"

	"github.com/inmatic/invoices_accounting_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// InvoiceState indicates where an invoice sits in its lifecycle.
type InvoiceState string

const (
	StateDraft     InvoiceState = "draft"
	StateAccounted InvoiceState = "accounted"
	StatePaid      InvoiceState = "paid"
	StateCanceled  InvoiceState = "canceled"
	StatePending   InvoiceState = "pending"
)

// DefaultInvoiceState is assigned on creation when the caller supplies no state.
const DefaultInvoiceState = StateDraft

// invoiceStates is the closed set of recognized states.
var invoiceStates = map[InvoiceState]struct{}{
	StateDraft:     {},
	StateAccounted: {},
	StatePaid:      {},
	StateCanceled:  {},
	StatePending:   {},
}

// IsValid reports whether s is one of the recognized invoice states.
func (s InvoiceState) IsValid() bool {
	_, ok := invoiceStates[s]
	return ok
}

// ParseInvoiceState converts a raw string into an InvoiceState, rejecting
// anything outside the enumeration.
func ParseInvoiceState(raw string) (InvoiceState, error) {
	state := InvoiceState(raw)
	if !state.IsValid() {
		return "", fmt.Errorf("unknown invoice state %q", raw)
	}
	return state, nil
}

// Invoice is the central entity: a supplier invoice with its monetary
// breakdown and lifecycle state. TotalValue must always equal BaseValue + VAT.
type Invoice struct {
	ID         int64           `json:"id"` // Assigned by the repository, immutable afterward
	Provider   string          `json:"provider"`
	Concept    string          `json:"concept"`
	BaseValue  decimal.Decimal `json:"baseValue"`
	VAT        decimal.Decimal `json:"vat"`
	TotalValue decimal.Decimal `json:"totalValue"`
	Date       time.Time       `json:"date"` // Calendar date, no time component
	State      InvoiceState    `json:"state"`
	AuditFields
}

// Validate checks every business invariant and collects all violations into a
// single ValidationErrors value. It has no side effects; callers must refuse
// to persist an invoice that fails here.
func (inv Invoice) Validate() error {
	errs := apperrors.ValidationErrors{}

	if inv.Provider == "" {
		errs.Add("provider", "Provider must not be empty.")
	}
	if inv.BaseValue.LessThanOrEqual(decimal.Zero) {
		errs.Add("base_value", "Base value must be greater than zero.")
	}
	if inv.VAT.IsNegative() {
		errs.Add("vat", "VAT cannot be negative.")
	}
	if inv.TotalValue.LessThanOrEqual(decimal.Zero) {
		errs.Add("total_value", "Total value must be greater than zero.")
	} else if !inv.TotalValue.Equal(inv.BaseValue.Add(inv.VAT)) {
		// Exact equality, no rounding tolerance.
		errs.Add("total_value", "Total value must be the sum of base value and VAT.")
	}
	if !inv.State.IsValid() {
		errs.Add("state", fmt.Sprintf("State %q is not a recognized invoice state.", inv.State))
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

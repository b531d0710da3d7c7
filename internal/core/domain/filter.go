package domain

import "time"

// InvoiceFilter restricts an invoice listing. Nil fields mean "not applied".
// State matches exactly; StartDate/EndDate bound the invoice date inclusively
// and only apply when both ends are present. Filters combine with logical AND.
type InvoiceFilter struct {
	State     *InvoiceState
	StartDate *time.Time
	EndDate   *time.Time
}

// IsZero reports whether no filter is applied.
func (f InvoiceFilter) IsZero() bool {
	return f.State == nil && f.StartDate == nil && f.EndDate == nil
}

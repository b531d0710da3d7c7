package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is the persistence model for the invoices table.
type Invoice struct {
	ID         int64           `db:"id"`
	Provider   string          `db:"provider"`
	Concept    string          `db:"concept"`
	BaseValue  decimal.Decimal `db:"base_value"`
	VAT        decimal.Decimal `db:"vat"`
	TotalValue decimal.Decimal `db:"total_value"`
	Date       time.Time       `db:"date"`
	State      string          `db:"state"`
	AuditFields
}

package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// AccountingCode identifies a fixed ledger account used when posting an invoice.
type AccountingCode string

const (
	Purchases    AccountingCode = "6000"
	VATSupported AccountingCode = "4720"
	Suppliers    AccountingCode = "4000"
)

// accountingLabels holds the fixed human-readable label for each account code.
var accountingLabels = map[AccountingCode]string{
	Purchases:    "Purchases (DEBE Compras)",
	VATSupported: "VAT Supported (DEBE IVA Soportado)",
	Suppliers:    "Suppliers (HABER Proveedores)",
}

// Label returns the human-readable label for the account code.
func (c AccountingCode) Label() string {
	return accountingLabels[c]
}

// AccountingEntry is a single debit or credit line derived from an invoice's
// monetary fields. Entries are always recomputed from the source invoice and
// never stored independently.
type AccountingEntry struct {
	Account     AccountingCode  `json:"account"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// ErrInvoiceNotPaid is returned when accounting entries are requested for an
// invoice that has not reached the paid state.
var ErrInvoiceNotPaid = errors.New("accounting entries can only be generated for invoices in the paid state")

// GenerateAccountingEntries maps a persisted invoice to its ledger postings:
// a debit to Purchases for the base value, a debit to VAT Supported for the
// VAT, and a credit to Suppliers for the total. Only paid invoices are
// eligible. The amounts mirror the invoice's own fields, so a valid invoice
// yields postings where the two debits sum to the credit.
func GenerateAccountingEntries(inv Invoice) ([]AccountingEntry, error) {
	if inv.State != StatePaid {
		return nil, ErrInvoiceNotPaid
	}

	return []AccountingEntry{
		{Account: Purchases, Description: Purchases.Label(), Amount: inv.BaseValue},
		{Account: VATSupported, Description: VATSupported.Label(), Amount: inv.VAT},
		{Account: Suppliers, Description: Suppliers.Label(), Amount: inv.TotalValue},
	}, nil
}

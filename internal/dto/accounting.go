package dto

import (
	"github.com/inmatic/invoices_accounting_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountingEntryResponse is a single ledger posting derived from an invoice.
type AccountingEntryResponse struct {
	Account     string          `json:"account"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// AccountingEntriesResponse wraps the postings for an invoice.
type AccountingEntriesResponse struct {
	Entries []AccountingEntryResponse `json:"entries"`
}

// ToAccountingEntriesResponse converts domain entries to the response DTO.
func ToAccountingEntriesResponse(entries []domain.AccountingEntry) AccountingEntriesResponse {
	res := AccountingEntriesResponse{Entries: make([]AccountingEntryResponse, len(entries))}
	for i, e := range entries {
		res.Entries[i] = AccountingEntryResponse{
			Account:     string(e.Account),
			Description: e.Description,
			Amount:      e.Amount,
		}
	}
	return res
}

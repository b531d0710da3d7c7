package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/inmatic/invoices_accounting_app/internal/core/domain"
)

// RegisterCustomValidators installs the invoice-specific validations on gin's
// binding engine. Must be called once before routes are served.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// invoicestate accepts only the closed set of invoice states.
		_ = v.RegisterValidation("invoicestate", func(fl validator.FieldLevel) bool {
			return domain.InvoiceState(fl.Field().String()).IsValid()
		})
	}
}

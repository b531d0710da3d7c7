package domain

// User represents an account allowed to mutate invoices through the API.
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // bcrypt hash, never serialized
	AuditFields
}

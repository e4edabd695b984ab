package models

import "time"

// AccountType categorizes an account for display and grouping.
type AccountType string

const (
	AccountChecking AccountType = "checking"
	AccountSavings  AccountType = "savings"
	AccountCredit   AccountType = "credit"
	AccountOther    AccountType = "other"
)

// Account represents a payment account that bills can be linked to.
// Accounts own nothing about bills: the Bill.AccountID reference is weak
// and deleting an account merely unlinks it.
type Account struct {
	// ID is the unique identifier for the account (UUID format).
	ID string `json:"id"`

	// Name is the display name of the account (e.g., "Joint Checking").
	Name string `json:"name"`

	// Type is the account category.
	Type AccountType `json:"type"`

	// Balance is the current balance. Signed: credit accounts may be
	// negative.
	Balance float64 `json:"balance"`

	// CreatedAt is when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

package models

// User is a registered API consumer with a metered credit balance.
//
// Email is the unique identifier and is stored lowercased. APIKey is an
// opaque token compared verbatim on every request. Credits never goes
// below zero; decrements at zero fail without mutating the record.
type User struct {
	Email   string `json:"email" db:"email"`
	APIKey  string `json:"api_key" db:"api_key"`
	Credits int64  `json:"credits" db:"credits"`
}

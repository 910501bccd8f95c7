package models

// Currency represents a row of the currencies dimension table.
type Currency struct {
	ID   int64  `json:"id"`   // Primary key
	Code string `json:"code"` // ISO 4217, unique
	Name string `json:"name"`
	OriginFields
}

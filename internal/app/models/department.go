package models

// Department represents a campus department, keyed by a unique 3-letter code.
// Static reference data used for matric number validation.
type Department struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Code string `json:"code" db:"code"`
}

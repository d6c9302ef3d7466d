// Package models defines the data structures for the aircon subsidy engine.
package models

// CustomerRecord is a submitted customer row. ID is assigned by the
// store on insert. Email is not unique: repeat submissions create new
// rows, and lookups by email return the first match.
type CustomerRecord struct {
	ID              int64  `json:"id" db:"id"`
	ModelNumber     string `json:"model_number" db:"model_number"`
	ManufactureYear int    `json:"manufacture_year" db:"manufacture_year"`
	ZipCode         string `json:"zip_code" db:"zip_code"`
	Address         string `json:"address" db:"address"`
	Name            string `json:"name" db:"name"`
	PhoneNumber     string `json:"phone_number" db:"phone_number"`
	Email           string `json:"email" db:"email"`
	CustomerNumber  string `json:"customer_number" db:"customer_number"`
}

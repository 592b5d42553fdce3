package entity

// Vaccine is immutable reference data identified by its unique vaccine code.
// Branches offer a subset of vaccines via the branch_vaccines join table.
type Vaccine struct {
	Base
	VaccineCode string `db:"vaccine_code"`
	Name        string `db:"name"`
	Description string `db:"description"`
}

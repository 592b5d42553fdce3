package entity

// Customer is created fresh per booking and never updated afterwards.
// There is no dedup by national number or email.
type Customer struct {
	BaseSimple
	Name           string `db:"name"`
	NationalNumber string `db:"national_number"`
	Email          string `db:"email"`
}

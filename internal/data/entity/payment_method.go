package entity

type PaymentMethod struct {
	Base
	Name string `db:"name"`
}

package entity

// Branch is immutable reference data identified by its unique branch code.
type Branch struct {
	Base
	BranchCode string `db:"branch_code"`
	Name       string `db:"name"`
}

package usecase

import "fmt"

// ErrorCode identifies a precondition violation caused by caller input or
// state, distinct from unexpected internal failures.
type ErrorCode string

const (
	CodeInvalidBranchCode    ErrorCode = "INVALID_BRANCH_CODE"
	CodeInvalidVaccineCode   ErrorCode = "INVALID_VACCINE_CODE"
	CodeInvalidPaymentMethod ErrorCode = "INVALID_PAYMENT_METHOD"
	CodeInvalidTimeslotID    ErrorCode = "INVALID_TIMESLOT_ID"
	CodeTimeslotUnavailable  ErrorCode = "TIMESLOT_UNAVAILABLE"
	CodeInvalidSchedule      ErrorCode = "INVALID_SCHEDULE"
	CodeInternalError        ErrorCode = "INTERNAL_SERVER_ERROR"
)

type PreconditionError struct {
	Code ErrorCode
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("precondition failed: %s", e.Code)
}

func NewPreconditionError(code ErrorCode) *PreconditionError {
	return &PreconditionError{Code: code}
}

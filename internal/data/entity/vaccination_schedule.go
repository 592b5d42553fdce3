package entity

import (
	"time"

	"github.com/google/uuid"
)

// VaccinationSchedule is a single customer's booked appointment. At most one
// schedule may occupy a given (branch, date, time slot) triple.
type VaccinationSchedule struct {
	Base
	ScheduleCode    string    `db:"schedule_code"`
	ScheduleDate    time.Time `db:"schedule_date"`
	TimeSlotID      uuid.UUID `db:"time_slot_id"`
	BranchID        uuid.UUID `db:"branch_id"`
	VaccineID       uuid.UUID `db:"vaccine_id"`
	CustomerID      uuid.UUID `db:"customer_id"`
	PaymentMethodID uuid.UUID `db:"payment_method_id"`
	Confirmed       bool      `db:"confirmed"`
	Applied         bool      `db:"applied"`
}

package response

import (
	"time"
)

type CustomerResponse struct {
	Name           string `json:"name"`
	NationalNumber string `json:"national_number"`
	Email          string `json:"email"`
}

type ScheduleResponse struct {
	ScheduleCode  string                `json:"schedule_code"`
	ScheduleDate  string                `json:"schedule_date"`
	TimeSlot      TimeSlotResponse      `json:"time_slot"`
	Branch        BranchResponse        `json:"branch"`
	Vaccine       VaccineResponse       `json:"vaccine"`
	Customer      CustomerResponse      `json:"customer"`
	PaymentMethod PaymentMethodResponse `json:"payment_method"`
	Confirmed     bool                  `json:"confirmed"`
	Applied       bool                  `json:"applied"`
	CreatedAt     time.Time             `json:"created_at"`
}

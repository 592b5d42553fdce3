package request

type ScheduleVaccinationRequest struct {
	BranchCode             string `json:"branch_code" validate:"required"`
	VaccineCode            string `json:"vaccine_code" validate:"required"`
	PaymentMethodID        string `json:"payment_method_id" validate:"required,uuid4"`
	TimeSlotID             string `json:"time_slot_id" validate:"required,uuid4"`
	ScheduleDate           string `json:"schedule_date" validate:"required,datetime=2006-01-02"`
	CustomerName           string `json:"customer_name" validate:"required,max=100"`
	CustomerNationalNumber string `json:"customer_national_number" validate:"required,max=32"`
	Email                  string `json:"email" validate:"required,email"`
}

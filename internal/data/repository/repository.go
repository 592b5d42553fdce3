package repository

import (
	"vaccination-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Branch        BranchRepository
	Vaccine       VaccineRepository
	TimeSlot      TimeSlotRepository
	PaymentMethod PaymentMethodRepository
	Customer      CustomerRepository
	Schedule      VaccinationScheduleRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Branch:        NewBranchRepository(db, log),
		Vaccine:       NewVaccineRepository(db, log),
		TimeSlot:      NewTimeSlotRepository(db, log),
		PaymentMethod: NewPaymentMethodRepository(db, log),
		Customer:      NewCustomerRepository(db, log),
		Schedule:      NewVaccinationScheduleRepository(db, log),
	}
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"vaccination-booking/internal/data/entity"
	"vaccination-booking/internal/data/repository"
	"vaccination-booking/pkg/report"
	"vaccination-booking/pkg/utils"

	"github.com/google/uuid"
)

// In-memory test doubles for the repository, mailer and renderer ports.

type fakeBranchRepo struct {
	branches []*entity.Branch
}

func (f *fakeBranchRepo) Create(_ context.Context, branch *entity.Branch) error {
	f.branches = append(f.branches, branch)
	return nil
}

func (f *fakeBranchRepo) FindByCode(_ context.Context, branchCode string) (*entity.Branch, error) {
	for _, b := range f.branches {
		if b.BranchCode == branchCode {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBranchRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Branch, error) {
	for _, b := range f.branches {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBranchRepo) FindAll(_ context.Context) ([]*entity.Branch, error) {
	return f.branches, nil
}

type fakeVaccineRepo struct {
	vaccines []*entity.Vaccine
	links    map[uuid.UUID][]uuid.UUID // branch ID -> vaccine IDs
}

func (f *fakeVaccineRepo) Create(_ context.Context, vaccine *entity.Vaccine) error {
	f.vaccines = append(f.vaccines, vaccine)
	return nil
}

func (f *fakeVaccineRepo) FindByCode(_ context.Context, vaccineCode string) (*entity.Vaccine, error) {
	for _, v := range f.vaccines {
		if v.VaccineCode == vaccineCode {
			return v, nil
		}
	}
	return nil, nil
}

func (f *fakeVaccineRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Vaccine, error) {
	for _, v := range f.vaccines {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, nil
}

func (f *fakeVaccineRepo) FindByBranchID(_ context.Context, branchID uuid.UUID) ([]*entity.Vaccine, error) {
	var vaccines []*entity.Vaccine
	for _, vaccineID := range f.links[branchID] {
		for _, v := range f.vaccines {
			if v.ID == vaccineID {
				vaccines = append(vaccines, v)
			}
		}
	}
	return vaccines, nil
}

func (f *fakeVaccineRepo) AttachToBranch(_ context.Context, branchID, vaccineID uuid.UUID) error {
	if f.links == nil {
		f.links = make(map[uuid.UUID][]uuid.UUID)
	}
	f.links[branchID] = append(f.links[branchID], vaccineID)
	return nil
}

type fakeTimeSlotRepo struct {
	timeSlots []*entity.TimeSlot
}

func (f *fakeTimeSlotRepo) Create(_ context.Context, timeSlot *entity.TimeSlot) error {
	f.timeSlots = append(f.timeSlots, timeSlot)
	return nil
}

func (f *fakeTimeSlotRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.TimeSlot, error) {
	for _, ts := range f.timeSlots {
		if ts.ID == id {
			return ts, nil
		}
	}
	return nil, nil
}

func (f *fakeTimeSlotRepo) FindAll(_ context.Context) ([]*entity.TimeSlot, error) {
	return f.timeSlots, nil
}

type fakePaymentMethodRepo struct {
	paymentMethods []*entity.PaymentMethod
}

func (f *fakePaymentMethodRepo) Create(_ context.Context, pm *entity.PaymentMethod) error {
	f.paymentMethods = append(f.paymentMethods, pm)
	return nil
}

func (f *fakePaymentMethodRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.PaymentMethod, error) {
	for _, pm := range f.paymentMethods {
		if pm.ID == id {
			return pm, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentMethodRepo) FindAll(_ context.Context) ([]*entity.PaymentMethod, error) {
	return f.paymentMethods, nil
}

type fakeCustomerRepo struct {
	customers []*entity.Customer
	createErr error
}

func (f *fakeCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.customers = append(f.customers, customer)
	return nil
}

func (f *fakeCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	for _, c := range f.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

type fakeScheduleRepo struct {
	schedules  []*entity.VaccinationSchedule
	branchCode map[uuid.UUID]string // branch ID -> branch code, for the code-scoped scans
	createErr  error
	lastFilter *repository.ScheduleFilter
}

func (f *fakeScheduleRepo) Create(_ context.Context, schedule *entity.VaccinationSchedule) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.schedules = append(f.schedules, schedule)
	return nil
}

func (f *fakeScheduleRepo) FindByScheduleCode(_ context.Context, scheduleCode string) (*entity.VaccinationSchedule, error) {
	for _, s := range f.schedules {
		if s.ScheduleCode == scheduleCode {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeScheduleRepo) FindByDateAndBranchCode(_ context.Context, date time.Time, branchCode string) ([]*entity.VaccinationSchedule, error) {
	var matched []*entity.VaccinationSchedule
	for _, s := range f.schedules {
		if s.ScheduleDate.Equal(date) && f.branchCode[s.BranchID] == branchCode {
			matched = append(matched, s)
		}
	}
	return matched, nil
}

func (f *fakeScheduleRepo) FindBySlotDateAndBranch(_ context.Context, timeSlotID uuid.UUID, date time.Time, branchID uuid.UUID) (*entity.VaccinationSchedule, error) {
	for _, s := range f.schedules {
		if s.TimeSlotID == timeSlotID && s.ScheduleDate.Equal(date) && s.BranchID == branchID {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeScheduleRepo) FindFiltered(_ context.Context, filter *repository.ScheduleFilter) ([]*entity.VaccinationSchedule, error) {
	f.lastFilter = filter

	var matched []*entity.VaccinationSchedule
	for _, s := range f.schedules {
		if filter.FromDate != nil && s.ScheduleDate.Before(*filter.FromDate) {
			continue
		}
		if filter.ToDate != nil && s.ScheduleDate.After(*filter.ToDate) {
			continue
		}
		if filter.BranchCode != nil && f.branchCode[s.BranchID] != *filter.BranchCode {
			continue
		}
		if filter.Applied != nil && s.Applied != *filter.Applied {
			continue
		}
		if filter.Confirmed != nil && s.Confirmed != *filter.Confirmed {
			continue
		}
		matched = append(matched, s)
	}
	return matched, nil
}

func (f *fakeScheduleRepo) UpdateFlags(_ context.Context, schedule *entity.VaccinationSchedule) error {
	for i, s := range f.schedules {
		if s.ID == schedule.ID {
			f.schedules[i] = schedule
			return nil
		}
	}
	return fmt.Errorf("schedule %s not found", schedule.ScheduleCode)
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeMailer struct {
	sent    []sentMail
	sendErr error
}

func (f *fakeMailer) Send(to, subject, body string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

type fakeGenerator struct {
	output       []byte
	renderErr    error
	lastTemplate string
	lastData     *report.ScheduleData
}

func (f *fakeGenerator) Render(templateID string, data *report.ScheduleData) ([]byte, error) {
	f.lastTemplate = templateID
	f.lastData = data
	if f.renderErr != nil {
		return nil, f.renderErr
	}
	return f.output, nil
}

// testEnv wires fakes into a Repository pre-seeded with branch B1 offering
// vaccine V1, time slot T1 09:00-09:30 and payment method P1.
type testEnv struct {
	repo       *repository.Repository
	branches   *fakeBranchRepo
	vaccines   *fakeVaccineRepo
	timeSlots  *fakeTimeSlotRepo
	payments   *fakePaymentMethodRepo
	customers  *fakeCustomerRepo
	schedules  *fakeScheduleRepo
	mail       *fakeMailer
	config     *utils.Config
	branch     *entity.Branch
	vaccine    *entity.Vaccine
	slot       *entity.TimeSlot
	payment    *entity.PaymentMethod
}

func newTestEnv() *testEnv {
	now := time.Now()

	branch := &entity.Branch{
		Base:       entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		BranchCode: "B1",
		Name:       "Downtown Clinic",
	}
	vaccine := &entity.Vaccine{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		VaccineCode: "V1",
		Name:        "Vaccine One",
	}
	slot := &entity.TimeSlot{
		Base:      entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		StartTime: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC),
	}
	payment := &entity.PaymentMethod{
		Base: entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name: "Cash",
	}

	env := &testEnv{
		branches:  &fakeBranchRepo{branches: []*entity.Branch{branch}},
		vaccines:  &fakeVaccineRepo{vaccines: []*entity.Vaccine{vaccine}, links: map[uuid.UUID][]uuid.UUID{branch.ID: {vaccine.ID}}},
		timeSlots: &fakeTimeSlotRepo{timeSlots: []*entity.TimeSlot{slot}},
		payments:  &fakePaymentMethodRepo{paymentMethods: []*entity.PaymentMethod{payment}},
		customers: &fakeCustomerRepo{},
		schedules: &fakeScheduleRepo{branchCode: map[uuid.UUID]string{branch.ID: "B1"}},
		mail:      &fakeMailer{},
		config: &utils.Config{
			Report: utils.ReportConfig{
				ScheduleTemplate: "schedule-report",
				EmailSubject:     "Vaccination Appointment Confirmation",
				EmailContent:     "Your schedule code is %s",
			},
		},
		branch:  branch,
		vaccine: vaccine,
		slot:    slot,
		payment: payment,
	}

	env.repo = &repository.Repository{
		Branch:        env.branches,
		Vaccine:       env.vaccines,
		TimeSlot:      env.timeSlots,
		PaymentMethod: env.payments,
		Customer:      env.customers,
		Schedule:      env.schedules,
	}

	return env
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vaccination-booking/internal/data/entity"
	"vaccination-booking/internal/data/repository"
	"vaccination-booking/internal/dto/request"
	"vaccination-booking/internal/dto/response"
	"vaccination-booking/pkg/mailer"
	"vaccination-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SchedulingService interface {
	ScheduleVaccination(ctx context.Context, req *request.ScheduleVaccinationRequest) (*response.ScheduleResponse, error)
	GetScheduleByCode(ctx context.Context, scheduleCode string) (*response.ScheduleResponse, error)
	ConfirmSchedule(ctx context.Context, scheduleCode string) error
	MarkApplied(ctx context.Context, scheduleCode string) error
}

type schedulingService struct {
	repo   *repository.Repository
	config *utils.Config
	mail   mailer.Mailer
	log    *zap.Logger
}

func NewSchedulingService(repo *repository.Repository, config *utils.Config, mail mailer.Mailer, log *zap.Logger) SchedulingService {
	return &schedulingService{
		repo:   repo,
		config: config,
		mail:   mail,
		log:    log.With(zap.String("service", "scheduling")),
	}
}

// ScheduleVaccination validates the booking request fail-fast (branch, vaccine,
// payment method, time slot, then availability), persists a fresh customer and
// the schedule, and sends the confirmation mail. A mail failure propagates but
// the schedule stays persisted.
func (s *schedulingService) ScheduleVaccination(ctx context.Context, req *request.ScheduleVaccinationRequest) (*response.ScheduleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Schedule vaccination validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	scheduleDate, err := utils.ParseDate(req.ScheduleDate)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule date %s: %w", req.ScheduleDate, err)
	}

	branch, err := s.repo.Branch.FindByCode(ctx, req.BranchCode)
	if err != nil {
		return nil, fmt.Errorf("look up branch %s: %w", req.BranchCode, err)
	}
	if branch == nil {
		return nil, NewPreconditionError(CodeInvalidBranchCode)
	}

	vaccine, err := s.repo.Vaccine.FindByCode(ctx, req.VaccineCode)
	if err != nil {
		return nil, fmt.Errorf("look up vaccine %s: %w", req.VaccineCode, err)
	}
	if vaccine == nil {
		return nil, NewPreconditionError(CodeInvalidVaccineCode)
	}

	paymentMethodID, err := uuid.Parse(req.PaymentMethodID)
	if err != nil {
		return nil, NewPreconditionError(CodeInvalidPaymentMethod)
	}
	paymentMethod, err := s.repo.PaymentMethod.FindByID(ctx, paymentMethodID)
	if err != nil {
		return nil, fmt.Errorf("look up payment method %s: %w", req.PaymentMethodID, err)
	}
	if paymentMethod == nil {
		return nil, NewPreconditionError(CodeInvalidPaymentMethod)
	}

	timeSlotID, err := uuid.Parse(req.TimeSlotID)
	if err != nil {
		return nil, NewPreconditionError(CodeInvalidTimeslotID)
	}
	timeSlot, err := s.repo.TimeSlot.FindByID(ctx, timeSlotID)
	if err != nil {
		return nil, fmt.Errorf("look up time slot %s: %w", req.TimeSlotID, err)
	}
	if timeSlot == nil {
		return nil, NewPreconditionError(CodeInvalidTimeslotID)
	}

	existing, err := s.repo.Schedule.FindBySlotDateAndBranch(ctx, timeSlot.ID, scheduleDate, branch.ID)
	if err != nil {
		return nil, fmt.Errorf("check slot availability: %w", err)
	}
	if existing != nil {
		return nil, NewPreconditionError(CodeTimeslotUnavailable)
	}

	now := time.Now()
	customer := &entity.Customer{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		Name:           req.CustomerName,
		NationalNumber: req.CustomerNationalNumber,
		Email:          req.Email,
	}

	if err := s.repo.Customer.Create(ctx, customer); err != nil {
		s.log.Error("Failed to create customer", zap.Error(err))
		return nil, fmt.Errorf("create customer: %w", err)
	}

	schedule := &entity.VaccinationSchedule{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ScheduleCode:    utils.GenerateScheduleCode(),
		ScheduleDate:    scheduleDate,
		TimeSlotID:      timeSlot.ID,
		BranchID:        branch.ID,
		VaccineID:       vaccine.ID,
		CustomerID:      customer.ID,
		PaymentMethodID: paymentMethod.ID,
		Confirmed:       false,
		Applied:         false,
	}

	if err := s.repo.Schedule.Create(ctx, schedule); err != nil {
		// The unique index catches a concurrent booking that slipped past
		// the availability pre-check.
		if errors.Is(err, repository.ErrSlotTaken) {
			return nil, NewPreconditionError(CodeTimeslotUnavailable)
		}
		s.log.Error("Failed to create vaccination schedule",
			zap.Error(err),
			zap.String("branch_code", req.BranchCode),
		)
		return nil, fmt.Errorf("create vaccination schedule: %w", err)
	}

	s.log.Info("Vaccination scheduled",
		zap.String("schedule_code", schedule.ScheduleCode),
		zap.String("branch_code", branch.BranchCode),
		zap.String("vaccine_code", vaccine.VaccineCode),
		zap.String("date", req.ScheduleDate),
	)

	if err := s.sendConfirmation(schedule, customer); err != nil {
		// The schedule is already persisted; the send failure still
		// surfaces to the caller.
		s.log.Error("Failed to send confirmation mail",
			zap.Error(err),
			zap.String("schedule_code", schedule.ScheduleCode),
		)
		return nil, err
	}

	resp := buildScheduleResponse(schedule, timeSlot, branch, vaccine, customer, paymentMethod)
	return &resp, nil
}

func (s *schedulingService) GetScheduleByCode(ctx context.Context, scheduleCode string) (*response.ScheduleResponse, error) {
	schedule, err := s.repo.Schedule.FindByScheduleCode(ctx, scheduleCode)
	if err != nil {
		return nil, fmt.Errorf("look up schedule %s: %w", scheduleCode, err)
	}
	if schedule == nil {
		return nil, NewPreconditionError(CodeInvalidSchedule)
	}

	timeSlot, _ := s.repo.TimeSlot.FindByID(ctx, schedule.TimeSlotID)
	branch, _ := s.repo.Branch.FindByID(ctx, schedule.BranchID)
	vaccine, _ := s.repo.Vaccine.FindByID(ctx, schedule.VaccineID)
	customer, _ := s.repo.Customer.FindByID(ctx, schedule.CustomerID)
	paymentMethod, _ := s.repo.PaymentMethod.FindByID(ctx, schedule.PaymentMethodID)

	resp := buildScheduleResponse(schedule, timeSlot, branch, vaccine, customer, paymentMethod)
	return &resp, nil
}

func (s *schedulingService) ConfirmSchedule(ctx context.Context, scheduleCode string) error {
	return s.setFlag(ctx, scheduleCode, func(schedule *entity.VaccinationSchedule) {
		schedule.Confirmed = true
	})
}

func (s *schedulingService) MarkApplied(ctx context.Context, scheduleCode string) error {
	return s.setFlag(ctx, scheduleCode, func(schedule *entity.VaccinationSchedule) {
		schedule.Applied = true
	})
}

// setFlag is idempotent in effect: re-flipping an already-true flag is a
// harmless no-op write.
func (s *schedulingService) setFlag(ctx context.Context, scheduleCode string, set func(*entity.VaccinationSchedule)) error {
	schedule, err := s.repo.Schedule.FindByScheduleCode(ctx, scheduleCode)
	if err != nil {
		return fmt.Errorf("look up schedule %s: %w", scheduleCode, err)
	}
	if schedule == nil {
		return NewPreconditionError(CodeInvalidSchedule)
	}

	set(schedule)
	schedule.UpdatedAt = time.Now()

	if err := s.repo.Schedule.UpdateFlags(ctx, schedule); err != nil {
		s.log.Error("Failed to update schedule flags",
			zap.Error(err),
			zap.String("schedule_code", scheduleCode),
		)
		return fmt.Errorf("update schedule %s: %w", scheduleCode, err)
	}

	s.log.Info("Schedule flags updated",
		zap.String("schedule_code", scheduleCode),
		zap.Bool("confirmed", schedule.Confirmed),
		zap.Bool("applied", schedule.Applied),
	)

	return nil
}

func (s *schedulingService) sendConfirmation(schedule *entity.VaccinationSchedule, customer *entity.Customer) error {
	subject := s.config.Report.EmailSubject
	body := fmt.Sprintf(s.config.Report.EmailContent, schedule.ScheduleCode)
	return s.mail.Send(customer.Email, subject, body)
}

// buildScheduleResponse tolerates nil reference entities so a read-back with a
// missing relation still renders what it can.
func buildScheduleResponse(
	schedule *entity.VaccinationSchedule,
	timeSlot *entity.TimeSlot,
	branch *entity.Branch,
	vaccine *entity.Vaccine,
	customer *entity.Customer,
	paymentMethod *entity.PaymentMethod,
) response.ScheduleResponse {
	resp := response.ScheduleResponse{
		ScheduleCode: schedule.ScheduleCode,
		ScheduleDate: utils.FormatDate(schedule.ScheduleDate),
		Confirmed:    schedule.Confirmed,
		Applied:      schedule.Applied,
		CreatedAt:    schedule.CreatedAt,
	}

	if timeSlot != nil {
		resp.TimeSlot = response.TimeSlotToResponse(timeSlot)
	}
	if branch != nil {
		resp.Branch = response.BranchToResponse(branch)
	}
	if vaccine != nil {
		resp.Vaccine = response.VaccineToResponse(vaccine)
	}
	if customer != nil {
		resp.Customer = response.CustomerResponse{
			Name:           customer.Name,
			NationalNumber: customer.NationalNumber,
			Email:          customer.Email,
		}
	}
	if paymentMethod != nil {
		resp.PaymentMethod = response.PaymentMethodToResponse(paymentMethod)
	}

	return resp
}

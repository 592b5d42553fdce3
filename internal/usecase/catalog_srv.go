package usecase

import (
	"context"
	"fmt"
	"time"

	"vaccination-booking/internal/data/repository"
	"vaccination-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CatalogService interface {
	GetBranches(ctx context.Context) ([]response.BranchResponse, error)
	GetVaccinesByBranchCode(ctx context.Context, branchCode string) ([]response.VaccineResponse, error)
	GetPaymentMethods(ctx context.Context) ([]response.PaymentMethodResponse, error)
	GetAvailableTimeSlots(ctx context.Context, branchCode string, date time.Time) ([]response.TimeSlotResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) GetBranches(ctx context.Context) ([]response.BranchResponse, error) {
	branches, err := s.repo.Branch.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get branches", zap.Error(err))
		return nil, fmt.Errorf("get branches: %w", err)
	}

	branchResponses := make([]response.BranchResponse, len(branches))
	for i, branch := range branches {
		branchResponses[i] = response.BranchToResponse(branch)
	}

	return branchResponses, nil
}

func (s *catalogService) GetVaccinesByBranchCode(ctx context.Context, branchCode string) ([]response.VaccineResponse, error) {
	branch, err := s.repo.Branch.FindByCode(ctx, branchCode)
	if err != nil {
		s.log.Error("Failed to look up branch",
			zap.Error(err),
			zap.String("branch_code", branchCode),
		)
		return nil, fmt.Errorf("look up branch %s: %w", branchCode, err)
	}
	if branch == nil {
		// A branch code that resolves nothing here is an inconsistency,
		// not caller input: surfaced as an internal-error precondition.
		return nil, NewPreconditionError(CodeInternalError)
	}

	vaccines, err := s.repo.Vaccine.FindByBranchID(ctx, branch.ID)
	if err != nil {
		s.log.Error("Failed to get vaccines for branch",
			zap.Error(err),
			zap.String("branch_code", branchCode),
		)
		return nil, fmt.Errorf("get vaccines for branch %s: %w", branchCode, err)
	}

	vaccineResponses := make([]response.VaccineResponse, len(vaccines))
	for i, vaccine := range vaccines {
		vaccineResponses[i] = response.VaccineToResponse(vaccine)
	}

	return vaccineResponses, nil
}

func (s *catalogService) GetPaymentMethods(ctx context.Context) ([]response.PaymentMethodResponse, error) {
	paymentMethods, err := s.repo.PaymentMethod.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get payment methods", zap.Error(err))
		return nil, fmt.Errorf("get payment methods: %w", err)
	}

	paymentMethodResponses := make([]response.PaymentMethodResponse, len(paymentMethods))
	for i, pm := range paymentMethods {
		paymentMethodResponses[i] = response.PaymentMethodToResponse(pm)
	}

	return paymentMethodResponses, nil
}

func (s *catalogService) GetAvailableTimeSlots(ctx context.Context, branchCode string, date time.Time) ([]response.TimeSlotResponse, error) {
	// Time slots are branch-agnostic; only schedules are branch/date-scoped.
	// An unknown branch simply yields no schedules, so every slot stays free.
	timeSlots, err := s.repo.TimeSlot.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get time slots", zap.Error(err))
		return nil, fmt.Errorf("get time slots: %w", err)
	}

	schedules, err := s.repo.Schedule.FindByDateAndBranchCode(ctx, date, branchCode)
	if err != nil {
		s.log.Error("Failed to get schedules for availability",
			zap.Error(err),
			zap.String("branch_code", branchCode),
			zap.Time("date", date),
		)
		return nil, fmt.Errorf("get schedules for branch %s: %w", branchCode, err)
	}

	booked := make(map[uuid.UUID]struct{}, len(schedules))
	for _, schedule := range schedules {
		booked[schedule.TimeSlotID] = struct{}{}
	}

	available := make([]response.TimeSlotResponse, 0, len(timeSlots))
	for _, timeSlot := range timeSlots {
		if _, taken := booked[timeSlot.ID]; taken {
			continue
		}
		available = append(available, response.TimeSlotToResponse(timeSlot))
	}

	s.log.Debug("Availability computed",
		zap.String("branch_code", branchCode),
		zap.Time("date", date),
		zap.Int("total_slots", len(timeSlots)),
		zap.Int("available", len(available)),
	)

	return available, nil
}

package usecase

import (
	"context"
	"encoding/base64"
	"fmt"

	"vaccination-booking/internal/data/repository"
	"vaccination-booking/internal/dto/request"
	"vaccination-booking/internal/dto/response"
	"vaccination-booking/pkg/report"
	"vaccination-booking/pkg/utils"

	"go.uber.org/zap"
)

type ReportService interface {
	GetScheduleReport(ctx context.Context, req *request.ScheduleReportRequest) (*response.ScheduleReportResponse, error)
}

type reportService struct {
	repo      *repository.Repository
	config    *utils.Config
	generator report.Generator
	log       *zap.Logger
}

func NewReportService(repo *repository.Repository, config *utils.Config, generator report.Generator, log *zap.Logger) ReportService {
	return &reportService{
		repo:      repo,
		config:    config,
		generator: generator,
		log:       log.With(zap.String("service", "report")),
	}
}

// GetScheduleReport queries schedules matching the filter (every field
// independently optional), renders them through the document generator and
// returns the payload as base64 text.
func (s *reportService) GetScheduleReport(ctx context.Context, req *request.ScheduleReportRequest) (*response.ScheduleReportResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Schedule report validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	filter := &repository.ScheduleFilter{
		BranchCode: req.BranchCode,
		Applied:    req.Applied,
		Confirmed:  req.Confirmed,
	}

	if req.FromDate != nil {
		fromDate, err := utils.ParseDate(*req.FromDate)
		if err != nil {
			return nil, fmt.Errorf("invalid from date %s: %w", *req.FromDate, err)
		}
		filter.FromDate = &fromDate
	}
	if req.ToDate != nil {
		toDate, err := utils.ParseDate(*req.ToDate)
		if err != nil {
			return nil, fmt.Errorf("invalid to date %s: %w", *req.ToDate, err)
		}
		filter.ToDate = &toDate
	}

	schedules, err := s.repo.Schedule.FindFiltered(ctx, filter)
	if err != nil {
		s.log.Error("Failed to query schedules for report", zap.Error(err))
		return nil, fmt.Errorf("query schedules for report: %w", err)
	}

	data := &report.ScheduleData{
		FromDate:  utils.FormatDatePtr(filter.FromDate),
		ToDate:    utils.FormatDatePtr(filter.ToDate),
		Schedules: make([]report.ScheduleRow, len(schedules)),
	}

	for i, schedule := range schedules {
		row := report.ScheduleRow{
			ScheduleCode: schedule.ScheduleCode,
			ScheduleDate: utils.FormatDate(schedule.ScheduleDate),
			Confirmed:    schedule.Confirmed,
			Applied:      schedule.Applied,
		}

		if timeSlot, _ := s.repo.TimeSlot.FindByID(ctx, schedule.TimeSlotID); timeSlot != nil {
			row.TimeSlot = fmt.Sprintf("%s - %s",
				timeSlot.StartTime.Format("15:04"), timeSlot.EndTime.Format("15:04"))
		}
		if branch, _ := s.repo.Branch.FindByID(ctx, schedule.BranchID); branch != nil {
			row.BranchName = branch.Name
		}
		if vaccine, _ := s.repo.Vaccine.FindByID(ctx, schedule.VaccineID); vaccine != nil {
			row.VaccineName = vaccine.Name
		}
		if customer, _ := s.repo.Customer.FindByID(ctx, schedule.CustomerID); customer != nil {
			row.CustomerName = customer.Name
		}

		data.Schedules[i] = row
	}

	rendered, err := s.generator.Render(s.config.Report.ScheduleTemplate, data)
	if err != nil {
		s.log.Error("Failed to render schedule report", zap.Error(err))
		return nil, fmt.Errorf("render schedule report: %w", err)
	}

	s.log.Info("Schedule report generated",
		zap.Int("schedules", len(schedules)),
		zap.Int("bytes", len(rendered)),
	)

	return &response.ScheduleReportResponse{
		Report: base64.StdEncoding.EncodeToString(rendered),
	}, nil
}

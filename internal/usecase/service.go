package usecase

import (
	"vaccination-booking/internal/data/repository"
	"vaccination-booking/pkg/mailer"
	"vaccination-booking/pkg/report"
	"vaccination-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Catalog    CatalogService
	Scheduling SchedulingService
	Report     ReportService
}

func NewService(repo *repository.Repository, config *utils.Config, mail mailer.Mailer, generator report.Generator, log *zap.Logger) *Service {
	return &Service{
		Catalog:    NewCatalogService(repo, log),
		Scheduling: NewSchedulingService(repo, config, mail, log),
		Report:     NewReportService(repo, config, generator, log),
	}
}

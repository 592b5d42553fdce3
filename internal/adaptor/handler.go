package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"vaccination-booking/internal/usecase"
	"vaccination-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Catalog  *CatalogHandler
	Schedule *ScheduleHandler
	Report   *ReportHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Catalog:  NewCatalogHandler(service.Catalog, log),
		Schedule: NewScheduleHandler(service.Scheduling, log),
		Report:   NewReportHandler(service.Report, log),
	}
}

// handleServiceError maps precondition codes to HTTP statuses; anything else
// is an internal error.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var precondition *usecase.PreconditionError
	if errors.As(err, &precondition) {
		log.Warn(operation+" precondition failed",
			zap.String("code", string(precondition.Code)),
			zap.String("operation", operation),
		)

		switch precondition.Code {
		case usecase.CodeInvalidSchedule:
			utils.ResponseNotFound(w, precondition.Error())
		case usecase.CodeTimeslotUnavailable:
			utils.ResponseConflict(w, precondition.Error())
		case usecase.CodeInternalError:
			utils.ResponseInternalError(w, precondition.Error())
		default:
			utils.ResponseBadRequest(w, precondition.Error(), nil)
		}
		return
	}

	if strings.Contains(err.Error(), "validation failed") || strings.Contains(err.Error(), "invalid") {
		log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("operation", operation),
		)
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	log.Error("Failed to "+operation,
		zap.Error(err),
		zap.String("operation", operation),
	)
	utils.ResponseInternalError(w, "Internal server error")
}

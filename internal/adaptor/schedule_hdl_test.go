package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vaccination-booking/internal/dto/request"
	"vaccination-booking/internal/dto/response"
	"vaccination-booking/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSchedulingService struct {
	scheduleResp *response.ScheduleResponse
	err          error
}

func (f *fakeSchedulingService) ScheduleVaccination(_ context.Context, _ *request.ScheduleVaccinationRequest) (*response.ScheduleResponse, error) {
	return f.scheduleResp, f.err
}

func (f *fakeSchedulingService) GetScheduleByCode(_ context.Context, _ string) (*response.ScheduleResponse, error) {
	return f.scheduleResp, f.err
}

func (f *fakeSchedulingService) ConfirmSchedule(_ context.Context, _ string) error {
	return f.err
}

func (f *fakeSchedulingService) MarkApplied(_ context.Context, _ string) error {
	return f.err
}

func newScheduleRouter(service usecase.SchedulingService) *chi.Mux {
	handler := NewScheduleHandler(service, zap.NewNop())

	r := chi.NewRouter()
	r.Post("/api/schedules", handler.ScheduleVaccination)
	r.Get("/api/schedules/{scheduleCode}", handler.GetSchedule)
	r.Put("/api/schedules/{scheduleCode}/confirm", handler.ConfirmSchedule)
	r.Put("/api/schedules/{scheduleCode}/applied", handler.MarkApplied)
	return r
}

const validBody = `{
	"branch_code": "B1",
	"vaccine_code": "V1",
	"payment_method_id": "7f6f8f7e-7a39-4f6e-9a10-02b4c8741b3a",
	"time_slot_id": "f2f9dc19-8d5a-44b8-bc2e-6a2b1d58c9e0",
	"schedule_date": "2024-06-01",
	"customer_name": "Alice",
	"customer_national_number": "111",
	"email": "a@x.com"
}`

func TestScheduleVaccination_Created(t *testing.T) {
	service := &fakeSchedulingService{
		scheduleResp: &response.ScheduleResponse{ScheduleCode: "code-1"},
	}
	router := newScheduleRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/api/schedules", strings.NewReader(validBody))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "code-1")
}

func TestScheduleVaccination_InvalidBody(t *testing.T) {
	router := newScheduleRouter(&fakeSchedulingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/schedules", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScheduleVaccination_MissingFields(t *testing.T) {
	router := newScheduleRouter(&fakeSchedulingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/schedules", strings.NewReader(`{"branch_code":"B1"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScheduleHandler_PreconditionStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		code       usecase.ErrorCode
		wantStatus int
	}{
		{"invalid branch is a bad request", usecase.CodeInvalidBranchCode, http.StatusBadRequest},
		{"invalid vaccine is a bad request", usecase.CodeInvalidVaccineCode, http.StatusBadRequest},
		{"invalid payment method is a bad request", usecase.CodeInvalidPaymentMethod, http.StatusBadRequest},
		{"invalid time slot is a bad request", usecase.CodeInvalidTimeslotID, http.StatusBadRequest},
		{"taken slot is a conflict", usecase.CodeTimeslotUnavailable, http.StatusConflict},
		{"unknown schedule is not found", usecase.CodeInvalidSchedule, http.StatusNotFound},
		{"internal precondition is a server error", usecase.CodeInternalError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &fakeSchedulingService{err: usecase.NewPreconditionError(tt.code)}
			router := newScheduleRouter(service)

			req := httptest.NewRequest(http.MethodPost, "/api/schedules", strings.NewReader(validBody))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestConfirmSchedule_Success(t *testing.T) {
	router := newScheduleRouter(&fakeSchedulingService{})

	req := httptest.NewRequest(http.MethodPut, "/api/schedules/code-1/confirm", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMarkApplied_UnknownSchedule(t *testing.T) {
	service := &fakeSchedulingService{err: usecase.NewPreconditionError(usecase.CodeInvalidSchedule)}
	router := newScheduleRouter(service)

	req := httptest.NewRequest(http.MethodPut, "/api/schedules/no-such-code/applied", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSchedule_Success(t *testing.T) {
	service := &fakeSchedulingService{
		scheduleResp: &response.ScheduleResponse{ScheduleCode: "code-1", Confirmed: true},
	}
	router := newScheduleRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/schedules/code-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "code-1")
}

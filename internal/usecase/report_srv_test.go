package usecase

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"vaccination-booking/internal/data/entity"
	"vaccination-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedSchedule(env *testEnv, code string, date time.Time, confirmed, applied bool) {
	now := time.Now()
	customer := &entity.Customer{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		Name:       "Alice",
	}
	env.customers.customers = append(env.customers.customers, customer)

	env.schedules.schedules = append(env.schedules.schedules, &entity.VaccinationSchedule{
		Base:            entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		ScheduleCode:    code,
		ScheduleDate:    date,
		TimeSlotID:      env.slot.ID,
		BranchID:        env.branch.ID,
		VaccineID:       env.vaccine.ID,
		CustomerID:      customer.ID,
		PaymentMethodID: env.payment.ID,
		Confirmed:       confirmed,
		Applied:         applied,
	})
}

func TestGetScheduleReport(t *testing.T) {
	env := newTestEnv()
	seedSchedule(env, "code-1", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), true, false)
	seedSchedule(env, "code-2", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), false, false)

	generator := &fakeGenerator{output: []byte("rendered-document")}
	svc := NewReportService(env.repo, env.config, generator, zap.NewNop())

	fromDate := "2024-06-01"
	toDate := "2024-06-30"
	resp, err := svc.GetScheduleReport(context.Background(), &request.ScheduleReportRequest{
		FromDate: &fromDate,
		ToDate:   &toDate,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	// Payload is the renderer's bytes, base64-encoded.
	decoded, err := base64.StdEncoding.DecodeString(resp.Report)
	require.NoError(t, err)
	assert.Equal(t, []byte("rendered-document"), decoded)

	// Renderer gets the configured template and the formatted date range.
	assert.Equal(t, "schedule-report", generator.lastTemplate)
	require.NotNil(t, generator.lastData)
	assert.Equal(t, "2024-06-01", generator.lastData.FromDate)
	assert.Equal(t, "2024-06-30", generator.lastData.ToDate)

	// Only the June schedule falls inside the range, resolved to names.
	require.Len(t, generator.lastData.Schedules, 1)
	row := generator.lastData.Schedules[0]
	assert.Equal(t, "code-1", row.ScheduleCode)
	assert.Equal(t, "Downtown Clinic", row.BranchName)
	assert.Equal(t, "Vaccine One", row.VaccineName)
	assert.Equal(t, "Alice", row.CustomerName)
	assert.Equal(t, "09:00 - 09:30", row.TimeSlot)
	assert.True(t, row.Confirmed)
	assert.False(t, row.Applied)
}

func TestGetScheduleReport_NoFilters(t *testing.T) {
	env := newTestEnv()
	seedSchedule(env, "code-1", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), false, false)
	seedSchedule(env, "code-2", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), false, true)

	generator := &fakeGenerator{output: []byte("x")}
	svc := NewReportService(env.repo, env.config, generator, zap.NewNop())

	_, err := svc.GetScheduleReport(context.Background(), &request.ScheduleReportRequest{})
	require.NoError(t, err)

	// Absent bounds render as empty strings; nothing is filtered out.
	assert.Equal(t, "", generator.lastData.FromDate)
	assert.Equal(t, "", generator.lastData.ToDate)
	assert.Len(t, generator.lastData.Schedules, 2)

	require.NotNil(t, env.schedules.lastFilter)
	assert.Nil(t, env.schedules.lastFilter.FromDate)
	assert.Nil(t, env.schedules.lastFilter.ToDate)
	assert.Nil(t, env.schedules.lastFilter.BranchCode)
	assert.Nil(t, env.schedules.lastFilter.Applied)
	assert.Nil(t, env.schedules.lastFilter.Confirmed)
}

func TestGetScheduleReport_FlagAndBranchFilters(t *testing.T) {
	env := newTestEnv()
	seedSchedule(env, "code-1", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), true, true)
	seedSchedule(env, "code-2", time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), false, false)

	generator := &fakeGenerator{output: []byte("x")}
	svc := NewReportService(env.repo, env.config, generator, zap.NewNop())

	branchCode := "B1"
	applied := true
	confirmed := true
	_, err := svc.GetScheduleReport(context.Background(), &request.ScheduleReportRequest{
		BranchCode: &branchCode,
		Applied:    &applied,
		Confirmed:  &confirmed,
	})
	require.NoError(t, err)

	require.Len(t, generator.lastData.Schedules, 1)
	assert.Equal(t, "code-1", generator.lastData.Schedules[0].ScheduleCode)
}

func TestGetScheduleReport_RenderFailurePropagates(t *testing.T) {
	env := newTestEnv()

	generator := &fakeGenerator{renderErr: assert.AnError}
	svc := NewReportService(env.repo, env.config, generator, zap.NewNop())

	resp, err := svc.GetScheduleReport(context.Background(), &request.ScheduleReportRequest{})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, assert.AnError)
}

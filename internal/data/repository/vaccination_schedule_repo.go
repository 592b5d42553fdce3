package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vaccination-booking/internal/data/entity"
	"vaccination-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrSlotTaken reports that another schedule already occupies the same
// (branch, date, time slot) triple. The unique index closes the race between
// the availability pre-check and the insert.
var ErrSlotTaken = errors.New("time slot already taken for branch and date")

// ScheduleFilter narrows the report query. Nil fields mean no filter on that field.
type ScheduleFilter struct {
	FromDate   *time.Time
	ToDate     *time.Time
	BranchCode *string
	Applied    *bool
	Confirmed  *bool
}

type VaccinationScheduleRepository interface {
	Create(ctx context.Context, schedule *entity.VaccinationSchedule) error
	FindByScheduleCode(ctx context.Context, scheduleCode string) (*entity.VaccinationSchedule, error)
	FindByDateAndBranchCode(ctx context.Context, date time.Time, branchCode string) ([]*entity.VaccinationSchedule, error)
	FindBySlotDateAndBranch(ctx context.Context, timeSlotID uuid.UUID, date time.Time, branchID uuid.UUID) (*entity.VaccinationSchedule, error)
	FindFiltered(ctx context.Context, filter *ScheduleFilter) ([]*entity.VaccinationSchedule, error)
	UpdateFlags(ctx context.Context, schedule *entity.VaccinationSchedule) error
}

type vaccinationScheduleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVaccinationScheduleRepository(db database.PgxIface, log *zap.Logger) VaccinationScheduleRepository {
	return &vaccinationScheduleRepository{
		db:  db,
		log: log.With(zap.String("repository", "vaccination_schedule")),
	}
}

const scheduleColumns = `id, schedule_code, schedule_date, time_slot_id, branch_id,
	vaccine_id, customer_id, payment_method_id, confirmed, applied, created_at, updated_at`

func (r *vaccinationScheduleRepository) Create(ctx context.Context, schedule *entity.VaccinationSchedule) error {
	query := `
		INSERT INTO vaccination_schedules
			(id, schedule_code, schedule_date, time_slot_id, branch_id, vaccine_id,
			 customer_id, payment_method_id, confirmed, applied, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		schedule.ID,
		schedule.ScheduleCode,
		schedule.ScheduleDate,
		schedule.TimeSlotID,
		schedule.BranchID,
		schedule.VaccineID,
		schedule.CustomerID,
		schedule.PaymentMethodID,
		schedule.Confirmed,
		schedule.Applied,
		schedule.CreatedAt,
		schedule.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_schedules_branch_date_slot" {
			return ErrSlotTaken
		}

		r.log.Error("Failed to create vaccination schedule",
			zap.Error(err),
			zap.String("schedule_code", schedule.ScheduleCode),
		)
		return fmt.Errorf("create vaccination schedule %s: %w", schedule.ScheduleCode, err)
	}

	return nil
}

func (r *vaccinationScheduleRepository) FindByScheduleCode(ctx context.Context, scheduleCode string) (*entity.VaccinationSchedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM vaccination_schedules
		WHERE schedule_code = $1
	`

	var schedule entity.VaccinationSchedule
	err := r.db.QueryRow(ctx, query, scheduleCode).Scan(
		&schedule.ID,
		&schedule.ScheduleCode,
		&schedule.ScheduleDate,
		&schedule.TimeSlotID,
		&schedule.BranchID,
		&schedule.VaccineID,
		&schedule.CustomerID,
		&schedule.PaymentMethodID,
		&schedule.Confirmed,
		&schedule.Applied,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find schedule by code",
			zap.Error(err),
			zap.String("schedule_code", scheduleCode),
		)
		return nil, fmt.Errorf("find schedule by code %s: %w", scheduleCode, err)
	}

	return &schedule, nil
}

func (r *vaccinationScheduleRepository) FindByDateAndBranchCode(ctx context.Context, date time.Time, branchCode string) ([]*entity.VaccinationSchedule, error) {
	query := `
		SELECT s.id, s.schedule_code, s.schedule_date, s.time_slot_id, s.branch_id,
			s.vaccine_id, s.customer_id, s.payment_method_id, s.confirmed, s.applied,
			s.created_at, s.updated_at
		FROM vaccination_schedules s
		JOIN branches b ON b.id = s.branch_id
		WHERE s.schedule_date = $1 AND b.branch_code = $2
	`

	rows, err := r.db.Query(ctx, query, date, branchCode)
	if err != nil {
		r.log.Error("Failed to find schedules by date and branch code",
			zap.Error(err),
			zap.Time("date", date),
			zap.String("branch_code", branchCode),
		)
		return nil, fmt.Errorf("find schedules by date %s branch %s: %w",
			date.Format("2006-01-02"), branchCode, err)
	}
	defer rows.Close()

	return r.scanSchedules(rows)
}

func (r *vaccinationScheduleRepository) FindBySlotDateAndBranch(ctx context.Context, timeSlotID uuid.UUID, date time.Time, branchID uuid.UUID) (*entity.VaccinationSchedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM vaccination_schedules
		WHERE time_slot_id = $1 AND schedule_date = $2 AND branch_id = $3
	`

	var schedule entity.VaccinationSchedule
	err := r.db.QueryRow(ctx, query, timeSlotID, date, branchID).Scan(
		&schedule.ID,
		&schedule.ScheduleCode,
		&schedule.ScheduleDate,
		&schedule.TimeSlotID,
		&schedule.BranchID,
		&schedule.VaccineID,
		&schedule.CustomerID,
		&schedule.PaymentMethodID,
		&schedule.Confirmed,
		&schedule.Applied,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find schedule by slot, date and branch",
			zap.Error(err),
			zap.String("time_slot_id", timeSlotID.String()),
			zap.Time("date", date),
			zap.String("branch_id", branchID.String()),
		)
		return nil, fmt.Errorf("find schedule by slot %s date %s branch %s: %w",
			timeSlotID.String(), date.Format("2006-01-02"), branchID.String(), err)
	}

	return &schedule, nil
}

func (r *vaccinationScheduleRepository) FindFiltered(ctx context.Context, filter *ScheduleFilter) ([]*entity.VaccinationSchedule, error) {
	query := `
		SELECT s.id, s.schedule_code, s.schedule_date, s.time_slot_id, s.branch_id,
			s.vaccine_id, s.customer_id, s.payment_method_id, s.confirmed, s.applied,
			s.created_at, s.updated_at
		FROM vaccination_schedules s
		JOIN branches b ON b.id = s.branch_id
		WHERE 1=1
	`

	var args []any
	argN := 0

	if filter.FromDate != nil {
		argN++
		query += fmt.Sprintf(" AND s.schedule_date >= $%d", argN)
		args = append(args, *filter.FromDate)
	}
	if filter.ToDate != nil {
		argN++
		query += fmt.Sprintf(" AND s.schedule_date <= $%d", argN)
		args = append(args, *filter.ToDate)
	}
	if filter.BranchCode != nil {
		argN++
		query += fmt.Sprintf(" AND b.branch_code = $%d", argN)
		args = append(args, *filter.BranchCode)
	}
	if filter.Applied != nil {
		argN++
		query += fmt.Sprintf(" AND s.applied = $%d", argN)
		args = append(args, *filter.Applied)
	}
	if filter.Confirmed != nil {
		argN++
		query += fmt.Sprintf(" AND s.confirmed = $%d", argN)
		args = append(args, *filter.Confirmed)
	}

	query += " ORDER BY s.schedule_date, s.created_at"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find filtered schedules", zap.Error(err))
		return nil, fmt.Errorf("find filtered schedules: %w", err)
	}
	defer rows.Close()

	return r.scanSchedules(rows)
}

func (r *vaccinationScheduleRepository) UpdateFlags(ctx context.Context, schedule *entity.VaccinationSchedule) error {
	query := `
		UPDATE vaccination_schedules
		SET confirmed = $2, applied = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		schedule.ID,
		schedule.Confirmed,
		schedule.Applied,
		schedule.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update schedule flags",
			zap.Error(err),
			zap.String("schedule_code", schedule.ScheduleCode),
		)
		return fmt.Errorf("update schedule %s: %w", schedule.ScheduleCode, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("schedule %s not found", schedule.ScheduleCode)
	}

	return nil
}

func (r *vaccinationScheduleRepository) scanSchedules(rows pgx.Rows) ([]*entity.VaccinationSchedule, error) {
	var schedules []*entity.VaccinationSchedule
	for rows.Next() {
		var schedule entity.VaccinationSchedule
		err := rows.Scan(
			&schedule.ID,
			&schedule.ScheduleCode,
			&schedule.ScheduleDate,
			&schedule.TimeSlotID,
			&schedule.BranchID,
			&schedule.VaccineID,
			&schedule.CustomerID,
			&schedule.PaymentMethodID,
			&schedule.Confirmed,
			&schedule.Applied,
			&schedule.CreatedAt,
			&schedule.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan schedule row", zap.Error(err))
			return nil, fmt.Errorf("scan schedule row: %w", err)
		}
		schedules = append(schedules, &schedule)
	}

	return schedules, nil
}

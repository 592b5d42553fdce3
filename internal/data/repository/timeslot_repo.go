package repository

import (
	"context"
	"fmt"

	"vaccination-booking/internal/data/entity"
	"vaccination-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TimeSlotRepository interface {
	Create(ctx context.Context, timeSlot *entity.TimeSlot) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TimeSlot, error)
	FindAll(ctx context.Context) ([]*entity.TimeSlot, error)
}

type timeSlotRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTimeSlotRepository(db database.PgxIface, log *zap.Logger) TimeSlotRepository {
	return &timeSlotRepository{
		db:  db,
		log: log.With(zap.String("repository", "time_slot")),
	}
}

func (r *timeSlotRepository) Create(ctx context.Context, timeSlot *entity.TimeSlot) error {
	query := `
		INSERT INTO time_slots (id, start_time, end_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		timeSlot.ID,
		timeSlot.StartTime,
		timeSlot.EndTime,
		timeSlot.CreatedAt,
		timeSlot.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create time slot",
			zap.Error(err),
			zap.Time("start_time", timeSlot.StartTime),
		)
		return fmt.Errorf("create time slot: %w", err)
	}

	return nil
}

func (r *timeSlotRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TimeSlot, error) {
	query := `
		SELECT id, start_time, end_time, created_at, updated_at
		FROM time_slots
		WHERE id = $1
	`

	var timeSlot entity.TimeSlot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&timeSlot.ID,
		&timeSlot.StartTime,
		&timeSlot.EndTime,
		&timeSlot.CreatedAt,
		&timeSlot.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find time slot by ID",
			zap.Error(err),
			zap.String("time_slot_id", id.String()),
		)
		return nil, fmt.Errorf("find time slot by ID %s: %w", id.String(), err)
	}

	return &timeSlot, nil
}

func (r *timeSlotRepository) FindAll(ctx context.Context) ([]*entity.TimeSlot, error) {
	query := `
		SELECT id, start_time, end_time, created_at, updated_at
		FROM time_slots
		ORDER BY start_time
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all time slots", zap.Error(err))
		return nil, fmt.Errorf("find all time slots: %w", err)
	}
	defer rows.Close()

	var timeSlots []*entity.TimeSlot
	for rows.Next() {
		var timeSlot entity.TimeSlot
		err := rows.Scan(
			&timeSlot.ID,
			&timeSlot.StartTime,
			&timeSlot.EndTime,
			&timeSlot.CreatedAt,
			&timeSlot.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan time slot row", zap.Error(err))
			return nil, fmt.Errorf("scan time slot row: %w", err)
		}
		timeSlots = append(timeSlots, &timeSlot)
	}

	return timeSlots, nil
}

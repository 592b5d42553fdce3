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

type VaccineRepository interface {
	Create(ctx context.Context, vaccine *entity.Vaccine) error
	FindByCode(ctx context.Context, vaccineCode string) (*entity.Vaccine, error)
	FindByBranchID(ctx context.Context, branchID uuid.UUID) ([]*entity.Vaccine, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vaccine, error)
	AttachToBranch(ctx context.Context, branchID, vaccineID uuid.UUID) error
}

type vaccineRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVaccineRepository(db database.PgxIface, log *zap.Logger) VaccineRepository {
	return &vaccineRepository{
		db:  db,
		log: log.With(zap.String("repository", "vaccine")),
	}
}

func (r *vaccineRepository) Create(ctx context.Context, vaccine *entity.Vaccine) error {
	query := `
		INSERT INTO vaccines (id, vaccine_code, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		vaccine.ID,
		vaccine.VaccineCode,
		vaccine.Name,
		vaccine.Description,
		vaccine.CreatedAt,
		vaccine.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create vaccine",
			zap.Error(err),
			zap.String("vaccine_code", vaccine.VaccineCode),
		)
		return fmt.Errorf("create vaccine %s: %w", vaccine.VaccineCode, err)
	}

	return nil
}

func (r *vaccineRepository) FindByCode(ctx context.Context, vaccineCode string) (*entity.Vaccine, error) {
	query := `
		SELECT id, vaccine_code, name, description, created_at, updated_at
		FROM vaccines
		WHERE vaccine_code = $1
	`

	var vaccine entity.Vaccine
	err := r.db.QueryRow(ctx, query, vaccineCode).Scan(
		&vaccine.ID,
		&vaccine.VaccineCode,
		&vaccine.Name,
		&vaccine.Description,
		&vaccine.CreatedAt,
		&vaccine.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find vaccine by code",
			zap.Error(err),
			zap.String("vaccine_code", vaccineCode),
		)
		return nil, fmt.Errorf("find vaccine by code %s: %w", vaccineCode, err)
	}

	return &vaccine, nil
}

func (r *vaccineRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vaccine, error) {
	query := `
		SELECT id, vaccine_code, name, description, created_at, updated_at
		FROM vaccines
		WHERE id = $1
	`

	var vaccine entity.Vaccine
	err := r.db.QueryRow(ctx, query, id).Scan(
		&vaccine.ID,
		&vaccine.VaccineCode,
		&vaccine.Name,
		&vaccine.Description,
		&vaccine.CreatedAt,
		&vaccine.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find vaccine by ID",
			zap.Error(err),
			zap.String("vaccine_id", id.String()),
		)
		return nil, fmt.Errorf("find vaccine by ID %s: %w", id.String(), err)
	}

	return &vaccine, nil
}

func (r *vaccineRepository) FindByBranchID(ctx context.Context, branchID uuid.UUID) ([]*entity.Vaccine, error) {
	query := `
		SELECT v.id, v.vaccine_code, v.name, v.description, v.created_at, v.updated_at
		FROM vaccines v
		JOIN branch_vaccines bv ON bv.vaccine_id = v.id
		WHERE bv.branch_id = $1
		ORDER BY v.vaccine_code
	`

	rows, err := r.db.Query(ctx, query, branchID)
	if err != nil {
		r.log.Error("Failed to find vaccines by branch ID",
			zap.Error(err),
			zap.String("branch_id", branchID.String()),
		)
		return nil, fmt.Errorf("find vaccines by branch ID %s: %w", branchID.String(), err)
	}
	defer rows.Close()

	var vaccines []*entity.Vaccine
	for rows.Next() {
		var vaccine entity.Vaccine
		err := rows.Scan(
			&vaccine.ID,
			&vaccine.VaccineCode,
			&vaccine.Name,
			&vaccine.Description,
			&vaccine.CreatedAt,
			&vaccine.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan vaccine row", zap.Error(err))
			return nil, fmt.Errorf("scan vaccine row: %w", err)
		}
		vaccines = append(vaccines, &vaccine)
	}

	return vaccines, nil
}

func (r *vaccineRepository) AttachToBranch(ctx context.Context, branchID, vaccineID uuid.UUID) error {
	query := `
		INSERT INTO branch_vaccines (branch_id, vaccine_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, branchID, vaccineID)
	if err != nil {
		r.log.Error("Failed to attach vaccine to branch",
			zap.Error(err),
			zap.String("branch_id", branchID.String()),
			zap.String("vaccine_id", vaccineID.String()),
		)
		return fmt.Errorf("attach vaccine %s to branch %s: %w", vaccineID.String(), branchID.String(), err)
	}

	return nil
}

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

type BranchRepository interface {
	Create(ctx context.Context, branch *entity.Branch) error
	FindByCode(ctx context.Context, branchCode string) (*entity.Branch, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Branch, error)
	FindAll(ctx context.Context) ([]*entity.Branch, error)
}

type branchRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBranchRepository(db database.PgxIface, log *zap.Logger) BranchRepository {
	return &branchRepository{
		db:  db,
		log: log.With(zap.String("repository", "branch")),
	}
}

func (r *branchRepository) Create(ctx context.Context, branch *entity.Branch) error {
	query := `
		INSERT INTO branches (id, branch_code, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		branch.ID,
		branch.BranchCode,
		branch.Name,
		branch.CreatedAt,
		branch.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create branch",
			zap.Error(err),
			zap.String("branch_code", branch.BranchCode),
		)
		return fmt.Errorf("create branch %s: %w", branch.BranchCode, err)
	}

	return nil
}

func (r *branchRepository) FindByCode(ctx context.Context, branchCode string) (*entity.Branch, error) {
	query := `
		SELECT id, branch_code, name, created_at, updated_at
		FROM branches
		WHERE branch_code = $1
	`

	var branch entity.Branch
	err := r.db.QueryRow(ctx, query, branchCode).Scan(
		&branch.ID,
		&branch.BranchCode,
		&branch.Name,
		&branch.CreatedAt,
		&branch.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find branch by code",
			zap.Error(err),
			zap.String("branch_code", branchCode),
		)
		return nil, fmt.Errorf("find branch by code %s: %w", branchCode, err)
	}

	return &branch, nil
}

func (r *branchRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Branch, error) {
	query := `
		SELECT id, branch_code, name, created_at, updated_at
		FROM branches
		WHERE id = $1
	`

	var branch entity.Branch
	err := r.db.QueryRow(ctx, query, id).Scan(
		&branch.ID,
		&branch.BranchCode,
		&branch.Name,
		&branch.CreatedAt,
		&branch.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find branch by ID",
			zap.Error(err),
			zap.String("branch_id", id.String()),
		)
		return nil, fmt.Errorf("find branch by ID %s: %w", id.String(), err)
	}

	return &branch, nil
}

func (r *branchRepository) FindAll(ctx context.Context) ([]*entity.Branch, error) {
	query := `
		SELECT id, branch_code, name, created_at, updated_at
		FROM branches
		ORDER BY branch_code
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all branches", zap.Error(err))
		return nil, fmt.Errorf("find all branches: %w", err)
	}
	defer rows.Close()

	var branches []*entity.Branch
	for rows.Next() {
		var branch entity.Branch
		err := rows.Scan(
			&branch.ID,
			&branch.BranchCode,
			&branch.Name,
			&branch.CreatedAt,
			&branch.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan branch row", zap.Error(err))
			return nil, fmt.Errorf("scan branch row: %w", err)
		}
		branches = append(branches, &branch)
	}

	return branches, nil
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"rental-system/internal/entities"
	apperrors "rental-system/pkg/errors"
)

const (
	forkliftTable  = "forklifts"
	forkliftFields = "id, name, model, capacity, rate_per_day, is_available, description, created_at, updated_at"
)

type ForkliftRepositoryInterface interface {
	GetForklifts(ctx context.Context) ([]entities.Forklift, error)
	FindForklift(ctx context.Context, id uint64) (*entities.Forklift, error)
	CreateForklift(ctx context.Context, forklift *entities.Forklift) (*entities.Forklift, error)
}

type ForkliftRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewForkliftRepository(storage *pgxpool.Pool, logger *zap.Logger) ForkliftRepositoryInterface {
	return &ForkliftRepository{storage: storage, logger: logger}
}

func scanForklift(row pgx.Row) (*entities.Forklift, error) {
	var f entities.Forklift
	var updatedAt sql.NullTime

	err := row.Scan(
		&f.ID, &f.Name, &f.Model, &f.Capacity, &f.RatePerDay,
		&f.IsAvailable, &f.Description, &f.CreatedAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования погрузчика: %w", err)
	}

	if updatedAt.Valid {
		f.UpdatedAt = &updatedAt.Time
	}
	return &f, nil
}

// GetForklifts отдаёт весь каталог, без фильтра по is_available.
func (r *ForkliftRepository) GetForklifts(ctx context.Context) ([]entities.Forklift, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id", forkliftFields, forkliftTable)

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	forklifts := make([]entities.Forklift, 0)
	for rows.Next() {
		f, err := scanForklift(rows)
		if err != nil {
			return nil, err
		}
		forklifts = append(forklifts, *f)
	}
	return forklifts, rows.Err()
}

func (r *ForkliftRepository) FindForklift(ctx context.Context, id uint64) (*entities.Forklift, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", forkliftFields, forkliftTable)
	return scanForklift(r.storage.QueryRow(ctx, query, id))
}

func (r *ForkliftRepository) CreateForklift(ctx context.Context, forklift *entities.Forklift) (*entities.Forklift, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, model, capacity, rate_per_day, is_available, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s`, forkliftTable, forkliftFields)

	return scanForklift(r.storage.QueryRow(ctx, query,
		forklift.Name, forklift.Model, forklift.Capacity,
		forklift.RatePerDay, forklift.IsAvailable, forklift.Description))
}

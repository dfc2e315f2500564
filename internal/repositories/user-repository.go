package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"rental-system/internal/entities"
	apperrors "rental-system/pkg/errors"
)

const (
	userTable  = "users"
	userFields = "id, username, email, password, role, created_at, updated_at"
)

type UserRepositoryInterface interface {
	FindUserByID(ctx context.Context, id uint64) (*entities.User, error)
	FindUserByUsername(ctx context.Context, username string) (*entities.User, error)
	CreateUser(ctx context.Context, user *entities.User) (*entities.User, error)
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var user entities.User
	var updatedAt sql.NullTime

	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.Password,
		&user.Role, &user.CreatedAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования пользователя: %w", err)
	}

	if updatedAt.Valid {
		user.UpdatedAt = &updatedAt.Time
	}
	return &user, nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", userFields, userTable)
	return scanUser(r.storage.QueryRow(ctx, query, id))
}

func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE username = $1", userFields, userTable)
	return scanUser(r.storage.QueryRow(ctx, query, username))
}

func (r *UserRepository) CreateUser(ctx context.Context, user *entities.User) (*entities.User, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (username, email, password, role)
		VALUES ($1, $2, $3, $4)
		RETURNING %s`, userTable, userFields)

	created, err := scanUser(r.storage.QueryRow(ctx, query,
		user.Username, user.Email, user.Password, user.Role))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			r.logger.Warn("CreateUser: нарушение уникальности", zap.String("constraint", pgErr.ConstraintName))
			return nil, apperrors.NewConflictError("Пользователь с таким именем или email уже существует")
		}
		return nil, err
	}

	return created, nil
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"rental-system/internal/entities"
	apperrors "rental-system/pkg/errors"
)

const reservationTable = "reservations"

// reservationJoinFields - колонки бронирования плюс краткие сведения
// о заказчике и погрузчике из связанных таблиц.
var reservationJoinFields = []string{
	"r.id", "r.code", "r.customer_id", "r.forklift_id",
	"r.start_date", "r.end_date", "r.total_cost", "r.status", "r.notes",
	"r.created_at", "r.updated_at",
	"u.id", "u.username", "u.email", "u.role",
	"f.id", "f.name", "f.model", "f.rate_per_day",
}

// ReservationFilter - параметры выборки реестра бронирований.
type ReservationFilter struct {
	CustomerID uint64
	Status     entities.ReservationStatus
}

type ReservationRepositoryInterface interface {
	GetReservations(ctx context.Context, filter ReservationFilter) ([]entities.Reservation, error)
	FindReservation(ctx context.Context, id uint64) (*entities.Reservation, error)
	CreateReservation(ctx context.Context, reservation *entities.Reservation) (*entities.Reservation, error)
	UpdateReservationStatus(ctx context.Context, id uint64, status entities.ReservationStatus) (*entities.Reservation, error)
}

type ReservationRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewReservationRepository(storage *pgxpool.Pool, logger *zap.Logger) ReservationRepositoryInterface {
	return &ReservationRepository{storage: storage, logger: logger}
}

func scanReservationWithRefs(row pgx.Row) (*entities.Reservation, error) {
	var res entities.Reservation
	var customer entities.User
	var forklift entities.Forklift
	var updatedAt sql.NullTime

	err := row.Scan(
		&res.ID, &res.Code, &res.CustomerID, &res.ForkliftID,
		&res.StartDate, &res.EndDate, &res.TotalCost, &res.Status, &res.Notes,
		&res.CreatedAt, &updatedAt,
		&customer.ID, &customer.Username, &customer.Email, &customer.Role,
		&forklift.ID, &forklift.Name, &forklift.Model, &forklift.RatePerDay,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования бронирования: %w", err)
	}

	if updatedAt.Valid {
		res.UpdatedAt = &updatedAt.Time
	}
	res.Customer = &customer
	res.Forklift = &forklift
	return &res, nil
}

func reservationSelectBuilder() sq.SelectBuilder {
	return sq.Select(reservationJoinFields...).
		From(reservationTable + " r").
		Join("users u ON u.id = r.customer_id").
		Join("forklifts f ON f.id = r.forklift_id").
		PlaceholderFormat(sq.Dollar)
}

func (r *ReservationRepository) GetReservations(ctx context.Context, filter ReservationFilter) ([]entities.Reservation, error) {
	builder := reservationSelectBuilder().OrderBy("r.id DESC")

	if filter.CustomerID != 0 {
		builder = builder.Where(sq.Eq{"r.customer_id": filter.CustomerID})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"r.status": string(filter.Status)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса бронирований: %w", err)
	}
	r.logger.Debug("GetReservations: SQL", zap.String("query", query), zap.Any("args", args))

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := make([]entities.Reservation, 0)
	for rows.Next() {
		res, err := scanReservationWithRefs(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, *res)
	}
	return reservations, rows.Err()
}

func (r *ReservationRepository) FindReservation(ctx context.Context, id uint64) (*entities.Reservation, error) {
	query, args, err := reservationSelectBuilder().Where(sq.Eq{"r.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса бронирования: %w", err)
	}
	return scanReservationWithRefs(r.storage.QueryRow(ctx, query, args...))
}

func (r *ReservationRepository) CreateReservation(ctx context.Context, reservation *entities.Reservation) (*entities.Reservation, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (code, customer_id, forklift_id, start_date, end_date, total_cost, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`, reservationTable)

	var newID uint64
	err := r.storage.QueryRow(ctx, query,
		reservation.Code, reservation.CustomerID, reservation.ForkliftID,
		reservation.StartDate, reservation.EndDate, reservation.TotalCost,
		string(reservation.Status), reservation.Notes,
	).Scan(&newID)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания бронирования: %w", err)
	}

	return r.FindReservation(ctx, newID)
}

func (r *ReservationRepository) UpdateReservationStatus(ctx context.Context, id uint64, status entities.ReservationStatus) (*entities.Reservation, error) {
	query := fmt.Sprintf("UPDATE %s SET status = $1, updated_at = now() WHERE id = $2", reservationTable)

	ct, err := r.storage.Exec(ctx, query, string(status), id)
	if err != nil {
		return nil, fmt.Errorf("ошибка обновления статуса бронирования: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}

	return r.FindReservation(ctx, id)
}

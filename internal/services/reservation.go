package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/internal/repositories"
	apperrors "rental-system/pkg/errors"
	"rental-system/pkg/utils"
)

type ReservationServiceInterface interface {
	CreateReservation(ctx context.Context, customerID uint64, payload dto.CreateReservationDTO) (*entities.Reservation, error)
	GetReservations(ctx context.Context, status entities.ReservationStatus) ([]entities.Reservation, error)
	GetMyReservations(ctx context.Context, customerID uint64) ([]entities.Reservation, error)
	UpdateReservationStatus(ctx context.Context, id uint64, newStatus entities.ReservationStatus) (*entities.Reservation, error)
}

type ReservationService struct {
	reservationRepo repositories.ReservationRepositoryInterface
	forkliftRepo    repositories.ForkliftRepositoryInterface
	logger          *zap.Logger
}

func NewReservationService(
	reservationRepo repositories.ReservationRepositoryInterface,
	forkliftRepo repositories.ForkliftRepositoryInterface,
	logger *zap.Logger,
) ReservationServiceInterface {
	return &ReservationService{
		reservationRepo: reservationRepo,
		forkliftRepo:    forkliftRepo,
		logger:          logger,
	}
}

// CalculateTotalCost - стоимость аренды: неполный день тарифицируется
// как целый, минимум один день.
func CalculateTotalCost(start, end time.Time, ratePerDay float64) float64 {
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return float64(days) * ratePerDay
}

func (s *ReservationService) CreateReservation(ctx context.Context, customerID uint64, payload dto.CreateReservationDTO) (*entities.Reservation, error) {
	startDate, err := utils.ParseDate(payload.StartDate)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат даты начала", err, nil)
	}
	endDate, err := utils.ParseDate(payload.EndDate)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат даты окончания", err, nil)
	}

	if !endDate.After(startDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	forklift, err := s.forkliftRepo.FindForklift(ctx, payload.ForkliftID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Погрузчик не найден")
		}
		return nil, err
	}

	// Пересечения с другими бронированиями того же погрузчика здесь
	// намеренно не проверяются, двойное бронирование возможно.
	reservation := &entities.Reservation{
		Code:       uuid.NewString(),
		CustomerID: customerID,
		ForkliftID: forklift.ID,
		StartDate:  startDate,
		EndDate:    endDate,
		TotalCost:  CalculateTotalCost(startDate, endDate, forklift.RatePerDay),
		Status:     entities.StatusPending,
		Notes:      payload.Notes,
	}

	created, err := s.reservationRepo.CreateReservation(ctx, reservation)
	if err != nil {
		s.logger.Error("CreateReservation: ошибка сохранения", zap.Error(err))
		return nil, err
	}

	s.logger.Info("CreateReservation: бронирование создано",
		zap.Uint64("reservationID", created.ID),
		zap.Uint64("customerID", customerID),
		zap.Float64("totalCost", created.TotalCost),
	)
	return created, nil
}

func (s *ReservationService) GetReservations(ctx context.Context, status entities.ReservationStatus) ([]entities.Reservation, error) {
	return s.reservationRepo.GetReservations(ctx, repositories.ReservationFilter{Status: status})
}

func (s *ReservationService) GetMyReservations(ctx context.Context, customerID uint64) ([]entities.Reservation, error) {
	return s.reservationRepo.GetReservations(ctx, repositories.ReservationFilter{CustomerID: customerID})
}

// UpdateReservationStatus применяет переход жизненного цикла.
// Недопустимый переход отклоняется, статус не перезаписывается произвольно.
func (s *ReservationService) UpdateReservationStatus(ctx context.Context, id uint64, newStatus entities.ReservationStatus) (*entities.Reservation, error) {
	if !newStatus.IsValid() {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("Неизвестный статус %q", newStatus))
	}

	reservation, err := s.reservationRepo.FindReservation(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Бронирование не найдено")
		}
		return nil, err
	}

	if !entities.CanTransition(reservation.Status, newStatus) {
		return nil, apperrors.NewHttpError(
			http.StatusBadRequest,
			fmt.Sprintf("Переход статуса из %q в %q недопустим", reservation.Status, newStatus),
			apperrors.ErrInvalidTransition,
			map[string]interface{}{"reservationID": id},
		)
	}

	updated, err := s.reservationRepo.UpdateReservationStatus(ctx, id, newStatus)
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateReservationStatus: статус обновлён",
		zap.Uint64("reservationID", id),
		zap.String("from", string(reservation.Status)),
		zap.String("to", string(newStatus)),
	)
	return updated, nil
}

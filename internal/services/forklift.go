package services

import (
	"context"

	"go.uber.org/zap"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/internal/repositories"
)

type ForkliftServiceInterface interface {
	GetForklifts(ctx context.Context) ([]entities.Forklift, error)
	CreateForklift(ctx context.Context, payload dto.CreateForkliftDTO) (*entities.Forklift, error)
}

type ForkliftService struct {
	forkliftRepo repositories.ForkliftRepositoryInterface
	logger       *zap.Logger
}

func NewForkliftService(forkliftRepo repositories.ForkliftRepositoryInterface, logger *zap.Logger) ForkliftServiceInterface {
	return &ForkliftService{forkliftRepo: forkliftRepo, logger: logger}
}

func (s *ForkliftService) GetForklifts(ctx context.Context) ([]entities.Forklift, error) {
	return s.forkliftRepo.GetForklifts(ctx)
}

func (s *ForkliftService) CreateForklift(ctx context.Context, payload dto.CreateForkliftDTO) (*entities.Forklift, error) {
	isAvailable := true
	if payload.IsAvailable != nil {
		isAvailable = *payload.IsAvailable
	}

	forklift := &entities.Forklift{
		Name:        payload.Name,
		Model:       payload.Model,
		Capacity:    payload.Capacity,
		RatePerDay:  payload.RatePerDay,
		IsAvailable: isAvailable,
		Description: payload.Description,
	}

	created, err := s.forkliftRepo.CreateForklift(ctx, forklift)
	if err != nil {
		s.logger.Error("CreateForklift: ошибка создания записи", zap.Error(err))
		return nil, err
	}

	s.logger.Info("CreateForklift: погрузчик добавлен в каталог",
		zap.Uint64("forkliftID", created.ID),
		zap.String("name", created.Name),
	)
	return created, nil
}

package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/internal/services"
	apperrors "rental-system/pkg/errors"
	"rental-system/pkg/utils"
)

type ForkliftController struct {
	forkliftService services.ForkliftServiceInterface
	logger          *zap.Logger
}

func NewForkliftController(forkliftService services.ForkliftServiceInterface, logger *zap.Logger) *ForkliftController {
	return &ForkliftController{forkliftService: forkliftService, logger: logger}
}

func forkliftToDTO(f *entities.Forklift) dto.ForkliftDTO {
	return dto.ForkliftDTO{
		ID:          f.ID,
		Name:        f.Name,
		Model:       f.Model,
		Capacity:    f.Capacity,
		RatePerDay:  f.RatePerDay,
		IsAvailable: f.IsAvailable,
		Description: f.Description,
		CreatedAt:   utils.FormatDateTime(f.CreatedAt),
	}
}

func (ctrl *ForkliftController) GetForklifts(c echo.Context) error {
	forklifts, err := ctrl.forkliftService.GetForklifts(c.Request().Context())
	if err != nil {
		ctrl.logger.Error("GetForklifts: ошибка выборки каталога", zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	list := make([]dto.ForkliftDTO, 0, len(forklifts))
	for i := range forklifts {
		list = append(list, forkliftToDTO(&forklifts[i]))
	}
	return utils.SuccessResponse(c, list, "Каталог погрузчиков получен", http.StatusOK)
}

func (ctrl *ForkliftController) CreateForklift(c echo.Context) error {
	var payload dto.CreateForkliftDTO

	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("CreateForklift: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Неверный формат данных погрузчика"), ctrl.logger)
	}

	if err := c.Validate(&payload); err != nil {
		ctrl.logger.Warn("CreateForklift: ошибка валидации данных", zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	forklift, err := ctrl.forkliftService.CreateForklift(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, forkliftToDTO(forklift), "Погрузчик добавлен в каталог", http.StatusOK)
}

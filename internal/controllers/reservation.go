package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/internal/services"
	"rental-system/pkg/contextkeys"
	apperrors "rental-system/pkg/errors"
	"rental-system/pkg/utils"
)

type ReservationController struct {
	reservationService services.ReservationServiceInterface
	logger             *zap.Logger
}

func NewReservationController(reservationService services.ReservationServiceInterface, logger *zap.Logger) *ReservationController {
	return &ReservationController{reservationService: reservationService, logger: logger}
}

func reservationToDTO(r *entities.Reservation) dto.ReservationDTO {
	out := dto.ReservationDTO{
		ID:        r.ID,
		Code:      r.Code,
		StartDate: utils.FormatDate(r.StartDate),
		EndDate:   utils.FormatDate(r.EndDate),
		TotalCost: r.TotalCost,
		Status:    string(r.Status),
		Notes:     r.Notes,
		CreatedAt: utils.FormatDateTime(r.CreatedAt),
	}
	if r.Customer != nil {
		out.Customer = &dto.UserSummaryDTO{
			ID:       r.Customer.ID,
			Username: r.Customer.Username,
			Role:     r.Customer.Role,
		}
	}
	if r.Forklift != nil {
		out.Forklift = &dto.ShortForkliftDTO{
			ID:    r.Forklift.ID,
			Name:  r.Forklift.Name,
			Model: r.Forklift.Model,
		}
	}
	return out
}

func reservationsToDTO(reservations []entities.Reservation) []dto.ReservationDTO {
	list := make([]dto.ReservationDTO, 0, len(reservations))
	for i := range reservations {
		list = append(list, reservationToDTO(&reservations[i]))
	}
	return list
}

func customerIDFromContext(c echo.Context) (uint64, bool) {
	userID, ok := c.Request().Context().Value(contextkeys.UserIDKey).(uint64)
	return userID, ok && userID != 0
}

// CreateReservation - создание бронирования заказчиком.
func (ctrl *ReservationController) CreateReservation(c echo.Context) error {
	customerID, ok := customerIDFromContext(c)
	if !ok {
		ctrl.logger.Error("CreateReservation: userID не найден в контексте")
		return utils.ErrorResponse(c, apperrors.ErrUnauthorized, ctrl.logger)
	}

	var payload dto.CreateReservationDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("CreateReservation: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Неверный формат данных бронирования"), ctrl.logger)
	}

	if err := c.Validate(&payload); err != nil {
		ctrl.logger.Warn("CreateReservation: ошибка валидации данных", zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	reservation, err := ctrl.reservationService.CreateReservation(c.Request().Context(), customerID, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, reservationToDTO(reservation), "Бронирование создано", http.StatusOK)
}

// GetReservations - весь реестр, только для владельца.
// Поддерживает необязательный фильтр ?status=.
func (ctrl *ReservationController) GetReservations(c echo.Context) error {
	status := entities.ReservationStatus(c.QueryParam("status"))
	if status != "" && !status.IsValid() {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError(fmt.Sprintf("Неизвестный статус %q", status)), ctrl.logger)
	}

	reservations, err := ctrl.reservationService.GetReservations(c.Request().Context(), status)
	if err != nil {
		ctrl.logger.Error("GetReservations: ошибка выборки реестра", zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, reservationsToDTO(reservations), "Реестр бронирований получен", http.StatusOK)
}

// GetMyReservations - бронирования текущего заказчика.
func (ctrl *ReservationController) GetMyReservations(c echo.Context) error {
	customerID, ok := customerIDFromContext(c)
	if !ok {
		ctrl.logger.Error("GetMyReservations: userID не найден в контексте")
		return utils.ErrorResponse(c, apperrors.ErrUnauthorized, ctrl.logger)
	}

	reservations, err := ctrl.reservationService.GetMyReservations(c.Request().Context(), customerID)
	if err != nil {
		ctrl.logger.Error("GetMyReservations: ошибка выборки", zap.Uint64("customerID", customerID), zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, reservationsToDTO(reservations), "Ваши бронирования получены", http.StatusOK)
}

// UpdateReservationStatus - решение владельца по бронированию.
func (ctrl *ReservationController) UpdateReservationStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный ID бронирования", err,
				map[string]interface{}{"param": c.Param("id")}),
			ctrl.logger,
		)
	}

	var payload dto.UpdateReservationStatusDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("UpdateReservationStatus: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Неверный формат данных статуса"), ctrl.logger)
	}

	if err := c.Validate(&payload); err != nil {
		ctrl.logger.Warn("UpdateReservationStatus: ошибка валидации данных", zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	updated, err := ctrl.reservationService.UpdateReservationStatus(
		c.Request().Context(), id, entities.ReservationStatus(payload.Status))
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, reservationToDTO(updated), "Статус бронирования обновлён", http.StatusOK)
}

var reservationReportHeaders = []string{
	"№", "Код", "Заказчик", "Погрузчик", "Модель", "Дата начала", "Дата окончания",
	"Стоимость", "Статус", "Примечания", "Создано",
}

func reservationRow(index int, r *entities.Reservation) []interface{} {
	var customer, forkliftName, forkliftModel string
	if r.Customer != nil {
		customer = r.Customer.Username
	}
	if r.Forklift != nil {
		forkliftName = r.Forklift.Name
		forkliftModel = r.Forklift.Model
	}
	return []interface{}{
		index, r.Code, customer, forkliftName, forkliftModel,
		utils.FormatDate(r.StartDate), utils.FormatDate(r.EndDate),
		r.TotalCost, string(r.Status), r.Notes,
		utils.FormatDateTime(r.CreatedAt),
	}
}

// ExportReservations выгружает реестр бронирований в XLSX.
func (ctrl *ReservationController) ExportReservations(c echo.Context) error {
	reservations, err := ctrl.reservationService.GetReservations(c.Request().Context(), "")
	if err != nil {
		ctrl.logger.Error("ExportReservations: ошибка выборки реестра", zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	f := excelize.NewFile()
	sheet := "Бронирования"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &reservationReportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "K1", style)

	for i := range reservations {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := reservationRow(i+1, &reservations[i])
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "B", 38)
	f.SetColWidth(sheet, "C", "E", 20)
	f.SetColWidth(sheet, "J", "K", 25)

	fileName := fmt.Sprintf("reservations_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response().Writer)
}

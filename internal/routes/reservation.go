package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"rental-system/internal/controllers"
	"rental-system/internal/entities"
	"rental-system/internal/services"
	"rental-system/pkg/middleware"
)

func runReservationRouter(
	api *echo.Group,
	reservationService services.ReservationServiceInterface,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
) {
	reservationCtrl := controllers.NewReservationController(reservationService, logger)

	ownerOnly := []echo.MiddlewareFunc{authMW.Auth, authMW.RequireRole(entities.RoleOwner)}
	customerOnly := []echo.MiddlewareFunc{authMW.Auth, authMW.RequireRole(entities.RoleCustomer)}

	api.GET("/reservations", reservationCtrl.GetReservations, ownerOnly...)
	api.GET("/reservations/export", reservationCtrl.ExportReservations, ownerOnly...)
	api.PATCH("/reservations/:id", reservationCtrl.UpdateReservationStatus, ownerOnly...)

	api.POST("/reservations", reservationCtrl.CreateReservation, customerOnly...)
	api.GET("/my-reservations", reservationCtrl.GetMyReservations, customerOnly...)
}

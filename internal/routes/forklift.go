package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"rental-system/internal/controllers"
	"rental-system/internal/entities"
	"rental-system/internal/services"
	"rental-system/pkg/middleware"
)

func runForkliftRouter(
	api *echo.Group,
	forkliftService services.ForkliftServiceInterface,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
) {
	forkliftCtrl := controllers.NewForkliftController(forkliftService, logger)

	// Каталог открыт всем, добавлять технику может только владелец.
	api.GET("/forklifts", forkliftCtrl.GetForklifts)
	api.POST("/forklifts", forkliftCtrl.CreateForklift,
		authMW.Auth, authMW.RequireRole(entities.RoleOwner))
}

package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"rental-system/internal/controllers"
	"rental-system/internal/services"
	"rental-system/pkg/middleware"
	"rental-system/pkg/service"
)

func runAuthRouter(
	api *echo.Group,
	authService services.AuthServiceInterface,
	jwtSvc service.JWTService,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
) {
	authCtrl := controllers.NewAuthController(authService, jwtSvc, logger)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)
		authGroup.GET("/me", authCtrl.Me, authMW.Auth)
	}
}

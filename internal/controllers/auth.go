package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/internal/services"
	"rental-system/pkg/contextkeys"
	apperrors "rental-system/pkg/errors"
	"rental-system/pkg/service"
	"rental-system/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
	jwtSvc      service.JWTService
	logger      *zap.Logger
}

func NewAuthController(
	authService services.AuthServiceInterface,
	jwtSvc service.JWTService,
	logger *zap.Logger,
) *AuthController {
	return &AuthController{
		authService: authService,
		jwtSvc:      jwtSvc,
		logger:      logger,
	}
}

func userSummary(user *entities.User) dto.UserSummaryDTO {
	return dto.UserSummaryDTO{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
}

func (ctrl *AuthController) Register(c echo.Context) error {
	var payload dto.RegisterDTO

	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("Register: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Неверный формат данных регистрации"), ctrl.logger)
	}

	if err := c.Validate(&payload); err != nil {
		ctrl.logger.Warn("Register: ошибка валидации данных", zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	user, err := ctrl.authService.Register(c.Request().Context(), payload)
	if err != nil {
		ctrl.logger.Error("Register: ошибка регистрации", zap.String("username", payload.Username), zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, userSummary(user), "Регистрация прошла успешно", http.StatusCreated)
}

func (ctrl *AuthController) Login(c echo.Context) error {
	var payload dto.LoginDTO

	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("Login: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Неверный формат данных для входа"), ctrl.logger)
	}

	if err := c.Validate(&payload); err != nil {
		ctrl.logger.Warn("Login: ошибка валидации данных", zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	user, err := ctrl.authService.Login(c.Request().Context(), payload)
	if err != nil {
		ctrl.logger.Warn("Login: ошибка авторизации", zap.String("username", payload.Username), zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	token, err := ctrl.jwtSvc.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		ctrl.logger.Error("Login: не удалось выпустить токен", zap.Uint64("userID", user.ID), zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	response := dto.LoginResponseDTO{
		Token: token,
		User:  userSummary(user),
	}
	return utils.SuccessResponse(c, response, "Авторизация прошла успешно", http.StatusOK)
}

func (ctrl *AuthController) Me(c echo.Context) error {
	userID, ok := c.Request().Context().Value(contextkeys.UserIDKey).(uint64)
	if !ok || userID == 0 {
		ctrl.logger.Error("Me: не удалось получить userID из контекста в защищённом маршруте")
		return utils.ErrorResponse(c, apperrors.ErrUnauthorized, ctrl.logger)
	}

	user, err := ctrl.authService.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		ctrl.logger.Error("Me: ошибка получения пользователя", zap.Uint64("userID", userID), zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	profile := dto.UserProfileDTO{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: utils.FormatDateTime(user.CreatedAt),
	}
	return utils.SuccessResponse(c, profile, "Профиль получен", http.StatusOK)
}

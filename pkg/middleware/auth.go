package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"rental-system/pkg/contextkeys"
	apperrors "rental-system/pkg/errors"
	"rental-system/pkg/service"
	"rental-system/pkg/utils"
)

type AuthMiddleware struct {
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		logger:     logger,
	}
}

// Auth - первая ступень: проверка подлинности токена.
// Всегда выполняется ДО проверки роли.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			m.logger.Warn("AuthMiddleware: Пустой заголовок Authorization")
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.logger.Warn("AuthMiddleware: Неверный формат заголовка Authorization")
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("AuthMiddleware: Ошибка валидации токена", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}

		// Кладём личность и роль в контекст запроса для нижележащих обработчиков.
		ctx := c.Request().Context()
		ctx = context.WithValue(ctx, contextkeys.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, contextkeys.UsernameKey, claims.Username)
		ctx = context.WithValue(ctx, contextkeys.UserRoleKey, claims.Role)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole - вторая ступень: проверка роли из контекста.
// Токен здесь уже не разбирается, полагаемся на отработавший Auth.
func (m *AuthMiddleware) RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actorRole, ok := c.Request().Context().Value(contextkeys.UserRoleKey).(string)
			if !ok {
				m.logger.Error("RequireRole: роль не найдена в контексте, Auth не отработал")
				return utils.ErrorResponse(c, apperrors.ErrUnauthorized, m.logger)
			}

			if actorRole != role {
				m.logger.Warn("RequireRole: недостаточно прав",
					zap.String("required", role),
					zap.String("actual", actorRole),
				)
				return utils.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
			}

			return next(c)
		}
	}
}

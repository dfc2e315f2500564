package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"rental-system/internal/repositories"
	"rental-system/internal/services"
	"rental-system/pkg/config"
	"rental-system/pkg/middleware"
	"rental-system/pkg/service"
)

func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	logger *zap.Logger,
	cfg *config.Config,
) {
	logger.Info("InitRouter: Начало создания маршрутов")

	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	// --- 1. РЕПОЗИТОРИИ ---
	userRepo := repositories.NewUserRepository(dbConn, logger)
	forkliftRepo := repositories.NewForkliftRepository(dbConn, logger)
	reservationRepo := repositories.NewReservationRepository(dbConn, logger)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// --- 2. СЕРВИСЫ ---
	authService := services.NewAuthService(userRepo, cacheRepo, logger, cfg.Owner, cfg.Auth)
	forkliftService := services.NewForkliftService(forkliftRepo, logger)
	reservationService := services.NewReservationService(reservationRepo, forkliftRepo, logger)

	// --- 3. РОУТЕРЫ ---
	runAuthRouter(api, authService, jwtSvc, logger, authMW)
	runForkliftRouter(api, forkliftService, logger, authMW)
	runReservationRouter(api, reservationService, logger, authMW)

	logger.Info("InitRouter: Создание маршрутов завершено")
}

// BuildAuthService собирает сервис авторизации вне маршрутов;
// main.go использует его для первичного заведения владельца.
func BuildAuthService(
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	logger *zap.Logger,
	cfg *config.Config,
) services.AuthServiceInterface {
	userRepo := repositories.NewUserRepository(dbConn, logger)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)
	return services.NewAuthService(userRepo, cacheRepo, logger, cfg.Owner, cfg.Auth)
}

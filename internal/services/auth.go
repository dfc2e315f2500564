package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/internal/repositories"
	"rental-system/pkg/config"
	apperrors "rental-system/pkg/errors"
	"rental-system/pkg/utils"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, payload dto.RegisterDTO) (*entities.User, error)
	Login(ctx context.Context, payload dto.LoginDTO) (*entities.User, error)
	GetUserByID(ctx context.Context, userID uint64) (*entities.User, error)
	EnsureOwnerAccount(ctx context.Context) error
}

type AuthService struct {
	userRepo  repositories.UserRepositoryInterface
	cacheRepo repositories.CacheRepositoryInterface
	logger    *zap.Logger
	ownerCfg  config.OwnerConfig
	authCfg   config.AuthConfig
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	ownerCfg config.OwnerConfig,
	authCfg config.AuthConfig,
) AuthServiceInterface {
	return &AuthService{
		userRepo:  userRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		ownerCfg:  ownerCfg,
		authCfg:   authCfg,
	}
}

// Register создаёт пользователя с ролью customer. Пароль хешируется,
// в открытом виде никуда не пишется и не логируется.
func (s *AuthService) Register(ctx context.Context, payload dto.RegisterDTO) (*entities.User, error) {
	hashed, err := utils.HashPassword(payload.Password)
	if err != nil {
		s.logger.Error("Register: ошибка хеширования пароля", zap.Error(err))
		return nil, err
	}

	user := &entities.User{
		Username: payload.Username,
		Email:    payload.Email,
		Password: hashed,
		Role:     entities.RoleCustomer,
	}

	created, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Register: пользователь зарегистрирован",
		zap.Uint64("userID", created.ID),
		zap.String("username", created.Username),
	)
	return created, nil
}

// Login проверяет учётные данные. "Пользователь не найден" и "неверный пароль"
// наружу неразличимы, чтобы не давать перебирать имена.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*entities.User, error) {
	lockoutKey := fmt.Sprintf("login_attempts:%s", payload.Username)

	attemptsStr, _ := s.cacheRepo.Get(ctx, lockoutKey)
	if attempts, _ := strconv.Atoi(attemptsStr); attempts >= s.authCfg.MaxLoginAttempts {
		s.logger.Warn("Login: слишком много неудачных попыток", zap.String("username", payload.Username))
		return nil, apperrors.NewHttpError(
			http.StatusTooManyRequests,
			fmt.Sprintf("Слишком много попыток входа. Попробуйте через %.0f минут.", s.authCfg.LockoutDuration.Minutes()),
			nil,
			nil,
		)
	}

	user, err := s.userRepo.FindUserByUsername(ctx, payload.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.registerFailedAttempt(ctx, lockoutKey)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := utils.ComparePasswords(user.Password, payload.Password); err != nil {
		s.registerFailedAttempt(ctx, lockoutKey)
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.cacheRepo.Del(ctx, lockoutKey); err != nil {
		s.logger.Warn("Login: не удалось сбросить счётчик попыток", zap.Error(err))
	}

	return user, nil
}

func (s *AuthService) registerFailedAttempt(ctx context.Context, key string) {
	if _, err := s.cacheRepo.Incr(ctx, key); err != nil {
		s.logger.Warn("не удалось увеличить счётчик попыток входа", zap.Error(err))
		return
	}
	if _, err := s.cacheRepo.Expire(ctx, key, s.authCfg.LockoutDuration); err != nil {
		s.logger.Warn("не удалось выставить TTL счётчика попыток", zap.Error(err))
	}
}

func (s *AuthService) GetUserByID(ctx context.Context, userID uint64) (*entities.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// EnsureOwnerAccount заводит аккаунт владельца при старте процесса.
// Владелец проходит через тот же путь, что и обычный пользователь:
// bcrypt-хеш в той же таблице, отличается только ролью.
func (s *AuthService) EnsureOwnerAccount(ctx context.Context) error {
	if s.ownerCfg.Password == "" {
		s.logger.Warn("EnsureOwnerAccount: OWNER_PASSWORD не задан, аккаунт владельца не создаётся")
		return nil
	}

	_, err := s.userRepo.FindUserByUsername(ctx, s.ownerCfg.Username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(s.ownerCfg.Password)
	if err != nil {
		return err
	}

	owner := &entities.User{
		Username: s.ownerCfg.Username,
		Email:    s.ownerCfg.Email,
		Password: hashed,
		Role:     entities.RoleOwner,
	}

	created, err := s.userRepo.CreateUser(ctx, owner)
	if err != nil {
		return err
	}

	s.logger.Info("EnsureOwnerAccount: аккаунт владельца создан", zap.Uint64("userID", created.ID))
	return nil
}

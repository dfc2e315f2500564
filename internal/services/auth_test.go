package services

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/pkg/config"
	apperrors "rental-system/pkg/errors"
)

func newTestAuthService(userRepo *fakeUserRepo, cacheRepo *fakeCacheRepo, ownerCfg config.OwnerConfig) AuthServiceInterface {
	return NewAuthService(userRepo, cacheRepo, zap.NewNop(), ownerCfg, config.AuthConfig{
		MaxLoginAttempts: 5,
		LockoutDuration:  time.Minute * 15,
	})
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo(), newFakeCacheRepo(), config.OwnerConfig{})
	ctx := context.Background()

	created, err := svc.Register(ctx, dto.RegisterDTO{
		Email:    "a@x.com",
		Username: "alice",
		Password: "password1",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.RoleCustomer, created.Role)
	assert.NotEqual(t, "password1", created.Password, "пароль не должен храниться открытым текстом")
	assert.True(t, strings.HasPrefix(created.Password, "$2"), "ожидался bcrypt-хеш")

	user, err := svc.Login(ctx, dto.LoginDTO{Username: "alice", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, entities.RoleCustomer, user.Role)
}

func TestAuthService_DuplicateUsernameConflict(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo(), newFakeCacheRepo(), config.OwnerConfig{})
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterDTO{Email: "a@x.com", Username: "alice", Password: "password1"})
	require.NoError(t, err)

	// Тот же username при другом email всё равно конфликт.
	_, err = svc.Register(ctx, dto.RegisterDTO{Email: "other@x.com", Username: "alice", Password: "password2"})
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestAuthService_LoginUniformInvalidCredentials(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo(), newFakeCacheRepo(), config.OwnerConfig{})
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterDTO{Email: "a@x.com", Username: "alice", Password: "password1"})
	require.NoError(t, err)

	// Неизвестный пользователь и неверный пароль неразличимы для вызывающего.
	_, errUnknown := svc.Login(ctx, dto.LoginDTO{Username: "nobody", Password: "whatever"})
	_, errWrongPass := svc.Login(ctx, dto.LoginDTO{Username: "alice", Password: "wrong"})

	assert.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, apperrors.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestAuthService_LoginLockoutAfterTooManyAttempts(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo(), newFakeCacheRepo(), config.OwnerConfig{})
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterDTO{Email: "a@x.com", Username: "alice", Password: "password1"})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := svc.Login(ctx, dto.LoginDTO{Username: "alice", Password: "wrong"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	}

	// Шестая попытка упирается в блокировку, даже с верным паролем.
	_, err = svc.Login(ctx, dto.LoginDTO{Username: "alice", Password: "password1"})
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusTooManyRequests, httpErr.Code)
}

func TestAuthService_SuccessfulLoginResetsAttempts(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo(), newFakeCacheRepo(), config.OwnerConfig{})
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterDTO{Email: "a@x.com", Username: "alice", Password: "password1"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		svc.Login(ctx, dto.LoginDTO{Username: "alice", Password: "wrong"})
	}
	_, err = svc.Login(ctx, dto.LoginDTO{Username: "alice", Password: "password1"})
	require.NoError(t, err)

	// Счётчик сброшен, снова доступны все попытки.
	for i := 0; i < 4; i++ {
		_, err := svc.Login(ctx, dto.LoginDTO{Username: "alice", Password: "wrong"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	}
}

func TestAuthService_EnsureOwnerAccount(t *testing.T) {
	userRepo := newFakeUserRepo()
	ownerCfg := config.OwnerConfig{
		Username: "boss",
		Email:    "boss@rental.local",
		Password: "super-secret",
	}
	svc := newTestAuthService(userRepo, newFakeCacheRepo(), ownerCfg)
	ctx := context.Background()

	require.NoError(t, svc.EnsureOwnerAccount(ctx))

	owner, err := userRepo.FindUserByUsername(ctx, "boss")
	require.NoError(t, err)
	assert.Equal(t, entities.RoleOwner, owner.Role)
	assert.NotEqual(t, "super-secret", owner.Password, "пароль владельца должен храниться хешем")
	assert.True(t, strings.HasPrefix(owner.Password, "$2"))

	// Владелец входит через общий путь, как любой пользователь.
	user, err := svc.Login(ctx, dto.LoginDTO{Username: "boss", Password: "super-secret"})
	require.NoError(t, err)
	assert.Equal(t, entities.RoleOwner, user.Role)

	// Повторный вызов ничего не дублирует.
	require.NoError(t, svc.EnsureOwnerAccount(ctx))
	again, err := userRepo.FindUserByUsername(ctx, "boss")
	require.NoError(t, err)
	assert.Equal(t, owner.ID, again.ID)
}

func TestAuthService_EnsureOwnerAccountWithoutPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestAuthService(userRepo, newFakeCacheRepo(), config.OwnerConfig{Username: "boss"})

	require.NoError(t, svc.EnsureOwnerAccount(context.Background()))

	_, err := userRepo.FindUserByUsername(context.Background(), "boss")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

package services

import (
	"context"
	"strconv"
	"time"

	"rental-system/internal/entities"
	"rental-system/internal/repositories"
	apperrors "rental-system/pkg/errors"
)

// Фейковые репозитории в памяти. Реализуют те же интерфейсы,
// что и боевые pgx-реализации.

type fakeUserRepo struct {
	nextID uint64
	users  map[string]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: map[string]*entities.User{}}
}

func (r *fakeUserRepo) FindUserByID(_ context.Context, id uint64) (*entities.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeUserRepo) FindUserByUsername(_ context.Context, username string) (*entities.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *entities.User) (*entities.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, apperrors.NewConflictError("Пользователь с таким именем или email уже существует")
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, apperrors.NewConflictError("Пользователь с таким именем или email уже существует")
		}
	}

	copied := *user
	copied.ID = r.nextID
	copied.CreatedAt = time.Now()
	r.nextID++
	r.users[copied.Username] = &copied

	result := copied
	return &result, nil
}

type fakeCacheRepo struct {
	values map[string]string
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{values: map[string]string{}}
}

func (r *fakeCacheRepo) Get(_ context.Context, key string) (string, error) {
	v, ok := r.values[key]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return v, nil
}

func (r *fakeCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	r.values[key] = value.(string)
	return nil
}

func (r *fakeCacheRepo) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(r.values, k)
	}
	return nil
}

func (r *fakeCacheRepo) Incr(_ context.Context, key string) (int64, error) {
	n, _ := strconv.ParseInt(r.values[key], 10, 64)
	n++
	r.values[key] = strconv.FormatInt(n, 10)
	return n, nil
}

func (r *fakeCacheRepo) Expire(_ context.Context, _ string, _ time.Duration) (bool, error) {
	return true, nil
}

type fakeForkliftRepo struct {
	nextID    uint64
	forklifts map[uint64]*entities.Forklift
}

func newFakeForkliftRepo() *fakeForkliftRepo {
	return &fakeForkliftRepo{nextID: 1, forklifts: map[uint64]*entities.Forklift{}}
}

func (r *fakeForkliftRepo) add(f entities.Forklift) *entities.Forklift {
	f.ID = r.nextID
	f.CreatedAt = time.Now()
	r.nextID++
	r.forklifts[f.ID] = &f
	return &f
}

func (r *fakeForkliftRepo) GetForklifts(_ context.Context) ([]entities.Forklift, error) {
	list := make([]entities.Forklift, 0, len(r.forklifts))
	for _, f := range r.forklifts {
		list = append(list, *f)
	}
	return list, nil
}

func (r *fakeForkliftRepo) FindForklift(_ context.Context, id uint64) (*entities.Forklift, error) {
	f, ok := r.forklifts[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *f
	return &copied, nil
}

func (r *fakeForkliftRepo) CreateForklift(_ context.Context, forklift *entities.Forklift) (*entities.Forklift, error) {
	return r.add(*forklift), nil
}

type fakeReservationRepo struct {
	nextID       uint64
	reservations map[uint64]*entities.Reservation
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{nextID: 1, reservations: map[uint64]*entities.Reservation{}}
}

func (r *fakeReservationRepo) GetReservations(_ context.Context, filter repositories.ReservationFilter) ([]entities.Reservation, error) {
	list := make([]entities.Reservation, 0)
	for _, res := range r.reservations {
		if filter.CustomerID != 0 && res.CustomerID != filter.CustomerID {
			continue
		}
		if filter.Status != "" && res.Status != filter.Status {
			continue
		}
		list = append(list, *res)
	}
	return list, nil
}

func (r *fakeReservationRepo) FindReservation(_ context.Context, id uint64) (*entities.Reservation, error) {
	res, ok := r.reservations[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *res
	return &copied, nil
}

func (r *fakeReservationRepo) CreateReservation(_ context.Context, reservation *entities.Reservation) (*entities.Reservation, error) {
	copied := *reservation
	copied.ID = r.nextID
	copied.CreatedAt = time.Now()
	r.nextID++
	r.reservations[copied.ID] = &copied

	result := copied
	return &result, nil
}

func (r *fakeReservationRepo) UpdateReservationStatus(_ context.Context, id uint64, status entities.ReservationStatus) (*entities.Reservation, error) {
	res, ok := r.reservations[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	res.Status = status
	copied := *res
	return &copied, nil
}

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"rri/config"
	"rri/infras/otel/mocks"
	userMocks "rri/internal/domains/user/mocks"
	"rri/internal/domains/user/model"
	"rri/internal/domains/user/model/dto"
	"rri/internal/domains/user/service"
	cacheMocks "rri/shared/cache/mocks"
	"rri/shared/constant"
	"rri/shared/failure"
	"rri/shared/password"
	"rri/shared/timezone"
)

func newService(t *testing.T) (service.User, *userMocks.MockUser, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func TestUserService_Create(t *testing.T) {
	req := dto.CreateUserRequest{
		Name:     "Budi Santoso",
		Email:    "budi@example.com",
		Password: "hunter2hunter2",
	}

	t.Run("successful creation hashes the password and defaults to staff", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockRepo.EXPECT().
			ExistByEmail(gomock.Any(), req.Email).
			Return(false, nil)

		var created model.User

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user model.User) error {
				created = user

				return nil
			})

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.Create(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, constant.RoleStaff, created.Role)
		assert.NotEqual(t, req.Password, created.PasswordHash)
		assert.NoError(t, password.Verify(req.Password, created.PasswordHash))
	})

	t.Run("duplicate email conflicts without inserting", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			ExistByEmail(gomock.Any(), req.Email).
			Return(true, nil)

		err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.True(t, failure.IsConflict(err))
	})

	t.Run("lookup error", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			ExistByEmail(gomock.Any(), req.Email).
			Return(false, errors.New("database error"))

		err := svc.Create(context.Background(), req)

		assert.Error(t, err)
	})
}

func TestUserService_Overview(t *testing.T) {
	now := timezone.Now()

	users := []model.User{
		{ID: "user-1", Role: constant.RoleAdmin, CreatedAt: now.AddDate(0, 0, -30)},
		{ID: "user-2", Role: constant.RoleStaff, CreatedAt: now.AddDate(0, 0, -2)},
		{ID: "user-3", Role: constant.RoleStaff, CreatedAt: now.Add(-time.Hour)},
		{ID: "user-4", Role: constant.RoleGuest, CreatedAt: now.AddDate(0, 0, -10)},
	}

	t.Run("cache miss assembles payload", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			GetAll(gomock.Any()).
			Return(users, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Overview(context.Background())

		assert.NoError(t, err)
		assert.Len(t, res.Users, 4)
		assert.Equal(t, 4, res.Stats.Total)
		assert.Equal(t, 1, res.Stats.Admins)
		assert.Equal(t, 2, res.Stats.Staff)
		assert.Equal(t, 1, res.Stats.Guests)
		assert.Equal(t, 2, res.Stats.Recent7d)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			GetAll(gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.Overview(context.Background())

		assert.Error(t, err)
	})
}

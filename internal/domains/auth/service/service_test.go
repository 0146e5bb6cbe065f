package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	jwtMocks "rri/infras/jwt/mocks"
	"rri/infras/otel/mocks"
	"rri/internal/domains/auth/model/dto"
	"rri/internal/domains/auth/service"
	userMocks "rri/internal/domains/user/mocks"
	userModel "rri/internal/domains/user/model"
	"rri/shared/constant"
	"rri/shared/failure"
	"rri/shared/password"
)

func newService(t *testing.T) (service.Auth, *userMocks.MockUser, *jwtMocks.MockJWT) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, mockJWT, mockOtel)

	return svc, mockUserRepo, mockJWT
}

func TestAuthService_Register(t *testing.T) {
	req := dto.RegisterRequest{
		Name:     "Ayu Lestari",
		Email:    "ayu@example.com",
		Password: "hunter2hunter2",
	}

	t.Run("successful registration returns token and identity", func(t *testing.T) {
		svc, mockUserRepo, mockJWT := newService(t)

		mockUserRepo.EXPECT().
			ExistByEmail(gomock.Any(), req.Email).
			Return(false, nil)

		var created userModel.User

		mockUserRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user userModel.User) error {
				created = user

				return nil
			})

		mockJWT.EXPECT().
			Generate(gomock.Any(), req.Name, req.Email).
			Return("signed-token", nil)

		res, err := svc.Register(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "signed-token", res.Token)
		assert.Equal(t, req.Name, res.User.Name)
		assert.Equal(t, req.Email, res.User.Email)
		assert.NotEmpty(t, res.User.ID)

		// New registrations are guests with a bcrypt hash, never the raw password.
		assert.Equal(t, constant.RoleGuest, created.Role)
		assert.NotEqual(t, req.Password, created.PasswordHash)
		assert.NoError(t, password.Verify(req.Password, created.PasswordHash))
	})

	t.Run("duplicate email conflicts without inserting", func(t *testing.T) {
		svc, mockUserRepo, _ := newService(t)

		mockUserRepo.EXPECT().
			ExistByEmail(gomock.Any(), req.Email).
			Return(true, nil)

		_, err := svc.Register(context.Background(), req)

		assert.Error(t, err)
		assert.True(t, failure.IsConflict(err))
	})

	t.Run("lookup error", func(t *testing.T) {
		svc, mockUserRepo, _ := newService(t)

		mockUserRepo.EXPECT().
			ExistByEmail(gomock.Any(), req.Email).
			Return(false, errors.New("database error"))

		_, err := svc.Register(context.Background(), req)

		assert.Error(t, err)
	})
}

func TestAuthService_Login(t *testing.T) {
	hash, err := password.Hash("hunter2hunter2")
	assert.NoError(t, err)

	stored := userModel.User{
		ID:           "user-1",
		Name:         "Ayu Lestari",
		Email:        "ayu@example.com",
		PasswordHash: hash,
		Role:         constant.RoleStaff,
	}

	t.Run("successful login", func(t *testing.T) {
		svc, mockUserRepo, mockJWT := newService(t)

		mockUserRepo.EXPECT().
			GetByEmail(gomock.Any(), stored.Email).
			Return(stored, nil)

		mockJWT.EXPECT().
			Generate(stored.ID, stored.Name, stored.Email).
			Return("signed-token", nil)

		res, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    stored.Email,
			Password: "hunter2hunter2",
		})

		assert.NoError(t, err)
		assert.Equal(t, "signed-token", res.Token)
		assert.Equal(t, stored.ID, res.User.ID)
	})

	t.Run("unknown email fails with the generic message", func(t *testing.T) {
		svc, mockUserRepo, _ := newService(t)

		mockUserRepo.EXPECT().
			GetByEmail(gomock.Any(), "nobody@example.com").
			Return(userModel.User{}, nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "hunter2hunter2",
		})

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
		assert.EqualError(t, err, "Invalid email or password")
	})

	t.Run("wrong password fails with the same message", func(t *testing.T) {
		svc, mockUserRepo, _ := newService(t)

		mockUserRepo.EXPECT().
			GetByEmail(gomock.Any(), stored.Email).
			Return(stored, nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    stored.Email,
			Password: "wrong-password",
		})

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
		assert.EqualError(t, err, "Invalid email or password")
	})

	t.Run("lookup error", func(t *testing.T) {
		svc, mockUserRepo, _ := newService(t)

		mockUserRepo.EXPECT().
			GetByEmail(gomock.Any(), stored.Email).
			Return(userModel.User{}, errors.New("database error"))

		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    stored.Email,
			Password: "hunter2hunter2",
		})

		assert.Error(t, err)
	})
}

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"rri/config"
	"rri/infras/otel/mocks"
	roomMocks "rri/internal/domains/room/mocks"
	"rri/internal/domains/room/model"
	"rri/internal/domains/room/model/dto"
	"rri/internal/domains/room/service"
	cacheMocks "rri/shared/cache/mocks"
	"rri/shared/constant"
	"rri/shared/failure"
)

func newService(t *testing.T) (service.Room, *roomMocks.MockRoom, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func TestRoomService_Create(t *testing.T) {
	req := dto.CreateRoomRequest{
		Number: "305",
		TypeID: 2,
	}

	t.Run("successful creation applies defaults", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		var inserted model.Room

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, room model.Room) error {
				inserted = room

				return nil
			})

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.Create(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, 1, inserted.Beds)
		assert.Equal(t, float64(0), inserted.Price)
		assert.Equal(t, constant.RoomStatusAvailable, inserted.Status)
		assert.NotEmpty(t, inserted.ID)
	})

	t.Run("duplicate number conflicts", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(failure.Conflict("Room number already exists"))

		err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.True(t, failure.IsConflict(err))
	})
}

func TestRoomService_Overview(t *testing.T) {
	rooms := []model.Room{
		{ID: "room-1", Number: "101", Type: "Deluxe", Status: constant.RoomStatusAvailable},
		{ID: "room-2", Number: "102", Type: "Deluxe", Status: constant.RoomStatusOccupied},
		{ID: "room-3", Number: "201", Type: "Suite", Status: constant.RoomStatusMaintenance},
	}

	types := []model.RoomType{
		{ID: 1, Name: "Standard"},
		{ID: 2, Name: "Deluxe"},
		{ID: 3, Name: "Suite"},
	}

	t.Run("cache miss assembles payload", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			GetAll(gomock.Any()).
			Return(rooms, nil)

		mockRepo.EXPECT().
			GetTypes(gomock.Any()).
			Return(types, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Overview(context.Background())

		assert.NoError(t, err)
		assert.Len(t, res.Rooms, 3)
		assert.Len(t, res.Types, 3)
		assert.Equal(t, 3, res.Stats.Totals.TotalRooms)
		assert.Equal(t, 1, res.Stats.Totals.Available)
		assert.Equal(t, 1, res.Stats.Totals.Occupied)
		assert.Equal(t, 1, res.Stats.Totals.Maintenance)
		assert.Equal(t, 2, res.Stats.ByType["Deluxe"])

		// Types with no rooms still appear with a zero count.
		assert.Equal(t, 0, res.Stats.ByType["Standard"])
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		svc, _, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.Overview(context.Background())

		assert.NoError(t, err)
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

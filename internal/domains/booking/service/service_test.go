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
	bookingMocks "rri/internal/domains/booking/mocks"
	"rri/internal/domains/booking/model"
	"rri/internal/domains/booking/model/dto"
	"rri/internal/domains/booking/service"
	roomMocks "rri/internal/domains/room/mocks"
	roomModel "rri/internal/domains/room/model"
	cacheMocks "rri/shared/cache/mocks"
	"rri/shared/constant"
	"rri/shared/failure"
)

func newService(t *testing.T) (service.Booking, *bookingMocks.MockBooking, *roomMocks.MockRoom, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockRoomRepo, mockCache
}

func TestBookingService_Create(t *testing.T) {
	validReq := dto.CreateBookingRequest{
		RoomID:    "room-1",
		GuestName: "Ayu Lestari",
		CheckIn:   "2025-01-10",
		CheckOut:  "2025-01-15",
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  validReq,
			setupMock: func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				roomRepo.EXPECT().
					Exist(gomock.Any(), "room-1").
					Return(true, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "room does not exist",
			req:  validReq,
			setupMock: func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				roomRepo.EXPECT().
					Exist(gomock.Any(), "room-1").
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "check_out not after check_in",
			req: dto.CreateBookingRequest{
				RoomID:    "room-1",
				GuestName: "Ayu Lestari",
				CheckIn:   "2025-01-15",
				CheckOut:  "2025-01-15",
			},
			setupMock: func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				roomRepo.EXPECT().
					Exist(gomock.Any(), "room-1").
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "dates already taken",
			req:  validReq,
			setupMock: func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				roomRepo.EXPECT().
					Exist(gomock.Any(), "room-1").
					Return(true, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(failure.Conflict("Room is already booked for the selected dates"))
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "room check error",
			req:  validReq,
			setupMock: func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				roomRepo.EXPECT().
					Exist(gomock.Any(), "room-1").
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockRoomRepo, mockCache := newService(t)
			tt.setupMock(mockRepo, mockRoomRepo, mockCache)

			err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Overview(t *testing.T) {
	checkIn := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

	number := "101"
	roomType := "Deluxe"

	bookings := []model.BookingWithRoom{
		{
			Booking: model.Booking{
				ID:        "booking-1",
				RoomID:    "room-1",
				GuestName: "Ayu Lestari",
				CheckIn:   checkIn,
				CheckOut:  checkOut,
				Status:    constant.BookingStatusConfirmed,
			},
			RoomNumber: &number,
			RoomType:   &roomType,
		},
	}

	rooms := []roomModel.Room{
		{ID: "room-1", Number: "101", Type: "Deluxe", Status: constant.RoomStatusAvailable},
		{ID: "room-2", Number: "102", Type: "Suite", Status: constant.RoomStatusOccupied},
	}

	t.Run("cache miss assembles payload", func(t *testing.T) {
		svc, mockRepo, mockRoomRepo, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			GetAll(gomock.Any()).
			Return(bookings, nil)

		mockRoomRepo.EXPECT().
			GetAll(gomock.Any()).
			Return(rooms, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Overview(context.Background())

		assert.NoError(t, err)
		assert.Len(t, res.Bookings, 1)
		assert.Equal(t, "2025-01-10", res.Bookings[0].CheckIn)
		assert.Len(t, res.Rooms, 2)
		assert.Equal(t, "101", res.Rooms[0].Number)
		assert.Equal(t, 1, res.Stats.Total)
		assert.Equal(t, 1, res.Stats.ByStatus.Confirmed)
	})

	t.Run("cache hit skips repositories", func(t *testing.T) {
		svc, _, _, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.Overview(context.Background())

		assert.NoError(t, err)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newService(t)

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

func TestBookingService_Recent(t *testing.T) {
	t.Run("returns mapped rows", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Recent(gomock.Any(), 8).
			Return([]model.RecentBooking{
				{
					ID:        "booking-1",
					GuestName: "Ayu Lestari",
					CheckIn:   time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
					CheckOut:  time.Date(2025, time.January, 13, 0, 0, 0, 0, time.UTC),
					Nights:    3,
					Status:    constant.BookingStatusBooked,
					Total:     360,
				},
			}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Recent(context.Background())

		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, 3, res[0].Nights)
		assert.Equal(t, float64(360), res[0].Total)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Recent(gomock.Any(), 8).
			Return(nil, errors.New("database error"))

		_, err := svc.Recent(context.Background())

		assert.Error(t, err)
	})
}

package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/singhtechie24/Indiana-Hotels-Final/config"
	"github.com/singhtechie24/Indiana-Hotels-Final/infras/otel/mocks"
	roomMocks "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/room/mocks"
	requestMocks "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/servicerequest/mocks"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/servicerequest/model"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/servicerequest/model/dto"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/servicerequest/service"
	eventMocks "github.com/singhtechie24/Indiana-Hotels-Final/internal/events/mocks"
	cacheMocks "github.com/singhtechie24/Indiana-Hotels-Final/shared/cache/mocks"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/constant"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/failure"
)

func TestServiceRequestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := requestMocks.NewMockServiceRequest(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockPublisher)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	tests := []struct {
		name      string
		req       dto.CreateServiceRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req: dto.CreateServiceRequest{
				RoomID:      "room-1",
				Type:        model.TypeHousekeeping,
				Description: "Fresh towels please",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockPublisher.EXPECT().
					Publish(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "room not found",
			req: dto.CreateServiceRequest{
				RoomID:      "missing-room",
				Type:        model.TypeMaintenance,
				Description: "AC is broken",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			req: dto.CreateServiceRequest{
				RoomID:      "room-1",
				Type:        model.TypeRoomService,
				Description: "Two club sandwiches",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			_, err := svc.Create(ctx, tt.req)

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

func TestServiceRequestService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := requestMocks.NewMockServiceRequest(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockPublisher)

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	request := func(status string) model.ServiceRequest {
		return model.ServiceRequest{
			ID:     "request-1",
			RoomID: "room-1",
			UserID: "guest-1",
			Type:   model.TypeHousekeeping,
			Status: status,
		}
	}

	tests := []struct {
		name      string
		from      string
		to        string
		setupMock func(from string)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "pending to in_progress",
			from: model.StatusPending,
			to:   model.StatusInProgress,
			setupMock: func(from string) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(request(from), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockPublisher.EXPECT().
					Publish(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "in_progress to completed",
			from: model.StatusInProgress,
			to:   model.StatusCompleted,
			setupMock: func(from string) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(request(from), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockPublisher.EXPECT().
					Publish(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "pending straight to completed is rejected",
			from: model.StatusPending,
			to:   model.StatusCompleted,
			setupMock: func(from string) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(request(from), nil)
			},
			wantErr:  true,
			wantCode: http.StatusPreconditionFailed,
		},
		{
			name: "completed request cannot change status",
			from: model.StatusCompleted,
			to:   model.StatusInProgress,
			setupMock: func(from string) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(request(from), nil)
			},
			wantErr:  true,
			wantCode: http.StatusPreconditionFailed,
		},
		{
			name: "request not found",
			from: model.StatusPending,
			to:   model.StatusInProgress,
			setupMock: func(from string) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.ServiceRequest{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock(tt.from)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-user")
			err := svc.UpdateStatus(ctx, dto.UpdateStatusRequest{Status: tt.to}, "request-1")

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

func TestServiceRequestService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := requestMocks.NewMockServiceRequest(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockPublisher)

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	request := func(status, userID string) model.ServiceRequest {
		return model.ServiceRequest{
			ID:     "request-1",
			RoomID: "room-1",
			UserID: userID,
			Type:   model.TypeRoomService,
			Status: status,
		}
	}

	tests := []struct {
		name      string
		role      string
		userID    string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:   "requester cancels their own pending request",
			role:   constant.RoleGuest,
			userID: "guest-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(request(model.StatusPending, "guest-1"), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockPublisher.EXPECT().
					Publish(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:   "guest cannot cancel another guest's request",
			role:   constant.RoleGuest,
			userID: "guest-2",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(request(model.StatusPending, "guest-1"), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name:   "completed request cannot be cancelled",
			role:   constant.RoleGuest,
			userID: "guest-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(request(model.StatusCompleted, "guest-1"), nil)
			},
			wantErr:  true,
			wantCode: http.StatusPreconditionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, tt.userID)
			ctx = context.WithValue(ctx, constant.ContextKeyUserRole, tt.role)

			err := svc.Cancel(ctx, "request-1")

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

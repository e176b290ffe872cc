package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"inn/config"
	"inn/infras/otel/mocks"
	"inn/infras/payment"
	paymentMocks "inn/infras/payment/mocks"
	bookingMocks "inn/internal/domains/booking/mocks"
	pMocks "inn/internal/domains/payment/mocks"
	"inn/internal/domains/payment/model"
	"inn/internal/domains/payment/model/dto"
	"inn/internal/domains/payment/service"
	cacheMocks "inn/shared/cache/mocks"
	"inn/shared/constant"
	"inn/shared/failure"
)

func TestPaymentService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := pMocks.NewMockPayment(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockGateway := paymentMocks.NewMockGateway(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockBookingRepo, mockGateway, cfg, mockCache, mockOtel)

	validReq := dto.CreatePaymentRequest{
		BookingID: "booking-1",
		Amount:    300,
		Method:    constant.PaymentMethodCreditCard,
	}

	tests := []struct {
		name      string
		req       dto.CreatePaymentRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  validReq,
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "unknown booking",
			req:  validReq,
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "insert error",
			req:  validReq,
			setupMock: func() {
				mockBookingRepo.EXPECT().
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
			err := svc.Create(ctx, tt.req)

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

func TestPaymentService_Process(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := pMocks.NewMockPayment(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockGateway := paymentMocks.NewMockGateway(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockBookingRepo, mockGateway, cfg, mockCache, mockOtel)

	pending := model.Payment{
		ID:        "payment-1",
		BookingID: "booking-1",
		Amount:    300,
		Method:    constant.PaymentMethodCreditCard,
		Status:    constant.PaymentStatusPending,
	}

	completed := pending
	completed.Status = constant.PaymentStatusCompleted

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
		wantMsg   string
	}{
		{
			name: "successful charge",
			id:   "payment-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)

				mockGateway.EXPECT().
					ProcessPayment(gomock.Any(), payment.ChargeRequest{
						PaymentID: "payment-1",
						BookingID: "booking-1",
						Amount:    300,
						Method:    constant.PaymentMethodCreditCard,
					}).
					Return(payment.ChargeResult{
						Success:       true,
						TransactionID: "txn-123",
						Status:        "completed",
					}, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, constant.PaymentStatusCompleted, fields[model.FieldStatus])

						txn, ok := fields[model.FieldTransactionID].(*string)
						if assert.True(t, ok) {
							assert.Equal(t, "txn-123", *txn)
						}

						return nil
					})

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "payment not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Payment{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "already processed",
			id:   "payment-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completed, nil)
			},
			wantErr:  true,
			wantCode: 400,
			wantMsg:  "payment already processed",
		},
		{
			name: "provider refuses the charge",
			id:   "payment-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)

				mockGateway.EXPECT().
					ProcessPayment(gomock.Any(), gomock.Any()).
					Return(payment.ChargeResult{
						Success: false,
						Error:   "card declined",
					}, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, constant.PaymentStatusFailed, fields[model.FieldStatus])

						return nil
					})
			},
			wantErr:  true,
			wantCode: 400,
			wantMsg:  "card declined",
		},
		{
			name: "provider unreachable",
			id:   "payment-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)

				mockGateway.EXPECT().
					ProcessPayment(gomock.Any(), gomock.Any()).
					Return(payment.ChargeResult{}, errors.New("connection refused"))
			},
			wantErr:  true,
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			result, err := svc.Process(ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
				if tt.wantMsg != "" {
					assert.Contains(t, err.Error(), tt.wantMsg)
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, constant.PaymentStatusCompleted, result.Status)
			if assert.NotNil(t, result.TransactionID) {
				assert.Equal(t, "txn-123", *result.TransactionID)
			}
		})
	}
}

func TestPaymentService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := pMocks.NewMockPayment(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockGateway := paymentMocks.NewMockGateway(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockBookingRepo, mockGateway, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		req       dto.UpdatePaymentRequest
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update",
			req: dto.UpdatePaymentRequest{
				Status: constant.PaymentStatusFailed,
			},
			id: "payment-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name:      "empty update request",
			req:       dto.UpdatePaymentRequest{},
			id:        "payment-1",
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "payment not found",
			req: dto.UpdatePaymentRequest{
				Status: constant.PaymentStatusFailed,
			},
			id: "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req, tt.id)

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

package orders

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"campusPrint/domain"
	"campusPrint/pkg/logger"
	"campusPrint/pkg/metrics"

	"github.com/google/uuid"
)

// Pickup codes are drawn uniformly from 1000-9999. Five draws is a best-effort
// cap: with 9000 values the loop only exhausts when the active-order set is
// close to full, and the caller can retry the whole create.
const (
	otpMin         = 1000
	otpSpan        = 9000
	maxOTPAttempts = 5
)

type OrdersRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindActiveByOTP(ctx context.Context, otp string) (domain.Order, error)
	FindAll(ctx context.Context, userID string) ([]domain.Order, error)
	FindByID(ctx context.Context, id string) (domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type OrdersService struct {
	orderRepo OrdersRepository
}

func NewOrdersService(orderRepo OrdersRepository) *OrdersService {
	return &OrdersService{
		orderRepo: orderRepo,
	}
}

// CreateOrder stores a new print order with status paid and a pickup OTP that
// no other uncollected order holds. Orders already collected release their
// OTP for reuse.
func (s *OrdersService) CreateOrder(ctx context.Context, order *domain.Order) (domain.Order, error) {
	if len(order.Files) == 0 {
		return domain.Order{}, domain.ErrMissingFields
	}

	order.ID = uuid.NewString()
	order.Status = domain.StatusPaid

	for attempts := 0; attempts < maxOTPAttempts; attempts++ {
		otp := fmt.Sprintf("%04d", otpMin+rand.Intn(otpSpan))

		_, err := s.orderRepo.FindActiveByOTP(ctx, otp)
		if err == nil {
			// An uncollected order already holds this code.
			metrics.OTPRetries.Inc()
			continue
		}
		if !errors.Is(err, domain.ErrOrderNotFound) {
			logger.Error("OTP lookup failed", err)
			return domain.Order{}, err
		}

		order.OTP = otp
		err = s.orderRepo.Create(ctx, order)
		if errors.Is(err, domain.ErrDuplicateOTP) {
			// Lost the check-then-insert race; the store constraint caught it.
			metrics.OTPRetries.Inc()
			continue
		}
		if err != nil {
			logger.Error("Order insert failed", err)
			return domain.Order{}, err
		}

		logger.Info("Order created", "id", order.ID, "otp", order.OTP)
		metrics.OrdersCreated.Inc()
		return *order, nil
	}

	logger.Error("OTP space exhausted after max attempts", "attempts", maxOTPAttempts)
	metrics.OTPExhausted.Inc()
	return domain.Order{}, domain.ErrOTPExhausted
}

// GetOrders returns orders newest first, all of them or only the given
// user's.
func (s *OrdersService) GetOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orderRepo.FindAll(ctx, userID)
}

// UpdateOrderStatus overwrites the order's status. Any non-empty value is
// accepted; the vendor dashboard owns the vocabulary.
func (s *OrdersService) UpdateOrderStatus(ctx context.Context, id, status string) (domain.Order, error) {
	if status == "" {
		return domain.Order{}, domain.ErrMissingFields
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return domain.Order{}, err
	}

	return s.orderRepo.FindByID(ctx, id)
}

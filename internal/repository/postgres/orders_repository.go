package postgres

import (
	"context"
	"errors"

	"campusPrint/domain"

	"gorm.io/gorm"
)

type OrdersRepository struct {
	DB *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		DB: db,
	}
}

// Create inserts the order. The partial unique index on otp (scoped to
// status <> 'collected') rejects a duplicate active OTP that slipped past the
// service-level lookup; that surfaces as ErrDuplicateOTP so the service can
// count it as a failed attempt.
func (r *OrdersRepository) Create(ctx context.Context, order *domain.Order) error {
	if err := r.DB.WithContext(ctx).Create(order).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateOTP
		}
		return err
	}

	return nil
}

// FindActiveByOTP returns the order holding otp among orders that have not
// been collected yet. Collected orders release their OTP for reuse.
func (r *OrdersRepository) FindActiveByOTP(ctx context.Context, otp string) (domain.Order, error) {
	var order domain.Order

	err := r.DB.WithContext(ctx).
		Where("otp = ?", otp).
		Where("status <> ?", domain.StatusCollected).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, err
	}

	return order, nil
}

// FindAll returns orders newest first, optionally filtered by the submitting
// user.
func (r *OrdersRepository) FindAll(ctx context.Context, userID string) ([]domain.Order, error) {
	// Empty result serializes as [], not null.
	orders := make([]domain.Order, 0)

	query := r.DB.WithContext(ctx).Order("created_at DESC")
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *OrdersRepository) FindByID(ctx context.Context, id string) (domain.Order, error) {
	var order domain.Order

	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, err
	}

	return order, nil
}

func (r *OrdersRepository) UpdateStatus(ctx context.Context, id, status string) error {
	row := r.DB.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if row.Error != nil {
		return row.Error
	}
	if row.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}

	return nil
}

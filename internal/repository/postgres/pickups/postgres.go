package pickups

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pickupsdomain "meal-train-go/internal/domain/pickups"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]pickupsdomain.Pickup, error) {
	var rows []pickupsdomain.Pickup
	err := r.db.WithContext(ctx).
		Order("pickup_date DESC, location ASC").
		Find(&rows).Error
	return rows, err
}

func (r *PostgresRepository) ListAvailable(ctx context.Context, from time.Time) ([]pickupsdomain.Pickup, error) {
	var rows []pickupsdomain.Pickup
	err := r.db.WithContext(ctx).
		Where("active = ? AND pickup_date >= ?", true, from).
		Order("pickup_date ASC, location ASC").
		Find(&rows).Error
	return rows, err
}

func (r *PostgresRepository) ListActiveByDate(ctx context.Context, date time.Time) ([]pickupsdomain.Pickup, error) {
	var rows []pickupsdomain.Pickup
	err := r.db.WithContext(ctx).
		Where("active = ? AND pickup_date = ?", true, date).
		Order("location ASC").
		Find(&rows).Error
	return rows, err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*pickupsdomain.Pickup, error) {
	var pickup pickupsdomain.Pickup
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&pickup).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pickupsdomain.ErrPickupNotFound
		}
		return nil, err
	}
	return &pickup, nil
}

func (r *PostgresRepository) FindByDateLocation(ctx context.Context, date time.Time, location string) (*pickupsdomain.Pickup, error) {
	var pickup pickupsdomain.Pickup
	if err := r.db.WithContext(ctx).
		Where("pickup_date = ? AND location = ?", date, location).
		First(&pickup).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pickupsdomain.ErrPickupNotFound
		}
		return nil, err
	}
	return &pickup, nil
}

func (r *PostgresRepository) Create(ctx context.Context, pickup *pickupsdomain.Pickup) error {
	if pickup.ID == "" {
		pickup.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(pickup).Error
}

func (r *PostgresRepository) Update(ctx context.Context, pickup *pickupsdomain.Pickup) error {
	return r.db.WithContext(ctx).
		Model(&pickupsdomain.Pickup{}).
		Where("id = ?", pickup.ID).
		Updates(map[string]interface{}{
			"pickup_date": pickup.PickupDate,
			"location":    pickup.Location,
			"active":      pickup.Active,
		}).Error
}

func (r *PostgresRepository) Deactivate(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&pickupsdomain.Pickup{}).
		Where("id = ?", id).
		Update("active", false)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&pickupsdomain.Pickup{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) CountSignups(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("meal_signups").
		Where("pickup_location_id = ?", id).
		Count(&count).Error
	return count, err
}

func (r *PostgresRepository) DeleteUnreferenced(ctx context.Context) ([]pickupsdomain.Pickup, error) {
	var removed []pickupsdomain.Pickup
	err := r.db.WithContext(ctx).Raw(`
		DELETE FROM pickup_locations
		WHERE id NOT IN (SELECT DISTINCT pickup_location_id FROM meal_signups)
		RETURNING id, pickup_date, location, active, created_at
	`).Scan(&removed).Error
	return removed, err
}

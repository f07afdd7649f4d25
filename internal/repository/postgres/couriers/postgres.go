package couriers

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	couriersdomain "meal-train-go/internal/domain/couriers"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]couriersdomain.Courier, error) {
	var rows []couriersdomain.Courier
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *PostgresRepository) ListActiveByLocation(ctx context.Context, location string) ([]couriersdomain.Courier, error) {
	var rows []couriersdomain.Courier
	err := r.db.WithContext(ctx).
		Where("active = ? AND ? = ANY(locations)", true, location).
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*couriersdomain.Courier, error) {
	var courier couriersdomain.Courier
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&courier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, couriersdomain.ErrCourierNotFound
		}
		return nil, err
	}
	return &courier, nil
}

func (r *PostgresRepository) Create(ctx context.Context, courier *couriersdomain.Courier) error {
	if courier.ID == "" {
		courier.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(courier).Error
}

func (r *PostgresRepository) Update(ctx context.Context, courier *couriersdomain.Courier) error {
	return r.db.WithContext(ctx).
		Model(&couriersdomain.Courier{}).
		Where("id = ?", courier.ID).
		Updates(map[string]interface{}{
			"name":      courier.Name,
			"email":     courier.Email,
			"phone":     courier.Phone,
			"locations": courier.Locations,
			"active":    courier.Active,
		}).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&couriersdomain.Courier{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

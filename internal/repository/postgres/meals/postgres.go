package meals

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	mealsdomain "meal-train-go/internal/domain/meals"
)

const joinedColumns = "ms.id, ms.pickup_location_id, ms.name, ms.phone, ms.email, " +
	"ms.meal_description, ms.freezer_friendly, ms.note_to_courier, ms.can_bring_to_salem, " +
	"ms.cancelled_at, ms.created_at, pl.pickup_date, pl.location"

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// CreateSignup assigns the row ID and cancellation token before inserting;
// the token never comes from the caller.
func (r *PostgresRepository) CreateSignup(ctx context.Context, signup *mealsdomain.Signup) error {
	if signup.ID == "" {
		signup.ID = uuid.NewString()
	}
	if signup.CancellationToken == "" {
		signup.CancellationToken = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(signup).Error
}

func (r *PostgresRepository) GetByToken(ctx context.Context, token string) (*mealsdomain.SignupWithPickup, error) {
	var row mealsdomain.SignupWithPickup
	err := r.joined(ctx).
		Where("ms.cancellation_token = ?", token).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, mealsdomain.ErrMealNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *PostgresRepository) MarkCancelled(ctx context.Context, id string, at time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&mealsdomain.Signup{}).
		Where("id = ? AND cancelled_at IS NULL", id).
		Update("cancelled_at", at)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) CountActive(ctx context.Context, pickupLocationID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&mealsdomain.Signup{}).
		Where("pickup_location_id = ? AND cancelled_at IS NULL", pickupLocationID).
		Count(&count).Error
	return count, err
}

func (r *PostgresRepository) ListActiveByPickup(ctx context.Context, pickupLocationID string) ([]mealsdomain.Signup, error) {
	var rows []mealsdomain.Signup
	err := r.db.WithContext(ctx).
		Where("pickup_location_id = ? AND cancelled_at IS NULL", pickupLocationID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *PostgresRepository) ListUpcoming(ctx context.Context, from time.Time) ([]mealsdomain.SignupWithPickup, error) {
	var rows []mealsdomain.SignupWithPickup
	err := r.joined(ctx).
		Where("pl.pickup_date >= ?", from).
		Order("pl.pickup_date ASC, ms.created_at ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *PostgresRepository) List(ctx context.Context, filter mealsdomain.ListFilter) ([]mealsdomain.SignupWithPickup, error) {
	query := r.joined(ctx)

	if filter.Location != "" {
		query = query.Where("pl.location = ?", filter.Location)
	}
	switch filter.Status {
	case mealsdomain.StatusActive:
		query = query.Where("ms.cancelled_at IS NULL")
	case mealsdomain.StatusCancelled:
		query = query.Where("ms.cancelled_at IS NOT NULL")
	}

	var rows []mealsdomain.SignupWithPickup
	err := query.
		Order("pl.pickup_date DESC, ms.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&mealsdomain.Signup{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("meal_signups AS ms").
		Select(joinedColumns).
		Joins("JOIN pickup_locations pl ON pl.id = ms.pickup_location_id")
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ahaavila/e-colect/internal/models/db_models"
)

type PointRepository interface {
	CreatePoint(ctx context.Context, point *db_models.Point, itemIDs []uint) error
	GetPointByID(ctx context.Context, id uint) (*db_models.Point, error)
	GetPointItemTitles(ctx context.Context, pointID uint) ([]string, error)
	ListPoints(ctx context.Context, city, uf string, itemIDs []uint) ([]db_models.Point, error)
}

type pointRepository struct {
	db *gorm.DB
}

func NewPointRepository(db *gorm.DB) PointRepository {
	return &pointRepository{db: db}
}

// CreatePoint inserts the point and its item associations inside one
// transaction. Either both writes land or neither does.
func (r *pointRepository) CreatePoint(ctx context.Context, point *db_models.Point, itemIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(point).Error; err != nil {
			return fmt.Errorf("inserting point: %w", err)
		}

		pointItems := make([]db_models.PointItem, 0, len(itemIDs))
		for _, itemID := range itemIDs {
			pointItems = append(pointItems, db_models.PointItem{
				PointID: point.ID,
				ItemID:  itemID,
			})
		}

		if err := tx.Create(&pointItems).Error; err != nil {
			return fmt.Errorf("inserting point items: %w", err)
		}

		return nil
	})
}

// Read helpers return a zero value with a nil error when no rows match.

func (r *pointRepository) GetPointByID(ctx context.Context, id uint) (*db_models.Point, error) {
	var point db_models.Point
	err := r.db.WithContext(ctx).First(&point, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &point, nil
}

func (r *pointRepository) GetPointItemTitles(ctx context.Context, pointID uint) ([]string, error) {
	var titles []string
	err := r.db.WithContext(ctx).
		Model(&db_models.Item{}).
		Joins("JOIN point_items ON point_items.item_id = items.id").
		Where("point_items.point_id = ?", pointID).
		Pluck("items.title", &titles).Error
	if err != nil {
		return nil, err
	}
	return titles, nil
}

// ListPoints returns every point in the given city/uf accepting at least
// one of the requested items. DISTINCT keeps a point matching several
// items from showing up more than once.
func (r *pointRepository) ListPoints(ctx context.Context, city, uf string, itemIDs []uint) ([]db_models.Point, error) {
	var points []db_models.Point
	err := r.db.WithContext(ctx).
		Distinct("points.*").
		Joins("JOIN point_items ON point_items.point_id = points.id").
		Where("point_items.item_id IN ?", itemIDs).
		Where("points.city = ? AND points.uf = ?", city, uf).
		Find(&points).Error
	if err != nil {
		return nil, err
	}
	return points, nil
}

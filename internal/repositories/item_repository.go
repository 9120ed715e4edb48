package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/ahaavila/e-colect/internal/models/db_models"
)

type ItemRepository interface {
	ListItems(ctx context.Context) ([]db_models.Item, error)
	CreateItem(ctx context.Context, item *db_models.Item) error
	CountByIDs(ctx context.Context, ids []uint) (int64, error)
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) ListItems(ctx context.Context) ([]db_models.Item, error) {
	var items []db_models.Item
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) CreateItem(ctx context.Context, item *db_models.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// CountByIDs reports how many of the given item ids exist. Used to reject
// point creation referencing unknown items before the transaction opens.
func (r *itemRepository) CountByIDs(ctx context.Context, ids []uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Item{}).
		Where("id IN ?", ids).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/JonMunkholm/inventory/internal/models"
	"gorm.io/gorm"
)

// FindItem returns the item with the given SKU, or ErrNotFound.
func (r *Repository) FindItem(ctx context.Context, sku string) (*models.Item, error) {
	var item models.Item
	err := r.db.WithContext(ctx).Where("sku = ?", sku).Take(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find item %q: %w", sku, err)
	}
	return &item, nil
}

// ListItems returns every item in store order.
func (r *Repository) ListItems(ctx context.Context) ([]models.Item, error) {
	items := make([]models.Item, 0)
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// CreateItem inserts item. A SKU collision returns ErrDuplicate.
func (r *Repository) CreateItem(ctx context.Context, item *models.Item) error {
	err := r.db.WithContext(ctx).Create(item).Error
	if isDuplicateKey(err) {
		return fmt.Errorf("create item %q: %w", item.SKU, ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("create item %q: %w", item.SKU, err)
	}
	return nil
}

// UpdateItem overwrites the mutable columns of the item with the given SKU
// (the SKU in changes is ignored) and returns the stored result.
// Nil Color/Size clear the column.
func (r *Repository) UpdateItem(ctx context.Context, sku string, changes models.Item) (*models.Item, error) {
	var updated models.Item

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Item{}).Where("sku = ?", sku).Updates(map[string]any{
			"name":        changes.Name,
			"description": changes.Description,
			"color":       changes.Color,
			"size":        changes.Size,
			"count":       changes.Count,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("sku = ?", sku).Take(&updated).Error
	})
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update item %q: %w", sku, err)
	}

	return &updated, nil
}

// DeleteItem removes the item with the given SKU and returns what was removed.
func (r *Repository) DeleteItem(ctx context.Context, sku string) (*models.Item, error) {
	var deleted models.Item

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sku = ?", sku).Take(&deleted).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return tx.Delete(&deleted).Error
	})
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("delete item %q: %w", sku, err)
	}

	return &deleted, nil
}

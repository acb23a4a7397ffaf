package core

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/JonMunkholm/inventory/internal/database"
	"github.com/JonMunkholm/inventory/internal/models"
)

// Service provides the item operations behind the HTTP API and the CLI.
type Service struct {
	store     Store
	exportDir string
	nullText  string
}

// NewService creates a Service over store. The export directory is created
// if missing.
func NewService(store Store, opts ExportOptions) (*Service, error) {
	dir := opts.Dir
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	return &Service{
		store:     store,
		exportDir: dir,
		nullText:  opts.NullText,
	}, nil
}

// CreateItem validates in, rejects an existing SKU and persists the item.
//
// The existence check and the insert are not atomic. When two creates race,
// the loser hits the store's key constraint and still gets a ConflictError.
func (s *Service) CreateItem(ctx context.Context, in CreateInput) (*models.Item, error) {
	if err := ValidateCreate(in); err != nil {
		return nil, err
	}

	existing, err := s.store.FindItem(ctx, in.SKU)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("check existing item: %w", err)
	}
	if existing != nil {
		return nil, &ConflictError{SKU: in.SKU}
	}

	item := &models.Item{
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		Color:       normalizeOptional(in.Color),
		Size:        normalizeOptional(in.Size),
		Count:       in.Count,
	}

	if err := s.store.CreateItem(ctx, item); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, &ConflictError{SKU: in.SKU}
		}
		return nil, err
	}

	changeLogger(ctx).Info("item created", "sku", item.SKU, "count", item.Count)
	return item, nil
}

// EditItem replaces the mutable fields of the item with the given SKU.
func (s *Service) EditItem(ctx context.Context, sku string, in UpdateInput) (*models.Item, error) {
	if err := ValidateUpdate(in); err != nil {
		return nil, err
	}

	item, err := s.store.UpdateItem(ctx, sku, models.Item{
		Name:        in.Name,
		Description: in.Description,
		Color:       normalizeOptional(in.Color),
		Size:        normalizeOptional(in.Size),
		Count:       in.Count,
	})
	if errors.Is(err, database.ErrNotFound) {
		return nil, &NotFoundError{SKU: sku}
	}
	if err != nil {
		return nil, err
	}

	changeLogger(ctx).Info("item updated", "sku", sku, "count", item.Count)
	return item, nil
}

// DeleteItem removes the item with the given SKU and returns it.
func (s *Service) DeleteItem(ctx context.Context, sku string) (*models.Item, error) {
	item, err := s.store.DeleteItem(ctx, sku)
	if errors.Is(err, database.ErrNotFound) {
		return nil, &NotFoundError{SKU: sku}
	}
	if err != nil {
		return nil, err
	}

	changeLogger(ctx).Info("item deleted", "sku", sku)
	return item, nil
}

// ListItems returns every item in store order. Never nil.
func (s *Service) ListItems(ctx context.Context) ([]models.Item, error) {
	items, err := s.store.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Item{}
	}
	return items, nil
}

// GetItem returns the item with the given SKU, or nil when none exists.
func (s *Service) GetItem(ctx context.Context, sku string) (*models.Item, error) {
	item, err := s.store.FindItem(ctx, sku)
	if errors.Is(err, database.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// normalizeOptional maps nil and "" to nil and copies anything else.
func normalizeOptional(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	s := *v
	return &s
}

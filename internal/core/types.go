package core

import (
	"context"

	"github.com/JonMunkholm/inventory/internal/models"
)

// Store is the persistence contract the Service depends on.
// Satisfied by *database.Repository.
//
// FindItem, UpdateItem and DeleteItem return database.ErrNotFound for an
// unknown SKU; CreateItem returns database.ErrDuplicate on a key collision.
type Store interface {
	FindItem(ctx context.Context, sku string) (*models.Item, error)
	ListItems(ctx context.Context) ([]models.Item, error)
	CreateItem(ctx context.Context, item *models.Item) error
	UpdateItem(ctx context.Context, sku string, changes models.Item) (*models.Item, error)
	DeleteItem(ctx context.Context, sku string) (*models.Item, error)
}

// CreateInput carries the fields of a new item.
type CreateInput struct {
	SKU         string
	Name        string
	Description string
	Color       *string // nil or "" stores no color
	Size        *string // nil or "" stores no size
	Count       int
}

// UpdateInput carries the replacement values for an existing item.
// The SKU is taken from the path and never changes.
type UpdateInput struct {
	Name        string
	Description string
	Color       *string
	Size        *string
	Count       int
}

// ExportOptions controls where export files go and how absent values render.
type ExportOptions struct {
	Dir      string // defaults to os.TempDir()
	NullText string // written for nil color/size
}

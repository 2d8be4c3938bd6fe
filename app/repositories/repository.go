// Package repositories defines the store interfaces handlers depend on
// and their MongoDB implementations. Handlers receive stores by
// injection; nothing in this package is a process-wide global.
package repositories

import (
	"context"
	"errors"

	"github.com/shashiranjanraj/vastra/app/models"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("repositories: not found")

// ErrDuplicateEmail is returned when a user with the email already exists.
var ErrDuplicateEmail = errors.New("repositories: email already exists")

// ProductStore is the catalog persistence surface.
type ProductStore interface {
	// NextID returns one greater than the current maximum catalog id,
	// or 1 for an empty collection.
	NextID(ctx context.Context) (int, error)

	// Create persists a new product document.
	Create(ctx context.Context, p *models.Product) error

	// DeleteByCatalogID removes the first document with that catalog id.
	// Deleting an absent id is not an error.
	DeleteByCatalogID(ctx context.Context, id int) error

	// All returns the full collection in storage order.
	All(ctx context.Context) ([]models.Product, error)

	// Latest returns the last n documents in insertion order.
	Latest(ctx context.Context, n int) ([]models.Product, error)

	// ByCategory returns up to n documents whose category matches.
	ByCategory(ctx context.Context, category string, n int) ([]models.Product, error)
}

// UserStore is the account persistence surface.
type UserStore interface {
	// FindByEmail looks up a user by email. Returns ErrNotFound when absent.
	FindByEmail(ctx context.Context, email string) (models.User, error)

	// FindByID looks up a user by its hex storage id.
	FindByID(ctx context.Context, id string) (models.User, error)

	// Create persists a new user. Returns ErrDuplicateEmail when the
	// email is taken.
	Create(ctx context.Context, u *models.User) error

	// IncrementCartItem atomically adds 1 to cartData[itemID],
	// treating a missing key as zero.
	IncrementCartItem(ctx context.Context, id, itemID string) error

	// DecrementCartItem atomically subtracts 1 from cartData[itemID]
	// only when the current quantity is above zero; otherwise a no-op.
	DecrementCartItem(ctx context.Context, id, itemID string) error
}

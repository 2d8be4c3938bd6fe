package services

import (
	"context"
	"errors"
	"strconv"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/pkg/metrics"
)

var (
	ErrUserNotFound   = errors.New("services: user not found")
	ErrItemOutOfRange = errors.New("services: item id out of range")
)

// CartService mutates per-user carts. Quantity changes go through the
// store's atomic increment operations so concurrent requests for the
// same user never lose updates.
type CartService struct {
	users repositories.UserStore
}

func NewCartService(users repositories.UserStore) *CartService {
	return &CartService{users: users}
}

// Add increments the quantity of one cart slot.
func (s *CartService) Add(ctx context.Context, userID string, itemID int) error {
	key, err := s.slotKey(itemID)
	if err != nil {
		return err
	}
	if err := s.users.IncrementCartItem(ctx, userID, key); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	metrics.CartMutations.WithLabelValues("add").Inc()
	return nil
}

// Remove decrements the quantity of one cart slot, never below zero.
func (s *CartService) Remove(ctx context.Context, userID string, itemID int) error {
	key, err := s.slotKey(itemID)
	if err != nil {
		return err
	}

	// The decrement filter is a silent no-op for a missing user, so
	// existence is checked up front to keep the not-found contract.
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.users.DecrementCartItem(ctx, userID, key); err != nil {
		return err
	}
	metrics.CartMutations.WithLabelValues("remove").Inc()
	return nil
}

// Get returns the user's full cart map.
func (s *CartService) Get(ctx context.Context, userID string) (map[string]int, error) {
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user.CartData, nil
}

func (s *CartService) slotKey(itemID int) (string, error) {
	if itemID < 0 || itemID >= models.CartSlots {
		return "", ErrItemOutOfRange
	}
	return strconv.Itoa(itemID), nil
}

package repositories

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/app/models"
)

// MemoryProductStore is an in-process ProductStore used by tests and
// local experiments. It mirrors the Mongo implementation's semantics,
// including insertion-order listing and idempotent deletes.
type MemoryProductStore struct {
	mu       sync.Mutex
	products []models.Product
}

func NewMemoryProductStore() *MemoryProductStore {
	return &MemoryProductStore{}
}

func (s *MemoryProductStore) NextID(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	max := 0
	for _, p := range s.products {
		if p.CatalogID > max {
			max = p.CatalogID
		}
	}
	return max + 1, nil
}

func (s *MemoryProductStore) Create(ctx context.Context, p *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, *p)
	return nil
}

func (s *MemoryProductStore) DeleteByCatalogID(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.CatalogID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return nil // idempotent
}

func (s *MemoryProductStore) All(ctx context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *MemoryProductStore) Latest(ctx context.Context, n int) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := len(s.products) - n
	if start < 0 {
		start = 0
	}
	out := make([]models.Product, len(s.products)-start)
	copy(out, s.products[start:])
	return out, nil
}

func (s *MemoryProductStore) ByCategory(ctx context.Context, category string, n int) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Product{}
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
			if len(out) == n {
				break
			}
		}
	}
	return out, nil
}

// MemoryUserStore is an in-process UserStore with the same semantics
// as the Mongo implementation, including the decrement floor.
type MemoryUserStore struct {
	mu    sync.Mutex
	users map[string]*models.User // keyed by hex id
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: map[string]*models.User{}}
}

func (s *MemoryUserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *MemoryUserStore) FindByID(ctx context.Context, id string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return cloneUser(u), nil
}

func (s *MemoryUserStore) Create(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return ErrDuplicateEmail
		}
	}

	u.ID = primitive.NewObjectID()
	stored := cloneUser(u)
	s.users[u.ID.Hex()] = &stored
	return nil
}

func (s *MemoryUserStore) IncrementCartItem(ctx context.Context, id, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return ErrNotFound
	}
	u.CartData[itemID]++
	return nil
}

func (s *MemoryUserStore) DecrementCartItem(ctx context.Context, id, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return ErrNotFound
	}
	if u.CartData[itemID] > 0 {
		u.CartData[itemID]--
	}
	return nil
}

func cloneUser(u *models.User) models.User {
	out := *u
	out.CartData = make(map[string]int, len(u.CartData))
	for k, v := range u.CartData {
		out.CartData[k] = v
	}
	return out
}

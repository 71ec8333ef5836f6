package memory

import (
	"context"

	"github.com/avc/storefront-demo/internal/domain"
)

// CreateUser сохраняет нового пользователя
func (s *Store) CreateUser(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; ok {
		return domain.ErrUserExists
	}
	s.users[user.ID] = *user
	return nil
}

// GetUser получает пользователя по ID
func (s *Store) GetUser(_ context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

// UpdateUser перезаписывает существующего пользователя
func (s *Store) UpdateUser(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	s.users[user.ID] = *user
	return nil
}

package goregistration

import (
	"context"
	"sync"
)

type userRepository struct {
	mu    sync.RWMutex
	users map[ID]*User
}

// NewUserRepository returns an in-memory Repository. The email
// uniqueness check happens under the write lock, so it gives the same
// guarantee a unique index does in a real store.
func NewUserRepository() Repository {
	return &userRepository{users: map[ID]*User{}}
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, u := range repo.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

func (repo *userRepository) Store(ctx context.Context, user *User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, u := range repo.users {
		if u.Email == user.Email {
			return ErrExistingEmail
		}
	}

	repo.users[user.ID] = user
	return nil
}

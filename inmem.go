package chatauth

import (
	"context"
	"sync"
)

// userRepository is a map-backed Repository with the same uniqueness
// contract as the mongo implementation. Used by tests.
type userRepository struct {
	mu    sync.RWMutex
	users map[ID]*User
}

func NewUserRepository() Repository {
	return &userRepository{users: map[ID]*User{}}
}

func (repo *userRepository) FindBy(_ context.Context, field Field, value string) (*User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if field == ByID {
		if u, ok := repo.users[ID(value)]; ok {
			c := *u
			return &c, nil
		}
		return nil, ErrNotFound
	}

	for _, u := range repo.users {
		switch field {
		case ByName:
			if u.Name == value {
				c := *u
				return &c, nil
			}
		case ByEmail:
			if u.Email == value {
				c := *u
				return &c, nil
			}
		}
	}
	return nil, ErrNotFound
}

func (repo *userRepository) Store(_ context.Context, u *User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, v := range repo.users {
		if v.Name == u.Name {
			return ErrDuplicateName
		}
		if v.Email == u.Email {
			return ErrDuplicateEmail
		}
	}

	c := *u
	repo.users[u.ID] = &c
	return nil
}

func (repo *userRepository) Update(_ context.Context, u *User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.users[u.ID]; !ok {
		return ErrNotFound
	}
	c := *u
	repo.users[u.ID] = &c
	return nil
}

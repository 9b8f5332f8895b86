package chatauth

import (
	"context"
	"errors"
	"time"

	"github.com/rs/xid"
)

// Field is the closed set of unique keys a repository lookup can run against.
type Field int

const (
	ByName Field = iota
	ByEmail
	ByID
)

func (f Field) String() string {
	switch f {
	case ByName:
		return "name"
	case ByEmail:
		return "email"
	case ByID:
		return "id"
	}
	return "unknown"
}

type ID string

// User is a stored account record. Password holds a bcrypt hash once the
// record is persisted, never a plaintext value.
type User struct {
	ID        ID `bson:"_id"`
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
}

type Repository interface {
	FindBy(ctx context.Context, field Field, value string) (*User, error)
	Store(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
}

var (
	ErrNotFound         = errors.New("user not found")
	ErrDuplicateName    = errors.New("username in use")
	ErrDuplicateEmail   = errors.New("email in use")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrInvalidToken     = errors.New("invalid token")
)

// NewUser returns an unsaved user with an empty password field. The caller
// sets the hash before storing, so no path can persist a plaintext password.
func NewUser(name, email string) *User {
	return &User{
		ID:        nextID(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
}

func nextID() ID {
	return ID(xid.New().String())
}

//IsValidID checks if a given id is valid based on the xid library definition of a valid id
// this method should change if we ever change our uid generation library
func IsValidID(id string) bool {
	if _, err := xid.FromString(id); err != nil {
		return false
	}
	return true
}

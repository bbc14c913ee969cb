package goregistration

import (
	"context"
	"errors"
	"time"

	"github.com/rs/xid"
)

// Repository owns persistence of user accounts. Store is the
// authoritative uniqueness guard for emails: under concurrent signups
// for the same address exactly one Store succeeds and the rest fail
// with ErrExistingEmail, regardless of what FindByEmail reported
// moments earlier.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	Store(ctx context.Context, u *User) error
}

type ID string

// User is a persisted account. Accounts are created inactive and hold
// a single activation token for their entire life; flipping Inactive
// to false is the activation flow's job, not this package's.
type User struct {
	ID              ID        `bson:"_id"`
	Username        string    `bson:"username"`
	Email           string    `bson:"email"`
	PasswordHash    string    `bson:"password"`
	Inactive        bool      `bson:"inactive"`
	ActivationToken string    `bson:"activationToken"`
	CreatedAt       time.Time `bson:"createdAt"`
}

var (
	ErrNotFound          = errors.New("user not found")
	ErrExistingEmail     = errors.New("email in use")
	ErrSendingActivation = errors.New("could not send activation email")
)

func nextID() ID {
	return ID(xid.New().String())
}

// IsValidID checks if a given id is valid based on the xid library
// definition of a valid id. This should change if we ever change our
// id generation library.
func IsValidID(id string) bool {
	if _, err := xid.FromString(id); err == xid.ErrInvalidID {
		return false
	}
	return true
}

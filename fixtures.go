package goregistration

import (
	"context"
	"errors"
)

// Test doubles shared by the package tests.

type mailerSpy struct {
	calls int
	email string
	token string
	err   error
}

func (m *mailerSpy) SendAccountActivation(ctx context.Context, email, token string) error {
	m.calls++
	m.email = email
	m.token = token
	return m.err
}

// racingRepository simulates losing a concurrent insert: the
// pre-flight lookup misses but the store itself reports a duplicate,
// the way a unique index does when another request wins the race.
type racingRepository struct{}

func (racingRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return nil, ErrNotFound
}

func (racingRepository) Store(ctx context.Context, u *User) error {
	return ErrExistingEmail
}

// downRepository fails every call, standing in for an unreachable
// store.
type downRepository struct{}

var errStorageDown = errors.New("storage unavailable")

func (downRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return nil, errStorageDown
}

func (downRepository) Store(ctx context.Context, u *User) error {
	return errStorageDown
}

package users

//go:generate mockgen -source=interfaces.go -destination=../../internal/mock/users_mock.go -package=mock

import (
	"context"
	"errors"
)

// Repository provides the user records served by the API.
type Repository interface {
	// List returns every known user in a stable order.
	List(ctx context.Context) ([]User, error)
	// Create builds a new user record from a validated request.
	Create(ctx context.Context, req CreateUserRequest) (User, error)
}

// Journal receives every user fabricated by a create request. A journal
// failure never fails the request.
type Journal interface {
	Record(ctx context.Context, user User) error
}

// JournalFunc adapts a plain function to the Journal interface.
type JournalFunc func(ctx context.Context, user User) error

func (f JournalFunc) Record(ctx context.Context, user User) error {
	return f(ctx, user)
}

// Journals fans a record out to several journals and joins their errors.
type Journals []Journal

func (js Journals) Record(ctx context.Context, user User) error {
	var errs []error
	for _, j := range js {
		if err := j.Record(ctx, user); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

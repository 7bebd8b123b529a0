package users

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/redhat-appstudio/my-microservice/apis/common"
)

// fixtureUsers is the fixed listing served on every call.
var fixtureUsers = [...]User{
	{ID: 1, Name: "John Doe", Email: "john@example.com"},
	{ID: 2, Name: "Jane Smith", Email: "jane@example.com"},
}

// FixtureRepository serves a constant user list and fabricates created
// users without storing them.
type FixtureRepository struct {
	now    func() time.Time
	lastID atomic.Int64
}

// NewFixtureRepository creates a repository using the wall clock.
func NewFixtureRepository() *FixtureRepository {
	return &FixtureRepository{now: time.Now}
}

// List returns a fresh copy of the fixed users.
func (r *FixtureRepository) List(_ context.Context) ([]User, error) {
	users := make([]User, len(fixtureUsers))
	copy(users, fixtureUsers[:])
	return users, nil
}

// Create returns a new user stamped with the current time. The id is the
// creation time in milliseconds, bumped past the previous id when two
// creations share a millisecond.
func (r *FixtureRepository) Create(_ context.Context, req CreateUserRequest) (User, error) {
	now := r.now().UTC()
	return User{
		ID:        r.nextID(now.UnixMilli()),
		Name:      req.Name,
		Email:     req.Email,
		CreatedAt: now.Format(common.ISOTimeLayout),
	}, nil
}

func (r *FixtureRepository) nextID(millis int64) int64 {
	for {
		last := r.lastID.Load()
		id := millis
		if id <= last {
			id = last + 1
		}
		if r.lastID.CompareAndSwap(last, id) {
			return id
		}
	}
}

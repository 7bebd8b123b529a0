package users

// User is the transient user record returned by the API. CreatedAt is only
// set on records fabricated by a create request.
type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// CreateUserRequest is the body accepted by POST /api/v1/users, either as
// JSON or as a URL-encoded form.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// MessageNameEmailRequired is returned when name or email is missing.
const MessageNameEmailRequired = "Name and email are required"

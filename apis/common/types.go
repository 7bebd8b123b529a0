package common

// ErrorResponse is the body of every error reply. It carries a single
// human-readable message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Fixed client-facing messages.
const (
	MessageRouteNotFound = "Route not found"
	MessageInternal      = "Something went wrong!"
)

// ISOTimeLayout renders UTC timestamps with millisecond precision and a
// trailing Z, e.g. 2024-05-01T10:00:00.000Z.
const ISOTimeLayout = "2006-01-02T15:04:05.000Z07:00"

package handlers

const (
	HeaderRequestID = "X-Request-ID"

	// maxBodyBytes caps JSON request bodies
	maxBodyBytes = 1 << 20

	ErrInvalidJSON         = "Invalid JSON body"
	ErrUnauthorized        = "Unauthorized"
	ErrForbidden           = "Forbidden"
	ErrTooManyRequests     = "Too many requests"
	ErrFetchTimeout        = "Directory is taking too long to respond"
	ErrInternalServerError = "Internal server error"
)

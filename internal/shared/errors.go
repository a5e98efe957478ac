package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Input validation errors
	ErrValidation      = fmt.Errorf("validation failed")
	ErrMissingArgument = fmt.Errorf("missing required argument")

	// Authentication and authorization errors
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrNotAuthenticated   = fmt.Errorf("not authenticated")
	ErrDuplicateUser      = fmt.Errorf("user exists")
	ErrInvalidToken       = fmt.Errorf("invalid token")
	ErrPermissionDenied   = fmt.Errorf("permission denied")

	// Service errors
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrProviderRequest    = fmt.Errorf("provider request failed")
	ErrPlaylistNotFound   = fmt.Errorf("playlist not found")
	ErrTrackNotFound      = fmt.Errorf("track not found")
	ErrUserNotFound       = fmt.Errorf("user not found")

	// Boundary errors
	ErrRateLimited = fmt.Errorf("rate limit exceeded")
)

package ig

import "errors"

var (
	// ErrNotLoggedIn is returned by every endpoint call made before a session is captured.
	ErrNotLoggedIn = errors.New("ig: not logged in")
	// ErrMissingArgument is returned before any request when a required argument is empty.
	ErrMissingArgument = errors.New("ig: missing required argument")
	// ErrLoginFailed is returned when the login response carries no logged_in_user.
	ErrLoginFailed = errors.New("ig: login failed")
	// ErrRequestFailed wraps non-2xx responses.
	ErrRequestFailed = errors.New("ig: request failed")
)

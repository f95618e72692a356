package booking

import "errors"

var (
	// ErrSessionNotFound is returned when a booking session does not
	// exist or has expired.
	ErrSessionNotFound = errors.New("booking session not found or expired")

	// ErrSessionForbidden is returned when a session is accessed by a
	// user other than its owner.
	ErrSessionForbidden = errors.New("booking session belongs to another user")

	// ErrActivityNotFound is returned when the activity of a new session
	// does not exist.
	ErrActivityNotFound = errors.New("activity not found")
)

// genericSubmitFailure is surfaced when the reservation call fails
// without a usable message.
const genericSubmitFailure = "reservation could not be completed, please try again"

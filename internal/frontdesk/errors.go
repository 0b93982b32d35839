package frontdesk

import "errors"

// Local validation failures come from the stay package (stay.ErrInvalidRange,
// stay.ErrInvalidGuestCount) or are ErrMissingField. The remote ones wrap the
// collaborator's error, so client.StatusOf and errors.As still reach it.
var (
	ErrMissingField      = errors.New("required field is missing")
	ErrSearchUnavailable = errors.New("room search is unavailable")
	ErrSubmitConflict    = errors.New("booking was not accepted")
	ErrCancelFailed      = errors.New("booking could not be cancelled")
	ErrInvalidTransition = errors.New("operation not allowed in the current state")
	ErrViewClosed        = errors.New("view is closed")
)

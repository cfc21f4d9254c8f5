package scheduler

import "github.com/prepbuddy/prepbuddy/pkg/errors"

// Classification sentinels for the booking operations. Calendar and
// notification failures are never classified: they are recovered and
// logged at the call site, the persisted interview state wins.
var (
	ErrValidation = errors.Error("invalid request")
	ErrNotFound   = errors.Error("interview not found")
	ErrConflict   = errors.Error("interview state conflict")
	ErrStorage    = errors.Error("storage failure")
)

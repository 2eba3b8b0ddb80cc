package leave

import "errors"

var (
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrLeaveAlreadyProcessed = errors.New("leave request already processed")
	ErrNotRequestOwner       = errors.New("leave request belongs to another employee")
	ErrStoreTimeout          = errors.New("leave store timed out, retry later")
)

package attendance

import "errors"

var ErrSessionNotFound = errors.New("attendance session not found")

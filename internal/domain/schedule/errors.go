package schedule

import "errors"

// Schedule domain errors
var (
	ErrGroupNotFound   = errors.New("schedule group not found")
	ErrGroupNameExists = errors.New("schedule group name already exists")
)

package user

import "errors"

var (
	ErrNotFound  = errors.New("user not found or already deleted")
	ErrResultRef = errors.New("referenced result does not exist or is deleted")
)

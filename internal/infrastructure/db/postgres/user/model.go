package user

import (
	"time"
)

type (
	User struct {
		ID       uint64
		Name     string
		Phone    *string
		Program  *string
		Image    string
		TakeDate *time.Time

		ResultID    *uint64
		ResultTitle *string

		CreatedAt time.Time
		UpdatedAt time.Time

		DeletedAt *time.Time
	}
	Users []*User
)

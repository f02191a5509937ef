package result

import (
	"time"
)

type (
	Result struct {
		ID          uint64
		Title       string
		Description *string

		CreatedAt time.Time
		UpdatedAt time.Time

		DeletedAt *time.Time
	}
	Results []*Result
)

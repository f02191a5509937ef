package result

import (
	"time"
)

type (
	ID     uint64
	Result struct {
		ID          ID
		Title       string
		Description *string

		CreatedAt time.Time
		UpdatedAt time.Time

		DeletedAt *time.Time
	}
	Results []*Result
)

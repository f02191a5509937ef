package result

import (
	"time"
)

type (
	Result struct {
		ID          uint64    `json:"id"`
		Title       string    `json:"title"`
		Description *string   `json:"description"`
		CreatedAt   time.Time `json:"created_at"`
		UpdatedAt   time.Time `json:"updated_at"`
	}
	Results []Result
)

package user

import (
	"time"
)

type (
	User struct {
		ID          uint64     `json:"id"`
		Name        string     `json:"name"`
		Phone       *string    `json:"phone"`
		Program     *string    `json:"program"`
		Image       string     `json:"image"`
		TakeDate    *time.Time `json:"take_date"`
		ResultID    *uint64    `json:"result_id"`
		ResultTitle *string    `json:"result_title"`
		CreatedAt   time.Time  `json:"created_at"`
		UpdatedAt   time.Time  `json:"updated_at"`
		DeletedAt   *time.Time `json:"deleted_at"`
	}
	Users []User
)

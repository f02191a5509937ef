package user

import (
	"context"
	"time"
)

// ListFilter drives the paginated users listing. Page is 1-based,
// Limit is capped by the validator at 100.
type ListFilter struct {
	Page           int
	Limit          int
	IncludeDeleted bool
	Search         string
	FromDate       *time.Time
	ToDate         *time.Time
}

// Patch is a partial update: nil pointer means "leave the column alone".
// Nullable columns carry an explicit Set flag so a client can null them out.
type Patch struct {
	Name  *string
	Image *string

	Phone       *string
	PhoneSet    bool
	Program     *string
	ProgramSet  bool
	TakeDate    *time.Time
	TakeDateSet bool
	ResultID    *uint64
	ResultIDSet bool
}

// Empty reports whether the patch touches no column at all.
func (p Patch) Empty() bool {
	return p.Name == nil && p.Image == nil &&
		!p.PhoneSet && !p.ProgramSet && !p.TakeDateSet && !p.ResultIDSet
}

type Repository interface {
	FetchUserByID(ctx context.Context, id ID) (*User, error)
	FetchUsers(ctx context.Context, f ListFilter) (Users, uint64, error)
	CreateUser(ctx context.Context, req User) (*User, error)
	UpdateUser(ctx context.Context, id ID, p Patch) (*User, error)
	UpdateUserImage(ctx context.Context, id ID, image string) (*User, error)
	DeleteUser(ctx context.Context, id ID) error
}

package result

import (
	"context"
)

// Patch is a partial update: nil pointer means "leave the column alone".
type Patch struct {
	Title          *string
	Description    *string
	DescriptionSet bool
}

func (p Patch) Empty() bool {
	return p.Title == nil && !p.DescriptionSet
}

type Repository interface {
	FetchResultByID(ctx context.Context, id ID) (*Result, error)
	FetchResults(ctx context.Context) (Results, error)
	CreateResult(ctx context.Context, req Result) (*Result, error)
	UpdateResult(ctx context.Context, id ID, p Patch) (*Result, error)
	DeleteResult(ctx context.Context, id ID) error
	// ExistsActive reports whether a result exists and is not soft-deleted.
	// Used to validate users.result_id references.
	ExistsActive(ctx context.Context, id ID) (bool, error)
}

package ports

import (
	"context"

	"exam-registry-api/internal/domain/result"
)

type ResultService interface {
	FindResultByID(ctx context.Context, id result.ID) (*result.Result, error)
	FindResults(ctx context.Context) (result.Results, error)
	CreateResult(ctx context.Context, r result.Result) (*result.Result, error)
	UpdateResult(ctx context.Context, id result.ID, p result.Patch) (*result.Result, error)
	DeleteResult(ctx context.Context, id result.ID) error
}

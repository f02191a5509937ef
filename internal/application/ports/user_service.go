package ports

import (
	"context"

	"exam-registry-api/internal/domain/user"
)

type UserService interface {
	FindUserByID(ctx context.Context, id user.ID) (*user.User, error)
	FindUsers(ctx context.Context, f user.ListFilter) (user.Users, uint64, error)
	CreateUser(ctx context.Context, u user.User) (*user.User, error)
	UpdateUser(ctx context.Context, id user.ID, p user.Patch) (*user.User, error)
	DeleteUser(ctx context.Context, id user.ID) error
}

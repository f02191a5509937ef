package ports

import (
	"context"
	"mime/multipart"

	"exam-registry-api/internal/domain/user"
)

type PhotoService interface {
	UploadPhoto(ctx context.Context, id user.ID, in *multipart.FileHeader) (*user.User, error)
}

package services

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"exam-registry-api/internal/application/ports"
	resultDomain "exam-registry-api/internal/domain/result"
	domain "exam-registry-api/internal/domain/user"
	userDB "exam-registry-api/internal/infrastructure/db/postgres/user"
	"exam-registry-api/internal/infrastructure/mq"
	"exam-registry-api/internal/interface/api/rest/dto/user"
)

type UserService struct {
	userRepository   domain.Repository
	resultRepository resultDomain.Repository
	mq               ports.RabbitMQ
	mCounter         *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	resultRepository resultDomain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository:   userRepository,
		resultRepository: resultRepository,
		mq:               mq,
		mCounter:         mCounter,
	}
}

func (us *UserService) FindUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) FindUsers(ctx context.Context, f domain.ListFilter) (domain.Users, uint64, error) {
	users, total, err := us.userRepository.FetchUsers(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// checkResultRef enforces the weak-reference rule: a supplied result_id
// must point at a result that exists and is not soft-deleted.
func (us *UserService) checkResultRef(ctx context.Context, id *uint64) error {
	if id == nil {
		return nil
	}

	ok, err := us.resultRepository.ExistsActive(ctx, resultDomain.ID(*id))
	if err != nil {
		return err
	}
	if !ok {
		return userDB.ErrResultRef
	}

	return nil
}

func (us *UserService) CreateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	if err := us.checkResultRef(ctx, u.ResultID); err != nil {
		return nil, err
	}

	uRet, err := us.userRepository.CreateUser(ctx, u)
	if err != nil {
		return nil, err
	}

	if uRet != nil {
		us.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Method:  http.MethodPost,
			UserID:  uint64(uRet.ID),
			Payload: user.ToResponseUser(*uRet),
		}
	}

	us.mCounter.WithLabelValues("user_created_total").Inc()

	return uRet, nil
}

func (us *UserService) UpdateUser(ctx context.Context, id domain.ID, p domain.Patch) (*domain.User, error) {
	if p.ResultIDSet {
		if err := us.checkResultRef(ctx, p.ResultID); err != nil {
			return nil, err
		}
	}

	uRet, err := us.userRepository.UpdateUser(ctx, id, p)
	if err != nil {
		return nil, err
	}

	if uRet != nil {
		us.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Method:  http.MethodPut,
			UserID:  uint64(uRet.ID),
			Payload: user.ToResponseUser(*uRet),
		}
	}

	us.mCounter.WithLabelValues("user_updated_total").Inc()

	return uRet, nil
}

func (us *UserService) DeleteUser(ctx context.Context, id domain.ID) error {
	if err := us.userRepository.DeleteUser(ctx, id); err != nil {
		return err
	}

	us.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Method:  http.MethodDelete,
		UserID:  uint64(id),
		Payload: user.User{ID: uint64(id)},
	}

	us.mCounter.WithLabelValues("user_deleted_total").Inc()

	return nil
}

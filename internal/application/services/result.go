package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"exam-registry-api/internal/application/ports"
	domain "exam-registry-api/internal/domain/result"
)

type ResultService struct {
	resultRepository domain.Repository
	mCounter         *prometheus.CounterVec
}

func NewResultService(
	resultRepository domain.Repository,
	mCounter *prometheus.CounterVec,
) ports.ResultService {
	return &ResultService{
		resultRepository: resultRepository,
		mCounter:         mCounter,
	}
}

func (rs *ResultService) FindResultByID(ctx context.Context, id domain.ID) (*domain.Result, error) {
	r, err := rs.resultRepository.FetchResultByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return r, nil
}

func (rs *ResultService) FindResults(ctx context.Context) (domain.Results, error) {
	results, err := rs.resultRepository.FetchResults(ctx)
	if err != nil {
		return nil, err
	}

	return results, nil
}

func (rs *ResultService) CreateResult(ctx context.Context, r domain.Result) (*domain.Result, error) {
	rRet, err := rs.resultRepository.CreateResult(ctx, r)
	if err != nil {
		return nil, err
	}

	rs.mCounter.WithLabelValues("result_created_total").Inc()

	return rRet, nil
}

func (rs *ResultService) UpdateResult(ctx context.Context, id domain.ID, p domain.Patch) (*domain.Result, error) {
	rRet, err := rs.resultRepository.UpdateResult(ctx, id, p)
	if err != nil {
		return nil, err
	}

	rs.mCounter.WithLabelValues("result_updated_total").Inc()

	return rRet, nil
}

func (rs *ResultService) DeleteResult(ctx context.Context, id domain.ID) error {
	if err := rs.resultRepository.DeleteResult(ctx, id); err != nil {
		return err
	}

	rs.mCounter.WithLabelValues("result_deleted_total").Inc()

	return nil
}

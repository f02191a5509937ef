package result

import (
	domain "exam-registry-api/internal/domain/result"
)

func fromDBModel(model *Result) *domain.Result {
	var res = &domain.Result{
		ID:          domain.ID(model.ID),
		Title:       model.Title,
		Description: model.Description,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,

		DeletedAt: model.DeletedAt,
	}

	return res
}

func fromDBModels(models *Results) domain.Results {
	rs := make(domain.Results, len(*models))
	for idx, res := range *models {
		rs[idx] = fromDBModel(res)
	}

	return rs
}

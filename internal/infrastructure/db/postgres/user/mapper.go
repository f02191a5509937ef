package user

import (
	domain "exam-registry-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		ID:       domain.ID(model.ID),
		Name:     model.Name,
		Phone:    model.Phone,
		Program:  model.Program,
		Image:    model.Image,
		TakeDate: model.TakeDate,

		ResultID:    model.ResultID,
		ResultTitle: model.ResultTitle,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,

		DeletedAt: model.DeletedAt,
	}

	return u
}

func fromDBModels(models *Users) domain.Users {
	us := make(domain.Users, len(*models))
	for idx, u := range *models {
		us[idx] = fromDBModel(u)
	}

	return us
}

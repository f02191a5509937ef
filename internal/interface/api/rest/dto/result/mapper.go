package result

import (
	"exam-registry-api/internal/domain/result"
)

func ToResponseResult(rDomain result.Result) Result {
	var r = Result{
		ID:          uint64(rDomain.ID),
		Title:       rDomain.Title,
		Description: rDomain.Description,
		CreatedAt:   rDomain.CreatedAt,
		UpdatedAt:   rDomain.UpdatedAt,
	}

	return r
}

func ToResponseResults(rsDomain result.Results) Results {
	rs := make(Results, len(rsDomain))
	for idx, r := range rsDomain {
		rs[idx] = ToResponseResult(*r)
	}

	return rs
}

func ToDomainResult(req CreateRequest) result.Result {
	return result.Result{
		Title:       req.Title,
		Description: req.Description,
	}
}

func ToDomainPatch(req UpdateRequest) result.Patch {
	return result.Patch{
		Title:          req.Title,
		Description:    req.Description,
		DescriptionSet: req.DescriptionSet,
	}
}

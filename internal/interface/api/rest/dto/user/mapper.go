package user

import (
	"errors"
	"time"

	"exam-registry-api/internal/domain/user"
)

// Accepted take_date layouts, tried in order.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

var ErrBadTimestamp = errors.New("invalid timestamp, want RFC3339 or YYYY-MM-DD[ HH:MM:SS]")

func ParseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrBadTimestamp
}

func ToResponseUser(uDomain user.User) User {
	var u = User{
		ID:          uint64(uDomain.ID),
		Name:        uDomain.Name,
		Phone:       uDomain.Phone,
		Program:     uDomain.Program,
		Image:       uDomain.Image,
		TakeDate:    uDomain.TakeDate,
		ResultID:    uDomain.ResultID,
		ResultTitle: uDomain.ResultTitle,
		CreatedAt:   uDomain.CreatedAt,
		UpdatedAt:   uDomain.UpdatedAt,
		DeletedAt:   uDomain.DeletedAt,
	}

	return u
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

func ToDomainUser(req CreateRequest) (user.User, error) {
	u := user.User{
		Name:     req.Name,
		Phone:    req.Phone,
		Program:  req.Program,
		Image:    req.Image,
		ResultID: req.ResultID,
	}

	if req.TakeDate != nil {
		t, err := ParseTime(*req.TakeDate)
		if err != nil {
			return user.User{}, err
		}
		u.TakeDate = &t
	}

	return u, nil
}

func ToDomainPatch(req UpdateRequest) (user.Patch, error) {
	p := user.Patch{
		Name:  req.Name,
		Image: req.Image,

		Phone:       req.Phone,
		PhoneSet:    req.PhoneSet,
		Program:     req.Program,
		ProgramSet:  req.ProgramSet,
		TakeDateSet: req.TakeDateSet,
		ResultID:    req.ResultID,
		ResultIDSet: req.ResultIDSet,
	}

	if req.TakeDateSet && req.TakeDate != nil {
		t, err := ParseTime(*req.TakeDate)
		if err != nil {
			return user.Patch{}, err
		}
		p.TakeDate = &t
	}

	return p, nil
}

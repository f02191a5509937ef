package validator

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"exam-registry-api/internal/domain/user"
	"exam-registry-api/internal/interface/api/rest/dto/auth"
	resultDTO "exam-registry-api/internal/interface/api/rest/dto/result"
	userDTO "exam-registry-api/internal/interface/api/rest/dto/user"
)

const (
	defaultLimit = 10
	maxLimit     = 100

	maxNameLen  = 128
	maxTitleLen = 255
)

// Message flattens field errors into one deterministic human-readable line.
func Message(errs map[string]string) string {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+errs[k])
	}

	return strings.Join(parts, "; ")
}

// ParseID parses a positive integer path id.
func ParseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("id must be a positive integer")
	}
	return id, nil
}

// ListQuery holds the raw query-string values of the users listing.
type ListQuery struct {
	Page           string
	Limit          string
	IncludeDeleted string
	Search         string
	FromDate       string
	ToDate         string
}

// ValidateListQuery normalizes the listing parameters: page defaults to 1,
// limit to 10 and is capped to [1,100], dates accept the same layouts as
// take_date.
func ValidateListQuery(q ListQuery) (user.ListFilter, map[string]string) {
	errs := make(map[string]string)
	f := user.ListFilter{
		Page:   1,
		Limit:  defaultLimit,
		Search: strings.TrimSpace(q.Search),
	}

	if q.Page != "" {
		p, err := strconv.Atoi(q.Page)
		if err != nil || p < 1 {
			errs["page"] = "page must be an integer >= 1"
		} else {
			f.Page = p
		}
	}
	if q.Limit != "" {
		l, err := strconv.Atoi(q.Limit)
		if err != nil || l < 1 || l > maxLimit {
			errs["limit"] = "limit must be an integer in [1,100]"
		} else {
			f.Limit = l
		}
	}
	if q.IncludeDeleted != "" {
		b, err := strconv.ParseBool(q.IncludeDeleted)
		if err != nil {
			errs["include_deleted"] = "include_deleted must be a boolean"
		} else {
			f.IncludeDeleted = b
		}
	}
	if q.FromDate != "" {
		t, err := userDTO.ParseTime(q.FromDate)
		if err != nil {
			errs["from_date"] = err.Error()
		} else {
			f.FromDate = &t
		}
	}
	if q.ToDate != "" {
		t, err := userDTO.ParseTime(q.ToDate)
		if err != nil {
			errs["to_date"] = err.Error()
		} else {
			f.ToDate = &t
		}
	}

	if len(errs) == 0 {
		return f, nil
	}

	return f, errs
}

func ValidateCreateUser(r userDTO.CreateRequest) map[string]string {
	errs := make(map[string]string)

	name := strings.TrimSpace(r.Name)
	image := strings.TrimSpace(r.Image)

	if name == "" {
		errs["name"] = "name is required"
	} else if utf8.RuneCountInString(name) > maxNameLen {
		errs["name"] = "name must be at most 128 characters"
	}

	if image == "" {
		errs["image"] = "image is required"
	}

	if r.TakeDate != nil {
		if _, err := userDTO.ParseTime(*r.TakeDate); err != nil {
			errs["take_date"] = err.Error()
		}
	}

	if r.ResultID != nil && *r.ResultID == 0 {
		errs["result_id"] = "result_id must be a positive integer"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateUpdateUser(r userDTO.UpdateRequest) map[string]string {
	errs := make(map[string]string)

	if r.Empty() {
		errs["body"] = "at least one field must be provided"
		return errs
	}

	if r.Name != nil {
		if name := strings.TrimSpace(*r.Name); name == "" {
			errs["name"] = "name cannot be empty"
		} else if utf8.RuneCountInString(name) > maxNameLen {
			errs["name"] = "name must be at most 128 characters"
		}
	}
	if r.Image != nil && strings.TrimSpace(*r.Image) == "" {
		errs["image"] = "image cannot be empty"
	}
	if r.TakeDateSet && r.TakeDate != nil {
		if _, err := userDTO.ParseTime(*r.TakeDate); err != nil {
			errs["take_date"] = err.Error()
		}
	}
	if r.ResultIDSet && r.ResultID != nil && *r.ResultID == 0 {
		errs["result_id"] = "result_id must be a positive integer"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateCreateResult(r resultDTO.CreateRequest) map[string]string {
	errs := make(map[string]string)

	title := strings.TrimSpace(r.Title)
	if title == "" {
		errs["title"] = "title is required"
	} else if utf8.RuneCountInString(title) > maxTitleLen {
		errs["title"] = "title must be at most 255 characters"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateUpdateResult(r resultDTO.UpdateRequest) map[string]string {
	errs := make(map[string]string)

	if r.Empty() {
		errs["body"] = "at least one field must be provided"
		return errs
	}

	if r.Title != nil {
		if title := strings.TrimSpace(*r.Title); title == "" {
			errs["title"] = "title cannot be empty"
		} else if utf8.RuneCountInString(title) > maxTitleLen {
			errs["title"] = "title must be at most 255 characters"
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Password) == "" {
		errs["password"] = "password is required"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

package user

import (
	"encoding/json"
)

type CreateRequest struct {
	Name     string  `json:"name"`
	Phone    *string `json:"phone"`
	Program  *string `json:"program"`
	Image    string  `json:"image"`
	TakeDate *string `json:"take_date"`
	ResultID *uint64 `json:"result_id"`
}

// UpdateRequest distinguishes "field absent" from "field set to null":
// a nil pointer with its Set flag raised means the client asked to null
// the column out.
type UpdateRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Program  *string `json:"program"`
	Image    *string `json:"image"`
	TakeDate *string `json:"take_date"`
	ResultID *uint64 `json:"result_id"`

	PhoneSet    bool `json:"-"`
	ProgramSet  bool `json:"-"`
	TakeDateSet bool `json:"-"`
	ResultIDSet bool `json:"-"`
}

func (r *UpdateRequest) UnmarshalJSON(b []byte) error {
	type alias UpdateRequest
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}

	var present map[string]json.RawMessage
	if err := json.Unmarshal(b, &present); err != nil {
		return err
	}

	*r = UpdateRequest(a)
	_, r.PhoneSet = present["phone"]
	_, r.ProgramSet = present["program"]
	_, r.TakeDateSet = present["take_date"]
	_, r.ResultIDSet = present["result_id"]

	return nil
}

// Empty reports whether the request names no field at all.
func (r UpdateRequest) Empty() bool {
	return r.Name == nil && r.Image == nil &&
		!r.PhoneSet && !r.ProgramSet && !r.TakeDateSet && !r.ResultIDSet
}

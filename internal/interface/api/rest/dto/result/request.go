package result

import (
	"encoding/json"
)

type CreateRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// UpdateRequest distinguishes "description absent" from "description: null".
type UpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`

	DescriptionSet bool `json:"-"`
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
	_, r.DescriptionSet = present["description"]

	return nil
}

func (r UpdateRequest) Empty() bool {
	return r.Title == nil && !r.DescriptionSet
}

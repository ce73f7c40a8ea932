package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type SelectGroupRequest struct {
	GroupID string `json:"group_id"`
}

func (req *SelectGroupRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.GroupID, validation.Required),
	)
}

type SetViewRequest struct {
	View string `json:"view"`
}

func (req *SetViewRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.View, validation.Required, validation.In("learner", "content")),
	)
}

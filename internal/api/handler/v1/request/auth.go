package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type LoginRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ID, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
}

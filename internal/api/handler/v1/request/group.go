package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/querylab/groupboard/internal/domain"
)

type CreateGroupRequest struct {
	Name       string   `json:"name"`
	Members    []string `json:"members"`
	Character  string   `json:"character"`
	Expression string   `json:"expression"`
}

func (req *CreateGroupRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Character, validation.Required, validation.In(
			string(domain.CharacterAthleticWoman),
			string(domain.CharacterAthleticMen),
			string(domain.CharacterScholar),
			string(domain.CharacterTrainer),
			string(domain.CharacterStudent),
			string(domain.CharacterMentor),
		)),
		validation.Field(&req.Expression, validation.In(
			string(domain.ExpressionHappy),
			string(domain.ExpressionSleeping),
			string(domain.ExpressionFocused),
			string(domain.ExpressionExcited),
			string(domain.ExpressionThinking),
			string(domain.ExpressionBreathing),
		)),
	)
}

type RenameGroupRequest struct {
	Name string `json:"name"`
}

func (req *RenameGroupRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required),
	)
}

type AddMemberRequest struct {
	Name string `json:"name"`
}

func (req *AddMemberRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required),
	)
}

// AdjustPointsRequest carries a point change. Points must be a positive
// amount; the direction comes from Type.
type AdjustPointsRequest struct {
	Points int    `json:"points"`
	Reason string `json:"reason"`
	Type   string `json:"type"`
}

func (req *AdjustPointsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Points, validation.Required, validation.Min(1)),
		validation.Field(&req.Reason, validation.Required),
		validation.Field(&req.Type, validation.Required, validation.In(
			string(domain.TransactionAdd),
			string(domain.TransactionDeduct),
		)),
	)
}

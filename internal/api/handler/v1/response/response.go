package response

import (
	"github.com/querylab/groupboard/internal/domain"
	"github.com/querylab/groupboard/internal/service"
)

type LoginResponse struct {
	Token string             `json:"token"`
	User  domain.User        `json:"user"`
	Shell service.ShellState `json:"shell"`
}

// AvatarResponse is what the 3D rendering surface is fed: a model asset
// path plus the small animation-state signal.
type AvatarResponse struct {
	GroupID    string                 `json:"group_id"`
	ModelPath  string                 `json:"model_path,omitempty"`
	Expression domain.Expression      `json:"expression"`
	Sleeping   bool                   `json:"sleeping"`
	Appearance domain.Appearance      `json:"appearance"`
	Style      domain.ExpressionStyle `json:"style"`
}

type AdjustPointsResponse struct {
	Group       domain.Group       `json:"group"`
	Transaction domain.Transaction `json:"transaction"`
}

package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/querylab/groupboard/internal/domain"
)

type SessionService interface {
	GetSessions(ctx context.Context) []domain.Session
}

type SessionHandler struct {
	svc SessionService
}

func NewSessionHandler(svc SessionService) *SessionHandler {
	return &SessionHandler{
		svc: svc,
	}
}

// HandleGetSessions godoc
// @Summary      List the course curriculum
// @Description  Completion is computed from each session's date at request time.
// @Tags         sessions
// @Produce      json
// @Success      200  {array}  domain.Session
// @Router       /sessions [get]
func (h *SessionHandler) HandleGetSessions(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.GetSessions(ctx.Request.Context()))
}

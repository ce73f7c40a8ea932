package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/querylab/groupboard/internal/api/handler/v1/request"
	"github.com/querylab/groupboard/internal/api/handler/v1/response"
	"github.com/querylab/groupboard/internal/domain"
	"github.com/querylab/groupboard/internal/service"
)

type ShellService interface {
	State() service.ShellState
	SelectGroup(ctx context.Context, id string) (service.ShellState, error)
	Back() (service.ShellState, error)
	SetView(view service.View) (service.ShellState, error)
	SetUser(user domain.User) service.ShellState
	Logout() service.ShellState
}

// ShellHandler drives the shared classroom display's view state machine.
type ShellHandler struct {
	svc ShellService
}

func NewShellHandler(svc ShellService) *ShellHandler {
	return &ShellHandler{
		svc: svc,
	}
}

// HandleGetShell godoc
// @Summary      Get the current display state
// @Tags         shell
// @Produce      json
// @Success      200  {object}  service.ShellState
// @Router       /shell [get]
func (h *ShellHandler) HandleGetShell(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.State())
}

// HandleSelectGroup godoc
// @Summary      Open a group's detail view
// @Tags         shell
// @Accept       json
// @Produce      json
// @Param        request  body       request.SelectGroupRequest true "request body"
// @Success      200      {object}   service.ShellState
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Router       /shell/select-group [post]
func (h *ShellHandler) HandleSelectGroup(ctx *gin.Context) {
	var req request.SelectGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	state, err := h.svc.SelectGroup(ctx.Request.Context(), req.GroupID)
	if err != nil {
		h.renderShellErr(ctx, err, "HandleSelectGroup", req.GroupID)

		return
	}

	ctx.JSON(http.StatusOK, state)
}

// HandleBack godoc
// @Summary      Leave the group detail view
// @Tags         shell
// @Produce      json
// @Success      200  {object}  service.ShellState
// @Failure      409  {object}  response.Err
// @Router       /shell/back [post]
func (h *ShellHandler) HandleBack(ctx *gin.Context) {
	state, err := h.svc.Back()
	if err != nil {
		h.renderShellErr(ctx, err, "HandleBack", "")

		return
	}

	ctx.JSON(http.StatusOK, state)
}

// HandleSetView godoc
// @Summary      Switch between leaderboard and course content
// @Description  Rejected while a group detail view is open.
// @Tags         shell
// @Accept       json
// @Produce      json
// @Param        request  body       request.SetViewRequest true "request body"
// @Success      200      {object}   service.ShellState
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Router       /shell/view [post]
func (h *ShellHandler) HandleSetView(ctx *gin.Context) {
	var req request.SetViewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	state, err := h.svc.SetView(service.View(req.View))
	if err != nil {
		h.renderShellErr(ctx, err, "HandleSetView", req.View)

		return
	}

	ctx.JSON(http.StatusOK, state)
}

func (h *ShellHandler) renderShellErr(ctx *gin.Context, err error, op, subject string) {
	switch {
	case errors.Is(err, service.ErrInvalidTransition):
		response.RenderErr(ctx, response.ErrConflict(err))
	case errors.Is(err, service.ErrGroupNotFound):
		response.RenderErr(ctx, response.ErrNotFound("group", "ID", subject))
	default:
		err = fmt.Errorf("v1.%v -> %w", op, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

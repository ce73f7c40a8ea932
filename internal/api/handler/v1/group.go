package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/querylab/groupboard/internal/api/handler/v1/request"
	"github.com/querylab/groupboard/internal/api/handler/v1/response"
	"github.com/querylab/groupboard/internal/domain"
	"github.com/querylab/groupboard/internal/service"
)

// Asset path for the group whose avatar is the locally hosted 3D mascot.
// Every other group renders the CSS character from the appearance table.
const (
	mascotGroupID   = "1"
	mascotModelPath = "/models/pikachu/pikachu.gltf"
)

type GroupService interface {
	GetGroups(ctx context.Context) []domain.Group
	GetGroup(ctx context.Context, id string) (domain.Group, error)
	RenameGroup(ctx context.Context, id, name string) (domain.Group, error)
	AddMember(ctx context.Context, id, name string) (domain.Group, error)
	RemoveMember(ctx context.Context, id string, position int) (domain.Group, error)
	AdjustPoints(ctx context.Context, id string, points int, reason string, typ domain.TransactionType) (domain.Group, domain.Transaction, error)
	CreateGroup(ctx context.Context, name string, members []string, character domain.Character) (domain.Group, error)
	DeleteGroup(ctx context.Context, id string) error
}

type NightClock interface {
	Sleeping() bool
}

type GroupHandler struct {
	svc   GroupService
	night NightClock
}

func NewGroupHandler(svc GroupService, night NightClock) *GroupHandler {
	return &GroupHandler{
		svc:   svc,
		night: night,
	}
}

// HandleGetGroups godoc
// @Summary      List groups in leaderboard order
// @Tags         groups
// @Produce      json
// @Success      200  {array}   domain.Group
// @Router       /groups [get]
func (h *GroupHandler) HandleGetGroups(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.GetGroups(ctx.Request.Context()))
}

// HandleGetGroup godoc
// @Summary      Get one group with roster and transaction history
// @Tags         groups
// @Produce      json
// @Param        groupID  path       string true "group ID"
// @Success      200      {object}   domain.Group
// @Failure      404      {object}   response.Err
// @Router       /groups/{groupID} [get]
func (h *GroupHandler) HandleGetGroup(ctx *gin.Context) {
	id := ctx.Param("groupID")

	group, err := h.svc.GetGroup(ctx.Request.Context(), id)
	if err != nil {
		h.renderGroupErr(ctx, id, err, "HandleGetGroup")

		return
	}

	ctx.JSON(http.StatusOK, group)
}

// HandleGetAvatar godoc
// @Summary      Get the render signal for a group's avatar
// @Description  Model path plus the animation state (expression, sleeping) the 3D surface consumes.
// @Tags         groups
// @Produce      json
// @Param        groupID  path       string true "group ID"
// @Success      200      {object}   response.AvatarResponse
// @Failure      404      {object}   response.Err
// @Router       /groups/{groupID}/avatar [get]
func (h *GroupHandler) HandleGetAvatar(ctx *gin.Context) {
	id := ctx.Param("groupID")

	group, err := h.svc.GetGroup(ctx.Request.Context(), id)
	if err != nil {
		h.renderGroupErr(ctx, id, err, "HandleGetAvatar")

		return
	}

	sleeping := h.night.Sleeping()
	expression := group.Character.EffectiveExpression(sleeping)

	resp := response.AvatarResponse{
		GroupID:    group.ID,
		Expression: expression,
		Sleeping:   sleeping,
		Appearance: domain.AppearanceFor(group.Character.Type),
		Style:      domain.StyleFor(expression),
	}
	if group.ID == mascotGroupID {
		resp.ModelPath = mascotModelPath
	}

	ctx.JSON(http.StatusOK, resp)
}

// HandleCreateGroup godoc
// @Summary      Create a new group
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        request  body       request.CreateGroupRequest true "request body"
// @Success      201      {object}   domain.Group
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /groups [post]
// @Security     BearerAuth
func (h *GroupHandler) HandleCreateGroup(ctx *gin.Context) {
	var req request.CreateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	character := domain.Character{
		Type:       domain.CharacterType(req.Character),
		Expression: domain.Expression(req.Expression),
	}
	if character.Expression == "" {
		character.Expression = domain.ExpressionHappy
	}

	group, err := h.svc.CreateGroup(ctx.Request.Context(), req.Name, req.Members, character)
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateGroup -> h.svc.CreateGroup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, group)
}

// HandleDeleteGroup godoc
// @Summary      Delete a group
// @Tags         groups
// @Produce      json
// @Param        groupID  path       string true "group ID"
// @Success      204      "no content"
// @Failure      404      {object}   response.Err
// @Router       /groups/{groupID} [delete]
// @Security     BearerAuth
func (h *GroupHandler) HandleDeleteGroup(ctx *gin.Context) {
	id := ctx.Param("groupID")

	if err := h.svc.DeleteGroup(ctx.Request.Context(), id); err != nil {
		h.renderGroupErr(ctx, id, err, "HandleDeleteGroup")

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleRenameGroup godoc
// @Summary      Rename a group
// @Description  Renaming to the current name (after trimming) is a no-op and still returns 200.
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        groupID  path       string true "group ID"
// @Param        request  body       request.RenameGroupRequest true "request body"
// @Success      200      {object}   domain.Group
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /groups/{groupID}/name [patch]
// @Security     BearerAuth
func (h *GroupHandler) HandleRenameGroup(ctx *gin.Context) {
	id := ctx.Param("groupID")

	var req request.RenameGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	group, err := h.svc.RenameGroup(ctx.Request.Context(), id, req.Name)
	if err != nil {
		h.renderGroupErr(ctx, id, err, "HandleRenameGroup")

		return
	}

	ctx.JSON(http.StatusOK, group)
}

// HandleAddMember godoc
// @Summary      Add a member to a group
// @Description  Duplicate names are rejected silently; the roster is returned unchanged.
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        groupID  path       string true "group ID"
// @Param        request  body       request.AddMemberRequest true "request body"
// @Success      200      {object}   domain.Group
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /groups/{groupID}/members [post]
// @Security     BearerAuth
func (h *GroupHandler) HandleAddMember(ctx *gin.Context) {
	id := ctx.Param("groupID")

	var req request.AddMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	group, err := h.svc.AddMember(ctx.Request.Context(), id, req.Name)
	if err != nil {
		h.renderGroupErr(ctx, id, err, "HandleAddMember")

		return
	}

	ctx.JSON(http.StatusOK, group)
}

// HandleRemoveMember godoc
// @Summary      Remove the member at a roster position
// @Tags         groups
// @Produce      json
// @Param        groupID   path       string true "group ID"
// @Param        position  path       int    true "zero-based roster position"
// @Success      200       {object}   domain.Group
// @Failure      400       {object}   response.Err
// @Failure      404       {object}   response.Err
// @Router       /groups/{groupID}/members/{position} [delete]
// @Security     BearerAuth
func (h *GroupHandler) HandleRemoveMember(ctx *gin.Context) {
	id := ctx.Param("groupID")

	position, err := strconv.Atoi(ctx.Param("position"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid member position: %w", err)))

		return
	}

	group, err := h.svc.RemoveMember(ctx.Request.Context(), id, position)
	if err != nil {
		h.renderGroupErr(ctx, id, err, "HandleRemoveMember")

		return
	}

	ctx.JSON(http.StatusOK, group)
}

// HandleAdjustPoints godoc
// @Summary      Add or deduct points with an audit transaction
// @Description  The balance is clamped at zero; the transaction is prepended to the group's history.
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        groupID  path       string true "group ID"
// @Param        request  body       request.AdjustPointsRequest true "request body"
// @Success      200      {object}   response.AdjustPointsResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /groups/{groupID}/points [post]
// @Security     BearerAuth
func (h *GroupHandler) HandleAdjustPoints(ctx *gin.Context) {
	id := ctx.Param("groupID")

	var req request.AdjustPointsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	group, tx, err := h.svc.AdjustPoints(ctx.Request.Context(), id, req.Points, req.Reason, domain.TransactionType(req.Type))
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			response.RenderErr(ctx, response.ErrBadRequest(validationErr))

			return
		}

		h.renderGroupErr(ctx, id, err, "HandleAdjustPoints")

		return
	}

	ctx.JSON(http.StatusOK, response.AdjustPointsResponse{
		Group:       group,
		Transaction: tx,
	})
}

func (h *GroupHandler) renderGroupErr(ctx *gin.Context, id string, err error, op string) {
	if errors.Is(err, service.ErrGroupNotFound) {
		response.RenderErr(ctx, response.ErrNotFound("group", "ID", id))

		return
	}

	err = fmt.Errorf("v1.%v -> %w", op, err)
	response.RenderErr(ctx, response.ErrInternalServerError(err))
}

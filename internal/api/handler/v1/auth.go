package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/querylab/groupboard/internal/api/handler/v1/request"
	"github.com/querylab/groupboard/internal/api/handler/v1/response"
	"github.com/querylab/groupboard/internal/config"
	"github.com/querylab/groupboard/internal/domain"
	"github.com/querylab/groupboard/internal/pkg/jwthelper"
	"github.com/querylab/groupboard/internal/service"
)

type AuthService interface {
	Login(id, password string) (domain.User, error)
}

type AuthHandler struct {
	conf  *config.APIConfig
	svc   AuthService
	shell ShellService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService, shell ShellService) *AuthHandler {
	return &AuthHandler{
		conf:  conf,
		svc:   svc,
		shell: shell,
	}
}

// HandleLogin godoc
// @Summary      Sign in as the classroom admin
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.Login(req.ID, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrWrongCredentials) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), user.AdminID, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	shell := h.shell.SetUser(user)

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token: token,
		User:  user,
		Shell: shell,
	})
}

// HandleLogout godoc
// @Summary      Drop the admin session and reset the display
// @Tags         auth
// @Produce      json
// @Success      200  {object}  service.ShellState
// @Router       /auth/logout [post]
func (h *AuthHandler) HandleLogout(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.shell.Logout())
}

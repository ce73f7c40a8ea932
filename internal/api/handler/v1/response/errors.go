package response

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the JSON error envelope every handler renders.
type Err struct {
	StatusCode int    `json:"-"`
	RequestID  string `json:"request_id,omitempty"`
	Msg        string `json:"error"`

	wrapped error
}

func (e *Err) Error() string {
	return e.Msg
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Msg:        err.Error(),
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Msg:        err.Error(),
	}
}

func ErrPermissionDenied(err error) *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		Msg:        err.Error(),
	}
}

func ErrNotFound(resource, key string, value any) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Msg:        fmt.Sprintf("%v not found by %v (%v)", resource, key, value),
	}
}

func ErrConflict(err error) *Err {
	return &Err{
		StatusCode: http.StatusConflict,
		Msg:        err.Error(),
	}
}

// ErrInternalServerError hides the underlying error from the client; the
// wrapped cause is logged when rendered.
func ErrInternalServerError(err error) *Err {
	return &Err{
		StatusCode: http.StatusInternalServerError,
		Msg:        "internal server error",
		wrapped:    err,
	}
}

func RenderErr(ctx *gin.Context, err *Err) {
	err.RequestID = requestid.Get(ctx)

	if err.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("request_id", err.RequestID),
			zap.Error(err.wrapped),
		)
	}

	ctx.AbortWithStatusJSON(err.StatusCode, err)
}

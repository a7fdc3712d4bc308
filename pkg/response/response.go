package response

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"vendor-report-srv/pkg/discord"
	pkgErrors "vendor-report-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// Error writes err as a JSON error response. HTTPError and ValidationErrors are rendered as-is;
// anything else becomes a 500 and is reported to Discord when a client is configured.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	var valErrs pkgErrors.ValidationErrors
	if errors.As(err, &valErrs) {
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: codeBadRequest,
			Message:   MessageBadRequest,
			Errors:    valErrs,
		})
		return
	}

	reportBug(c.Request.Context(), d, fmt.Sprintf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: codeInternal,
		Message:   MessageInternal,
	})
}

// BadRequest writes a 400 for request binding failures.
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: codeBadRequest,
		Message:   MessageBadRequest,
		Errors:    err.Error(),
	})
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: codeUnauthorized,
		Message:   MessageUnauthorized,
	})
}

// PanicError writes a 500 for a recovered panic and reports the stack to Discord.
func PanicError(c *gin.Context, err any, d discord.IDiscord) {
	reportBug(c.Request.Context(), d, fmt.Sprintf("panic: %v\n%s", err, debug.Stack()))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: codeInternal,
		Message:   MessageInternal,
	})
}

func reportBug(ctx context.Context, d discord.IDiscord, msg string) {
	if d == nil {
		return
	}
	go func() {
		_ = d.ReportBug(context.WithoutCancel(ctx), msg)
	}()
}

package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/dentismart/internal/httpresp"
)

const genericMessage = "Une erreur est survenue. Veuillez réessayer."

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, httpresp.Envelope[any]{
		Success:   false,
		Error:     message,
		ErrorCode: code,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Status maps an error to its HTTP status.
func Status(err error) int {
	var be BusinessError
	if !errors.As(err, &be) {
		return http.StatusInternalServerError
	}

	switch be.Kind {
	case KindBusiness, KindValidation, KindInvalidState:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err as a failure envelope. Errors that are not business
// errors get a generic message; the caller is expected to have logged them.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		Internal(c, "internal_error", genericMessage)
		return
	}

	msg := be.Message
	if msg == "" {
		msg = be.Code
	}
	Write(c, Status(err), be.Code, msg)
}

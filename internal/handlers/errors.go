package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/dentismart/internal/httperr"
)

const msgInvalidBody = "Données invalides"

// fail logs server-side failures before writing the error envelope.
func fail(c *gin.Context, log *zap.Logger, err error) {
	if httperr.Status(err) >= 500 {
		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	httperr.Respond(c, err)
}

func invalidBody(c *gin.Context) {
	httperr.BadRequest(c, "invalid_request", msgInvalidBody)
}

package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/dentismart/internal/httpresp"
	"github.com/BruksfildServices01/dentismart/internal/middleware"
	ucAccount "github.com/BruksfildServices01/dentismart/internal/usecase/account"
	ucDashboard "github.com/BruksfildServices01/dentismart/internal/usecase/dashboard"
)

type MeHandler struct {
	me    *ucAccount.GetMe
	stats *ucDashboard.GetStats
	log   *zap.Logger
}

func NewMeHandler(me *ucAccount.GetMe, stats *ucDashboard.GetStats, log *zap.Logger) *MeHandler {
	return &MeHandler{me: me, stats: stats, log: log}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	profileID := c.GetString(middleware.ContextProfileID)

	session, err := h.me.Execute(c.Request.Context(), profileID)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	httpresp.OK(c, session, "")
}

func (h *MeHandler) Stats(c *gin.Context) {
	cabinetID := c.GetString(middleware.ContextCabinetID)
	role := c.GetString(middleware.ContextRole)

	stats, err := h.stats.Execute(c.Request.Context(), cabinetID, role)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	httpresp.OK(c, stats, "")
}

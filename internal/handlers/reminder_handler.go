package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/dentismart/internal/httpresp"
	"github.com/BruksfildServices01/dentismart/internal/messaging/sms"
	"github.com/BruksfildServices01/dentismart/internal/middleware"
	ucReminder "github.com/BruksfildServices01/dentismart/internal/usecase/reminder"
)

type ReminderHandler struct {
	send     *ucReminder.SendReminder
	provider sms.Provider
	log      *zap.Logger
}

func NewReminderHandler(send *ucReminder.SendReminder, provider sms.Provider, log *zap.Logger) *ReminderHandler {
	return &ReminderHandler{send: send, provider: provider, log: log}
}

type SendReminderRequest struct {
	RendezVousID string `json:"rendezVousId"`
}

// Send dispatches one reminder. Provider errors keep their message.
func (h *ReminderHandler) Send(c *gin.Context) {
	var req SendReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	profileID, cabinetID, _ := middleware.Session(c)

	res, err := h.send.Execute(c.Request.Context(), ucReminder.SendReminderInput{
		RendezVousID: req.RendezVousID,
		CabinetID:    cabinetID,
		ProfileID:    profileID,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}

	httpresp.OK(c, res, res.Message)
}

// Status reports whether the SMS provider is configured. No secrets.
func (h *ReminderHandler) Status(c *gin.Context) {
	httpresp.OK(c, h.provider.Status(), "")
}
